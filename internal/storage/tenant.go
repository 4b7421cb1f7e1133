package storage

import (
	"context"
	"strings"
)

// tenantPrefix matches the on-disk layout "tenant:<id>:<key>" so a tenant
// view over any backend stays interoperable with existing data.
func tenantPrefix(tenantID string) string {
	return "tenant:" + tenantID + ":"
}

// Tenant decorates a root Store so every key is transparently rewritten into
// the tenant's namespace. Keys reports only keys inside the namespace, with
// the prefix stripped.
type Tenant struct {
	root   Store
	prefix string
}

func NewTenant(root Store, tenantID string) *Tenant {
	return &Tenant{root: root, prefix: tenantPrefix(tenantID)}
}

// ForTenant returns a namespaced view when tenantID is set, and the root
// store untouched for the global namespace.
func ForTenant(root Store, tenantID string) Store {
	if tenantID == "" {
		return root
	}
	return NewTenant(root, tenantID)
}

func (t *Tenant) Get(ctx context.Context, key string) (string, bool) {
	return t.root.Get(ctx, t.prefix+key)
}

func (t *Tenant) Set(ctx context.Context, key, value string) {
	t.root.Set(ctx, t.prefix+key, value)
}

func (t *Tenant) Delete(ctx context.Context, key string) {
	t.root.Delete(ctx, t.prefix+key)
}

func (t *Tenant) Has(ctx context.Context, key string) bool {
	return t.root.Has(ctx, t.prefix+key)
}

func (t *Tenant) Keys(ctx context.Context) []string {
	var keys []string
	for _, k := range t.root.Keys(ctx) {
		if strings.HasPrefix(k, t.prefix) {
			keys = append(keys, strings.TrimPrefix(k, t.prefix))
		}
	}
	return keys
}

// Clear removes only the tenant's own keys, never the whole root store.
func (t *Tenant) Clear(ctx context.Context) {
	for _, k := range t.root.Keys(ctx) {
		if strings.HasPrefix(k, t.prefix) {
			t.root.Delete(ctx, k)
		}
	}
}

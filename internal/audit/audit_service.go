package audit

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-dispatch/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxEntries bounds the persisted ledger; oldest entries are dropped first.
const maxEntries = 1000

const defaultQueryLimit = 100

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Recorder interface {
	Log(ctx context.Context, entry NewEntry)
	Query(ctx context.Context, filter QueryFilter) []Entry
}

type QueryFilter struct {
	Limit    int
	Action   Action
	Username string
}

type recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) Recorder {
	return &recorder{repo: repo}
}

// Log appends an entry and re-persists the ledger truncated to its most
// recent maxEntries, a sliding window over insertion order.
func (r *recorder) Log(ctx context.Context, entry NewEntry) {
	l := contextutil.GetLogger(ctx, nil)

	entries := r.repo.List(ctx)
	entries = append(entries, Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Username:  entry.Username,
		Action:    entry.Action,
		Details:   entry.Details,
		UserID:    entry.UserID,
	})

	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	r.repo.Save(ctx, entries)

	l.Debug("audit entry recorded",
		zap.String("action", string(entry.Action)),
		zap.String("username", entry.Username),
	)
}

// Query filters by exact action and case-insensitive username substring, then
// returns the newest entries first, capped at filter.Limit.
func (r *recorder) Query(ctx context.Context, filter QueryFilter) []Entry {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	entries := r.repo.List(ctx)

	filtered := make([]Entry, 0, len(entries))
	needle := strings.ToLower(filter.Username)
	for _, e := range entries {
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Username), needle) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

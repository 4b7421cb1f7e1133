package seed

import (
	"context"
	"sync/atomic"
	"time"

	"go-dispatch/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// account is one baseline record the store must contain before any request
// is served. FixedID pins ids that other components reference (the
// distinguished super admin).
type account struct {
	FixedID     string
	Username    string
	Password    string
	Role        employee.Role
	FullName    string
	Email       string
	Phone       string
	CreatedBy   string
	CredentedBy string // display name recorded on the credential entry
}

func baselineAccounts() []account {
	return []account{
		{
			FixedID:     employee.SuperAdminID,
			Username:    "admin",
			Password:    "admin123",
			Role:        employee.RoleSuperAdmin,
			FullName:    "System Admin",
			Email:       "admin@rork.app",
			CreatedBy:   "system",
			CredentedBy: "system",
		},
		{
			Username:    "elena",
			Password:    "bacon",
			Role:        employee.RoleWorker,
			FullName:    "elena",
			Email:       "ichargetexas@gmail.com",
			Phone:       "9034520052",
			CreatedBy:   employee.SuperAdminID,
			CredentedBy: "Super Admin",
		},
		{
			Username:    "testworker",
			Password:    "testworker123",
			Role:        employee.RoleWorker,
			FullName:    "Test Worker",
			Email:       "testworker@example.com",
			Phone:       "5550001234",
			CreatedBy:   employee.SuperAdminID,
			CredentedBy: "Super Admin",
		},
	}
}

// Seeder guarantees the baseline accounts exist before any request is served.
// Ensure is safe to call from every request path: concurrent callers share a
// single execution, success latches permanently, and a failure clears the
// guard so a later call can retry.
type Seeder struct {
	repo   employee.Repository
	logger *zap.Logger

	done  atomic.Bool
	group singleflight.Group
}

func NewSeeder(repo employee.Repository, logger ...*zap.Logger) *Seeder {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}
	return &Seeder{repo: repo, logger: l}
}

func (s *Seeder) Ensure(ctx context.Context) error {
	if s.done.Load() {
		return nil
	}

	_, err, _ := s.group.Do("seed", func() (any, error) {
		if s.done.Load() {
			return nil, nil
		}
		if err := s.run(ctx); err != nil {
			s.logger.Error("seed failed", zap.Error(err))
			return nil, err
		}
		s.done.Store(true)
		return nil, nil
	})
	return err
}

// run inserts each missing baseline account (matched by username) together
// with its credential entry, and writes the employee list back only if
// something was actually added.
func (s *Seeder) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	employees := s.repo.List(ctx, "")
	s.logger.Info("seeding baseline accounts", zap.Int("existing", len(employees)))

	didChange := false

	for _, acct := range baselineAccounts() {
		if hasUsername(employees, acct.Username) {
			continue
		}

		id := acct.FixedID
		if id == "" {
			id = uuid.NewString()
		}

		now := time.Now().UTC()
		employees = append(employees, employee.Employee{
			ID:           id,
			Username:     acct.Username,
			PasswordHash: employee.HashPassword(acct.Password),
			Role:         acct.Role,
			FullName:     acct.FullName,
			Email:        acct.Email,
			Phone:        acct.Phone,
			IsActive:     true,
			CreatedAt:    now,
			CreatedBy:    acct.CreatedBy,
			Permissions:  employee.DefaultPermissions(acct.Role),
		})

		entries := s.repo.Credentials(ctx, "")
		entries = append(entries, employee.CredentialLogEntry{
			ID:          uuid.NewString(),
			Username:    acct.Username,
			Password:    acct.Password,
			Role:        acct.Role,
			CreatedAt:   now,
			CreatedBy:   acct.CredentedBy,
			CreatedByID: acct.CreatedBy,
		})
		s.repo.SaveCredentials(ctx, "", entries)

		s.logger.Info("seeded account",
			zap.String("username", acct.Username),
			zap.String("role", string(acct.Role)),
		)
		didChange = true
	}

	if didChange {
		s.repo.Save(ctx, "", employees)
	}

	s.logger.Info("seed complete", zap.Int("total", len(employees)))
	return nil
}

func hasUsername(employees []employee.Employee, username string) bool {
	for _, e := range employees {
		if e.Username == username {
			return true
		}
	}
	return false
}

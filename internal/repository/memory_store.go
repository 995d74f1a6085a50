package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/vigilance-service/internal/domain"
)

// MemoryStore holds users and reports in memory. It backs the service when
// no Postgres DSN is configured and is used directly in tests. Users and
// Reports return repository views over the same shared state.
type MemoryStore struct {
	mu      sync.Mutex
	users   []domain.User
	reports []domain.Report

	userIDCounter   int64
	reportIDCounter int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Users returns the user repository view.
func (s *MemoryStore) Users() UserRepository {
	return &memoryUserRepo{store: s}
}

// Reports returns the report repository view.
func (s *MemoryStore) Reports() ReportRepository {
	return &memoryReportRepo{store: s}
}

type memoryUserRepo struct {
	store *MemoryStore
}

type memoryReportRepo struct {
	store *MemoryStore
}

// Ensure interfaces are met.
var _ UserRepository = (*memoryUserRepo)(nil)
var _ ReportRepository = (*memoryReportRepo)(nil)

// Create appends a user with the next id. Uniqueness of email and NIC is
// re-checked under the lock, so two concurrent registrations with the same
// values cannot both succeed.
func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return ErrDuplicateEmail
		}
		if s.users[i].NIC == user.NIC {
			return ErrDuplicateNIC
		}
	}

	s.userIDCounter++
	user.ID = s.userIDCounter
	user.CreatedAt = time.Now().UTC()
	s.users = append(s.users, *user)
	return nil
}

// GetByID returns the user without the password hash.
func (r *memoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			user.PasswordHash = ""
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepo) GetByNIC(ctx context.Context, nic string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].NIC == nic {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryReportRepo) Create(ctx context.Context, report *domain.Report) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reportIDCounter++
	report.ID = s.reportIDCounter
	report.CreatedAt = time.Now().UTC()
	s.reports = append(s.reports, *report)
	return nil
}

// ListByUser returns the user's reports, newest first.
func (r *memoryReportRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Report, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := []domain.Report{}
	for i := range s.reports {
		if s.reports[i].UserID == userID {
			reports = append(reports, s.reports[i])
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID > reports[j].ID
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (r *memoryReportRepo) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			report := s.reports[i]
			return &report, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryReportRepo) StatsByUser(ctx context.Context, userID int64) (*domain.ReportStats, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.ReportStats{}
	for i := range s.reports {
		if s.reports[i].UserID != userID {
			continue
		}
		stats.Total++
		switch s.reports[i].Status {
		case domain.ReportStatusCompleted:
			stats.Completed++
		case domain.ReportStatusInProgress:
			stats.InProgress++
		case domain.ReportStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

func (r *memoryReportRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vigilance-service/internal/domain"
	"github.com/spec-kit/vigilance-service/internal/repository"
)

type fakeStatsCache struct {
	mu          sync.Mutex
	entries     map[int64]*domain.ReportStats
	hits        int
	invalidated []int64
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: map[int64]*domain.ReportStats{}}
}

func (c *fakeStatsCache) Get(ctx context.Context, userID int64) (*domain.ReportStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats, ok := c.entries[userID]
	if ok {
		c.hits++
	}
	return stats, ok
}

func (c *fakeStatsCache) Set(ctx context.Context, userID int64, stats *domain.ReportStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = stats
}

func (c *fakeStatsCache) Invalidate(ctx context.Context, userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
}

func validReport() ReportCreateInput {
	return ReportCreateInput{
		VehicleType:   "Car",
		VehicleNumber: "ABC-1234",
		DateTime:      "2026-08-30T10:00:00Z",
		IssueType:     "A vehicle was parked illegally",
		Location:      "Colombo",
	}
}

func TestReportCreate_Success(t *testing.T) {
	t.Parallel()

	svc := NewReportService(repository.NewMemoryStore().Reports(), nil, nil)
	report, err := svc.Create(context.Background(), 1, validReport())
	require.NoError(t, err)
	require.Equal(t, int64(1), report.ID)
	require.Equal(t, int64(1), report.UserID)
	require.Equal(t, domain.ReportStatusInProgress, report.Status)
	require.False(t, report.CreatedAt.IsZero())
}

func TestReportCreate_RequiredFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*ReportCreateInput)
	}{
		{"missing vehicleType", func(in *ReportCreateInput) { in.VehicleType = "" }},
		{"missing vehicleNumber", func(in *ReportCreateInput) { in.VehicleNumber = "" }},
		{"missing dateTime", func(in *ReportCreateInput) { in.DateTime = "" }},
		{"missing issueType", func(in *ReportCreateInput) { in.IssueType = "" }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reports := repository.NewMemoryStore().Reports()
			svc := NewReportService(reports, nil, nil)
			input := validReport()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), 1, input)
			requireDomainError(t, err, "VALIDATION_FAILED", 400,
				"Required fields: vehicleType, vehicleNumber, dateTime, issueType")

			list, err := reports.ListByUser(context.Background(), 1)
			require.NoError(t, err)
			require.Empty(t, list)
		})
	}
}

func TestReportGet_OwnershipMatrix(t *testing.T) {
	t.Parallel()

	svc := NewReportService(repository.NewMemoryStore().Reports(), nil, nil)
	const userA, userB = int64(1), int64(2)

	created, err := svc.Create(context.Background(), userA, validReport())
	require.NoError(t, err)

	// owner reads it
	got, err := svc.Get(context.Background(), userA, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	// another authenticated user is forbidden
	_, err = svc.Get(context.Background(), userB, created.ID)
	requireDomainError(t, err, "FORBIDDEN", 403, "Access denied")

	// a nonexistent id is not found, for owner and stranger alike
	_, err = svc.Get(context.Background(), userA, 999)
	requireDomainError(t, err, "NOT_FOUND", 404, "Report not found")
	_, err = svc.Get(context.Background(), userB, 999)
	requireDomainError(t, err, "NOT_FOUND", 404, "Report not found")
}

func TestReportList_OnlyOwnNewestFirst(t *testing.T) {
	t.Parallel()

	svc := NewReportService(repository.NewMemoryStore().Reports(), nil, nil)

	first, err := svc.Create(context.Background(), 1, validReport())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), 1, validReport())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, validReport())
	require.NoError(t, err)

	list, err := svc.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestReportStats_CountsAndCache(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryStore()
	cache := newFakeStatsCache()
	svc := NewReportService(store.Reports(), cache, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, validReport())
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, validReport())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, domain.ReportStatusCompleted)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStats{Total: 2, Completed: 1, InProgress: 1}, *stats)

	// second read is served from the cache
	_, err = svc.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cache.hits)

	// a new report invalidates the cached stats
	_, err = svc.Create(ctx, 1, validReport())
	require.NoError(t, err)
	stats, err = svc.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStats{Total: 3, Completed: 1, InProgress: 2}, *stats)
}

func TestReportUpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewReportService(repository.NewMemoryStore().Reports(), nil, nil)
	_, err := svc.UpdateStatus(context.Background(), 999, domain.ReportStatusRejected)
	requireDomainError(t, err, "NOT_FOUND", 404, "Report not found")
}

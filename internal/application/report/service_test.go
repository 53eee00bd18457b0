package report

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agence/backend/internal/domain/report"
	"github.com/agence/backend/internal/domain/shared"
)

type fakeReportRepo struct {
	consultantPage  shared.Page[report.ConsultantMonthlyTotal]
	clientPage      shared.Page[report.ClientMonthlyTotal]
	err             error
	consultantCalls int
	clientCalls     int
}

func (f *fakeReportRepo) ConsultantMonthlyTotals(_ context.Context, _ report.ConsultantFilter, _ shared.PageParams) (shared.Page[report.ConsultantMonthlyTotal], error) {
	f.consultantCalls++
	return f.consultantPage, f.err
}

func (f *fakeReportRepo) ClientMonthlyTotals(_ context.Context, _ report.ClientFilter, _ shared.PageParams) (shared.Page[report.ClientMonthlyTotal], error) {
	f.clientCalls++
	return f.clientPage, f.err
}

type fakeCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	payload, ok := f.entries[key]
	return payload, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, payload []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.entries[key] = payload
	return nil
}

func mustRange(t *testing.T, start, end string) report.MonthRange {
	t.Helper()
	r, err := report.NewMonthRange(start, end)
	require.NoError(t, err)
	return r
}

func consultantPage() shared.Page[report.ConsultantMonthlyTotal] {
	return shared.NewPage([]report.ConsultantMonthlyTotal{
		{
			UserID:       "anapal",
			Year:         2007,
			Month:        2,
			InvoiceValue: decimal.RequireFromString("1000.00"),
			TaxesValue:   decimal.RequireFromString("132.50"),
			NetValue:     decimal.RequireFromString("867.50"),
		},
	}, 1, shared.PageParams{Limit: 10})
}

func TestService_ConsultantMonthlyTotals(t *testing.T) {
	filter := report.ConsultantFilter{Range: report.MonthRange{Start: "2007-01", End: "2007-12"}}

	t.Run("miss populates the cache, hit skips the repository", func(t *testing.T) {
		repo := &fakeReportRepo{consultantPage: consultantPage()}
		cache := newFakeCache()
		svc := NewService(repo, cache, nil)

		first, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.consultantCalls)
		assert.Equal(t, 1, cache.sets)

		second, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.consultantCalls)
		assert.Equal(t, first.Total, second.Total)
		require.Len(t, second.Content, 1)
		assert.Equal(t, "anapal", second.Content[0].UserID)
		assert.True(t, second.Content[0].NetValue.Equal(first.Content[0].NetValue))
	})

	t.Run("different window misses the cache", func(t *testing.T) {
		repo := &fakeReportRepo{consultantPage: consultantPage()}
		cache := newFakeCache()
		svc := NewService(repo, cache, nil)

		_, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)
		_, err = svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10, Offset: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, repo.consultantCalls)
	})

	t.Run("cache failure degrades to the repository", func(t *testing.T) {
		repo := &fakeReportRepo{consultantPage: consultantPage()}
		cache := newFakeCache()
		cache.getErr = errors.New("redis gone")
		svc := NewService(repo, cache, nil)

		page, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, repo.consultantCalls)
	})

	t.Run("corrupt payload degrades to the repository", func(t *testing.T) {
		repo := &fakeReportRepo{consultantPage: consultantPage()}
		cache := newFakeCache()
		svc := NewService(repo, cache, nil)

		key := consultantCacheKey(filter, shared.PageParams{Limit: 10})
		cache.entries[key] = []byte("{not json")

		page, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.consultantCalls)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("nil cache goes straight to the repository", func(t *testing.T) {
		repo := &fakeReportRepo{consultantPage: consultantPage()}
		svc := NewService(repo, nil, nil)

		page, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("repository errors pass through uncached", func(t *testing.T) {
		repo := &fakeReportRepo{err: errors.New("db down")}
		cache := newFakeCache()
		svc := NewService(repo, cache, nil)

		_, err := svc.ConsultantMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.Error(t, err)
		assert.Equal(t, 0, cache.sets)
	})
}

func TestService_ClientMonthlyTotals(t *testing.T) {
	filter := report.ClientFilter{Range: report.MonthRange{Start: "2007-01", End: "2007-12"}}

	t.Run("caches per filter including the id list", func(t *testing.T) {
		page := shared.NewPage([]report.ClientMonthlyTotal{
			{ClientID: 4, Year: 2007, Month: 2, InvoiceValue: decimal.RequireFromString("1000.00")},
		}, 1, shared.PageParams{Limit: 10})
		repo := &fakeReportRepo{clientPage: page}
		cache := newFakeCache()
		svc := NewService(repo, cache, nil)

		_, err := svc.ClientMonthlyTotals(context.Background(), filter, shared.PageParams{Limit: 10})
		require.NoError(t, err)

		restricted := filter
		restricted.ClientIDs = []int64{4}
		_, err = svc.ClientMonthlyTotals(context.Background(), restricted, shared.PageParams{Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, 2, repo.clientCalls)
		assert.Equal(t, 2, cache.sets)
	})
}

func TestCacheKeys(t *testing.T) {
	r := mustRange(t, "2007-01", "2007-12")

	a := consultantCacheKey(report.ConsultantFilter{Range: r}, shared.PageParams{Limit: 10})
	b := consultantCacheKey(report.ConsultantFilter{Range: r, UserIDs: []string{"anapal"}}, shared.PageParams{Limit: 10})
	assert.NotEqual(t, a, b)

	c := clientCacheKey(report.ClientFilter{Range: r}, shared.PageParams{Limit: 10})
	assert.NotEqual(t, a, c)

	d := clientCacheKey(report.ClientFilter{Range: r, ClientIDs: []int64{4}}, shared.PageParams{Limit: 10})
	assert.NotEqual(t, c, d)
}

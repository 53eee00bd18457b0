package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/agence/backend/internal/domain/report"
	"github.com/agence/backend/internal/domain/shared"
)

// PageCache stores serialized report pages. A miss is reported as ok=false;
// errors are operational (connection loss, timeouts) and never fatal to the
// request.
type PageCache interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Service provides the monthly financial report operations. The cache is
// optional; with a nil cache every request hits the database.
type Service struct {
	repo   report.Repository
	cache  PageCache
	logger *zap.Logger
}

// NewService creates a new report Service
func NewService(repo report.Repository, cache PageCache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// ConsultantMonthlyTotals returns one page of the consultant performance
// report for the month range.
func (s *Service) ConsultantMonthlyTotals(ctx context.Context, filter report.ConsultantFilter, params shared.PageParams) (shared.Page[report.ConsultantMonthlyTotal], error) {
	params = params.Normalize()
	key := consultantCacheKey(filter, params)

	if page, ok := cacheGet[report.ConsultantMonthlyTotal](ctx, s, key); ok {
		return page, nil
	}

	page, err := s.repo.ConsultantMonthlyTotals(ctx, filter, params)
	if err != nil {
		return shared.Page[report.ConsultantMonthlyTotal]{}, err
	}

	cacheSet(ctx, s, key, page)
	return page, nil
}

// ClientMonthlyTotals returns one page of the client revenue report for the
// month range.
func (s *Service) ClientMonthlyTotals(ctx context.Context, filter report.ClientFilter, params shared.PageParams) (shared.Page[report.ClientMonthlyTotal], error) {
	params = params.Normalize()
	key := clientCacheKey(filter, params)

	if page, ok := cacheGet[report.ClientMonthlyTotal](ctx, s, key); ok {
		return page, nil
	}

	page, err := s.repo.ClientMonthlyTotals(ctx, filter, params)
	if err != nil {
		return shared.Page[report.ClientMonthlyTotal]{}, err
	}

	cacheSet(ctx, s, key, page)
	return page, nil
}

// cacheGet loads and decodes a cached page. Any cache failure degrades to a
// miss so the database remains the source of truth.
func cacheGet[T any](ctx context.Context, s *Service, key string) (shared.Page[T], bool) {
	if s.cache == nil {
		return shared.Page[T]{}, false
	}
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return shared.Page[T]{}, false
	}
	if !ok {
		return shared.Page[T]{}, false
	}
	var page shared.Page[T]
	if err := json.Unmarshal(payload, &page); err != nil {
		s.logger.Warn("report cache payload corrupt", zap.String("key", key), zap.Error(err))
		return shared.Page[T]{}, false
	}
	return page, true
}

func cacheSet[T any](ctx context.Context, s *Service, key string, page shared.Page[T]) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(page)
	if err != nil {
		s.logger.Warn("report cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func consultantCacheKey(filter report.ConsultantFilter, params shared.PageParams) string {
	return fmt.Sprintf("consultant:%s:%s:%s:%d:%d",
		filter.Range.Start, filter.Range.End,
		strings.Join(filter.UserIDs, ","),
		params.Limit, params.Offset)
}

func clientCacheKey(filter report.ClientFilter, params shared.PageParams) string {
	ids := make([]string, len(filter.ClientIDs))
	for i, id := range filter.ClientIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("client:%s:%s:%s:%d:%d",
		filter.Range.Start, filter.Range.End,
		strings.Join(ids, ","),
		params.Limit, params.Offset)
}

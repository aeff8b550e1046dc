package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/repository/file"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type row struct {
	key    string
	region string
	count  int
}

func newCounts(t *testing.T, rows ...row) *file.TaxiCountTable {
	t.Helper()
	records := make([]domain.TaxiCountRecord, 0, len(rows))
	for _, r := range rows {
		k, ts, err := domain.ParseSnapshotKey(r.key)
		require.NoError(t, err)
		records = append(records, domain.TaxiCountRecord{Timestamp: ts, Key: k, Region: r.region, TaxiCount: r.count})
	}
	return file.NewTaxiCountTable(records)
}

type square struct {
	name     string
	lon, lat float64
}

func newRegions(t *testing.T, squares ...square) *file.RegionTable {
	t.Helper()
	regions := make([]domain.Region, 0, len(squares))
	for _, s := range squares {
		const d = 0.01
		regions = append(regions, domain.Region{
			Name: s.name,
			Boundary: orb.Polygon{{
				{s.lon - d, s.lat - d}, {s.lon + d, s.lat - d}, {s.lon + d, s.lat + d}, {s.lon - d, s.lat + d}, {s.lon - d, s.lat - d},
			}},
			Properties: geojson.Properties{"name": s.name},
		})
	}
	table, err := file.NewRegionTable(regions)
	require.NoError(t, err)
	return table
}

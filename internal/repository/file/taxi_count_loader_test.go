package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const taxiCountHeader = ",filename,region,taxi_count\n"

func writeYear(t *testing.T, dir string, year int, rows ...string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(taxiCountHeader)
	for i, r := range rows {
		fmt.Fprintf(&b, "%d,%s\n", i, r)
	}
	path := filepath.Join(dir, fmt.Sprintf("processed_taxi_count.%d.csv", year))
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func writeYears(t *testing.T, dir string, rowsByYear map[int][]string) []string {
	t.Helper()
	var paths []string
	for year := 2016; year <= 2021; year++ {
		paths = append(paths, writeYear(t, dir, year, rowsByYear[year]...))
	}
	return paths
}

func keysOf(records []domain.TaxiCountRecord) []string {
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key.String()
	}
	return keys
}

func TestLoadTaxiCounts_ExclusionScenario(t *testing.T) {
	dir := t.TempDir()
	paths := writeYears(t, dir, map[int][]string{
		2016: {
			"20160916125959,Bedok,10",
			"20160916130000,Bedok,11",
			"20160916130001,Bedok,12",
		},
		2017: {
			"20171016105959,Bedok,20",
			"20171016110000,Bedok,21",
			"20171016110001,Bedok,22",
			"20171129090000,Bedok,23",
			"20171129090001,Bedok,24",
		},
		2021: {
			"20211001000000,Bedok,30",
		},
	})

	table, err := LoadTaxiCounts(paths, zap.NewNop())
	require.NoError(t, err)

	keys := keysOf(table.records)
	assert.Equal(t, []string{
		"20160916130000",
		"20160916130001",
		"20171016105959",
		"20171129090001",
		"20211001000000",
	}, keys)
	assert.NotContains(t, keys, "20171016110001")
	assert.Contains(t, keys, "20160916130001")

	stats := table.Stats()
	assert.Equal(t, 6, stats.Files)
	assert.Equal(t, 9, stats.RowsRead)
	assert.Equal(t, 4, stats.RowsExcluded)
	assert.Equal(t, stats.RowsRead-stats.RowsExcluded, table.Len())
}

func TestLoadTaxiCounts_PreservesConcatenationOrder(t *testing.T) {
	dir := t.TempDir()
	paths := writeYears(t, dir, map[int][]string{
		2020: {
			"20200401000000,Tampines,5",
			"20200401000000,Bedok,6",
		},
		2021: {
			"20211001000000,Bedok,7",
		},
	})

	table, err := LoadTaxiCounts(paths, zap.NewNop())
	require.NoError(t, err)

	records := table.records
	require.Len(t, records, 3)
	assert.Equal(t, "Tampines", records[0].Region)
	assert.Equal(t, "Bedok", records[1].Region)
	assert.Equal(t, 7, records[2].TaxiCount)
	assert.Equal(t, time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), records[0].Timestamp)
}

func TestLoadTaxiCounts_Idempotent(t *testing.T) {
	dir := t.TempDir()
	paths := writeYears(t, dir, map[int][]string{
		2018: {"20180101120000,Bedok,1", "20180101120000,Jurong West,2"},
		2019: {"20190505050505,Bedok,3"},
	})

	first, err := LoadTaxiCounts(paths, zap.NewNop())
	require.NoError(t, err)
	second, err := LoadTaxiCounts(paths, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first.records, second.records)
	assert.Equal(t, first.Stats(), second.Stats())
}

func TestLoadTaxiCounts_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()
		paths := writeYears(t, dir, nil)
		require.NoError(t, os.Remove(paths[3]))

		_, err := LoadTaxiCounts(paths, zap.NewNop())
		require.Error(t, err)
		assert.ErrorAs(t, err, new(*domain.DataLoadError))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "processed_taxi_count.2019.csv")
	})

	t.Run("identifier that is not a timestamp", func(t *testing.T) {
		dir := t.TempDir()
		paths := writeYears(t, dir, map[int][]string{
			2016: {"20160916130000,Bedok,1", "2016091613,Bedok,2"},
		})

		_, err := LoadTaxiCounts(paths, zap.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidSnapshotKey)

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 3, loadErr.Line)
	})

	t.Run("excluded rows are still validated", func(t *testing.T) {
		dir := t.TempDir()
		paths := writeYears(t, dir, map[int][]string{
			2016: {"20160230130000,Bedok,1"},
		})

		_, err := LoadTaxiCounts(paths, zap.NewNop())
		assert.ErrorIs(t, err, domain.ErrInvalidSnapshotKey)
	})

	t.Run("negative count", func(t *testing.T) {
		dir := t.TempDir()
		paths := writeYears(t, dir, map[int][]string{
			2020: {"20200401000000,Bedok,-3"},
		})

		_, err := LoadTaxiCounts(paths, zap.NewNop())
		assert.ErrorIs(t, err, domain.ErrInvalidTaxiCount)
	})
}

func TestReadTaxiCounts_Schema(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		_, err := ReadTaxiCounts(strings.NewReader(",filename,taxi_count\n0,20200401000000,4\n"), "x.csv")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
		assert.Contains(t, err.Error(), `"region"`)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ReadTaxiCounts(strings.NewReader(""), "x.csv")
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ReadTaxiCounts(strings.NewReader(taxiCountHeader+"0,20200401000000,Bedok\n"), "x.csv")
		require.Error(t, err)
		assert.ErrorAs(t, err, new(*domain.DataLoadError))
	})

	t.Run("extra columns and float counts", func(t *testing.T) {
		input := "\ufeffregion,taxi_count,filename,extra\nBedok,12.0,20200401000000,x\n"
		records, err := ReadTaxiCounts(strings.NewReader(input), "x.csv")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 12, records[0].TaxiCount)
		assert.Equal(t, "Bedok", records[0].Region)
	})

	t.Run("count too large for an int", func(t *testing.T) {
		_, err := ReadTaxiCounts(strings.NewReader(taxiCountHeader+"0,20200401000000,Bedok,99999999999999999999\n"), "x.csv")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidTaxiCount)

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, 2, loadErr.Line)
	})

	t.Run("fractional count", func(t *testing.T) {
		_, err := ReadTaxiCounts(strings.NewReader(taxiCountHeader+"0,20200401000000,Bedok,1.5\n"), "x.csv")
		assert.ErrorIs(t, err, domain.ErrInvalidTaxiCount)
	})
}

func TestParseTaxiCount(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
		ok       bool
	}{
		{"0", 0, true},
		{" 42 ", 42, true},
		{"7.0", 7, true},
		{"", 0, false},
		{"NaN", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"2147483647", MaxTaxiCount, true},
		{"2147483648", 0, false},
		{"99999999999999999999", 0, false},
		{"1e30", 0, false},
	}

	for _, tt := range tests {
		got, err := parseTaxiCount(tt.raw)
		if tt.ok {
			assert.NoError(t, err, tt.raw)
			assert.Equal(t, tt.expected, got, tt.raw)
		} else {
			assert.Error(t, err, tt.raw)
		}
	}
}

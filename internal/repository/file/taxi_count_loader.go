package file

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cities-in-motion/internal/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// Колонки, обязательные в каждом годовом файле. Остальные, включая безымянный
// позиционный индекс выгрузки, игнорируются.
const (
	ColumnSnapshot  = "filename"
	ColumnRegion    = "region"
	ColumnTaxiCount = "taxi_count"
)

type taxiCountSchema struct {
	snapshot  int
	region    int
	taxiCount int
}

func resolveSchema(header []string) (taxiCountSchema, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("%w %q", domain.ErrMissingColumn, name)
		}
		return i, nil
	}

	var s taxiCountSchema
	var err error
	if s.snapshot, err = lookup(ColumnSnapshot); err != nil {
		return s, err
	}
	if s.region, err = lookup(ColumnRegion); err != nil {
		return s, err
	}
	if s.taxiCount, err = lookup(ColumnTaxiCount); err != nil {
		return s, err
	}
	return s, nil
}

// LoadTaxiCounts читает годовые файлы в заданном порядке, склеивает их и
// отбрасывает строки, исключенные domain.SnapshotKey.Excluded. Отсутствующий
// или битый файл прерывает загрузку с *domain.DataLoadError.
func LoadTaxiCounts(paths []string, logger *zap.Logger) (*TaxiCountTable, error) {
	var all []domain.TaxiCountRecord
	for _, path := range paths {
		records, err := readTaxiCountFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Taxi count file read",
			zap.String("path", path),
			zap.Int("rows", len(records)),
		)
		all = append(all, records...)
	}

	kept := make([]domain.TaxiCountRecord, 0, len(all))
	for _, r := range all {
		if r.Key.Excluded() {
			continue
		}
		kept = append(kept, r)
	}

	table := NewTaxiCountTable(kept)
	table.stats.Files = len(paths)
	table.stats.RowsRead = len(all)
	table.stats.RowsExcluded = len(all) - len(kept)

	logger.Info("Taxi counts loaded",
		zap.Int("files", table.stats.Files),
		zap.Int("rows_read", table.stats.RowsRead),
		zap.Int("rows_excluded", table.stats.RowsExcluded),
		zap.Int("rows", table.stats.Rows),
	)

	return table, nil
}

func readTaxiCountFile(path string) ([]domain.TaxiCountRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewDataLoadError(path, 0, err)
	}
	defer f.Close()

	return ReadTaxiCounts(f, path)
}

// ReadTaxiCounts разбирает один CSV поток через gota DataFrame. Все колонки
// читаются как строки; идентификатор снимка проверяется у каждой строки, в том
// числе у тех, что потом будут исключены. Строка данных i находится на строке
// файла i+2 (первая строка - заголовок).
func ReadTaxiCounts(r io.Reader, path string) ([]domain.TaxiCountRecord, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		var parseErr *csv.ParseError
		if errors.As(df.Err, &parseErr) {
			return nil, domain.NewDataLoadError(path, parseErr.Line, df.Err)
		}
		// без строк нет и заголовка
		return nil, domain.NewDataLoadError(path, 0, fmt.Errorf("%w: %v", domain.ErrMissingColumn, df.Err))
	}

	header := make([]string, df.Ncol())
	for j := range header {
		header[j] = df.Elem(0, j).String()
	}

	schema, err := resolveSchema(header)
	if err != nil {
		return nil, domain.NewDataLoadError(path, 1, err)
	}

	names := df.Names()
	keys := df.Col(names[schema.snapshot]).Records()[1:]
	regions := df.Col(names[schema.region]).Records()[1:]
	counts := df.Col(names[schema.taxiCount]).Records()[1:]

	records := make([]domain.TaxiCountRecord, 0, len(keys))
	for i := range keys {
		line := i + 2

		key, ts, err := domain.ParseSnapshotKey(keys[i])
		if err != nil {
			return nil, domain.NewDataLoadError(path, line, err)
		}

		count, err := parseTaxiCount(counts[i])
		if err != nil {
			return nil, domain.NewDataLoadError(path, line, err)
		}

		records = append(records, domain.TaxiCountRecord{
			Timestamp: ts,
			Key:       key,
			Region:    strings.TrimSpace(regions[i]),
			TaxiCount: count,
		})
	}

	return records, nil
}

// MaxTaxiCount - верхняя граница количества такси в одном регионе
const MaxTaxiCount = math.MaxInt32

// parseTaxiCount принимает целые числа и целые float ("12.0"), которые
// выгрузка пишет, если в колонке когда-то был пропуск.
func parseTaxiCount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: %d is negative", domain.ErrInvalidTaxiCount, n)
		}
		if n > MaxTaxiCount {
			return 0, fmt.Errorf("%w: %d exceeds %d", domain.ErrInvalidTaxiCount, n, MaxTaxiCount)
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaxiCount, raw)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %q is negative", domain.ErrInvalidTaxiCount, raw)
	}
	if f > MaxTaxiCount {
		return 0, fmt.Errorf("%w: %q exceeds %d", domain.ErrInvalidTaxiCount, raw, MaxTaxiCount)
	}
	return int(f), nil
}

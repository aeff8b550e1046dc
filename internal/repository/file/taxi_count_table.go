package file

import (
	"sort"
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/domain/repository"
)

// TaxiCountTable - загруженный временной ряд. records хранятся в порядке склейки,
// byTime - стабильный индекс по времени для выборок по интервалу.
type TaxiCountTable struct {
	records []domain.TaxiCountRecord
	byTime  []int
	stats   domain.TaxiCountStats
}

var _ repository.TaxiCountRepository = (*TaxiCountTable)(nil)

// NewTaxiCountTable индексирует уже отфильтрованные записи. Слайс после этого
// принадлежит таблице.
func NewTaxiCountTable(records []domain.TaxiCountRecord) *TaxiCountTable {
	byTime := make([]int, len(records))
	for i := range byTime {
		byTime[i] = i
	}
	sort.SliceStable(byTime, func(a, b int) bool {
		return records[byTime[a]].Timestamp.Before(records[byTime[b]].Timestamp)
	})

	t := &TaxiCountTable{records: records, byTime: byTime}
	t.stats = domain.TaxiCountStats{
		RowsRead:  len(records),
		Rows:      len(records),
		Snapshots: domain.DistinctSnapshots(records),
	}
	if first, last, ok := t.Span(); ok {
		t.stats.First = &first
		t.stats.Last = &last
	}
	return t
}

func (t *TaxiCountTable) Len() int {
	return len(t.records)
}

func (t *TaxiCountTable) LookupByDate(date domain.CalendarDate) []domain.TaxiCountRecord {
	return t.LookupRange(date.Start(), date.End())
}

func (t *TaxiCountTable) LookupRange(from, to time.Time) []domain.TaxiCountRecord {
	lo := sort.Search(len(t.byTime), func(i int) bool {
		return !t.records[t.byTime[i]].Timestamp.Before(from)
	})
	hi := sort.Search(len(t.byTime), func(i int) bool {
		return !t.records[t.byTime[i]].Timestamp.Before(to)
	})
	if hi <= lo {
		return []domain.TaxiCountRecord{}
	}

	out := make([]domain.TaxiCountRecord, 0, hi-lo)
	for _, idx := range t.byTime[lo:hi] {
		out = append(out, t.records[idx])
	}
	return out
}

func (t *TaxiCountTable) Span() (first, last time.Time, ok bool) {
	if len(t.byTime) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return t.records[t.byTime[0]].Timestamp, t.records[t.byTime[len(t.byTime)-1]].Timestamp, true
}

func (t *TaxiCountTable) Stats() domain.TaxiCountStats {
	return t.stats
}

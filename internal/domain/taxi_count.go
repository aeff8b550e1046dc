package domain

import (
	"sort"
	"time"
)

// TaxiCountRecord - количество такси в регионе на один снимок
type TaxiCountRecord struct {
	Timestamp time.Time   `json:"timestamp"`
	Key       SnapshotKey `json:"-"`
	Region    string      `json:"region"`
	TaxiCount int         `json:"taxi_count"`
}

// RegionDailyValue сводит все снимки одного региона за выбранный период
type RegionDailyValue struct {
	Region    string    `json:"region"`
	TaxiCount int       `json:"taxi_count"`
	LatestAt  time.Time `json:"latest_at"`
	Mean      float64   `json:"mean"`
	Snapshots int       `json:"snapshots"`
}

// AggregateByRegion сводит записи к одному значению на регион. TaxiCount -
// значение последнего снимка; при равном времени побеждает запись, встреченная
// последней. Результат отсортирован по имени региона.
func AggregateByRegion(records []TaxiCountRecord) []RegionDailyValue {
	if len(records) == 0 {
		return []RegionDailyValue{}
	}

	type acc struct {
		value RegionDailyValue
		sum   int
	}
	byRegion := make(map[string]*acc)
	for _, r := range records {
		a, ok := byRegion[r.Region]
		if !ok {
			a = &acc{value: RegionDailyValue{Region: r.Region}}
			byRegion[r.Region] = a
		}
		a.sum += r.TaxiCount
		a.value.Snapshots++
		if !r.Timestamp.Before(a.value.LatestAt) {
			a.value.LatestAt = r.Timestamp
			a.value.TaxiCount = r.TaxiCount
		}
	}

	result := make([]RegionDailyValue, 0, len(byRegion))
	for _, a := range byRegion {
		a.value.Mean = float64(a.sum) / float64(a.value.Snapshots)
		result = append(result, a.value)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Region < result[j].Region
	})
	return result
}

// DistinctSnapshots - число различных снимков в записях
func DistinctSnapshots(records []TaxiCountRecord) int {
	seen := make(map[SnapshotKey]struct{}, len(records))
	for _, r := range records {
		seen[r.Key] = struct{}{}
	}
	return len(seen)
}

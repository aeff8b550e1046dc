package domain

import "time"

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DatasetSummary представляет сводку по загруженным данным
type DatasetSummary struct {
	TaxiCounts TaxiCountStats `json:"taxi_counts"`
	Regions    RegionStats    `json:"regions"`
	LoadedAt   time.Time      `json:"loaded_at"`
}

// TaxiCountStats статистика по временному ряду
type TaxiCountStats struct {
	Files        int        `json:"files"`
	RowsRead     int        `json:"rows_read"`
	RowsExcluded int        `json:"rows_excluded"`
	Rows         int        `json:"rows"`
	Snapshots    int        `json:"snapshots"`
	First        *time.Time `json:"first,omitempty"`
	Last         *time.Time `json:"last,omitempty"`
}

// RegionStats статистика по геометрии регионов
type RegionStats struct {
	Total int `json:"total"`
}

package dto

import (
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/paulmach/orb/geojson"
)

// CountsResponse - записи за день и их свертка по регионам
type CountsResponse struct {
	Date      string                    `json:"date"`
	Empty     bool                      `json:"empty"`
	Snapshots int                       `json:"snapshots"`
	Records   []domain.TaxiCountRecord  `json:"records"`
	Regions   []domain.RegionDailyValue `json:"regions"`
}

// WindowResponse - записи за период
type WindowResponse struct {
	Unit      string                    `json:"unit"`
	Duration  int                       `json:"duration"`
	Ranges    []domain.TimeRange        `json:"ranges"`
	Empty     bool                      `json:"empty"`
	Snapshots int                       `json:"snapshots"`
	Records   []domain.TaxiCountRecord  `json:"records"`
	Regions   []domain.RegionDailyValue `json:"regions"`
}

// ComparisonResponse - две хороплеты и сводка изменений
type ComparisonResponse struct {
	Baseline ComparisonSide `json:"baseline"`
	Analysis ComparisonSide `json:"analysis"`
	Change   SummaryChange  `json:"change"`
}

// ComparisonSide - данные одной стороны сравнения.
// Map содержит все регионы; taxi_count = null у регионов без данных.
type ComparisonSide struct {
	Date             string                     `json:"date"`
	Empty            bool                       `json:"empty"`
	Summary          IslandwideSummary          `json:"summary"`
	Regions          []domain.RegionDailyValue  `json:"regions"`
	UnmatchedRegions []string                   `json:"unmatched_regions"`
	Map              *geojson.FeatureCollection `json:"map"`
}

// IslandwideSummary - сводка по всему острову за день
type IslandwideSummary struct {
	TotalTaxiCount  int `json:"total_taxi_count"`
	RegionsWithData int `json:"regions_with_data"`
	Snapshots       int `json:"snapshots"`
}

// SummaryChange - изменение анализа относительно базовой линии; null, если сравнение невозможно
type SummaryChange struct {
	Absolute *int     `json:"absolute"`
	Percent  *float64 `json:"percent"`
}

// DashboardDefaultsResponse - значения по умолчанию для элементов управления
type DashboardDefaultsResponse struct {
	BaselineDate string       `json:"baseline_date"`
	AnalysisDate string       `json:"analysis_date"`
	TimeOfDay    string       `json:"time_of_day"`
	Duration     int          `json:"duration"`
	Unit         string       `json:"unit"`
	DataStart    *time.Time   `json:"data_start,omitempty"`
	DataEnd      *time.Time   `json:"data_end,omitempty"`
	MapCenter    domain.Point `json:"map_center"`
	TimeUnits    []string     `json:"time_units"`
	Districts    []District   `json:"districts"`
}

// District - вариант выбора района
type District struct {
	Name   string       `json:"name"`
	Center domain.Point `json:"center"`
	Region string       `json:"region,omitempty"`
	Source string       `json:"source"`
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

// DataConfig описывает расположение исходных файлов
type DataConfig struct {
	Dir             string
	TaxiCountPrefix string
	FirstYear       int
	LastYear        int
	RegionGeoJSON   string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ComparisonCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// DashboardConfig - значения по умолчанию для элементов управления дашборда
type DashboardConfig struct {
	DefaultBaselineDate string
	DefaultAnalysisDate string
}

// Load читает .env из текущего каталога (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию из указанного .env файла и окружения.
// Отсутствие файла не является ошибкой.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:             v.GetString("API_HOST"),
			Port:             v.GetInt("API_PORT"),
			Env:              v.GetString("API_ENV"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Data: DataConfig{
			Dir:             v.GetString("DATA_DIR"),
			TaxiCountPrefix: v.GetString("TAXI_COUNT_PREFIX"),
			FirstYear:       v.GetInt("TAXI_COUNT_FIRST_YEAR"),
			LastYear:        v.GetInt("TAXI_COUNT_LAST_YEAR"),
			RegionGeoJSON:   v.GetString("REGION_GEOJSON"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ComparisonCacheTTL: time.Duration(v.GetInt("COMPARISON_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Dashboard: DashboardConfig{
			DefaultBaselineDate: v.GetString("DEFAULT_BASELINE_DATE"),
			DefaultAnalysisDate: v.GetString("DEFAULT_ANALYSIS_DATE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8501")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("TAXI_COUNT_PREFIX", "analysis/processed_taxi_count")
	v.SetDefault("TAXI_COUNT_FIRST_YEAR", 2016)
	v.SetDefault("TAXI_COUNT_LAST_YEAR", 2021)
	v.SetDefault("REGION_GEOJSON", "region1.geojson")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("COMPARISON_CACHE_TTL", 3600)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_BASELINE_DATE", "2016-09-16")
	v.SetDefault("DEFAULT_ANALYSIS_DATE", "2020-04-01")
}

func (c *Config) validate() error {
	if c.Data.FirstYear > c.Data.LastYear {
		return fmt.Errorf("invalid config: TAXI_COUNT_FIRST_YEAR %d is after TAXI_COUNT_LAST_YEAR %d",
			c.Data.FirstYear, c.Data.LastYear)
	}
	if strings.TrimSpace(c.Data.TaxiCountPrefix) == "" {
		return fmt.Errorf("invalid config: TAXI_COUNT_PREFIX is empty")
	}
	if strings.TrimSpace(c.Data.RegionGeoJSON) == "" {
		return fmt.Errorf("invalid config: REGION_GEOJSON is empty")
	}
	if _, err := domain.ParseCalendarDate(c.Dashboard.DefaultBaselineDate); err != nil {
		return fmt.Errorf("invalid config: DEFAULT_BASELINE_DATE: %w", err)
	}
	if _, err := domain.ParseCalendarDate(c.Dashboard.DefaultAnalysisDate); err != nil {
		return fmt.Errorf("invalid config: DEFAULT_ANALYSIS_DATE: %w", err)
	}
	return nil
}

// TaxiCountPaths возвращает пути к годовым файлам в порядке возрастания года
func (c *DataConfig) TaxiCountPaths() []string {
	paths := make([]string, 0, c.LastYear-c.FirstYear+1)
	for year := c.FirstYear; year <= c.LastYear; year++ {
		paths = append(paths, filepath.Join(c.Dir, fmt.Sprintf("%s.%d.csv", c.TaxiCountPrefix, year)))
	}
	return paths
}

// RegionGeoJSONPath возвращает путь к файлу геометрии регионов
func (c *DataConfig) RegionGeoJSONPath() string {
	if filepath.IsAbs(c.RegionGeoJSON) {
		return c.RegionGeoJSON
	}
	return filepath.Join(c.Dir, c.RegionGeoJSON)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

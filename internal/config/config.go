package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Holidays   HolidaysConfig   `toml:"holidays"`
	Submission SubmissionConfig `toml:"submission"`
	Journal    JournalConfig    `toml:"journal"`
	Booking    BookingConfig    `toml:"booking"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HolidaysConfig настройки API праздников
// APIKey читается только из окружения HOLIDAYS_API_KEY
type HolidaysConfig struct {
	URL      string `toml:"url"`
	Country  string `toml:"country"`
	Year     int    `toml:"year"`
	Timezone string `toml:"timezone"`
	Timeout  int    `toml:"timeout"`
	APIKey   string `toml:"-"`
}

type SubmissionConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// JournalConfig настройки журнала отправок в PostgreSQL
type JournalConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// BookingConfig параметры формы
type BookingConfig struct {
	TimeSlots      []string `toml:"time_slots"`
	MaxSessions    int      `toml:"max_sessions"`
	MaxUploadBytes int64    `toml:"max_upload_bytes"`
}

// Load читает TOML-файл, затем применяет .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    45,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "training_reservation",
		},
		Holidays: HolidaysConfig{
			URL:      "https://api.api-ninjas.com/v1/holidays",
			Country:  domain.DefaultHolidaysCountry,
			Year:     domain.DefaultHolidaysYear,
			Timezone: "Europe/Warsaw",
			Timeout:  10,
		},
		Submission: SubmissionConfig{
			URL:     "http://letsworkout.pl/submit",
			Timeout: 30,
		},
		Journal: JournalConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			TimeSlots:      append([]string(nil), domain.DefaultTimeSlots...),
			MaxSessions:    1000,
			MaxUploadBytes: 10 << 20,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HOLIDAYS_API_KEY"); v != "" {
		c.Holidays.APIKey = v
	}
	if v := os.Getenv("JOURNAL_PASSWORD"); v != "" {
		c.Journal.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	case c.Holidays.URL == "":
		return fmt.Errorf("%w: holidays.url is required", ErrInvalidConfig)
	case c.Holidays.APIKey == "":
		return fmt.Errorf("%w: HOLIDAYS_API_KEY is required", ErrInvalidConfig)
	case c.Holidays.Country == "":
		return fmt.Errorf("%w: holidays.country is required", ErrInvalidConfig)
	case c.Holidays.Year <= 0:
		return fmt.Errorf("%w: holidays.year must be positive", ErrInvalidConfig)
	case c.Submission.URL == "":
		return fmt.Errorf("%w: submission.url is required", ErrInvalidConfig)
	case c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Submission.Timeout:
		// Ответ 502 после таймаута отправки должен успеть уйти клиенту
		return fmt.Errorf("%w: server.write_timeout must exceed submission.timeout", ErrInvalidConfig)
	case len(c.Booking.TimeSlots) == 0:
		return fmt.Errorf("%w: booking.time_slots must not be empty", ErrInvalidConfig)
	case c.Booking.MaxUploadBytes < domain.MaxPhotoSizeBytes:
		return fmt.Errorf("%w: booking.max_upload_bytes must be at least %d", ErrInvalidConfig, domain.MaxPhotoSizeBytes)
	case c.Journal.Enabled && (c.Journal.Host == "" || c.Journal.DBName == ""):
		return fmt.Errorf("%w: journal.host and journal.dbname are required when journal is enabled", ErrInvalidConfig)
	}

	if _, err := c.Holidays.Location(); err != nil {
		return fmt.Errorf("%w: holidays.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location возвращает часовой пояс календаря праздников
func (h HolidaysConfig) Location() (*time.Location, error) {
	if h.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(h.Timezone)
}

// DSN возвращает строку подключения к PostgreSQL
func (j JournalConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		j.Host, j.Port, j.User, j.Password, j.DBName, j.SSLMode)
}

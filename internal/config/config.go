package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
	Company  CompanyConfig  `toml:"company"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
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

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig holds the admin panel token.
// Session design is delegated to the reverse proxy in front of the service;
// here only a static token is checked.
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// BookingConfig holds the booking policy: business hours, slot sizing
// and the minimum notice before a same-day appointment.
type BookingConfig struct {
	WeekdayOpen                string `toml:"weekday_open"`
	WeekdayClose               string `toml:"weekday_close"`
	SaturdayOpen               string `toml:"saturday_open"`
	SaturdayClose              string `toml:"saturday_close"`
	SundayOpen                 bool   `toml:"sunday_open"`
	SlotDurationMinutes        int    `toml:"slot_duration_minutes"`
	AppointmentDurationMinutes int    `toml:"appointment_duration_minutes"`
	MinNoticeMinutes           int    `toml:"min_notice_minutes"`
	AdvanceBookingDays         int    `toml:"advance_booking_days"`
	Timezone                   string `toml:"timezone"`
}

// CompanyConfig holds company contact data used in calendar exports
// and in user-facing error messages.
type CompanyConfig struct {
	Name          string `toml:"name"`
	Phone         string `toml:"phone"`
	Email         string `toml:"email"`
	Location      string `toml:"location"`
	FallbackPhone string `toml:"fallback_phone"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "sanbud-booking-service",
		},
		Booking: BookingConfig{
			WeekdayOpen:                "08:00",
			WeekdayClose:               "18:00",
			SaturdayOpen:               "09:00",
			SaturdayClose:              "14:00",
			SundayOpen:                 false,
			SlotDurationMinutes:        domain.DefaultSlotDurationMinutes,
			AppointmentDurationMinutes: domain.DefaultAppointmentDurationMinutes,
			MinNoticeMinutes:           domain.DefaultMinNoticeMinutes,
			AdvanceBookingDays:         domain.DefaultAdvanceBookingDays,
			Timezone:                   "Europe/Warsaw",
		},
		Company: CompanyConfig{
			Name:          "SanBud",
			Phone:         "+48 503 691 808",
			Email:         "sanbud.biuro@gmail.com",
			Location:      "Mazowsze, Polska",
			FallbackPhone: "+48 503 691 808",
		},
	}
}

func (c *Config) validate() error {
	for _, v := range []string{
		c.Booking.WeekdayOpen, c.Booking.WeekdayClose,
		c.Booking.SaturdayOpen, c.Booking.SaturdayClose,
	} {
		if _, err := types.NewTimeStringFromString(v); err != nil {
			return fmt.Errorf("config: invalid business hour %q: %w", v, err)
		}
	}

	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("config: slot_duration_minutes must be positive")
	}
	if c.Booking.AppointmentDurationMinutes <= 0 {
		return fmt.Errorf("config: appointment_duration_minutes must be positive")
	}
	if c.Booking.MinNoticeMinutes < 0 {
		return fmt.Errorf("config: min_notice_minutes must not be negative")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.Booking.Timezone, err)
	}

	return nil
}

// Schedule converts the booking policy into the domain week schedule.
func (c *Config) Schedule() domain.WeekSchedule {
	weekday := domain.DaySchedule{
		Open:      true,
		OpenTime:  types.TimeString(c.Booking.WeekdayOpen),
		CloseTime: types.TimeString(c.Booking.WeekdayClose),
	}
	saturday := domain.DaySchedule{
		Open:      true,
		OpenTime:  types.TimeString(c.Booking.SaturdayOpen),
		CloseTime: types.TimeString(c.Booking.SaturdayClose),
	}
	sunday := domain.DaySchedule{Open: false}
	if c.Booking.SundayOpen {
		sunday = saturday
	}

	return domain.WeekSchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  saturday,
		Sunday:    sunday,
	}
}

// Location returns the timezone the booking policy operates in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

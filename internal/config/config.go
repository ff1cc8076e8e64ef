package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Database  DatabaseConfig  `yaml:"database"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// DatabaseConfig selects one of the supported SQL backends. The DSN format
// is driver specific; MySQL needs parseTime=true.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"            env:"DB_DRIVER"            env-default:"postgres" validate:"required,oneof=postgres mysql sqlite"`
	DSN             string        `yaml:"dsn"               env:"DB_DSN"               env-default:"host=localhost port=5432 user=postgres password=postgres dbname=flymora sslmode=disable" validate:"required"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10" validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"  validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m" validate:"gt=0"`
}

// SchedulerConfig holds per-job intervals for serve mode. A zero interval
// disables the job.
type SchedulerConfig struct {
	Enabled          bool          `yaml:"enabled"           env:"SCHEDULER_ENABLED"           env-default:"true"`
	ExpireBookings   time.Duration `yaml:"expire_bookings"   env:"SCHEDULER_EXPIRE_BOOKINGS"   env-default:"1m"  validate:"gte=0"`
	PaymentReminders time.Duration `yaml:"payment_reminders" env:"SCHEDULER_PAYMENT_REMINDERS" env-default:"1h"  validate:"gte=0"`
	TripReminders    time.Duration `yaml:"trip_reminders"    env:"SCHEDULER_TRIP_REMINDERS"    env-default:"24h" validate:"gte=0"`
	CompleteTrips    time.Duration `yaml:"complete_trips"    env:"SCHEDULER_COMPLETE_TRIPS"    env-default:"24h" validate:"gte=0"`
}

type BookingConfig struct {
	PaymentWindow         time.Duration `yaml:"payment_window"          env:"BOOKING_PAYMENT_WINDOW"          env-default:"30m" validate:"gt=0"`
	PaymentReminderWindow time.Duration `yaml:"payment_reminder_window" env:"BOOKING_PAYMENT_REMINDER_WINDOW" env-default:"6h"  validate:"gt=0"`
	TripReminderDays      []int         `yaml:"trip_reminder_days"      env:"BOOKING_TRIP_REMINDER_DAYS"      env-default:"3,1" env-separator:"," validate:"min=1,dive,gte=0"`
	TimeZone              string        `yaml:"time_zone"               env:"BOOKING_TIME_ZONE"               env-default:"UTC" validate:"required"`
}

// Location resolves TimeZone. Calendar-day logic of the jobs runs in it.
func (b BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", b.TimeZone, err)
	}
	return loc, nil
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  validate:"required,min=16"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"AUTH_TOKEN_TTL"   env-default:"24h" validate:"gt=0"`
	AdminEmail string        `yaml:"admin_email" env:"AUTH_ADMIN_EMAIL"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// Load reads an optional .env file, then the YAML config and environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := cfg.Booking.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

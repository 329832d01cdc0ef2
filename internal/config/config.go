package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

// BookingConfig carries the org-level scheduling policy: how many days
// before a date private-booking requests close, and the default windows
// used to pre-fill new-event forms per time band.
type BookingConfig struct {
	PrivateDeadlineDays int
	BandDefaults        map[domain.TimeBand]domain.BandWindow
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	serverCfg := ServerConfig{
		Host: serverHost,
		Port: serverPort,
	}

	postgresHost := os.Getenv("POSTGRES_HOST")
	if postgresHost == "" {
		postgresHost = "localhost"
	}

	postgresPortStr := os.Getenv("POSTGRES_PORT")
	if postgresPortStr == "" {
		postgresPortStr = "5432"
	}

	postgresPort, err := strconv.Atoi(postgresPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid POSTGRES_PORT: %w", op, err)
	}

	postgresUser := os.Getenv("POSTGRES_USER")
	if postgresUser == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_USER", op)
	}

	postgresPassword := os.Getenv("POSTGRES_PASSWORD")
	if postgresPassword == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
	}

	postgresDB := os.Getenv("POSTGRES_DB")
	if postgresDB == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_DB", op)
	}

	postgresSSLMode := os.Getenv("POSTGRES_SSLMODE")
	if postgresSSLMode == "" {
		postgresSSLMode = "disable"
	}

	postgresCfg := PostgresConfig{
		User:     postgresUser,
		Password: postgresPassword,
		Name:     postgresDB,
		Host:     postgresHost,
		Port:     postgresPort,
		SSLMode:  postgresSSLMode,
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisCfg := RedisConfig{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	}

	bookingCfg, err := newBookingConfig()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Config{
		Server:   serverCfg,
		Postgres: postgresCfg,
		Redis:    redisCfg,
		Booking:  bookingCfg,
	}, nil
}

func newBookingConfig() (BookingConfig, error) {
	deadlineStr := os.Getenv("BOOKING_DEADLINE_DAYS")
	if deadlineStr == "" {
		deadlineStr = "7"
	}

	deadline, err := strconv.Atoi(deadlineStr)
	if err != nil || deadline < 0 {
		return BookingConfig{}, fmt.Errorf("invalid BOOKING_DEADLINE_DAYS: %q", deadlineStr)
	}

	return BookingConfig{
		PrivateDeadlineDays: deadline,
		BandDefaults: map[domain.TimeBand]domain.BandWindow{
			domain.BandMorning:   bandWindow("BAND_MORNING", "10:00", "14:00"),
			domain.BandAfternoon: bandWindow("BAND_AFTERNOON", "14:30", "18:30"),
			domain.BandEvening:   bandWindow("BAND_EVENING", "19:00", "23:00"),
		},
	}, nil
}

func bandWindow(prefix, defStart, defEnd string) domain.BandWindow {
	start := os.Getenv(prefix + "_START")
	if start == "" {
		start = defStart
	}
	end := os.Getenv(prefix + "_END")
	if end == "" {
		end = defEnd
	}
	return domain.BandWindow{StartTime: start, EndTime: end}
}

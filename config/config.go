package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// SettlementDelay is how long the simulated payment gateway takes to
	// confirm a payment.
	SettlementDelay time.Duration
	// ServiceChargeRate is applied on top of a service's base price when
	// estimating a booking's cost.
	ServiceChargeRate float64
	// ReminderSpec is the cron schedule for the booking reminder job.
	ReminderSpec string
}

// Load reads configuration from a .env file when present, falling back
// to environment variables and defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		SettlementDelay:   getDuration("SETTLEMENT_DELAY", 2*time.Second),
		ServiceChargeRate: getFloat("SERVICE_CHARGE_RATE", 0.10),
		ReminderSpec:      getEnv("REMINDER_SPEC", "* * * * *"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using default %s", key, v, def)
		return def
	}
	return d
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s %q, using default %v", key, v, def)
		return def
	}
	return f
}

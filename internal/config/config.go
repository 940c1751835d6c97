package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connectfour/internal/domain"
)

type Config struct {
	StartMode domain.Mode
	BotSeed   int64

	WatchEnabled   bool
	Port           string
	AllowedOrigins []string

	RedisURL      string
	RedisPassword string
	RedisChannel  string

	KafkaBrokers  []string
	KafkaTopic    string
	KafkaUser     string
	KafkaPassword string

	EventBuffer int
	LogFile     string
}

func LoadConfig() *Config {
	return &Config{
		StartMode: domain.ParseMode(strings.ToLower(GetEnv("START_MODE", "multi"))),
		BotSeed:   int64(GetEnvAsInt("BOT_SEED", 0)),

		WatchEnabled:   GetEnvAsBool("WATCH_ENABLED", false),
		Port:           GetEnv("PORT", "8080"),
		AllowedOrigins: GetEnvAsList("ALLOWED_ORIGINS"),

		// Redis and Kafka stay off unless configured
		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisChannel:  GetEnv("REDIS_CHANNEL", "connectfour:events"),

		KafkaBrokers:  GetEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:    GetEnv("KAFKA_TOPIC", "game-analytics"),
		KafkaUser:     GetEnv("KAFKA_USER", ""),
		KafkaPassword: GetEnv("KAFKA_PASSWORD", ""),

		EventBuffer: GetEnvAsInt("EVENT_BUFFER", 64),
		// the terminal owns stdout, so logs go to a file
		LogFile: GetEnv("LOG_FILE", "connectfour.log"),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsList splits a comma separated value, dropping blanks.
func GetEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package config

import (
	"reflect"
	"testing"

	"github.com/iamasit07/connectfour/internal/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"START_MODE", "BOT_SEED", "WATCH_ENABLED", "PORT", "ALLOWED_ORIGINS",
		"REDIS_URL", "REDIS_CHANNEL", "KAFKA_BROKERS", "KAFKA_TOPIC", "EVENT_BUFFER", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.StartMode != domain.MultiPlayer || cfg.BotSeed != 0 || cfg.WatchEnabled {
		t.Errorf("game defaults = %+v", cfg)
	}
	if cfg.Port != "8080" || cfg.AllowedOrigins != nil {
		t.Errorf("http defaults = %q %v", cfg.Port, cfg.AllowedOrigins)
	}
	if cfg.RedisURL != "" || cfg.RedisChannel != "connectfour:events" {
		t.Errorf("redis defaults = %q %q", cfg.RedisURL, cfg.RedisChannel)
	}
	if cfg.KafkaBrokers != nil || cfg.KafkaTopic != "game-analytics" {
		t.Errorf("kafka defaults = %v %q", cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	if cfg.EventBuffer != 64 || cfg.LogFile != "connectfour.log" {
		t.Errorf("misc defaults = %d %q", cfg.EventBuffer, cfg.LogFile)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("START_MODE", "Single")
	t.Setenv("BOT_SEED", "42")
	t.Setenv("WATCH_ENABLED", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("EVENT_BUFFER", "16")

	cfg := LoadConfig()

	if cfg.StartMode != domain.SinglePlayer || cfg.BotSeed != 42 || !cfg.WatchEnabled {
		t.Errorf("game = %+v", cfg)
	}
	if want := []string{"http://a.example", "http://b.example"}; !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if want := []string{"k1:9092", "k2:9092"}; !reflect.DeepEqual(cfg.KafkaBrokers, want) {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
	if cfg.EventBuffer != 16 {
		t.Errorf("EventBuffer = %d", cfg.EventBuffer)
	}
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("EVENT_BUFFER", "lots")
	t.Setenv("WATCH_ENABLED", "maybe")

	if got := GetEnvAsInt("EVENT_BUFFER", 64); got != 64 {
		t.Errorf("GetEnvAsInt = %d", got)
	}
	if got := GetEnvAsBool("WATCH_ENABLED", true); !got {
		t.Error("GetEnvAsBool ignored the default")
	}
}

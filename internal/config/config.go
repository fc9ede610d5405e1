package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for admin auth verification.
type JWTConfig struct {
	Issuer   string
	Audience string
	Secret   []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                string
	MongoURI            string
	MongoDatabase       string
	BuildingCollection  string
	SearchLogCollection string
	CounterCollection   string
	PingCollection      string
	Timeout             time.Duration
	Timezone            string
	RemoteDataEnabled   bool
	ServerLog           *log.Logger
	AdminJWT            *JWTConfig
	AllowedOrigins      []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	// リモートデータ接続のフィーチャーフラグ。false の場合は接続を試みず、
	// 起動直後から埋め込みデータセットで応答する。
	remoteEnabled := true
	if raw := strings.TrimSpace(os.Getenv("REMOTE_DATA_ENABLED")); raw != "" {
		remoteEnabled = strings.EqualFold(raw, "true") || raw == "1"
	}

	serverLog := log.New(os.Stdout, "[kenchiku-map-api] ", log.LstdFlags|log.Lshortfile)

	var adminJWT *JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_ADMIN_JWT_SECRET")); secret != "" {
		adminJWT = &JWTConfig{
			Issuer:   envOrDefault("AUTH_ADMIN_JWT_ISSUER", "kenchiku-map-auth"),
			Audience: strings.TrimSpace(os.Getenv("AUTH_ADMIN_JWT_AUDIENCE")),
			Secret:   []byte(secret),
		}
	} else {
		serverLog.Printf("AUTH_ADMIN_JWT_SECRET が未設定のため管理 API を無効化します")
	}

	cfg := Config{
		Addr:                envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:            envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:       envOrDefault("MONGO_DB", "kenchiku-map"),
		BuildingCollection:  envOrDefault("BUILDING_COLLECTION", "buildings"),
		SearchLogCollection: envOrDefault("SEARCH_LOG_COLLECTION", "search_logs"),
		CounterCollection:   envOrDefault("COUNTER_COLLECTION", "counters"),
		PingCollection:      envOrDefault("PING_COLLECTION", "pings"),
		Timeout:             timeout,
		Timezone:            envOrDefault("TIMEZONE", "Asia/Tokyo"),
		RemoteDataEnabled:   remoteEnabled,
		ServerLog:           serverLog,
		AdminJWT:            adminJWT,
		AllowedOrigins:      parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	cfg.ServerLog.Printf("loaded config: addr=%s db=%s remoteDataEnabled=%t", cfg.Addr, cfg.MongoDatabase, cfg.RemoteDataEnabled)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	AppName    = "Flashcards"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr       string
	DBPath     string
	DataDir    string
	LogLevel   string
	NodeID     int64
	CookieName string

	// Auth
	GoogleClientIDs  []string
	SessionTTLDays   int
	AuthCookieSecure bool

	// CORS
	FrontendOrigins []string
}

// fileConfig is the optional TOML config file shape. Environment variables
// take precedence over file values.
type fileConfig struct {
	Addr             string   `toml:"addr"`
	DataDir          string   `toml:"data_dir"`
	DBPath           string   `toml:"db_path"`
	LogLevel         string   `toml:"log_level"`
	NodeID           int64    `toml:"node_id"`
	GoogleClientIDs  []string `toml:"google_client_ids"`
	SessionTTLDays   int      `toml:"session_ttl_days"`
	AuthCookieSecure bool     `toml:"auth_cookie_secure"`
	FrontendOrigins  []string `toml:"frontend_origins"`
}

func Load() Config {
	var file fileConfig
	if path := os.Getenv("FLASHCARDS_CONFIG"); path != "" {
		// Missing or malformed files fall back to env/defaults.
		_, _ = toml.DecodeFile(path, &file)
	}

	addr := firstNonEmpty(os.Getenv("FLASHCARDS_ADDR"), file.Addr, ":8080")
	dataDir := firstNonEmpty(os.Getenv("FLASHCARDS_DATA_DIR"), file.DataDir, "./data")
	dbPath := firstNonEmpty(os.Getenv("FLASHCARDS_DB_PATH"), file.DBPath, filepath.Join(dataDir, "flashcards.db"))
	logLevel := firstNonEmpty(os.Getenv("FLASHCARDS_LOG_LEVEL"), file.LogLevel, "info")

	nodeID := file.NodeID
	if raw := os.Getenv("FLASHCARDS_NODE_ID"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			nodeID = v
		}
	}

	clientIDs := splitList(os.Getenv("GOOGLE_CLIENT_ID"))
	if len(clientIDs) == 0 {
		clientIDs = file.GoogleClientIDs
	}

	ttlDays := file.SessionTTLDays
	if raw := os.Getenv("SESSION_TTL_DAYS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			ttlDays = v
		}
	}
	if ttlDays <= 0 {
		ttlDays = 30
	}

	cookieSecure := file.AuthCookieSecure
	if raw := os.Getenv("AUTH_COOKIE_SECURE"); raw != "" {
		cookieSecure = isTruthy(raw)
	}

	origins := splitList(os.Getenv("FRONTEND_ORIGINS"))
	if len(origins) == 0 {
		origins = file.FrontendOrigins
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	return Config{
		Addr:             addr,
		DBPath:           filepath.Clean(dbPath),
		DataDir:          filepath.Clean(dataDir),
		LogLevel:         logLevel,
		NodeID:           nodeID,
		CookieName:       "ef_session",
		GoogleClientIDs:  clientIDs,
		SessionTTLDays:   ttlDays,
		AuthCookieSecure: cookieSecure,
		FrontendOrigins:  origins,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

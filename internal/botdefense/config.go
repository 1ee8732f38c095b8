package botdefense

import (
	"strings"
	"time"
)

// holds bot defense configuration
type Config struct {
	// whether bot defense is active
	Enabled bool

	// how long an IP stays trapped
	TrapTTL time.Duration

	// bot-like requests at or above this score are logged and counted
	ScoreThreshold int

	// paths that only bots would access
	HoneypotPaths []string

	// paths that bypass bot defense (health checks, etc.)
	ExemptPaths []string
}

// returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:        true,
		TrapTTL:        24 * time.Hour,
		ScoreThreshold: 40,
		HoneypotPaths: []string{
			// wordpress
			"/wp-admin",
			"/wp-login.php",
			"/wp-content",
			"/xmlrpc.php",

			// config/secrets
			"/.env",
			"/.git",
			"/config.json",
			"/secrets.json",
			"/.aws/credentials",

			// admin panels outside the api
			"/admin",
			"/administrator",
			"/phpmyadmin",

			// backups
			"/backup",
			"/backup.sql",
			"/db.sql",

			// debug/internal
			"/debug",
			"/server-status",
			"/.htpasswd",

			// api probing
			"/api/internal",
			"/api/admin",
			"/api/v1/internal",

			// wiki-specific honeypots
			"/api/v1/wiki/export-all",
			"/api/v1/admin/dump",
			"/api/v1/users",
		},
		ExemptPaths: []string{
			"/health",
			"/metrics",
			"/swagger",
		},
	}
}

// checks if a path is a honeypot (prefix match)
func (c *Config) IsHoneypotPath(path string) bool {
	return matchesAny(path, c.HoneypotPaths)
}

// checks if a path bypasses bot defense
func (c *Config) IsExemptPath(path string) bool {
	return matchesAny(path, c.ExemptPaths)
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}

	return false
}

package config

import (
	"os"
	"strings"
)

var (
	TLS_DOMAINS    = ""              // e.g. "example.com,www.example.com"
	MYSQL_DSN      = ""              // MySQL will be used if this is set
	SQLITE_FILE    = "secureview.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8080"
	ADMIN_PASSWORD = "" // Single admin password for the dashboard
	JWT_SECRET     = "" // Secret used to sign admin tokens
	DEBUG_MODE     = true
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("JWT_SECRET", &JWT_SECRET)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

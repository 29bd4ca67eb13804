package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress    = "127.0.0.1:8080"
	defaultAdapterAddress = "http://127.0.0.1:8080"
	defaultAdapterTimeout = 10 * time.Second
	defaultMaxOpenConns   = 5
	defaultAdminName      = "admin"
	defaultLogLevel       = "info"
	defaultEnvFile        = ".env"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: bcrypt.DefaultCost,
			AdminName:        defaultAdminName,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: defaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
		EnvFilePath: defaultEnvFile,
	}
}

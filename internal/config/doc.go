// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file (godotenv)
//  3. Environment variables (caarlos0/env)
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetStructuredConfig] and [LoadServerConfig] for
// the server and [LoadClientConfig] for the command-line client.
package config

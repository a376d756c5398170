// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DatabasePath is the path to the SQLite database file.
	DatabasePath string

	// JWTSecret signs and verifies issued bearer tokens.
	JWTSecret string

	// TokenTTL is how long an issued bearer token stays valid.
	TokenTTL time.Duration

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabasePath, "d", "finance.db", "path to sqlite database file")
	flag.StringVar(&options.JWTSecret, "s", "uas-dpa", "jwt signing secret")
	flag.DurationVar(&options.TokenTTL, "ttl", time.Hour, "bearer token lifetime")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. Variables from a .env file in the working directory
// are loaded first, then an optional JSON config file, then process
// environment variables. It returns a pointer to the Options struct
// containing the parsed configuration values.
func Parse() *Options {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	// Override flags with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		options.DatabasePath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("error while parsing TOKEN_TTL: %v", err)
		}
		options.TokenTTL = d
	}

	return options
}

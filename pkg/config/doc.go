// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct-tag parsing, and caches each
// configuration type after its first successful parse:
//
//	var cfg itemservice.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv reads additional .env files before parsing. ResetCache and
// ForceReload exist for tests that change the environment.
package config

// Package config provides configuration loading and validation for errkit
// applications.
//
// It uses Viper to load a config.yml plus a .env file from standard
// locations, binds process environment variables over both, and unmarshals
// the merged result into a caller-provided struct.
//
// # Usage
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	}
//
//	var cfg MyConfig
//	err := config.LoadConfig("my-service", &cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g., LOGGING_LEVEL sets logging.level).
package config

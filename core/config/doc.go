// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is auto-loaded once per process; parsing is
// delegated to caarlos0/env struct tags.
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL,required"`
//	}
//
//	var cfg RedisConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per application lifetime and cached
// independently of other types.
package config

// Package config loads runtime settings for the refined library from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// provide a small, cached API:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any annotated Go struct.
//   - Caches each successfully parsed configuration type so it is read at
//     most once per process.
//   - Exposes ResetCache for tests that need to re-parse after changing the
//     environment.
//
// # Usage
//
//	type Settings struct {
//	    TypeCacheSize int  `env:"REFINED_TYPE_CACHE_SIZE" envDefault:"1024"`
//	    WarnUnsafe    bool `env:"REFINED_WARN_UNSAFE" envDefault:"true"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    // fall back to defaults
//	}
//
// The cache is keyed by the fully-qualified struct type name and guarded by a
// sync.RWMutex, so concurrent loads of the same type parse once.
package config

package refined

import (
	"sync"

	"github.com/dmitrymomot/refined/config"
)

// Settings controls the process-wide registries and the warning channel.
// Values are read once from the environment on first use; unset variables
// fall back to the defaults below.
type Settings struct {
	ConduitCacheSize int  `env:"REFINED_CONDUIT_CACHE_SIZE" envDefault:"128"`
	TypeCacheSize    int  `env:"REFINED_TYPE_CACHE_SIZE" envDefault:"1024"`
	FamilyCacheSize  int  `env:"REFINED_FAMILY_CACHE_SIZE" envDefault:"256"`
	WarnUnsafe       bool `env:"REFINED_WARN_UNSAFE" envDefault:"true"`
}

var (
	settingsOnce sync.Once
	settings     Settings
)

func loadSettings() Settings {
	settingsOnce.Do(func() {
		settings = Settings{
			ConduitCacheSize: 128,
			TypeCacheSize:    1024,
			FamilyCacheSize:  256,
			WarnUnsafe:       true,
		}
		// A malformed environment must not break refinement declaration,
		// so parse failures keep the defaults.
		_ = config.Load(&settings)
	})
	return settings
}

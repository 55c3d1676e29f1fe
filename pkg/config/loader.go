package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrNilPointer    = errors.New("nil pointer provided to config loader")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> *entry
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

// Load fills v from environment variables using `env` struct tags.
// A .env file in the working directory is read once before the first parse.
// Each config type is parsed only once; later calls get the cached copy,
// including a cached parse error.
//
//	type AppConfig struct {
//		Name  string `env:"APP_NAME" envDefault:"frostal"`
//		Debug bool   `env:"APP_DEBUG"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	cached, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := cached.(*entry)
	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

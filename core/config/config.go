package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"bucket-manager/core/database"
	"bucket-manager/core/logger"
	"bucket-manager/core/server"
	"bucket-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFile is the dotenv file read from the config directory.
const EnvFile = ".env"

// Config is the full bucket-manager configuration. Each section maps to an
// environment prefix: SERVER_, STORAGE_, LOG_ and DATABASE_.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads dir/.env when present, overlays the process environment
// and checks the storage section.
func LoadConfig(dir string) (*Config, error) {
	// A missing file is normal outside local development.
	_ = godotenv.Overload(filepath.Join(dir, EnvFile))

	v := viper.New()
	registerKeys(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}
	return &cfg, nil
}

// registerKeys walks the mapstructure tags of t and registers each leaf key
// with its `default` tag, so AutomaticEnv can find keys that have no default.
func registerKeys(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerKeys(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}

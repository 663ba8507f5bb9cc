package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, production
	Name           string
	LogLevel       string // trace, debug, info, warn, error
	RefreshSeconds int    // intervalo de refresco del dashboard en modo watch
}

// StorageConfig configuración del almacenamiento local.
type StorageConfig struct {
	Dir string // directorio donde viven los archivos JSON (users, products, currentUser)
}

// AuthConfig configuración del manejador de sesión.
type AuthConfig struct {
	BcryptCost int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORAGE_DIR, REFRESH_SECONDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "inventario-local"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			RefreshSeconds: getInt(v, "REFRESH_SECONDS", 30),
		},
		Storage: StorageConfig{
			Dir: getString(v, "STORAGE_DIR", "./data"),
		},
		Auth: AuthConfig{
			BcryptCost: getInt(v, "BCRYPT_COST", bcrypt.DefaultCost),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	AI      AIConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig selecciona el almacén clave-valor donde se persiste el estado.
// Driver "stoolap" (por defecto) usa una base embebida local: Path es el DSN
// ("file://<ruta>" o "memory://"). Driver "postgres" usa DatabaseURL contra
// una tabla kv_state. Driver "memory" no persiste (pruebas).
type StorageConfig struct {
	Driver      string
	Path        string
	DatabaseURL string
}

// AIConfig credenciales del servicio de generación de texto (Gemini).
// Si GeminiAPIKey está vacío, las operaciones de IA degradan a su texto fijo.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// AuthConfig credenciales de las dos identidades fijas del sistema (admin y staff).
// Los hashes son bcrypt (ver cmd/seed -hash); nunca se configuran contraseñas en claro.
// Un hash vacío deshabilita el login de esa identidad.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	AdminName         string
	StaffUsername     string
	StaffPasswordHash string
	StaffName         string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET,
// STORAGE_DRIVER, GEMINI_API_KEY, AUTH_ADMIN_USERNAME, etc.
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
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "thahab-pos"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "thahab-pos"),
		},
		Storage: StorageConfig{
			Driver:      getString(v, "STORAGE_DRIVER", "stoolap"),
			Path:        getString(v, "STORAGE_PATH", "file://thahab.db"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Auth: AuthConfig{
			AdminUsername:     getString(v, "AUTH_ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getString(v, "AUTH_ADMIN_PASSWORD_HASH", ""),
			AdminName:         getString(v, "AUTH_ADMIN_NAME", "المدير العام"),
			StaffUsername:     getString(v, "AUTH_STAFF_USERNAME", "user"),
			StaffPasswordHash: getString(v, "AUTH_STAFF_PASSWORD_HASH", ""),
			StaffName:         getString(v, "AUTH_STAFF_NAME", "بائع"),
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
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

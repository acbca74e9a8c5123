package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Email  EmailConfig
	Google GoogleConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// EmailConfig configuración del relay SMTP (Brevo por defecto).
// Sender es la dirección remitente y también recibe la copia oculta de cada factura.
type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Sender   string
}

// GoogleConfig configuración de las APIs de Google (Sheets como libro contable, Drive como archivo).
// Las credenciales de la cuenta de servicio se resuelven primero desde CredentialsJSON
// (el JSON completo en una variable de entorno) y si está vacío desde CredentialsFile.
type GoogleConfig struct {
	SheetID         string
	DriveFolderName string
	CredentialsJSON string
	CredentialsFile string
}

// CredentialsBytes devuelve el JSON de la cuenta de servicio, inline o leído del archivo.
func (c GoogleConfig) CredentialsBytes() ([]byte, error) {
	if c.CredentialsJSON != "" {
		return []byte(c.CredentialsJSON), nil
	}
	b, err := os.ReadFile(c.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("leyendo credenciales de Google en %s: %w", c.CredentialsFile, err)
	}
	return b, nil
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, EMAIL_HOST_USER, GOOGLE_SHEET_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "malkit-invoicing"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Email: EmailConfig{
			Host:     getString(v, "EMAIL_HOST", "smtp-relay.brevo.com"),
			Port:     getInt(v, "EMAIL_PORT", 587),
			User:     getString(v, "EMAIL_HOST_USER", ""),
			Password: getString(v, "EMAIL_HOST_PASSWORD", ""),
			Sender:   getString(v, "SENDER_EMAIL", ""),
		},
		Google: GoogleConfig{
			SheetID:         getString(v, "GOOGLE_SHEET_ID", ""),
			DriveFolderName: getString(v, "GOOGLE_DRIVE_FOLDER_NAME", ""),
			CredentialsJSON: getString(v, "GOOGLE_CREDENTIALS_JSON", ""),
			CredentialsFile: getString(v, "GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		},
	}

	return cfg, nil
}

// Validate comprueba que la configuración obligatoria esté presente.
// El proceso no debe arrancar sin relay SMTP completo, remitente, hoja de cálculo,
// carpeta de Drive y credenciales de Google resolubles.
func (c *Config) Validate() error {
	var missing []string

	if c.Email.User == "" {
		missing = append(missing, "EMAIL_HOST_USER")
	}
	if c.Email.Password == "" {
		missing = append(missing, "EMAIL_HOST_PASSWORD")
	}
	if c.Email.Sender == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if c.Google.SheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if c.Google.DriveFolderName == "" {
		missing = append(missing, "GOOGLE_DRIVE_FOLDER_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("faltan variables de entorno requeridas: %s", strings.Join(missing, ", "))
	}

	if _, err := c.Google.CredentialsBytes(); err != nil {
		return fmt.Errorf("credenciales de Google no disponibles (defina GOOGLE_CREDENTIALS_JSON o GOOGLE_CREDENTIALS_FILE): %w", err)
	}

	return nil
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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malkitsweets/invoicing-api/pkg/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Email: config.EmailConfig{
			Host:     "smtp-relay.brevo.com",
			Port:     587,
			User:     "apikey",
			Password: "secreto",
			Sender:   "facturas@malkit.co",
		},
		Google: config.GoogleConfig{
			SheetID:         "sheet-123",
			DriveFolderName: "Invoices",
			CredentialsJSON: `{"type":"service_account"}`,
		},
	}
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "smtp-relay.brevo.com", cfg.Email.Host)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, "credentials.json", cfg.Google.CredentialsFile)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_LasVariablesDeEntornoMandan(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GOOGLE_SHEET_ID", "sheet-desde-env")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port, "los puertos llegan como texto y deben parsearse")
	assert.Equal(t, "sheet-desde-env", cfg.Google.SheetID)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestValidate_ListaTodasLasVariablesFaltantes(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "faltan variables de entorno requeridas")
	for _, name := range []string{
		"EMAIL_HOST_USER", "EMAIL_HOST_PASSWORD", "SENDER_EMAIL",
		"GOOGLE_SHEET_ID", "GOOGLE_DRIVE_FOLDER_NAME",
	} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestValidate_PasaConTodoPresente(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_CredencialesIrresolublesFallan(t *testing.T) {
	cfg := validConfig()
	cfg.Google.CredentialsJSON = ""
	cfg.Google.CredentialsFile = "/no/existe/credentials.json"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales de Google")
}

func TestCredentialsBytes_InlineTienePrioridad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"desde":"archivo"}`), 0o600))

	g := config.GoogleConfig{
		CredentialsJSON: `{"desde":"env"}`,
		CredentialsFile: file,
	}
	b, err := g.CredentialsBytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"desde":"env"}`, string(b))
}

func TestCredentialsBytes_LeeElArchivoSiNoHayInline(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"desde":"archivo"}`), 0o600))

	g := config.GoogleConfig{CredentialsFile: file}
	b, err := g.CredentialsBytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"desde":"archivo"}`, string(b))
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/malkitsweets/invoicing-api/internal/application/invoicing"
	"github.com/malkitsweets/invoicing-api/internal/application/usecase"
	"github.com/malkitsweets/invoicing-api/internal/infrastructure/googledrive"
	"github.com/malkitsweets/invoicing-api/internal/infrastructure/googlesheets"
	"github.com/malkitsweets/invoicing-api/internal/infrastructure/mail"
	infrapdf "github.com/malkitsweets/invoicing-api/internal/infrastructure/pdf"
	httpRouter "github.com/malkitsweets/invoicing-api/internal/interfaces/http"
	"github.com/malkitsweets/invoicing-api/pkg/config"
	"github.com/malkitsweets/invoicing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El proceso no arranca con configuración incompleta.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	creds, err := cfg.Google.CredentialsBytes()
	if err != nil {
		log.Fatal().Err(err).Msg("credenciales de Google")
	}

	ctx := context.Background()
	store, err := googlesheets.New(ctx, creds, cfg.Google.SheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de Google Sheets")
	}
	archive, err := googledrive.New(ctx, creds)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de Google Drive")
	}

	renderer := infrapdf.NewInvoiceRenderer(log)
	mailer := mail.New(
		cfg.Email.Host, cfg.Email.Port,
		cfg.Email.User, cfg.Email.Password, cfg.Email.Sender,
		log,
	)

	vendorUC := usecase.NewVendorUseCase(store)
	sweetUC := usecase.NewSweetUseCase(store)
	draftUC := usecase.NewDraftUseCase(store)
	ledgerUC := usecase.NewLedgerUseCase(store)
	generateUC := invoicing.NewGenerateInvoiceUseCase(
		store, archive, renderer, mailer, cfg.Google.DriveFolderName, log,
	)
	previewUC := invoicing.NewPreviewUseCase(renderer)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// La emisión renderiza el PDF y espera al relay SMTP en línea.
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Malkit Invoicing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		VendorUC:   vendorUC,
		SweetUC:    sweetUC,
		DraftUC:    draftUC,
		LedgerUC:   ledgerUC,
		GenerateUC: generateUC,
		PreviewUC:  previewUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

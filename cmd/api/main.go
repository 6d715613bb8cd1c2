package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/UserBastianProboste/practicas-api/internal/application/auth"
	"github.com/UserBastianProboste/practicas-api/internal/application/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/infrastructure/mail"
	"github.com/UserBastianProboste/practicas-api/internal/infrastructure/postgres"
	httpRouter "github.com/UserBastianProboste/practicas-api/internal/interfaces/http"
	"github.com/UserBastianProboste/practicas-api/pkg/config"
	"github.com/UserBastianProboste/practicas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	fichaRepo := postgres.NewFichaRepository(pool)
	tokenRepo := postgres.NewRefreshTokenRepository(pool)
	notifier := mail.NewGomailSender(cfg.SMTP)

	authUC := auth.NewUseCase(userRepo, tokenRepo, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		AccessMinutes: cfg.JWT.AccessMinutes,
		RefreshDays:   cfg.JWT.RefreshDays,
		Issuer:        cfg.JWT.Issuer,
	})
	estudianteUC := usecase.NewEstudianteUseCase(userRepo)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	fichaUC := usecase.NewFichaUseCase(fichaRepo, empresaRepo)
	alertaUC := usecase.NewAlertaUseCase(userRepo, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Prácticas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EstudianteUC: estudianteUC,
		EmpresaUC:    empresaUC,
		FichaUC:      fichaUC,
		AlertaUC:     alertaUC,
		JWTSecret:    cfg.JWT.Secret,
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

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

	"github.com/acessopro/acesso-api/internal/application/auth"
	"github.com/acessopro/acesso-api/internal/application/bootstrap"
	"github.com/acessopro/acesso-api/internal/application/convite"
	"github.com/acessopro/acesso-api/internal/domain/senha"
	"github.com/acessopro/acesso-api/internal/infrastructure/mailer"
	"github.com/acessopro/acesso-api/internal/infrastructure/postgres"
	httpRouter "github.com/acessopro/acesso-api/internal/interfaces/http"
	"github.com/acessopro/acesso-api/pkg/config"
	"github.com/acessopro/acesso-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	credRepo := postgres.NewCredencialRepository(pool)
	perfilRepo := postgres.NewPerfilRepository(pool)
	conviteRepo := postgres.NewConviteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	politica := senha.NewPolitica(cfg.Senha.CustoBcrypt)

	var mailSvc mailer.Service
	switch cfg.Mailer.Provider {
	case "smtp":
		mailSvc = mailer.NewSMTPMailer(cfg.Mailer.SMTPHost, cfg.Mailer.SMTPPort, cfg.Mailer.From, cfg.Mailer.SMTPUser, cfg.Mailer.SMTPPass, cfg.Mailer.SMTPTLS)
	case "mailersend":
		mailSvc = mailer.NewMailerSend(cfg.Mailer.MailerSendKey, cfg.Mailer.FromName, cfg.Mailer.From)
	default:
		mailSvc = mailer.NewDevMailer(log)
	}

	authUC := auth.NewAuthUseCase(credRepo, perfilRepo, politica, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	conviteUC := convite.NewConviteUseCase(conviteRepo, mailSvc, convite.Config{
		ValidadeDias: cfg.Convite.ValidadeDias,
		BaseURL:      cfg.Convite.BaseURL,
	}, log)
	bootstrapUC := bootstrap.NewBootstrapUseCase(txRunner, politica, bootstrap.Config{
		Admin: bootstrap.SeedConta{
			Email: cfg.Bootstrap.AdminEmail,
			Senha: cfg.Bootstrap.AdminSenha,
			Nome:  cfg.Bootstrap.AdminNome,
		},
		Cliente: bootstrap.SeedConta{
			Email: cfg.Bootstrap.ClienteEmail,
			Senha: cfg.Bootstrap.ClienteSenha,
			Nome:  cfg.Bootstrap.ClienteNome,
		},
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Acesso API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ConviteUC:   conviteUC,
		BootstrapUC: bootstrapUC,
		JWTSecret:   cfg.JWT.Secret,
		SetupAberto: cfg.Bootstrap.Habilitado,
		SetupChave:  cfg.Bootstrap.Chave,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acessopro/acesso-api/internal/application/auth"
	"github.com/acessopro/acesso-api/internal/application/bootstrap"
	"github.com/acessopro/acesso-api/internal/application/convite"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ConviteUC   *convite.ConviteUseCase
	BootstrapUC *bootstrap.BootstrapUseCase
	JWTSecret   string
	SetupAberto bool
	SetupChave  string
	Log         *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/trocar-senha", AuthMiddleware(deps.JWTSecret), authHandler.TrocarSenha)

	// Convites: validação é pública (o convidado ainda não tem conta);
	// emissão é restrita a admin
	conviteHandler := NewConviteHandler(deps.ConviteUC, deps.Log)
	convites := api.Group("/convites")
	convites.Post("/validar", conviteHandler.Validar)
	convites.Post("/", AuthMiddleware(deps.JWTSecret), RequireTipo(entity.TipoAdmin), conviteHandler.Criar)

	// Bootstrap
	bootstrapHandler := NewBootstrapHandler(deps.BootstrapUC, deps.Log)
	api.Post("/setup", SetupGate(deps.SetupAberto, deps.SetupChave), bootstrapHandler.SetupInicial)
	api.Post("/usuarios/admin", AuthMiddleware(deps.JWTSecret), RequireTipo(entity.TipoAdmin), bootstrapHandler.CriarUsuarioAdmin)
}

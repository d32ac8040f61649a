package http

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acessopro/acesso-api/internal/application/bootstrap"
	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// BootstrapHandler trata o setup inicial e o upsert de conta admin.
type BootstrapHandler struct {
	uc  *bootstrap.BootstrapUseCase
	log *logger.Logger
}

// NewBootstrapHandler constrói o handler de bootstrap.
func NewBootstrapHandler(uc *bootstrap.BootstrapUseCase, log *logger.Logger) *BootstrapHandler {
	return &BootstrapHandler{uc: uc, log: log}
}

// SetupGate bloqueia a rota de setup quando desabilitada e exige o header
// X-Setup-Key igual à chave configurada. A comparação é em tempo constante.
func SetupGate(habilitado bool, chave string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !habilitado || chave == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.Erro("SETUP_DISABLED", "setup inicial desabilitado"))
		}
		recebida := c.Get("X-Setup-Key")
		if subtle.ConstantTimeCompare([]byte(recebida), []byte(chave)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.Erro("SETUP_KEY_INVALID", "chave de setup inválida"))
		}
		return c.Next()
	}
}

// SetupInicial godoc
// @Summary      Provisionar as contas semente (admin e cliente)
// @Tags         bootstrap
// @Produce      json
// @Param        X-Setup-Key  header  string  true  "chave de setup"
// @Success      200  {object}  dto.SetupResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/setup [post]
func (h *BootstrapHandler) SetupInicial(c *fiber.Ctx) error {
	out, err := h.uc.SetupInicial(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "contas semente sem email ou senha configurados"))
		}
		h.log.Error().Err(err).Msg("setup inicial: falha inesperada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("INTERNAL", msgErroInterno))
	}
	return c.JSON(out)
}

// CriarUsuarioAdmin godoc
// @Summary      Criar ou atualizar conta administrativa
// @Tags         bootstrap
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarAdminRequest  true  "email, senha, nome"
// @Success      200   {object}  dto.CriarAdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/usuarios/admin [post]
func (h *BootstrapHandler) CriarUsuarioAdmin(c *fiber.Ctx) error {
	var in dto.CriarAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("INVALID_BODY", "corpo inválido"))
	}
	if in.Email == "" || in.Senha == "" || in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "email, senha e nome são obrigatórios"))
	}
	if len(in.Senha) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "senha deve ter no mínimo 6 caracteres"))
	}
	out, err := h.uc.CriarUsuarioAdmin(c.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("criar usuário admin: falha inesperada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("INTERNAL", msgErroInterno))
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acessopro/acesso-api/internal/application/auth"
	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// msgCredenciaisInvalidas é idêntica para email desconhecido e senha errada;
// a resposta não pode permitir enumeração de contas.
const msgCredenciaisInvalidas = "email ou senha inválidos"

// msgErroInterno resposta genérica de 500; o detalhe fica só no log.
const msgErroInterno = "erro interno, tente novamente"

// AuthHandler trata login e troca de senha.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("INVALID_BODY", "corpo inválido"))
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "email e senha são obrigatórios"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCredenciaisInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("UNAUTHORIZED", msgCredenciaisInvalidas))
		}
		h.log.Error().Err(err).Msg("login: falha inesperada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("INTERNAL", msgErroInterno))
	}
	return c.JSON(out)
}

// TrocarSenha godoc
// @Summary      Trocar a senha da própria conta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrocarSenhaRequest  true  "senha_atual, nova_senha"
// @Success      200   {object}  dto.TrocarSenhaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/auth/trocar-senha [post]
func (h *AuthHandler) TrocarSenha(c *fiber.Ctx) error {
	var in dto.TrocarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("INVALID_BODY", "corpo inválido"))
	}
	if in.SenhaAtual == "" || in.NovaSenha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "senha_atual e nova_senha são obrigatórias"))
	}
	if len(in.NovaSenha) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "nova_senha deve ter no mínimo 6 caracteres"))
	}
	err := h.uc.TrocarSenha(c.Context(), GetCredencialID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredencialNaoEncontrada):
			return c.Status(fiber.StatusNotFound).JSON(dto.Erro("NOT_FOUND", "credencial não encontrada"))
		case errors.Is(err, domain.ErrSenhaAtualIncorreta):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("UNAUTHORIZED", "senha atual incorreta"))
		default:
			h.log.Error().Err(err).Msg("trocar senha: falha inesperada")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("INTERNAL", msgErroInterno))
		}
	}
	return c.JSON(dto.TrocarSenhaResponse{Success: true, Mensagem: "senha alterada com sucesso"})
}

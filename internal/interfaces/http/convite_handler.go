package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acessopro/acesso-api/internal/application/convite"
	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// ConviteHandler trata emissão e validação de convites.
type ConviteHandler struct {
	uc  *convite.ConviteUseCase
	log *logger.Logger
}

// NewConviteHandler constrói o handler de convites.
func NewConviteHandler(uc *convite.ConviteUseCase, log *logger.Logger) *ConviteHandler {
	return &ConviteHandler{uc: uc, log: log}
}

// Validar godoc
// @Summary      Validar token de convite
// @Tags         convites
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarConviteRequest  true  "token"
// @Success      200   {object}  dto.ValidarConviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/convites/validar [post]
//
// Convite expirado ou já utilizado responde 200 com success=false e mensagem
// descritiva (soft-failure para a UI); só token desconhecido vira 404.
func (h *ConviteHandler) Validar(c *fiber.Ctx) error {
	var in dto.ValidarConviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("INVALID_BODY", "corpo inválido"))
	}
	if in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "token é obrigatório"))
	}
	out, err := h.uc.Validar(c.Context(), in.Token)
	if err != nil {
		if errors.Is(err, domain.ErrConviteNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Erro("NOT_FOUND", "convite não encontrado"))
		}
		h.log.Error().Err(err).Msg("validar convite: falha inesperada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("INTERNAL", msgErroInterno))
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Emitir convite
// @Tags         convites
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarConviteRequest  true  "email, nome, tipo_acesso, cargo"
// @Success      201   {object}  dto.CriarConviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/convites [post]
func (h *ConviteHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarConviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("INVALID_BODY", "corpo inválido"))
	}
	if in.Email == "" || in.Nome == "" || in.TipoAcesso == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "email, nome e tipo_acesso são obrigatórios"))
	}
	if in.TipoAcesso != entity.TipoAdmin && in.TipoAcesso != entity.TipoColaborador && in.TipoAcesso != entity.TipoCliente {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("VALIDATION", "tipo_acesso deve ser admin, colaborador ou cliente"))
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("criar convite: falha inesperada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("INTERNAL", msgErroInterno))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/pkg/jwt"
)

// Locals keys para a credencial e o tipo de acesso no Fiber.
const (
	LocalCredencialID = "credencial_id"
	LocalTipoAcesso   = "tipo_acesso"
)

// AuthMiddleware valida o Bearer Token e extrai credencial e tipo de acesso
// para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("MISSING_TOKEN", "header Authorization requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("MISSING_TOKEN", "token vazio"))
		}
		credencialID, tipoAcesso, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("INVALID_TOKEN", "token inválido ou expirado"))
		}
		c.Locals(LocalCredencialID, credencialID)
		c.Locals(LocalTipoAcesso, tipoAcesso)
		return c.Next()
	}
}

// RequireTipo autoriza somente os tipos de acesso informados. Deve ser usado
// DEPOIS de AuthMiddleware. Token sem tipo responde 401; tipo não permitido, 403.
func RequireTipo(permitidos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo := GetTipoAcesso(c)
		if tipo == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("MISSING_ROLE", "token sem tipo de acesso"))
		}
		for _, p := range permitidos {
			if tipo == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Erro("FORBIDDEN", "tipo de acesso sem permissão para esta rota"))
	}
}

// GetCredencialID devolve o id da credencial do contexto (após o middleware de auth).
func GetCredencialID(c *fiber.Ctx) string {
	v := c.Locals(LocalCredencialID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipoAcesso devolve o tipo de acesso do contexto (após o middleware de auth).
func GetTipoAcesso(c *fiber.Ctx) string {
	v := c.Locals(LocalTipoAcesso)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

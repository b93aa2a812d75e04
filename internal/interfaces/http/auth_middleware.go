package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID  = "user_id"
	LocalProfile = "profile"
)

// AuthMiddleware valida el Bearer Token JWT y guarda el user_id en c.Locals.
// El token solo identifica al principal: el Profile autoritativo lo resuelve
// ResolveProfile contra la base en cada request (nunca se confía en el rol
// del claim ni en estado cacheado del cliente).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// profileResolver contrato mínimo para convertir principal -> Profile.
// Lo implementa *auth.AuthUseCase; la interfaz evita el import circular.
type profileResolver interface {
	Resolve(ctx context.Context, principalID string) (*entity.Profile, error)
}

// ResolveProfile resuelve el Profile del principal autenticado y lo deja en
// c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 PROFILE_NOT_PROVISIONED → principal autenticado pero sin perfil
//     (cuenta a medio crear; el cliente debe rehacer el signup/login).
//   - 503 → fallo transitorio del storage al resolver (reintentar).
func ResolveProfile(resolver profileResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(LocalUserID).(string)
		profile, err := resolver.Resolve(c.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "PROFILE_NOT_PROVISIONED", Message: "perfil no encontrado, vuelva a iniciar sesión"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PROFILE_LOOKUP_FAILED", Message: "no se pudo resolver el perfil, intente más tarde"})
		}
		c.Locals(LocalProfile, profile)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetProfile devuelve el Profile resuelto (después de ResolveProfile).
func GetProfile(c *fiber.Ctx) *entity.Profile {
	v := c.Locals(LocalProfile)
	if v == nil {
		return nil
	}
	p, _ := v.(*entity.Profile)
	return p
}

// RequireRole autoriza solo a los roles indicados (RBAC plano, sin tenant).
// Para decisiones por tienda usar el guard authz en los casos de uso.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := GetProfile(c)
		if profile == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "perfil no resuelto"})
		}
		for _, role := range roles {
			if profile.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
}

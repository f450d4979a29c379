package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorder-api/internal/application/dto"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
)

// dashboardPath home de cada rol después del login.
var dashboardPath = map[entity.Role]string{
	entity.RoleManager:   "/manager",
	entity.RoleEmployee:  "/employee",
	entity.RolePurchaser: "/purchaser",
}

// roleSet conjunto de roles permitidos para una ruta, construido una sola
// vez al registrarla. Vacío significa "cualquier rol autenticado".
type roleSet map[entity.Role]struct{}

func newRoleSet(roles ...entity.Role) roleSet {
	set := make(roleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s roleSet) allows(r entity.Role) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[r]
	return ok
}

// RequireAuth guard de API: 401 si el request es anónimo, cualquier rol pasa.
func RequireAuth() fiber.Handler {
	return RequireRole()
}

// RequireRole guard de API. Sin sesión responde 401; con sesión cuyo rol no
// está permitido responde 403. La distinción 401/403 se preserva exacta.
// En cualquier denegación el handler de la ruta nunca se ejecuta.
func RequireRole(roles ...entity.Role) fiber.Handler {
	allowed := newRoleSet(roles...)
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "no autenticado"})
		}
		role, ok := entity.ParseRole(sess.Role)
		if !ok || !allowed.allows(role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "acceso denegado"})
		}
		return c.Next()
	}
}

// RequirePageRole guard de páginas: las denegaciones son redirecciones, nunca
// una página de error — sin sesión a /login, con rol no permitido al home "/".
func RequirePageRole(roles ...entity.Role) fiber.Handler {
	allowed := newRoleSet(roles...)
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		role, ok := entity.ParseRole(sess.Role)
		if !ok || !allowed.allows(role) {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
)

// PageHandler sirve las páginas HTML mínimas de la aplicación. El frontend
// real es un SPA aparte; estos shells existen para que las redirecciones de
// sesión y rol funcionen de extremo a extremo sin él.
type PageHandler struct{}

// NewPageHandler construye el handler de páginas.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home despacha según la sesión: anónimo a /login, autenticado al dashboard
// de su rol. La raíz nunca renderiza contenido propio.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if role, ok := entity.ParseRole(sess.Role); ok {
		if path, ok := dashboardPath[role]; ok {
			return c.Redirect(path, fiber.StatusFound)
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Login muestra el formulario de acceso. Un usuario ya autenticado no tiene
// nada que hacer aquí: vuelve a la raíz para ser despachado a su dashboard.
func (h *PageHandler) Login(c *fiber.Ctx) error {
	if CurrentSession(c) != nil {
		return c.Redirect("/", fiber.StatusFound)
	}
	return sendPage(c, `<h1>Iniciar sesión</h1>
<form method="post" action="/api/auth/login" id="login-form">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Entrar</button>
</form>`)
}

// Dashboard retorna el handler del dashboard con el título dado. La
// autorización ya ocurrió en RequirePageRole; aquí la sesión siempre existe.
func (h *PageHandler) Dashboard(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		return sendPage(c, fmt.Sprintf(`<h1>%s</h1>
<p>Sesión: %s (%s)</p>
<form method="post" action="/api/auth/logout"><button type="submit">Salir</button></form>`,
			title, sess.Name, sess.Role))
	}
}

// ManagerItems shell de administración del catálogo, solo MANAGER.
func (h *PageHandler) ManagerItems(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	return sendPage(c, fmt.Sprintf(`<h1>Catálogo de items</h1>
<p>Sesión: %s (%s)</p>
<div id="items" data-endpoint="/api/items"></div>`, sess.Name, sess.Role))
}

func sendPage(c *fiber.Ctx, body string) error {
	c.Type("html", "utf-8")
	return c.SendString(`<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Inv-Order</title></head>
<body>
` + body + `
</body>
</html>`)
}

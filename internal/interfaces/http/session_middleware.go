package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorder-api/pkg/session"
)

// SessionCookie nombre de la cookie que transporta el token de sesión.
const SessionCookie = "session"

// Locals key para la sesión verificada del request.
const localSession = "session"

// SessionMiddleware lee la cookie, verifica el token y deja la sesión en
// c.Locals. La ausencia de cookie o un token inválido/expirado no es un
// error: el request continúa como anónimo y el access guard de cada ruta
// decide. La verificación es pura (sin I/O) y ocurre una vez por request.
func SessionMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookie); token != "" {
			if sess, err := session.Verify(secret, token); err == nil {
				c.Locals(localSession, sess)
			}
		}
		return c.Next()
	}
}

// CurrentSession retorna la sesión del request, o nil si es anónimo.
func CurrentSession(c *fiber.Ctx) *session.Session {
	v := c.Locals(localSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// setSessionCookie adjunta el token como cookie HTTP-only de sitio completo,
// con Max-Age alineado a la vigencia del token.
func setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		MaxAge:   int(ttl.Seconds()),
	})
}

// clearSessionCookie sobreescribe la cookie con valor vacío y expiración
// inmediata en el cliente. El token ya emitido conserva su validez hasta
// expirar: no hay lista de revocación server-side.
func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
}

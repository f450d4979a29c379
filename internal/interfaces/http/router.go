package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorder-api/internal/application/auth"
	"github.com/jhoicas/invorder-api/internal/application/usecase"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *usecase.ItemUseCase
	SessionSecret string
}

// Router registra middleware, páginas y rutas de API sobre la app Fiber.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.SessionSecret))

	authHandler := NewAuthHandler(deps.AuthUC)
	itemHandler := NewItemHandler(deps.ItemUC)
	pages := NewPageHandler()

	// ─── Páginas ───────────────────────────────────────────────────────────
	app.Get("/", pages.Home)
	app.Get("/login", pages.Login)
	app.Get("/manager", RequirePageRole(entity.RoleManager), pages.Dashboard("Dashboard Manager"))
	app.Get("/manager/items", RequirePageRole(entity.RoleManager), pages.ManagerItems)
	app.Get("/employee", RequirePageRole(entity.RoleEmployee), pages.Dashboard("Dashboard Employee"))
	app.Get("/purchaser", RequirePageRole(entity.RolePurchaser), pages.Dashboard("Dashboard Purchaser"))

	// ─── API ───────────────────────────────────────────────────────────────
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	items := api.Group("/items")
	items.Get("/", RequireAuth(), itemHandler.List)
	items.Post("/", RequireRole(entity.RoleManager), itemHandler.Create)
	items.Delete("/:id", RequireRole(entity.RoleManager), itemHandler.Delete)
}

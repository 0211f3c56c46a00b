package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryTypeUC *catalog.CategoryTypeUseCase
	CategoryUC     *catalog.CategoryUseCase
	SkuUC          *catalog.SkuUseCase
	SheetRenderer  ports.SkuSheetRenderer // opcional: sin él no se expone /sheet.pdf
	FeedEncoder    ports.SkuFeedEncoder   // opcional: sin él no se expone /feed.xml
	JWTSecret      string
	Logger         *logger.Logger
}

// Router registra las rutas de la API. Lecturas públicas; escrituras con Bearer Token y rol admin o editor.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	write := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleEditor)}
	with := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, write...), h)
	}

	types := api.Group("/category-types")
	typeHandler := NewCategoryTypeHandler(deps.CategoryTypeUC, log)
	types.Get("/", typeHandler.List)
	types.Get("/:id", typeHandler.GetByID)
	types.Post("/", with(typeHandler.Create)...)
	types.Put("/:id", with(typeHandler.Update)...)
	types.Delete("/:id", with(typeHandler.Delete)...)

	// Las rutas fijas van antes de /:id.
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log)
	categories.Get("/", categoryHandler.List)
	categories.Get("/top-level", categoryHandler.ListTopLevel)
	categories.Get("/by-type/:typeId", categoryHandler.ListByType)
	categories.Get("/slug/:slug", categoryHandler.GetBySlug)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/children", categoryHandler.ListChildren)
	categories.Post("/", with(categoryHandler.Create)...)
	categories.Put("/:id", with(categoryHandler.Update)...)
	categories.Delete("/:id", with(categoryHandler.Delete)...)

	skus := api.Group("/skus")
	skuHandler := NewSkuHandler(deps.SkuUC, log)
	skus.Get("/", skuHandler.List)
	docs := NewSkuDocumentHandler(deps.SkuUC, deps.SheetRenderer, deps.FeedEncoder, log)
	if deps.FeedEncoder != nil {
		skus.Get("/feed.xml", docs.Feed)
	}
	if deps.SheetRenderer != nil {
		skus.Get("/:id/sheet.pdf", docs.Sheet)
	}
	skus.Get("/:id", skuHandler.GetByID)
	skus.Post("/", with(skuHandler.Create)...)
	skus.Put("/:id", with(skuHandler.Update)...)
	skus.Delete("/:id", with(skuHandler.Delete)...)
}

package routes

import (
	"log"

	"talent-search/internal/config"
	"talent-search/internal/database"
	"talent-search/internal/delivery/http/handler"
	v1 "talent-search/internal/delivery/http/routes/v1"
	"talent-search/internal/usecase"
	"talent-search/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(app *fiber.App, cfg config.Config, db database.DB, cache usecase.SearchCache, logger *log.Logger, hub *ws.Hub) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(db)
	app.Get("/health", health.Health)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: cfg,
		DB:     db,
		Cache:  cache,
		Logger: logger,
		Hub:    hub,
	})
}

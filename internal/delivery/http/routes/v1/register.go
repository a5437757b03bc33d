package v1

import (
	"log"

	"talent-search/internal/config"
	"talent-search/internal/database"
	"talent-search/internal/delivery/http/handler"
	"talent-search/internal/delivery/http/middleware"
	"talent-search/internal/pkg/jwt"
	"talent-search/internal/repository"
	"talent-search/internal/usecase"
	"talent-search/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.SearchCache
	Logger *log.Logger
	Hub    *ws.Hub
}

func Register(r fiber.Router, d Deps) *usecase.PoolCache {
	if r == nil {
		return nil
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	store := repository.NewPostgresCandidateStore(d.DB)
	recruiters := repository.NewPostgresRecruiterRepository(d.DB)

	pool := usecase.NewPoolCache(store, d.Config.Search.PoolTTL, d.Logger)
	if d.Hub != nil {
		hub := d.Hub
		pool.SetNotify(func(count int) {
			ws.NotifyPoolRefreshed(hub, count)
		})
	}

	searchUC := usecase.NewSearchUsecase(store, pool, d.Cache, d.Config.Search.ResultTTL, d.Logger)
	authUC := usecase.NewAuthUsecase(recruiters, jwtSvc)

	authHandler := handler.NewAuthHandler(authUC)
	searchHandler := handler.NewSearchHandler(searchUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())
	searchHandler.RegisterRoutes(protected)

	if d.Hub != nil {
		wsHandler := ws.NewHandler(d.Hub, d.Logger)
		protected.Get("/ws/search", wsHandler.HandleSearchWS)
	}

	return pool
}

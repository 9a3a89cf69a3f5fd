package router

import (
	"github.com/abizer007/EcoThreads/internal/application"
	"github.com/abizer007/EcoThreads/internal/container"
	"github.com/abizer007/EcoThreads/internal/infrastructure/kv"
	handlers "github.com/abizer007/EcoThreads/internal/interface/http"
	"github.com/abizer007/EcoThreads/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module with the registry. It is
// called once during startup after the container is populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	store := kv.NewStore(container.GetRedis())

	users := kv.NewUserRepository(store)
	items := kv.NewItemRepository(store)
	reviews := kv.NewReviewRepository(store)

	userSvc := application.NewUserService(
		users,
		container.GetJWT(),
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		cfg.AppName,
		cfg.SessionTTL,
		cfg.MailSendEnabled,
	)
	itemSvc := application.NewItemService(items, logger, container.GetES(), cfg.ESItemsIndex)
	reviewSvc := application.NewReviewService(reviews, users, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	mediaSvc := application.NewMediaService(container.GetGCS(), cfg.GCSBucket, cfg.UploadMaxBytes, logger)

	authHandler := handlers.NewAuthHandler(userSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	itemHandler := handlers.NewItemHandler(itemSvc, logger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, logger)
	mediaHandler := handlers.NewMediaHandler(mediaSvc, logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewItemModule(itemHandler, container.GetJWT()))
	r.Add(modules.NewReviewModule(reviewHandler, container.GetJWT()))
	r.Add(modules.NewMediaModule(mediaHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

package service

import (
	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CatalogService CatalogService
	SiteService    SiteService
	GalleryService GalleryService
}

func NewServices(storages *store.Storages, signer *auth.Signer, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, signer, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		CatalogService: NewCatalogService(storages.SuiteRepository, storages.CatalogRepository, logger),
		SiteService:    NewSiteService(storages.SiteConfigRepository, storages.StaffRepository, logger),
		GalleryService: NewGalleryService(cfg.Storage.Files, logger),
	}
}

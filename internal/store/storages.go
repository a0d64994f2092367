package store

import "github.com/motelbelavista/website/internal/logger"

// Storages aggregates every repository backed by the shared database
// connection. It is the single value handed to the service layer.
type Storages struct {
	UserRepository       UserRepository
	SuiteRepository      SuiteRepository
	CatalogRepository    CatalogRepository
	StaffRepository      StaffRepository
	SiteConfigRepository SiteConfigRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		SuiteRepository:      NewSuiteRepository(db, log),
		CatalogRepository:    NewCatalogRepository(db, log),
		StaffRepository:      NewStaffRepository(db, log),
		SiteConfigRepository: NewSiteConfigRepository(db, log),
	}
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/motelbelavista/website/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCanonicalHost)
	router.Use(withGZip)

	// public API and SEO surface
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)

		r.Get("/api/suites", h.publicSuites)
		r.Get("/api/suites/{slug}", h.publicSuiteBySlug)
		r.Get("/api/site", h.siteInfo)
		r.Get("/api/staff", h.publicStaff)
		r.Get("/api/gallery", h.gallery)

		r.Get("/sitemap.xml", h.sitemap)
		r.Get("/robots.txt", h.robots)
	})

	// any authenticated active account
	router.Group(func(r chi.Router) {
		r.Use(h.requireRole())
		r.Get("/api/me", h.me)
	})

	// back office: all content management is admin-only; staff accounts only
	// reach the authenticated surface above
	router.Group(func(r chi.Router) {
		r.Use(h.requireRole(models.RoleAdmin))

		r.Get("/api/admin/suites", h.listSuites)
		r.Post("/api/admin/suites", h.createSuite)
		r.Put("/api/admin/suites/{id}", h.updateSuite)
		r.Delete("/api/admin/suites/{id}", h.deleteSuite)

		r.Post("/api/admin/suites/{id}/photos", h.addPhoto)
		r.Delete("/api/admin/photos/{id}", h.removePhoto)

		r.Get("/api/admin/suite-types", h.listSuiteTypes)
		r.Post("/api/admin/suite-types", h.createSuiteType)
		r.Put("/api/admin/suite-types/{id}", h.updateSuiteType)
		r.Delete("/api/admin/suite-types/{id}", h.deleteSuiteType)

		r.Get("/api/admin/amenities", h.listAmenities)
		r.Post("/api/admin/amenities", h.createAmenity)
		r.Put("/api/admin/amenities/{id}", h.updateAmenity)
		r.Delete("/api/admin/amenities/{id}", h.deleteAmenity)

		r.Get("/api/admin/site-config", h.getSiteConfig)
		r.Put("/api/admin/site-config", h.updateSiteConfig)

		r.Get("/api/admin/staff", h.listStaff)
		r.Post("/api/admin/staff", h.createStaff)
		r.Put("/api/admin/staff/{id}", h.updateStaff)
		r.Delete("/api/admin/staff/{id}", h.deleteStaff)

		r.Get("/api/admin/users", h.listUsers)
		r.Post("/api/admin/users", h.createUser)
		r.Put("/api/admin/users/{id}", h.updateUser)
		r.Delete("/api/admin/users/{id}", h.deleteUser)
	})

	h.mountStatic(router)

	return router
}

// mountStatic serves the site assets and the two photo trees straight from
// disk. Photos are immutable once published, so they get a long cache window.
func (h *Handler) mountStatic(router *chi.Mux) {
	if h.files.StaticDir != "" {
		router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.files.StaticDir))))
	}
	if h.files.PhotosDir != "" {
		router.Handle("/fotos-apartamentos/*", withImageCache(
			http.StripPrefix("/fotos-apartamentos/", http.FileServer(http.Dir(h.files.PhotosDir)))))
	}
	if h.files.PhotosWebDir != "" {
		router.Handle("/fotos-apartamentos-web/*", withImageCache(
			http.StripPrefix("/fotos-apartamentos-web/", http.FileServer(http.Dir(h.files.PhotosWebDir)))))
	}
}

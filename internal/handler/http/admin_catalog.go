package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/utils"
	"github.com/motelbelavista/website/models"
)

// suiteRequest is the admin create/replace payload: the suite row plus the
// full amenity link set.
type suiteRequest struct {
	models.Suite
	AmenityIDs []int64 `json:"amenity_ids"`
}

func (h *Handler) listSuites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := suiteFilterFromQuery(r)

	suites, err := h.services.CatalogService.ListSuites(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("listing suites failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, suites, http.StatusOK) //nolint:errcheck
}

func suiteFilterFromQuery(r *http.Request) models.SuiteFilter {
	q := r.URL.Query()

	filter := models.SuiteFilter{
		Status: models.SuiteStatus(q.Get("status")),
	}
	if typeID, err := strconv.ParseInt(q.Get("type_id"), 10, 64); err == nil {
		filter.TypeID = typeID
	}
	if featured, err := strconv.ParseBool(q.Get("featured")); err == nil && featured {
		filter.FeaturedOnly = true
	}

	return filter
}

func (h *Handler) createSuite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req suiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateSuite(r.Context(), req.Suite, req.AmenityIDs)
	if err != nil {
		log.Err(err).Msg("suite creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateSuite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var update models.SuiteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = id

	updated, err := h.services.CatalogService.UpdateSuite(r.Context(), update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("suite update failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteSuite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteSuite(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("suite deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	suiteID, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var photo models.Photo
	if err := json.NewDecoder(r.Body).Decode(&photo); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	photo.SuiteID = suiteID

	created, err := h.services.CatalogService.AddPhoto(r.Context(), photo)
	if err != nil {
		log.Err(err).Int64("suite_id", suiteID).Msg("photo creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) removePhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.RemovePhoto(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("photo deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSuiteTypes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	types, err := h.services.CatalogService.ListSuiteTypes(r.Context())
	if err != nil {
		log.Err(err).Msg("listing suite types failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, types, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createSuiteType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var st models.SuiteType
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateSuiteType(r.Context(), st)
	if err != nil {
		log.Err(err).Msg("suite type creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateSuiteType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var st models.SuiteType
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	st.ID = id

	updated, err := h.services.CatalogService.UpdateSuiteType(r.Context(), st)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("suite type update failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteSuiteType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteSuiteType(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("suite type deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAmenities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	amenities, err := h.services.CatalogService.ListAmenities(r.Context())
	if err != nil {
		log.Err(err).Msg("listing amenities failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, amenities, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var amenity models.Amenity
	if err := json.NewDecoder(r.Body).Decode(&amenity); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateAmenity(r.Context(), amenity)
	if err != nil {
		log.Err(err).Msg("amenity creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var amenity models.Amenity
	if err := json.NewDecoder(r.Body).Decode(&amenity); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	amenity.ID = id

	updated, err := h.services.CatalogService.UpdateAmenity(r.Context(), amenity)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("amenity update failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteAmenity(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("amenity deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

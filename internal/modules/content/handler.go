package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes hero image and maker story HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/hero-images", func(r chi.Router) {
		r.Get("/", h.listHeroImages)
		r.Post("/", h.createHeroImage)
		r.Get("/{id}", h.getHeroImage)
		r.Put("/{id}", h.updateHeroImage)
		r.Delete("/{id}", h.deleteHeroImage)
		r.Put("/{id}/order", h.updateHeroImageOrder)
	})
	r.Route("/api/maker-stories", func(r chi.Router) {
		r.Get("/", h.listMakerStories)
		r.Post("/", h.createMakerStory)
		r.Get("/{id}", h.getMakerStory)
		r.Put("/{id}", h.updateMakerStory)
		r.Delete("/{id}", h.deleteMakerStory)
	})
}

// activeOnly hides inactive records unless the caller asks for everything
// with ?active=false, which the admin panel does.
func activeOnly(r *http.Request) bool {
	return r.URL.Query().Get("active") != "false"
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func (h *Handler) listHeroImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListHeroImages(r.Context(), activeOnly(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch hero images")
		return
	}
	respond(w, http.StatusOK, images)
}

func (h *Handler) getHeroImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid hero image id")
		return
	}
	img, err := h.service.GetHeroImage(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Hero image not found")
		return
	}
	respond(w, http.StatusOK, img)
}

func (h *Handler) createHeroImage(w http.ResponseWriter, r *http.Request) {
	var req CreateHeroImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid hero image data")
		return
	}
	img, err := h.service.CreateHeroImage(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid hero image data")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create hero image")
		return
	}
	respond(w, http.StatusCreated, img)
}

func (h *Handler) updateHeroImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid hero image id")
		return
	}
	var req UpdateHeroImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid hero image data")
		return
	}
	img, err := h.service.UpdateHeroImage(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Hero image not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update hero image")
		return
	}
	respond(w, http.StatusOK, img)
}

func (h *Handler) deleteHeroImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid hero image id")
		return
	}
	if err := h.service.DeleteHeroImage(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Hero image not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete hero image")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateHeroImageOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid hero image id")
		return
	}
	var req struct {
		Order *int `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Order == nil {
		respondError(w, http.StatusBadRequest, "Invalid order")
		return
	}
	img, err := h.service.UpdateHeroImageOrder(r.Context(), id, *req.Order)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Hero image not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update hero image order")
		return
	}
	respond(w, http.StatusOK, img)
}

func (h *Handler) listMakerStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.service.ListMakerStories(r.Context(), activeOnly(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch maker stories")
		return
	}
	respond(w, http.StatusOK, stories)
}

func (h *Handler) getMakerStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid maker story id")
		return
	}
	story, err := h.service.GetMakerStory(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Maker story not found")
		return
	}
	respond(w, http.StatusOK, story)
}

func (h *Handler) createMakerStory(w http.ResponseWriter, r *http.Request) {
	var req CreateMakerStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid maker story data")
		return
	}
	story, err := h.service.CreateMakerStory(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid maker story data")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create maker story")
		return
	}
	respond(w, http.StatusCreated, story)
}

func (h *Handler) updateMakerStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid maker story id")
		return
	}
	var req UpdateMakerStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid maker story data")
		return
	}
	story, err := h.service.UpdateMakerStory(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Maker story not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update maker story")
		return
	}
	respond(w, http.StatusOK, story)
}

func (h *Handler) deleteMakerStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid maker story id")
		return
	}
	if err := h.service.DeleteMakerStory(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Maker story not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete maker story")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"message": message})
}

package resident

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

type Handler struct {
	svc *resident.Service
}

func NewHandler(svc *resident.Service) *Handler {
	return &Handler{svc: svc}
}

// SelfRoutes registers the caller's own profile routes.
func (h *Handler) SelfRoutes(r chi.Router) {
	r.Get("/me/profile", h.profile)
	r.Put("/me/profile", h.updateProfile)
}

func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	residents, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, residents)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	residents, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, residents)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, r, apperr.ErrUnauthorized)
		return
	}

	res, err := h.svc.Get(r.Context(), p.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}

type profileRequest struct {
	FullName *string `json:"fullName" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=8"`
	Phone    *string `json:"phone" validate:"omitnil,min=1"`
}

// updateRequest is the admin form of profileRequest, which may also change
// the role.
type updateRequest struct {
	profileRequest
	Role *resident.Role `json:"role" validate:"omitnil,oneof=resident admin"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, r, apperr.ErrUnauthorized)
		return
	}

	var req profileRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.svc.Update(r.Context(), p.ID, resident.UpdateParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.svc.Update(r.Context(), id, resident.UpdateParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}

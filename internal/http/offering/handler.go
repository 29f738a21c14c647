package offering

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/offering"
)

type Handler struct {
	svc *offering.Service
}

func NewHandler(svc *offering.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ReadRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) WriteRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Create(r.Context(), offering.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, o)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, offerings)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, o)
}

type updateRequest struct {
	Name        *string          `json:"name" validate:"omitnil,min=1"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice" validate:"omitnil,gte=0"`
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

	o, err := h.svc.Update(r.Context(), id, offering.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, o)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, o)
}

package contract

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/contract"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
)

type Handler struct {
	svc *contract.Service
}

func NewHandler(svc *contract.Service) *Handler {
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
	ResidentID   uuid.UUID       `json:"residentId" validate:"required"`
	DocumentPath string          `json:"documentPath" validate:"required"`
	Status       contract.Status `json:"status" validate:"omitempty,oneof=active expired terminated"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), contract.CreateParams{
		ResidentID:   req.ResidentID,
		DocumentPath: req.DocumentPath,
		Status:       req.Status,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, c)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	residentID, err := respond.QueryID(r, "residentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	contracts, err := h.svc.List(r.Context(), contract.ListFilter{ResidentID: residentID})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, contracts)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, c)
}

type updateRequest struct {
	ResidentID   *uuid.UUID       `json:"residentId"`
	DocumentPath *string          `json:"documentPath" validate:"omitnil,min=1"`
	Status       *contract.Status `json:"status" validate:"omitnil,oneof=active expired terminated"`
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

	c, err := h.svc.Update(r.Context(), id, contract.UpdateParams{
		ResidentID:   req.ResidentID,
		DocumentPath: req.DocumentPath,
		Status:       req.Status,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, c)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, c)
}

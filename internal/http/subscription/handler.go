package subscription

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

type Handler struct {
	svc *subscription.Service
}

func NewHandler(svc *subscription.Service) *Handler {
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
	ApartmentID     uuid.UUID              `json:"apartmentId" validate:"required"`
	ServiceID       uuid.UUID              `json:"serviceId" validate:"required"`
	Frequency       subscription.Frequency `json:"frequency" validate:"oneof=monthly quarterly yearly"`
	NextBillingDate time.Time              `json:"nextBillingDate" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	sub, err := h.svc.Create(r.Context(), subscription.CreateParams{
		ApartmentID:     req.ApartmentID,
		ServiceID:       req.ServiceID,
		Frequency:       req.Frequency,
		NextBillingDate: req.NextBillingDate,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, sub)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := respond.QueryID(r, "apartmentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	serviceID, err := respond.QueryID(r, "serviceId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	subs, err := h.svc.List(r.Context(), subscription.ListFilter{ApartmentID: apartmentID, ServiceID: serviceID})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, subs)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, sub)
}

type updateRequest struct {
	ApartmentID     *uuid.UUID              `json:"apartmentId"`
	ServiceID       *uuid.UUID              `json:"serviceId"`
	Frequency       *subscription.Frequency `json:"frequency" validate:"omitnil,oneof=monthly quarterly yearly"`
	NextBillingDate *time.Time              `json:"nextBillingDate"`
	Status          *subscription.Status    `json:"status" validate:"omitnil,oneof=active inactive pending"`
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

	sub, err := h.svc.Update(r.Context(), id, subscription.UpdateParams{
		ApartmentID:     req.ApartmentID,
		ServiceID:       req.ServiceID,
		Frequency:       req.Frequency,
		NextBillingDate: req.NextBillingDate,
		Status:          req.Status,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, sub)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sub, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, sub)
}

package invoicedetail

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
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
	Quantity       int        `json:"quantity" validate:"gt=0"`
	ApartmentID    uuid.UUID  `json:"apartmentId" validate:"required"`
	SubscriptionID uuid.UUID  `json:"subscriptionId" validate:"required"`
	InvoiceID      *uuid.UUID `json:"invoiceId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.Create(r.Context(), billing.CreateParams{
		Quantity:       req.Quantity,
		ApartmentID:    req.ApartmentID,
		SubscriptionID: req.SubscriptionID,
		InvoiceID:      req.InvoiceID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, item)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := respond.QueryID(r, "invoiceId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), billing.ListFilter{InvoiceID: invoiceID})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, items)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item)
}

type updateRequest struct {
	Quantity *int `json:"quantity" validate:"omitnil,gt=0"`
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

	item, err := h.svc.Update(r.Context(), id, billing.UpdateParams{Quantity: req.Quantity})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item)
}

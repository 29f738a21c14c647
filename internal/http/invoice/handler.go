package invoice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
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
	ApartmentID uuid.UUID      `json:"apartmentId" validate:"required"`
	DueDate     time.Time      `json:"dueDate" validate:"required"`
	Status      invoice.Status `json:"status" validate:"omitempty,oneof=PENDING PAID OVERDUE"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		ApartmentID: req.ApartmentID,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, inv)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := respond.QueryID(r, "apartmentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := invoice.ListFilter{ApartmentID: apartmentID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := invoice.Status(s)
		if status != invoice.StatusPending && status != invoice.StatusPaid && status != invoice.StatusOverdue {
			respond.Error(w, r, apperr.Invalid("status must be one of [PENDING PAID OVERDUE]"))
			return
		}

		filter.Status = &status
	}

	invoices, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, invoices)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, inv)
}

// updateRequest has no totalAmount: the total is derived from line items.
type updateRequest struct {
	Status  *invoice.Status `json:"status" validate:"omitnil,oneof=PENDING PAID OVERDUE"`
	DueDate *time.Time      `json:"dueDate"`
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

	inv, err := h.svc.Update(r.Context(), id, invoice.UpdateParams{Status: req.Status, DueDate: req.DueDate})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, inv)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, inv)
}

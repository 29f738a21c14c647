package payment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

// ReadRoutes also carries POST /: any signed-in resident may pay.
func (h *Handler) ReadRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/", h.create)
}

func (h *Handler) WriteRoutes(r chi.Router) {
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	InvoiceID uuid.UUID       `json:"invoiceId" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), payment.CreateParams{InvoiceID: req.InvoiceID, Amount: req.Amount})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, p)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := respond.QueryID(r, "invoiceId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	payments, err := h.svc.List(r.Context(), payment.ListFilter{InvoiceID: invoiceID})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, payments)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

type updateRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitnil,gt=0"`
	Status      *payment.Status  `json:"status" validate:"omitnil,oneof=PENDING COMPLETED FAILED"`
	PaymentDate *time.Time       `json:"paymentDate"`
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

	p, err := h.svc.Update(r.Context(), id, payment.UpdateParams{
		Amount:      req.Amount,
		Status:      req.Status,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

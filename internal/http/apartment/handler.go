package apartment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/roster"
)

// maxUpload caps roster files.
const maxUpload = 10 << 20

type Handler struct {
	svc    *apartment.Service
	roster *roster.Service
}

func NewHandler(svc *apartment.Service, roster *roster.Service) *Handler {
	return &Handler{svc: svc, roster: roster}
}

func (h *Handler) ReadRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) WriteRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/import", h.importRoster)
	r.Put("/{id}", h.update)
	r.Put("/{id}/assign-resident", h.assign)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	RoomNumber int             `json:"roomNumber" validate:"gt=0"`
	Area       decimal.Decimal `json:"area" validate:"gt=0"`
	BuildingID uuid.UUID       `json:"buildingId" validate:"required"`
	ResidentID *uuid.UUID      `json:"residentId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), apartment.CreateParams{
		RoomNumber: req.RoomNumber,
		Area:       req.Area,
		BuildingID: req.BuildingID,
		ResidentID: req.ResidentID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, a)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	buildingID, err := respond.QueryID(r, "buildingId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	apartments, err := h.svc.List(r.Context(), apartment.ListFilter{BuildingID: buildingID})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, apartments)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

type updateRequest struct {
	RoomNumber *int             `json:"roomNumber" validate:"omitnil,gt=0"`
	Area       *decimal.Decimal `json:"area" validate:"omitnil,gt=0"`
	BuildingID *uuid.UUID       `json:"buildingId"`
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

	a, err := h.svc.Update(r.Context(), id, apartment.UpdateParams{
		RoomNumber: req.RoomNumber,
		Area:       req.Area,
		BuildingID: req.BuildingID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

// assignRequest sets the apartment's resident; a null residentId vacates it.
type assignRequest struct {
	ResidentID *uuid.UUID `json:"residentId"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req assignRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.AssignResident(r.Context(), id, req.ResidentID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

func (h *Handler) importRoster(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		respond.Error(w, r, apperr.Invalid("expected a multipart form with a file field"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, apperr.Invalid("file is required"))
		return
	}
	defer file.Close()

	result, err := h.roster.Import(r.Context(), file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, result)
}

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/http/guard"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes registers sign-up, sign-in and token refresh. Refresh carries
// its own bearer check against the refresh secret.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/refresh", h.refresh)
}

// SessionRoutes needs an authenticated caller.
func (h *Handler) SessionRoutes(r chi.Router) {
	r.Post("/logout", h.logout)
}

type registerRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	tokens, err := h.svc.Register(r.Context(), auth.RegisterParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, tokens)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	tokens, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, tokens)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := guard.BearerToken(r)
	if !ok {
		respond.Error(w, r, apperr.ErrAccessDenied)
		return
	}

	tokens, err := h.svc.Refresh(r.Context(), token)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, tokens)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, r, apperr.ErrUnauthorized)
		return
	}

	if err := h.svc.Logout(r.Context(), p.ID); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, nil)
}

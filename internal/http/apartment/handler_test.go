package apartment_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/apperr"
	handler "github.com/MrJamesThe3rd/estate/internal/http/apartment"
	"github.com/MrJamesThe3rd/estate/internal/roster"
)

func newRouter(t *testing.T) (http.Handler, *apartment.MockRepository, *roster.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := apartment.NewMockRepository(ctrl)
	rosterRepo := roster.NewMockRepository(ctrl)

	h := handler.NewHandler(apartment.NewService(repo), roster.NewService(rosterRepo))

	r := chi.NewRouter()
	r.Route("/apartments", func(r chi.Router) {
		h.ReadRoutes(r)
		h.WriteRoutes(r)
	})

	return r, repo, rosterRepo
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) apperr.Envelope {
	t.Helper()

	var env apperr.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func multipartBody(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, "roster.csv")
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestHandler_Import(t *testing.T) {
	r, _, rosterRepo := newRouter(t)
	ctrl := gomock.NewController(t)
	tx := roster.NewMockImportTx(ctrl)
	buildingID := uuid.New()

	rosterRepo.EXPECT().BeginImport(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Buildings(gomock.Any()).Return(map[string]uuid.UUID{"sunrise": buildingID}, nil)
	tx.EXPECT().Rooms(gomock.Any()).Return(map[roster.RoomKey]bool{}, nil)
	tx.EXPECT().CreateApartment(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	body, contentType := multipartBody(t, "file", "Building;Room;Area\nSunrise;101;45,5\nSunrise;102;50\n")
	req := httptest.NewRequest(http.MethodPost, "/apartments/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, apperr.CodeSuccess, env.Code)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "en", data["profile"])
	assert.Len(t, data["created"], 2)
}

func TestHandler_Import_ConflictsReturnedAsData(t *testing.T) {
	r, _, rosterRepo := newRouter(t)
	ctrl := gomock.NewController(t)
	tx := roster.NewMockImportTx(ctrl)

	rosterRepo.EXPECT().BeginImport(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Buildings(gomock.Any()).Return(map[string]uuid.UUID{}, nil)
	tx.EXPECT().Rooms(gomock.Any()).Return(map[roster.RoomKey]bool{}, nil)
	tx.EXPECT().Rollback().Return(nil)

	body, contentType := multipartBody(t, "file", "Building;Room;Area\nNowhere;1;30\n")
	req := httptest.NewRequest(http.MethodPost, "/apartments/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decode(t, rec).Code)
	assert.Contains(t, rec.Body.String(), `"reason":"unknown building"`)
}

func TestHandler_Import_MissingFile(t *testing.T) {
	r, _, _ := newRouter(t)

	body, contentType := multipartBody(t, "other", "x")
	req := httptest.NewRequest(http.MethodPost, "/apartments/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decode(t, rec).Code)
}

func TestHandler_AssignResident_Taken(t *testing.T) {
	r, repo, _ := newRouter(t)
	ctrl := gomock.NewController(t)
	tx := apartment.NewMockAssignTx(ctrl)

	id := uuid.New()
	other := uuid.New()
	residentID := uuid.New()

	repo.EXPECT().BeginAssignment(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockApartment(gomock.Any(), id).Return(&apartment.Apartment{ID: id}, nil)
	tx.EXPECT().LockResident(gomock.Any(), residentID).Return(nil)
	tx.EXPECT().ResidentExists(gomock.Any(), residentID).Return(true, nil)
	tx.EXPECT().FindByResident(gomock.Any(), residentID).Return(&apartment.Apartment{ID: other, ResidentID: &residentID}, nil)
	tx.EXPECT().Rollback().Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/apartments/"+id.String()+"/assign-resident",
		strings.NewReader(`{"residentId":"`+residentID.String()+`"}`))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decode(t, rec).Code)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	r, _, _ := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apartments/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decode(t, rec).Code)
}

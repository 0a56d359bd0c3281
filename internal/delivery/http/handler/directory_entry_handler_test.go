package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/delivery/http/handler"
	"medical-directory-admin/internal/usecase"
	"medical-directory-admin/internal/usecase/mocks"
	"medical-directory-admin/pkg/response"
	"medical-directory-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEntryRouter(t *testing.T) (*mux.Router, *mocks.MockDirectoryEntryUsecase) {
	t.Helper()
	uc := mocks.NewMockDirectoryEntryUsecase(gomock.NewController(t))
	h := handler.NewDirectoryEntryHandler(uc, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/directory-entries", h.List).Methods(http.MethodGet)
	r.HandleFunc("/directory-entries", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/directory-entries/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/directory-entries/{id}", h.Update).Methods(http.MethodPatch)
	r.HandleFunc("/directory-entries/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/directory-entries/{id}/status", h.UpdateStatus).Methods(http.MethodPatch)
	return r, uc
}

func serve(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, response.Response) {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestDirectoryEntryHandler_ListPassesFiltersAndMeta(t *testing.T) {
	r, uc := newEntryRouter(t)
	uc.EXPECT().
		List(gomock.Any(), &dto.ListDirectoryEntriesRequest{Role: "doctor", Status: "pending", Region: "16", Page: 2, Limit: 10}).
		Return(&dto.DirectoryEntryListResponse{Entries: []dto.DirectoryEntryResponse{}, Total: 25, Page: 2, Limit: 10}, nil)

	rec, body := serve(r, httptest.NewRequest(http.MethodGet, "/directory-entries?role=doctor&status=pending&region=16&page=2&limit=10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 3, body.Meta.TotalPages)
	assert.EqualValues(t, 25, body.Meta.Total)
}

func TestDirectoryEntryHandler_ListInvalidRole(t *testing.T) {
	r, uc := newEntryRouter(t)
	uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidRole)

	rec, _ := serve(r, httptest.NewRequest(http.MethodGet, "/directory-entries?role=dentist", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryEntryHandler_GetSetsETag(t *testing.T) {
	r, uc := newEntryRouter(t)
	id := uuid.New()
	entry := &dto.DirectoryEntryResponse{ID: id, Role: "doctor", Name: "Dr Amina", Status: "pending"}
	uc.EXPECT().Get(gomock.Any(), id).Return(entry, nil).Times(2)

	rec, body := serve(r, httptest.NewRequest(http.MethodGet, "/directory-entries/"+id.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	tag := rec.Header().Get("ETag")
	require.NotEmpty(t, tag)

	req := httptest.NewRequest(http.MethodGet, "/directory-entries/"+id.String(), nil)
	req.Header.Set("If-None-Match", tag)
	rec, _ = serve(r, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDirectoryEntryHandler_GetErrors(t *testing.T) {
	r, uc := newEntryRouter(t)

	rec, _ := serve(r, httptest.NewRequest(http.MethodGet, "/directory-entries/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrEntryNotFound)
	rec, _ = serve(r, httptest.NewRequest(http.MethodGet, "/directory-entries/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDirectoryEntryHandler_Create(t *testing.T) {
	r, uc := newEntryRouter(t)
	uc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *dto.CreateDirectoryEntryRequest) (*dto.DirectoryEntryWriteResponse, error) {
			assert.Equal(t, "doctor", req.Role)
			assert.Equal(t, "Cardiologie", req.Metadata["specialization"])
			return &dto.DirectoryEntryWriteResponse{Entry: dto.DirectoryEntryResponse{ID: uuid.New(), Status: "pending"}}, nil
		})

	payload := `{"role":"doctor","name":"Dr Amina","email":"doc@example.com","password":"secret1","metadata":{"specialization":"Cardiologie","licenseNumber":"LN-42"}}`
	rec, body := serve(r, httptest.NewRequest(http.MethodPost, "/directory-entries", strings.NewReader(payload)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
}

func TestDirectoryEntryHandler_CreateRejectsInvalidPayload(t *testing.T) {
	r, _ := newEntryRouter(t)

	rec, body := serve(r, httptest.NewRequest(http.MethodPost, "/directory-entries", strings.NewReader(`{"role":"dentist","name":"X","email":"nope"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields, ok := body.Error.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "email")

	rec, _ = serve(r, httptest.NewRequest(http.MethodPost, "/directory-entries", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryEntryHandler_CreateErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"missing role fields", &usecase.ValidationError{Fields: []string{"Spécialité"}}, http.StatusBadRequest},
		{"password required", usecase.ErrPasswordRequired, http.StatusBadRequest},
		{"conflict", usecase.ErrEntryConflict, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	payload := `{"role":"doctor","name":"Dr Amina","email":"doc@example.com"}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newEntryRouter(t)
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec, _ := serve(r, httptest.NewRequest(http.MethodPost, "/directory-entries", strings.NewReader(payload)))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestDirectoryEntryHandler_CreateReportsMissingFields(t *testing.T) {
	r, uc := newEntryRouter(t)
	uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &usecase.ValidationError{Fields: []string{"Spécialité", "Numéro de licence"}})

	payload := `{"role":"doctor","name":"Dr Amina","email":"doc@example.com"}`
	rec, body := serve(r, httptest.NewRequest(http.MethodPost, "/directory-entries", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details, ok := body.Error.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Spécialité", "Numéro de licence"}, details["missing_fields"])
}

func TestDirectoryEntryHandler_UpdatePassesOnlySentFields(t *testing.T) {
	r, uc := newEntryRouter(t)
	id := uuid.New()
	uc.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, req *dto.UpdateDirectoryEntryRequest) (*dto.DirectoryEntryWriteResponse, error) {
			require.NotNil(t, req.Phone)
			assert.Equal(t, "0661998877", *req.Phone)
			assert.Nil(t, req.Name)
			assert.Nil(t, req.Email)
			return &dto.DirectoryEntryWriteResponse{Entry: dto.DirectoryEntryResponse{ID: id}}, nil
		})

	rec, _ := serve(r, httptest.NewRequest(http.MethodPatch, "/directory-entries/"+id.String(), strings.NewReader(`{"phone":"0661998877"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDirectoryEntryHandler_UpdateRoleChange(t *testing.T) {
	r, uc := newEntryRouter(t)
	uc.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrRoleChange)

	rec, _ := serve(r, httptest.NewRequest(http.MethodPatch, "/directory-entries/"+uuid.NewString(), strings.NewReader(`{"role":"clinic"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryEntryHandler_UpdateStatus(t *testing.T) {
	r, uc := newEntryRouter(t)
	id := uuid.New()
	uc.EXPECT().
		UpdateStatus(gomock.Any(), id, &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"}).
		Return(&dto.DirectoryEntryResponse{ID: id, Status: "approved"}, nil)

	rec, _ := serve(r, httptest.NewRequest(http.MethodPatch, "/directory-entries/"+id.String()+"/status", strings.NewReader(`{"status":"approved"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(r, httptest.NewRequest(http.MethodPatch, "/directory-entries/"+id.String()+"/status", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryEntryHandler_UpdateStatusInvalid(t *testing.T) {
	r, uc := newEntryRouter(t)
	uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidStatus)

	rec, _ := serve(r, httptest.NewRequest(http.MethodPatch, "/directory-entries/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"archived"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryEntryHandler_Delete(t *testing.T) {
	r, uc := newEntryRouter(t)
	id := uuid.New()
	uc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec, _ := serve(r, httptest.NewRequest(http.MethodDelete, "/directory-entries/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(usecase.ErrEntryNotFound)
	rec, _ = serve(r, httptest.NewRequest(http.MethodDelete, "/directory-entries/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

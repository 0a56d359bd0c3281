package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/usecase"
	"medical-directory-admin/pkg/etag"
	"medical-directory-admin/pkg/response"
	"medical-directory-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DirectoryEntryHandler struct {
	entryUsecase usecase.DirectoryEntryUsecase
	validator    *validator.CustomValidator
}

func NewDirectoryEntryHandler(entryUsecase usecase.DirectoryEntryUsecase, validator *validator.CustomValidator) *DirectoryEntryHandler {
	return &DirectoryEntryHandler{
		entryUsecase: entryUsecase,
		validator:    validator,
	}
}

// List handles listing directory entries
// @Summary List directory entries
// @Tags Directory Entries
// @Security BearerAuth
// @Produce json
// @Param role query string false "Role"
// @Param status query string false "Status"
// @Param region query string false "Region"
// @Param search query string false "Search on name, email and phone"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /admin/directory-entries [get]
func (h *DirectoryEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.entryUsecase.List(r.Context(), &dto.ListDirectoryEntriesRequest{
		Role:   query.Get("role"),
		Status: query.Get("status"),
		Region: query.Get("region"),
		Search: query.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeEntryError(w, err, "Failed to get directory entries")
		return
	}

	meta := response.NewMeta(result.Page, result.Limit, result.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Directory entries retrieved successfully", result.Entries, meta)
}

// Get handles getting one directory entry
// @Summary Get directory entry by ID
// @Tags Directory Entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Response
// @Success 304
// @Failure 404 {object} response.Response
// @Router /admin/directory-entries/{id} [get]
func (h *DirectoryEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.entryUsecase.Get(r.Context(), id)
	if err != nil {
		writeEntryError(w, err, "Failed to get directory entry")
		return
	}

	if tag, err := etag.Of(entry); err == nil {
		w.Header().Set("ETag", tag)
		if etag.Matches(r, tag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	response.Success(w, http.StatusOK, "Directory entry retrieved successfully", entry)
}

// Create handles creating a directory entry
// @Summary Create directory entry
// @Tags Directory Entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDirectoryEntryRequest true "Create Directory Entry Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/directory-entries [post]
func (h *DirectoryEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDirectoryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.entryUsecase.Create(r.Context(), &req)
	if err != nil {
		writeEntryError(w, err, "Failed to create directory entry")
		return
	}

	response.Success(w, http.StatusCreated, "Directory entry created successfully", result)
}

// Update handles partially updating a directory entry
// @Summary Update directory entry
// @Tags Directory Entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Entry ID or linked account ID"
// @Param request body dto.UpdateDirectoryEntryRequest true "Update Directory Entry Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/directory-entries/{id} [patch]
func (h *DirectoryEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDirectoryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.entryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeEntryError(w, err, "Failed to update directory entry")
		return
	}

	response.Success(w, http.StatusOK, "Directory entry updated successfully", result)
}

// UpdateStatus handles approving, rejecting or resetting a directory entry
// @Summary Update directory entry status
// @Tags Directory Entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body dto.UpdateDirectoryEntryStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/directory-entries/{id}/status [patch]
func (h *DirectoryEntryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDirectoryEntryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.entryUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		writeEntryError(w, err, "Failed to update directory entry status")
		return
	}

	response.Success(w, http.StatusOK, "Directory entry status updated successfully", entry)
}

// Delete handles deleting a directory entry. The linked account is kept.
// @Summary Delete directory entry
// @Tags Directory Entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/directory-entries/{id} [delete]
func (h *DirectoryEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	if err := h.entryUsecase.Delete(r.Context(), id); err != nil {
		writeEntryError(w, err, "Failed to delete directory entry")
		return
	}

	response.Success(w, http.StatusOK, "Directory entry deleted successfully", nil)
}

func entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid directory entry ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func writeEntryError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Error(), map[string][]string{
			"missing_fields": validationErr.Fields,
		})
	case errors.Is(err, usecase.ErrPasswordRequired),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrRoleChange):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrEntryNotFound):
		response.NotFound(w, "Directory entry not found")
	case errors.Is(err, usecase.ErrEntryConflict):
		response.Error(w, http.StatusConflict, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

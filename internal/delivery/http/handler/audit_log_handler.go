package handler

import (
	"net/http"
	"strconv"

	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/usecase"
	"medical-directory-admin/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if err == usecase.ErrAuditLogNotFound {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), &dto.ListAuditLogsRequest{Page: page, Limit: limit})
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	meta := response.NewMeta(result.Page, result.Limit, result.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", result.Logs, meta)
}

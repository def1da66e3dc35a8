package handler

import (
	"net/http"
	"strconv"

	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetRecentAuditLogs handles listing recent audit log entries
// @Summary List audit logs
// @Description List recent audit log entries, newest first
// @Tags Audit Logs
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) GetRecentAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	logs, err := h.auditLogUsecase.GetRecentAuditLogs(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

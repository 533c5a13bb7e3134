package handler

import (
	"net/http"
	"strconv"

	"github.com/AlexCL0320/backend-banco-angeles/internal/converter"
	"github.com/AlexCL0320/backend-banco-angeles/internal/usecase"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	log             *logrus.Logger
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(log *logrus.Logger, auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		log:             log,
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetByID(r.Context(), auditLogID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", converter.AuditLogToResponse(auditLog))
}

// GetAllAuditLogs pages through the audit trail, newest first
// @Summary List audit logs
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = usecase.NormalizePage(page, limit)

	auditLogs, total, err := h.auditLogUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	response.Paginated(w, "Audit logs retrieved successfully", converter.AuditLogsToResponses(auditLogs), response.NewMeta(page, limit, total))
}

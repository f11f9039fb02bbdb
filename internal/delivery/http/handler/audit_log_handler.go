package handler

import (
	"net/http"

	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/usecase"
	"clinic-queue/pkg/response"
)

type AuditLogHandler struct {
	getAll usecase.Command[dto.EmptyRequest, dto.AuditLogsArrayResponse]
}

func NewAuditLogHandler(getAll usecase.Command[dto.EmptyRequest, dto.AuditLogsArrayResponse]) *AuditLogHandler {
	return &AuditLogHandler{
		getAll: getAll,
	}
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	resp := h.getAll.Execute(r.Context(), &dto.EmptyRequest{})
	response.JSON(w, resp.Code, resp)
}

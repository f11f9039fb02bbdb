package dto

import (
	"clinic-queue/internal/domain/entity"
	"time"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogsArrayResponse struct {
	BaseResponse
	Logs []AuditLogResponse `json:"logs"`
}

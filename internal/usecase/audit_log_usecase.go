package usecase

import (
	"context"

	"clinic-queue/internal/converter"
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ Command[dto.EmptyRequest, dto.AuditLogsArrayResponse] = (*GetAllAuditLogsCommand)(nil)

// GetAllAuditLogsCommand lists the audit trail, newest first.
type GetAllAuditLogsCommand struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewGetAllAuditLogsCommand(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) *GetAllAuditLogsCommand {
	return &GetAllAuditLogsCommand{
		db:           db,
		log:          orDiscard(log),
		auditLogRepo: auditLogRepo,
	}
}

func (c *GetAllAuditLogsCommand) Execute(ctx context.Context, _ *dto.EmptyRequest) *dto.AuditLogsArrayResponse {
	logs, err := c.auditLogRepo.FindAll(c.db.WithContext(ctx))
	if err != nil {
		c.log.Warnf("Failed to find all audit logs: %+v", err)
		return &dto.AuditLogsArrayResponse{BaseResponse: dto.InternalError(), Logs: []dto.AuditLogResponse{}}
	}

	return &dto.AuditLogsArrayResponse{
		BaseResponse: dto.OK(),
		Logs:         converter.AuditLogsToResponses(logs),
	}
}

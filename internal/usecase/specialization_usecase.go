package usecase

import (
	"context"
	"fmt"

	"clinic-queue/internal/converter"
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
	"clinic-queue/internal/domain/repository"
	"clinic-queue/internal/service"
	"clinic-queue/internal/validation"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	_ Command[dto.AddOrUpdateSpecializationRequest, dto.BaseResponse] = (*AddOrUpdateSpecializationCommand)(nil)
	_ Command[dto.ByIDRequest, dto.BaseResponse]                      = (*DeleteSpecializationCommand)(nil)
	_ Command[dto.EmptyRequest, dto.SpecializationsArrayResponse]     = (*GetAllSpecializationsCommand)(nil)
)

func specializationSnapshot(s *entity.Specialization) interface{} {
	return converter.SpecializationConverter{}.ToResponse(s)
}

type AddOrUpdateSpecializationCommand struct {
	upserter upserter[entity.Specialization, *entity.Specialization]
}

func NewAddOrUpdateSpecializationCommand(
	db *gorm.DB,
	log *logrus.Logger,
	specializationRepo repository.SpecializationRepository,
	specializationValidator validation.Validator[entity.Specialization],
	auditService service.AuditService,
) *AddOrUpdateSpecializationCommand {
	return &AddOrUpdateSpecializationCommand{
		upserter: upserter[entity.Specialization, *entity.Specialization]{
			kind:      "Specialization",
			db:        db,
			log:       orDiscard(log),
			repo:      specializationRepo,
			validator: specializationValidator,
			audit:     auditService,
			convert:   specializationSnapshot,
		},
	}
}

func (c *AddOrUpdateSpecializationCommand) Execute(ctx context.Context, req *dto.AddOrUpdateSpecializationRequest) *dto.BaseResponse {
	return c.upserter.run(ctx, upsertStep[entity.Specialization]{
		id:      req.ID,
		subject: fmt.Sprintf("specialization %s", req.Name),
		isDuplicate: func(s *entity.Specialization) bool {
			return s.Name == req.Name
		},
		duplicateMessage: fmt.Sprintf("Specialization '%s' already exists.", req.Name),
		apply: func(s *entity.Specialization) {
			s.Name = req.Name
		},
	})
}

type DeleteSpecializationCommand struct {
	deleter deleter[entity.Specialization, *entity.Specialization]
}

func NewDeleteSpecializationCommand(
	db *gorm.DB,
	log *logrus.Logger,
	specializationRepo repository.SpecializationRepository,
	specializationValidator validation.Validator[entity.Specialization],
	auditService service.AuditService,
) *DeleteSpecializationCommand {
	return &DeleteSpecializationCommand{
		deleter: deleter[entity.Specialization, *entity.Specialization]{
			kind:      "Specialization",
			db:        db,
			log:       orDiscard(log),
			repo:      specializationRepo,
			validator: specializationValidator,
			audit:     auditService,
			convert:   specializationSnapshot,
		},
	}
}

func (c *DeleteSpecializationCommand) Execute(ctx context.Context, req *dto.ByIDRequest) *dto.BaseResponse {
	return c.deleter.run(ctx, req.ID)
}

type GetAllSpecializationsCommand struct {
	db                 *gorm.DB
	log                *logrus.Logger
	specializationRepo repository.SpecializationRepository
	converter          converter.Converter[entity.Specialization, dto.SpecializationResponse]
}

func NewGetAllSpecializationsCommand(
	db *gorm.DB,
	log *logrus.Logger,
	specializationRepo repository.SpecializationRepository,
	specializationConverter converter.Converter[entity.Specialization, dto.SpecializationResponse],
) *GetAllSpecializationsCommand {
	return &GetAllSpecializationsCommand{
		db:                 db,
		log:                orDiscard(log),
		specializationRepo: specializationRepo,
		converter:          specializationConverter,
	}
}

func (c *GetAllSpecializationsCommand) Execute(ctx context.Context, _ *dto.EmptyRequest) *dto.SpecializationsArrayResponse {
	specializations, base := listAll(ctx, c.db, c.log, c.specializationRepo, c.converter, "specializations")
	return &dto.SpecializationsArrayResponse{BaseResponse: base, Specializations: specializations}
}

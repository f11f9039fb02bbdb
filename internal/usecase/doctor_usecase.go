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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	_ Command[dto.AddOrUpdateDoctorRequest, dto.BaseResponse] = (*AddOrUpdateDoctorCommand)(nil)
	_ Command[dto.ByIDRequest, dto.BaseResponse]              = (*DeleteDoctorCommand)(nil)
	_ Command[dto.EmptyRequest, dto.DoctorsArrayResponse]     = (*GetAllDoctorsCommand)(nil)
)

func doctorSnapshot(d *entity.Doctor) interface{} {
	return converter.DoctorConverter{}.ToResponse(d)
}

// AddOrUpdateDoctorCommand creates a doctor or updates an existing one. The
// doctor's specializations are replaced by exactly the requested set.
type AddOrUpdateDoctorCommand struct {
	upserter           upserter[entity.Doctor, *entity.Doctor]
	specializationRepo repository.SpecializationRepository
}

// NewAddOrUpdateDoctorCommand builds the command. doctorValidator, log and
// auditService are optional.
func NewAddOrUpdateDoctorCommand(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specializationRepo repository.SpecializationRepository,
	doctorValidator validation.Validator[entity.Doctor],
	auditService service.AuditService,
) *AddOrUpdateDoctorCommand {
	return &AddOrUpdateDoctorCommand{
		upserter: upserter[entity.Doctor, *entity.Doctor]{
			kind:      "Doctor",
			db:        db,
			log:       orDiscard(log),
			repo:      doctorRepo,
			validator: doctorValidator,
			audit:     auditService,
			convert:   doctorSnapshot,
		},
		specializationRepo: specializationRepo,
	}
}

func (c *AddOrUpdateDoctorCommand) Execute(ctx context.Context, req *dto.AddOrUpdateDoctorRequest) *dto.BaseResponse {
	var specializations []*entity.Specialization

	return c.upserter.run(ctx, upsertStep[entity.Doctor]{
		id:      req.ID,
		subject: fmt.Sprintf("doctor %s (%s)", req.Name, req.PhoneNumber),
		isDuplicate: func(d *entity.Doctor) bool {
			return d.Name == req.Name && d.PhoneNumber == req.PhoneNumber
		},
		duplicateMessage: fmt.Sprintf("Doctor with phone number %s already exists.", req.PhoneNumber),
		resolve: func(tx *gorm.DB) (string, error) {
			wanted := make(map[uuid.UUID]struct{}, len(req.SpecializationIDs))
			for _, id := range req.SpecializationIDs {
				wanted[id] = struct{}{}
			}

			found, err := c.specializationRepo.GetAllWhere(tx, func(s *entity.Specialization) bool {
				_, ok := wanted[s.ID]
				return ok
			})
			if err != nil {
				return "", err
			}
			if len(found) != len(wanted) {
				return "One or more specializations not found.", nil
			}

			specializations = found
			return "", nil
		},
		apply: func(d *entity.Doctor) {
			d.Name = req.Name
			d.PhoneNumber = req.PhoneNumber
			d.OfficeNumber = req.OfficeNumber
			d.WorkSchedule = req.WorkSchedule
			d.Specializations = specializations
		},
	})
}

// DeleteDoctorCommand removes a doctor together with its specialization links.
type DeleteDoctorCommand struct {
	deleter deleter[entity.Doctor, *entity.Doctor]
}

func NewDeleteDoctorCommand(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	doctorValidator validation.Validator[entity.Doctor],
	auditService service.AuditService,
) *DeleteDoctorCommand {
	return &DeleteDoctorCommand{
		deleter: deleter[entity.Doctor, *entity.Doctor]{
			kind:      "Doctor",
			db:        db,
			log:       orDiscard(log),
			repo:      doctorRepo,
			validator: doctorValidator,
			audit:     auditService,
			convert:   doctorSnapshot,
		},
	}
}

func (c *DeleteDoctorCommand) Execute(ctx context.Context, req *dto.ByIDRequest) *dto.BaseResponse {
	return c.deleter.run(ctx, req.ID)
}

type GetAllDoctorsCommand struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	converter  converter.Converter[entity.Doctor, dto.DoctorResponse]
}

func NewGetAllDoctorsCommand(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	doctorConverter converter.Converter[entity.Doctor, dto.DoctorResponse],
) *GetAllDoctorsCommand {
	return &GetAllDoctorsCommand{
		db:         db,
		log:        orDiscard(log),
		doctorRepo: doctorRepo,
		converter:  doctorConverter,
	}
}

func (c *GetAllDoctorsCommand) Execute(ctx context.Context, _ *dto.EmptyRequest) *dto.DoctorsArrayResponse {
	doctors, base := listAll(ctx, c.db, c.log, c.doctorRepo, c.converter, "doctors")
	return &dto.DoctorsArrayResponse{BaseResponse: base, Doctors: doctors}
}

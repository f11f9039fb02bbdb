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
	_ Command[dto.AddOrUpdatePatientRequest, dto.BaseResponse] = (*AddOrUpdatePatientCommand)(nil)
	_ Command[dto.ByIDRequest, dto.BaseResponse]               = (*DeletePatientCommand)(nil)
	_ Command[dto.EmptyRequest, dto.PatientsArrayResponse]     = (*GetAllPatientsCommand)(nil)
)

func patientSnapshot(p *entity.Patient) interface{} {
	return converter.PatientConverter{}.ToResponse(p)
}

type AddOrUpdatePatientCommand struct {
	upserter upserter[entity.Patient, *entity.Patient]
}

func NewAddOrUpdatePatientCommand(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientValidator validation.Validator[entity.Patient],
	auditService service.AuditService,
) *AddOrUpdatePatientCommand {
	return &AddOrUpdatePatientCommand{
		upserter: upserter[entity.Patient, *entity.Patient]{
			kind:      "Patient",
			db:        db,
			log:       orDiscard(log),
			repo:      patientRepo,
			validator: patientValidator,
			audit:     auditService,
			convert:   patientSnapshot,
		},
	}
}

func (c *AddOrUpdatePatientCommand) Execute(ctx context.Context, req *dto.AddOrUpdatePatientRequest) *dto.BaseResponse {
	return c.upserter.run(ctx, upsertStep[entity.Patient]{
		id:      req.ID,
		subject: fmt.Sprintf("patient %s (%s)", req.Name, req.PhoneNumber),
		isDuplicate: func(p *entity.Patient) bool {
			return p.Name == req.Name && p.PhoneNumber == req.PhoneNumber
		},
		duplicateMessage: fmt.Sprintf("Patient with phone number %s already exists.", req.PhoneNumber),
		apply: func(p *entity.Patient) {
			p.Name = req.Name
			p.Birthday = req.Birthday.Time()
			p.Gender = entity.Gender(req.Gender)
			p.PhoneNumber = req.PhoneNumber
			p.InsuranceNumber = req.InsuranceNumber
		},
	})
}

type DeletePatientCommand struct {
	deleter deleter[entity.Patient, *entity.Patient]
}

func NewDeletePatientCommand(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientValidator validation.Validator[entity.Patient],
	auditService service.AuditService,
) *DeletePatientCommand {
	return &DeletePatientCommand{
		deleter: deleter[entity.Patient, *entity.Patient]{
			kind:      "Patient",
			db:        db,
			log:       orDiscard(log),
			repo:      patientRepo,
			validator: patientValidator,
			audit:     auditService,
			convert:   patientSnapshot,
		},
	}
}

func (c *DeletePatientCommand) Execute(ctx context.Context, req *dto.ByIDRequest) *dto.BaseResponse {
	return c.deleter.run(ctx, req.ID)
}

type GetAllPatientsCommand struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	converter   converter.Converter[entity.Patient, dto.PatientResponse]
}

func NewGetAllPatientsCommand(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientConverter converter.Converter[entity.Patient, dto.PatientResponse],
) *GetAllPatientsCommand {
	return &GetAllPatientsCommand{
		db:          db,
		log:         orDiscard(log),
		patientRepo: patientRepo,
		converter:   patientConverter,
	}
}

func (c *GetAllPatientsCommand) Execute(ctx context.Context, _ *dto.EmptyRequest) *dto.PatientsArrayResponse {
	patients, base := listAll(ctx, c.db, c.log, c.patientRepo, c.converter, "patients")
	return &dto.PatientsArrayResponse{BaseResponse: base, Patients: patients}
}

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
	_ Command[dto.AddOrUpdateAppointmentRequest, dto.BaseResponse] = (*AddOrUpdateAppointmentCommand)(nil)
	_ Command[dto.ByIDRequest, dto.BaseResponse]                   = (*DeleteAppointmentCommand)(nil)
	_ Command[dto.EmptyRequest, dto.AppointmentsArrayResponse]     = (*GetAllAppointmentsCommand)(nil)
	_ Command[dto.ByIDRequest, dto.AppointmentsArrayResponse]      = (*GetAppointmentsByDoctorCommand)(nil)
)

func appointmentSnapshot(a *entity.Appointment) interface{} {
	return converter.AppointmentConverter{}.ToResponse(a)
}

// AddOrUpdateAppointmentCommand books an appointment or updates an existing
// one. Any number of appointments may share a doctor, patient and date.
type AddOrUpdateAppointmentCommand struct {
	upserter    upserter[entity.Appointment, *entity.Appointment]
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewAddOrUpdateAppointmentCommand(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentValidator validation.Validator[entity.Appointment],
	auditService service.AuditService,
) *AddOrUpdateAppointmentCommand {
	return &AddOrUpdateAppointmentCommand{
		upserter: upserter[entity.Appointment, *entity.Appointment]{
			kind:      "Appointment",
			db:        db,
			log:       orDiscard(log),
			repo:      appointmentRepo,
			validator: appointmentValidator,
			audit:     auditService,
			convert:   appointmentSnapshot,
		},
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (c *AddOrUpdateAppointmentCommand) Execute(ctx context.Context, req *dto.AddOrUpdateAppointmentRequest) *dto.BaseResponse {
	var (
		doctor  *entity.Doctor
		patient *entity.Patient
	)

	return c.upserter.run(ctx, upsertStep[entity.Appointment]{
		id:      req.ID,
		subject: fmt.Sprintf("appointment for DoctorId=%s, PatientId=%s", req.DoctorID, req.PatientID),
		resolve: func(tx *gorm.DB) (string, error) {
			var err error
			doctor, err = c.doctorRepo.GetOne(tx, func(d *entity.Doctor) bool { return d.ID == req.DoctorID })
			if err != nil {
				return "", err
			}
			if doctor == nil {
				return "Doctor not found.", nil
			}

			patient, err = c.patientRepo.GetOne(tx, func(p *entity.Patient) bool { return p.ID == req.PatientID })
			if err != nil {
				return "", err
			}
			if patient == nil {
				return "Patient not found.", nil
			}
			return "", nil
		},
		apply: func(a *entity.Appointment) {
			a.AppointmentDate = req.AppointmentDate
			a.ClinicalRecords = req.ClinicalRecords
			a.Doctor = doctor
			a.DoctorID = doctor.ID
			a.Patient = patient
			a.PatientID = patient.ID
		},
	})
}

type DeleteAppointmentCommand struct {
	deleter deleter[entity.Appointment, *entity.Appointment]
}

func NewDeleteAppointmentCommand(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	appointmentValidator validation.Validator[entity.Appointment],
	auditService service.AuditService,
) *DeleteAppointmentCommand {
	return &DeleteAppointmentCommand{
		deleter: deleter[entity.Appointment, *entity.Appointment]{
			kind:      "Appointment",
			db:        db,
			log:       orDiscard(log),
			repo:      appointmentRepo,
			validator: appointmentValidator,
			audit:     auditService,
			convert:   appointmentSnapshot,
		},
	}
}

func (c *DeleteAppointmentCommand) Execute(ctx context.Context, req *dto.ByIDRequest) *dto.BaseResponse {
	return c.deleter.run(ctx, req.ID)
}

type GetAllAppointmentsCommand struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	converter       converter.Converter[entity.Appointment, dto.AppointmentResponse]
}

func NewGetAllAppointmentsCommand(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	appointmentConverter converter.Converter[entity.Appointment, dto.AppointmentResponse],
) *GetAllAppointmentsCommand {
	return &GetAllAppointmentsCommand{
		db:              db,
		log:             orDiscard(log),
		appointmentRepo: appointmentRepo,
		converter:       appointmentConverter,
	}
}

func (c *GetAllAppointmentsCommand) Execute(ctx context.Context, _ *dto.EmptyRequest) *dto.AppointmentsArrayResponse {
	appointments, base := listAll(ctx, c.db, c.log, c.appointmentRepo, c.converter, "appointments")
	return &dto.AppointmentsArrayResponse{BaseResponse: base, Appointments: appointments}
}

// GetAppointmentsByDoctorCommand lists the appointments of one doctor.
type GetAppointmentsByDoctorCommand struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	converter  converter.Converter[entity.Appointment, dto.AppointmentResponse]
}

func NewGetAppointmentsByDoctorCommand(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentConverter converter.Converter[entity.Appointment, dto.AppointmentResponse],
) *GetAppointmentsByDoctorCommand {
	return &GetAppointmentsByDoctorCommand{
		db:         db,
		log:        orDiscard(log),
		doctorRepo: doctorRepo,
		converter:  appointmentConverter,
	}
}

func (c *GetAppointmentsByDoctorCommand) Execute(ctx context.Context, req *dto.ByIDRequest) *dto.AppointmentsArrayResponse {
	c.log.Infof("RQST: Get appointments of doctor ID %s", req.ID)

	doctor, err := c.doctorRepo.GetOne(c.db.WithContext(ctx), func(d *entity.Doctor) bool { return d.ID == req.ID })
	if err != nil {
		c.log.WithError(err).Errorf("RQST: failed: unable to load doctor ID %s", req.ID)
		return &dto.AppointmentsArrayResponse{BaseResponse: dto.InternalError(), Appointments: []dto.AppointmentResponse{}}
	}
	if doctor == nil {
		c.log.Warnf("RQST: Doctor ID %s not found", req.ID)
		return &dto.AppointmentsArrayResponse{BaseResponse: dto.NotFound("Doctor not found"), Appointments: []dto.AppointmentResponse{}}
	}

	return &dto.AppointmentsArrayResponse{
		BaseResponse: dto.OK(),
		Appointments: converter.ToResponses(c.converter, doctor.Appointments),
	}
}

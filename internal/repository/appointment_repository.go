package repository

import (
	"clinic-queue/internal/domain/entity"
	domainRepo "clinic-queue/internal/domain/repository"
)

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &GormRepository[entity.Appointment, *entity.Appointment]{
		preloads: []string{"Doctor", "Patient"},
	}
}

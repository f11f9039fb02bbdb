package repository

import (
	"clinic-queue/internal/domain/entity"
	domainRepo "clinic-queue/internal/domain/repository"
)

func NewPatientRepository() domainRepo.PatientRepository {
	return &GormRepository[entity.Patient, *entity.Patient]{
		preloads: []string{"Appointments"},
	}
}

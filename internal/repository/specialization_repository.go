package repository

import (
	"clinic-queue/internal/domain/entity"
	domainRepo "clinic-queue/internal/domain/repository"
)

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &GormRepository[entity.Specialization, *entity.Specialization]{
		preloads: []string{"Doctors"},
		cascade:  []string{"Doctors"},
	}
}

package repository

import (
	"clinic-queue/internal/domain/entity"
	domainRepo "clinic-queue/internal/domain/repository"

	"gorm.io/gorm"
)

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &GormRepository[entity.Doctor, *entity.Doctor]{
		preloads:         []string{"Specializations", "Appointments", "Appointments.Patient"},
		cascade:          []string{"Specializations"},
		saveAssociations: replaceDoctorSpecializations,
	}
}

// replaceDoctorSpecializations makes the join table mirror doctor.Specializations
// exactly. Bare copies are written so that relations loaded on the
// specializations themselves are left alone.
func replaceDoctorSpecializations(db *gorm.DB, doctor *entity.Doctor) error {
	association := db.Model(doctor).Association("Specializations")
	if len(doctor.Specializations) == 0 {
		return association.Clear()
	}

	refs := make([]*entity.Specialization, len(doctor.Specializations))
	for i, s := range doctor.Specializations {
		refs[i] = &entity.Specialization{ID: s.ID, Name: s.Name}
	}
	return association.Replace(refs)
}

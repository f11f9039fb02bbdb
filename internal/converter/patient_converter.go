package converter

import (
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
)

// PatientConverter converts a Patient entity to PatientResponse DTO
type PatientConverter struct{}

func (PatientConverter) ToResponse(patient *entity.Patient) dto.PatientResponse {
	return dto.PatientResponse{
		ID:              patient.ID,
		Name:            patient.Name,
		Birthday:        patient.Birthday.Format(dto.DateLayout),
		Gender:          string(patient.Gender),
		PhoneNumber:     patient.PhoneNumber,
		InsuranceNumber: patient.InsuranceNumber,
	}
}

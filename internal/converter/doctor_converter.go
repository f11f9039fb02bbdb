package converter

import (
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
)

// DoctorConverter converts a Doctor entity to DoctorResponse DTO
type DoctorConverter struct{}

func (DoctorConverter) ToResponse(doctor *entity.Doctor) dto.DoctorResponse {
	specializations := make([]string, len(doctor.Specializations))
	for i, s := range doctor.Specializations {
		specializations[i] = s.Name
	}

	return dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		PhoneNumber:     doctor.PhoneNumber,
		OfficeNumber:    doctor.OfficeNumber,
		WorkSchedule:    doctor.WorkSchedule,
		Specializations: specializations,
	}
}

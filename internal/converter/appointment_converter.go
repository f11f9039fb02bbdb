package converter

import (
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
)

// AppointmentConverter converts an Appointment to AppointmentResponse DTO.
// The appointment's patient must be loaded.
type AppointmentConverter struct{}

func (AppointmentConverter) ToResponse(appointment *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate,
		ClinicalRecords: appointment.ClinicalRecords,
		PatientID:       appointment.Patient.ID,
		PatientName:     appointment.Patient.Name,
	}
}

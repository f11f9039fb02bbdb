package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// AddOrUpdateAppointmentRequest adds an appointment when ID is nil and updates it otherwise.
type AddOrUpdateAppointmentRequest struct {
	ID              *uuid.UUID `json:"id,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	ClinicalRecords *string    `json:"clinical_records,omitempty"`
	DoctorID        uuid.UUID  `json:"doctor_id" validate:"required"`
	PatientID       uuid.UUID  `json:"patient_id" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	AppointmentDate *time.Time `json:"appointment_date"`
	ClinicalRecords *string    `json:"clinical_records"`
	PatientID       uuid.UUID  `json:"patient_id"`
	PatientName     string     `json:"patient_name"`
}

type AppointmentsArrayResponse struct {
	BaseResponse
	Appointments []AppointmentResponse `json:"appointments"`
}

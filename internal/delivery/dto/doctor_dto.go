package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// AddOrUpdateDoctorRequest adds a doctor when ID is nil and updates it otherwise.
// SpecializationIDs replaces the doctor's specializations as a whole.
type AddOrUpdateDoctorRequest struct {
	ID                *uuid.UUID  `json:"id,omitempty"`
	Name              string      `json:"name" validate:"required,max=255"`
	PhoneNumber       string      `json:"phone_number" validate:"required,max=32"`
	OfficeNumber      string      `json:"office_number" validate:"max=32"`
	WorkSchedule      string      `json:"work_schedule"`
	SpecializationIDs []uuid.UUID `json:"specialization_ids"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number"`
	OfficeNumber    string    `json:"office_number"`
	WorkSchedule    string    `json:"work_schedule"`
	Specializations []string  `json:"specializations"`
}

type DoctorsArrayResponse struct {
	BaseResponse
	Doctors []DoctorResponse `json:"doctors"`
}

package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// AddOrUpdatePatientRequest adds a patient when ID is nil and updates it otherwise.
type AddOrUpdatePatientRequest struct {
	ID              *uuid.UUID `json:"id,omitempty"`
	Name            string     `json:"name" validate:"required,max=255"`
	Birthday        Date       `json:"birthday" validate:"required,notfuture"`
	Gender          string     `json:"gender" validate:"required,oneof=male female"`
	PhoneNumber     string     `json:"phone_number" validate:"required,max=32"`
	InsuranceNumber string     `json:"insurance_number" validate:"max=64"`
}

// Response DTOs

type PatientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Birthday        string    `json:"birthday"`
	Gender          string    `json:"gender"`
	PhoneNumber     string    `json:"phone_number"`
	InsuranceNumber string    `json:"insurance_number"`
}

type PatientsArrayResponse struct {
	BaseResponse
	Patients []PatientResponse `json:"patients"`
}

package dto

import "github.com/google/uuid"

// Request DTOs

type AddOrUpdateSpecializationRequest struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Name string     `json:"name" validate:"required,max=255"`
}

// Response DTOs

type SpecializationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SpecializationsArrayResponse struct {
	BaseResponse
	Specializations []SpecializationResponse `json:"specializations"`
}

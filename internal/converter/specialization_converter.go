package converter

import (
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
)

type SpecializationConverter struct{}

func (SpecializationConverter) ToResponse(specialization *entity.Specialization) dto.SpecializationResponse {
	return dto.SpecializationResponse{
		ID:   specialization.ID,
		Name: specialization.Name,
	}
}

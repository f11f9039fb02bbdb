package usecase

import (
	"context"
	"testing"

	"clinic-queue/internal/converter"
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
	"clinic-queue/internal/repository"
	"clinic-queue/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrUpdateSpecialization_AddAndRename(t *testing.T) {
	db := setupTestDB(t)
	cmd := NewAddOrUpdateSpecializationCommand(db, nil, repository.NewSpecializationRepository(), validation.NewStructValidator[entity.Specialization](), nil)

	resp := cmd.Execute(context.Background(), &dto.AddOrUpdateSpecializationRequest{Name: "Cardiology"})
	require.Equal(t, dto.CodeOK, resp.Code)

	stored, err := repository.NewSpecializationRepository().GetAll(db)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	resp = cmd.Execute(context.Background(), &dto.AddOrUpdateSpecializationRequest{ID: &stored[0].ID, Name: "Cardiac Surgery"})
	assert.Equal(t, dto.CodeOK, resp.Code)

	stored, err = repository.NewSpecializationRepository().GetAll(db)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Cardiac Surgery", stored[0].Name)
}

func TestAddOrUpdateSpecialization_DuplicateNameConflicts(t *testing.T) {
	db := setupTestDB(t)
	seedSpecialization(t, db, "Cardiology")
	cmd := NewAddOrUpdateSpecializationCommand(db, nil, repository.NewSpecializationRepository(), nil, nil)

	resp := cmd.Execute(context.Background(), &dto.AddOrUpdateSpecializationRequest{Name: "Cardiology"})

	assert.Equal(t, dto.CodeConflict, resp.Code)
	assert.Equal(t, "Specialization 'Cardiology' already exists.", resp.Message)
	assert.Equal(t, int64(1), countRows(t, db, &entity.Specialization{}))
}

func TestAddOrUpdateSpecialization_EmptyNameFailsValidation(t *testing.T) {
	db := setupTestDB(t)
	cmd := NewAddOrUpdateSpecializationCommand(db, nil, repository.NewSpecializationRepository(), validation.NewStructValidator[entity.Specialization](), nil)

	resp := cmd.Execute(context.Background(), &dto.AddOrUpdateSpecializationRequest{Name: ""})

	assert.Equal(t, dto.CodeValidationFailed, resp.Code)
	assert.Zero(t, countRows(t, db, &entity.Specialization{}))
}

func TestDeleteSpecialization_UsedByDoctorConflicts(t *testing.T) {
	db := setupTestDB(t)
	cardiology := seedSpecialization(t, db, "Cardiology")
	seedDoctor(t, db, "Dr. House", "99999", cardiology)
	cmd := NewDeleteSpecializationCommand(db, nil, repository.NewSpecializationRepository(), validation.SpecializationDeletionValidator(), nil)

	resp := cmd.Execute(context.Background(), &dto.ByIDRequest{ID: cardiology.ID})

	assert.Equal(t, dto.CodeConflict, resp.Code)
	assert.Equal(t, "Specialization cannot be deleted due to dependencies", resp.Message)
	assert.Equal(t, int64(1), countRows(t, db, &entity.Specialization{}))
}

func TestDeleteSpecialization_WithoutValidatorUnlinksDoctors(t *testing.T) {
	db := setupTestDB(t)
	cardiology := seedSpecialization(t, db, "Cardiology")
	seedDoctor(t, db, "Dr. House", "99999", cardiology)
	cmd := NewDeleteSpecializationCommand(db, nil, repository.NewSpecializationRepository(), nil, nil)

	resp := cmd.Execute(context.Background(), &dto.ByIDRequest{ID: cardiology.ID})

	assert.Equal(t, dto.CodeOK, resp.Code)
	assert.Zero(t, countRows(t, db, &entity.Specialization{}))
	assert.Empty(t, loadDoctor(t, db, "Dr. House").Specializations)
}

func TestDeleteSpecialization_UnknownIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	cmd := NewDeleteSpecializationCommand(db, nil, repository.NewSpecializationRepository(), nil, nil)

	resp := cmd.Execute(context.Background(), &dto.ByIDRequest{ID: uuid.New()})

	assert.Equal(t, dto.CodeNotFound, resp.Code)
}

func TestGetAllSpecializations(t *testing.T) {
	db := setupTestDB(t)
	seedSpecialization(t, db, "Cardiology")
	seedSpecialization(t, db, "Surgery")
	cmd := NewGetAllSpecializationsCommand(db, nil, repository.NewSpecializationRepository(), converter.SpecializationConverter{})

	resp := cmd.Execute(context.Background(), &dto.EmptyRequest{})

	assert.Equal(t, dto.CodeOK, resp.Code)
	names := make([]string, len(resp.Specializations))
	for i, s := range resp.Specializations {
		names[i] = s.Name
	}
	assert.ElementsMatch(t, []string{"Cardiology", "Surgery"}, names)
}

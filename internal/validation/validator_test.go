package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-queue/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_Doctor(t *testing.T) {
	v := NewStructValidator[entity.Doctor]()

	ok, err := v.Validate(context.Background(), &entity.Doctor{Name: "Dr. Who", PhoneNumber: "00000"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.Validate(context.Background(), &entity.Doctor{Name: "", PhoneNumber: "00000"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStructValidator_PatientGender(t *testing.T) {
	v := NewStructValidator[entity.Patient]()
	patient := &entity.Patient{
		Name:        "Jane Doe",
		Birthday:    time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:      entity.Gender("other"),
		PhoneNumber: "555-0101",
	}

	ok, err := v.Validate(context.Background(), patient)
	require.NoError(t, err)
	assert.False(t, ok)

	patient.Gender = entity.GenderFemale
	ok, err = v.Validate(context.Background(), patient)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeletionValidators(t *testing.T) {
	ctx := context.Background()

	ok, _ := DoctorDeletionValidator().Validate(ctx, &entity.Doctor{})
	assert.True(t, ok)
	ok, _ = DoctorDeletionValidator().Validate(ctx, &entity.Doctor{Appointments: []*entity.Appointment{{}}})
	assert.False(t, ok)

	ok, _ = PatientDeletionValidator().Validate(ctx, &entity.Patient{Appointments: []*entity.Appointment{{}}})
	assert.False(t, ok)

	ok, _ = SpecializationDeletionValidator().Validate(ctx, &entity.Specialization{})
	assert.True(t, ok)
	ok, _ = SpecializationDeletionValidator().Validate(ctx, &entity.Specialization{Doctors: []*entity.Doctor{{}}})
	assert.False(t, ok)

	ok, _ = AppointmentReferencesValidator().Validate(ctx, &entity.Appointment{Doctor: &entity.Doctor{}})
	assert.False(t, ok)
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	pass := Func[entity.Doctor](func(context.Context, *entity.Doctor) (bool, error) { return true, nil })
	reject := Func[entity.Doctor](func(context.Context, *entity.Doctor) (bool, error) { return false, nil })
	boom := errors.New("lookup failed")
	broken := Func[entity.Doctor](func(context.Context, *entity.Doctor) (bool, error) { return false, boom })

	ok, err := Chain[entity.Doctor](pass, pass).Validate(ctx, &entity.Doctor{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Chain[entity.Doctor](pass, reject, broken).Validate(ctx, &entity.Doctor{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Chain[entity.Doctor](pass, broken).Validate(ctx, &entity.Doctor{})
	assert.ErrorIs(t, err, boom)
}

// Package validation holds the business-rule validators consulted by the
// add-or-update and delete commands.
package validation

import (
	"context"

	"clinic-queue/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// Validator decides whether an entity is acceptable. A false result is a
// rejection; a non-nil error means the decision itself could not be made.
type Validator[T any] interface {
	Validate(ctx context.Context, item *T) (bool, error)
}

// Func adapts a plain function to Validator.
type Func[T any] func(ctx context.Context, item *T) (bool, error)

func (f Func[T]) Validate(ctx context.Context, item *T) (bool, error) {
	return f(ctx, item)
}

// Chain passes only when every validator passes. It stops at the first
// rejection or error.
func Chain[T any](validators ...Validator[T]) Validator[T] {
	return Func[T](func(ctx context.Context, item *T) (bool, error) {
		for _, v := range validators {
			ok, err := v.Validate(ctx, item)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	})
}

// StructValidator checks the `validate` struct tags of an entity.
type StructValidator[T any] struct {
	validate *validator.Validate
}

func NewStructValidator[T any]() *StructValidator[T] {
	return &StructValidator[T]{validate: validator.New()}
}

func (v *StructValidator[T]) Validate(ctx context.Context, item *T) (bool, error) {
	err := v.validate.StructCtx(ctx, item)
	if err == nil {
		return true, nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return false, nil
	}
	return false, err
}

// Deletion guards: an entity that is still referenced cannot be removed.

func DoctorDeletionValidator() Validator[entity.Doctor] {
	return Func[entity.Doctor](func(_ context.Context, d *entity.Doctor) (bool, error) {
		return !d.HasAppointments(), nil
	})
}

func PatientDeletionValidator() Validator[entity.Patient] {
	return Func[entity.Patient](func(_ context.Context, p *entity.Patient) (bool, error) {
		return !p.HasAppointments(), nil
	})
}

func SpecializationDeletionValidator() Validator[entity.Specialization] {
	return Func[entity.Specialization](func(_ context.Context, s *entity.Specialization) (bool, error) {
		return !s.HasDoctors(), nil
	})
}

// AppointmentReferencesValidator rejects appointments without a doctor or patient.
func AppointmentReferencesValidator() Validator[entity.Appointment] {
	return Func[entity.Appointment](func(_ context.Context, a *entity.Appointment) (bool, error) {
		return a.Doctor != nil && a.Patient != nil, nil
	})
}

package repository

import (
	"errors"

	"clinic-queue/internal/domain/entity"

	"gorm.io/gorm"
)

// ErrMultipleMatches is returned by GetOne when the predicate matches more than one entity.
var ErrMultipleMatches = errors.New("predicate matched more than one entity")

// Repository is the store of one entity kind. Every method runs on the given
// db handle, which is usually a transaction owned by the caller; committing
// that transaction is what saves the changes.
type Repository[T any] interface {
	// GetAll returns every entity of the kind with its relations loaded.
	GetAll(db *gorm.DB) ([]*T, error)
	// GetAllWhere returns the entities for which predicate holds.
	GetAllWhere(db *gorm.DB, predicate func(*T) bool) ([]*T, error)
	// GetOne returns the single entity matching predicate, nil when none does
	// and ErrMultipleMatches when several do.
	GetOne(db *gorm.DB, predicate func(*T) bool) (*T, error)

	Add(db *gorm.DB, item *T) error
	AddRange(db *gorm.DB, items []*T) error
	Remove(db *gorm.DB, item *T) error
	RemoveRange(db *gorm.DB, items []*T) error

	// AddOrUpdate inserts items without an ID and saves the others.
	AddOrUpdate(db *gorm.DB, item *T) error
	AddOrUpdateRange(db *gorm.DB, items []*T) error
}

type (
	DoctorRepository         = Repository[entity.Doctor]
	PatientRepository        = Repository[entity.Patient]
	SpecializationRepository = Repository[entity.Specialization]
	AppointmentRepository    = Repository[entity.Appointment]
)

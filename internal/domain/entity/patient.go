package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a patient
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if gender is one of the known values
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Patient carries (name, phone number) as its natural key. The key is only
// checked when a patient is added; updates may converge on an existing pair.
type Patient struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null;index:idx_patients_name_phone" json:"name" validate:"required,max=255"`
	Birthday        time.Time `gorm:"type:date;not null" json:"birthday" validate:"required"`
	Gender          Gender    `gorm:"type:varchar(6);not null" json:"gender" validate:"oneof=male female"`
	PhoneNumber     string    `gorm:"type:varchar(32);not null;index:idx_patients_name_phone" json:"phone_number" validate:"required,max=32"`
	InsuranceNumber string    `gorm:"type:varchar(64)" json:"insurance_number" validate:"max=64"`

	// Relationships
	Appointments []*Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) GetID() uuid.UUID {
	return p.ID
}

func (p *Patient) SetID(id uuid.UUID) {
	p.ID = id
}

// HasAppointments reports whether any appointment still references the patient.
func (p *Patient) HasAppointments() bool {
	return len(p.Appointments) > 0
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment books a patient with a doctor. Date and clinical records are optional.
type Appointment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentDate *time.Time `gorm:"index" json:"appointment_date,omitempty"`
	ClinicalRecords *string    `gorm:"type:text" json:"clinical_records,omitempty"`
	DoctorID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`

	// Relationships
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) GetID() uuid.UUID {
	return a.ID
}

func (a *Appointment) SetID(id uuid.UUID) {
	a.ID = id
}

// BeforeSave keeps the foreign keys in sync with the referenced doctor and patient.
func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	if a.Doctor != nil {
		a.DoctorID = a.Doctor.ID
	}
	if a.Patient != nil {
		a.PatientID = a.Patient.ID
	}
	return nil
}

package entity

import "github.com/google/uuid"

type Specialization struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name" validate:"required,max=255"`

	// Relationships
	Doctors []*Doctor `gorm:"many2many:doctor_specializations" json:"doctors,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}

func (s *Specialization) GetID() uuid.UUID {
	return s.ID
}

func (s *Specialization) SetID(id uuid.UUID) {
	s.ID = id
}

// HasDoctors reports whether any doctor still lists the specialization.
func (s *Specialization) HasDoctors() bool {
	return len(s.Doctors) > 0
}

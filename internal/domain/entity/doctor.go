package entity

import "github.com/google/uuid"

// Doctor is identified by the (name, phone number) pair besides its ID.
type Doctor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_doctors_name_phone" json:"name" validate:"required,max=255"`
	PhoneNumber  string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_doctors_name_phone" json:"phone_number" validate:"required,max=32"`
	OfficeNumber string    `gorm:"type:varchar(32)" json:"office_number" validate:"max=32"`
	WorkSchedule string    `gorm:"type:text" json:"work_schedule"`

	// Relationships
	Specializations []*Specialization `gorm:"many2many:doctor_specializations" json:"specializations,omitempty"`
	Appointments    []*Appointment    `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) GetID() uuid.UUID {
	return d.ID
}

func (d *Doctor) SetID(id uuid.UUID) {
	d.ID = id
}

// HasAppointments reports whether any appointment still references the doctor.
func (d *Doctor) HasAppointments() bool {
	return len(d.Appointments) > 0
}

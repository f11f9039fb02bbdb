package repository

import (
	"fmt"
	"testing"
	"time"

	"clinic-queue/internal/domain/entity"
	domainRepo "clinic-queue/internal/domain/repository"
	"clinic-queue/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_repository_%d?mode=memory&cache=shared&_foreign_keys=on", time.Now().UnixNano())
	db, err := database.NewSQLiteConnection(dsn)
	require.NoError(t, err)
	return db
}

func TestGormRepository_AddAssignsID(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewSpecializationRepository()

	s := &entity.Specialization{Name: "Cardiology"}
	require.NoError(t, repo.Add(db, s))
	assert.NotEqual(t, uuid.Nil, s.ID)

	preset := uuid.New()
	p := &entity.Specialization{ID: preset, Name: "Surgery"}
	require.NoError(t, repo.Add(db, p))
	assert.Equal(t, preset, p.ID)

	all, err := repo.GetAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGormRepository_GetAllWhereAndGetOne(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPatientRepository()
	require.NoError(t, repo.AddRange(db, []*entity.Patient{
		{Name: "Ann", PhoneNumber: "1", Gender: entity.GenderFemale, Birthday: time.Now()},
		{Name: "Ann", PhoneNumber: "2", Gender: entity.GenderFemale, Birthday: time.Now()},
		{Name: "Bob", PhoneNumber: "3", Gender: entity.GenderMale, Birthday: time.Now()},
	}))

	anns, err := repo.GetAllWhere(db, func(p *entity.Patient) bool { return p.Name == "Ann" })
	require.NoError(t, err)
	assert.Len(t, anns, 2)

	bob, err := repo.GetOne(db, func(p *entity.Patient) bool { return p.Name == "Bob" })
	require.NoError(t, err)
	require.NotNil(t, bob)
	assert.Equal(t, "3", bob.PhoneNumber)

	none, err := repo.GetOne(db, func(p *entity.Patient) bool { return p.Name == "Carl" })
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = repo.GetOne(db, func(p *entity.Patient) bool { return p.Name == "Ann" })
	assert.ErrorIs(t, err, domainRepo.ErrMultipleMatches)
}

func TestGormRepository_AddOrUpdateRoutesByID(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewSpecializationRepository()

	s := &entity.Specialization{Name: "Cardiology"}
	require.NoError(t, repo.AddOrUpdate(db, s))
	require.NotEqual(t, uuid.Nil, s.ID)

	s.Name = "Cardiac Surgery"
	require.NoError(t, repo.AddOrUpdateRange(db, []*entity.Specialization{s}))

	all, err := repo.GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Cardiac Surgery", all[0].Name)
}

func TestDoctorRepository_ReplacesSpecializations(t *testing.T) {
	db := setupRepositoryTestDB(t)
	specializations := NewSpecializationRepository()
	doctors := NewDoctorRepository()

	cardiology := &entity.Specialization{Name: "Cardiology"}
	surgery := &entity.Specialization{Name: "Surgery"}
	require.NoError(t, specializations.AddRange(db, []*entity.Specialization{cardiology, surgery}))

	doctor := &entity.Doctor{Name: "Dr. House", PhoneNumber: "99999", Specializations: []*entity.Specialization{cardiology}}
	require.NoError(t, doctors.Add(db, doctor))

	doctor.Specializations = []*entity.Specialization{surgery}
	require.NoError(t, doctors.AddOrUpdate(db, doctor))

	stored, err := doctors.GetOne(db, func(d *entity.Doctor) bool { return d.ID == doctor.ID })
	require.NoError(t, err)
	require.Len(t, stored.Specializations, 1)
	assert.Equal(t, "Surgery", stored.Specializations[0].Name)

	doctor.Specializations = nil
	require.NoError(t, doctors.AddOrUpdate(db, doctor))
	stored, err = doctors.GetOne(db, func(d *entity.Doctor) bool { return d.ID == doctor.ID })
	require.NoError(t, err)
	assert.Empty(t, stored.Specializations)

	all, err := specializations.GetAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDoctorRepository_RemoveDropsLinks(t *testing.T) {
	db := setupRepositoryTestDB(t)
	cardiology := &entity.Specialization{Name: "Cardiology"}
	require.NoError(t, NewSpecializationRepository().Add(db, cardiology))

	doctors := NewDoctorRepository()
	doctor := &entity.Doctor{Name: "Dr. House", PhoneNumber: "99999", Specializations: []*entity.Specialization{cardiology}}
	require.NoError(t, doctors.Add(db, doctor))

	require.NoError(t, doctors.RemoveRange(db, []*entity.Doctor{doctor}))

	remaining, err := doctors.GetAll(db)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	var links int64
	require.NoError(t, db.Table("doctor_specializations").Count(&links).Error)
	assert.Zero(t, links)
}

func TestAppointmentRepository_PreloadsReferences(t *testing.T) {
	db := setupRepositoryTestDB(t)
	doctor := &entity.Doctor{Name: "Dr. House", PhoneNumber: "99999"}
	patient := &entity.Patient{Name: "John Doe", PhoneNumber: "555", Gender: entity.GenderMale, Birthday: time.Now()}
	require.NoError(t, NewDoctorRepository().Add(db, doctor))
	require.NoError(t, NewPatientRepository().Add(db, patient))

	appointments := NewAppointmentRepository()
	require.NoError(t, appointments.Add(db, &entity.Appointment{Doctor: doctor, Patient: patient}))

	all, err := appointments.GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, doctor.ID, all[0].DoctorID)
	require.NotNil(t, all[0].Patient)
	assert.Equal(t, "John Doe", all[0].Patient.Name)

	storedDoctor, err := NewDoctorRepository().GetOne(db, func(d *entity.Doctor) bool { return d.ID == doctor.ID })
	require.NoError(t, err)
	require.Len(t, storedDoctor.Appointments, 1)
	assert.Equal(t, "John Doe", storedDoctor.Appointments[0].Patient.Name)
}

func TestAuditLogRepository_FindAllNewestFirst(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewAuditLogRepository()

	require.NoError(t, repo.Create(db, &entity.AuditLog{Action: "doctor.create", CreatedAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, repo.Create(db, &entity.AuditLog{Action: "doctor.delete", CreatedAt: time.Now()}))

	logs, err := repo.FindAll(db)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "doctor.delete", logs[0].Action)
}

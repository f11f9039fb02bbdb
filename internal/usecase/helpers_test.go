package usecase

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"clinic-queue/internal/domain/entity"
	"clinic-queue/internal/infrastructure/database"
	"clinic-queue/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_usecase_%d_%d?mode=memory&cache=shared&_foreign_keys=on", time.Now().UnixNano(), testDBSeq.Add(1))
	db, err := database.NewSQLiteConnection(dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func rejectAll[T any]() func(context.Context, *T) (bool, error) {
	return func(context.Context, *T) (bool, error) { return false, nil }
}

func seedSpecialization(t *testing.T, db *gorm.DB, name string) *entity.Specialization {
	t.Helper()
	s := &entity.Specialization{Name: name}
	require.NoError(t, repository.NewSpecializationRepository().Add(db, s))
	return s
}

func seedDoctor(t *testing.T, db *gorm.DB, name, phone string, specializations ...*entity.Specialization) *entity.Doctor {
	t.Helper()
	d := &entity.Doctor{
		Name:            name,
		PhoneNumber:     phone,
		OfficeNumber:    "101",
		WorkSchedule:    "Mon-Fri",
		Specializations: specializations,
	}
	require.NoError(t, repository.NewDoctorRepository().Add(db, d))
	return d
}

func seedPatient(t *testing.T, db *gorm.DB, name, phone string) *entity.Patient {
	t.Helper()
	p := &entity.Patient{
		Name:        name,
		PhoneNumber: phone,
		Birthday:    time.Date(1985, 7, 14, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderMale,
	}
	require.NoError(t, repository.NewPatientRepository().Add(db, p))
	return p
}

func seedAppointment(t *testing.T, db *gorm.DB, doctor *entity.Doctor, patient *entity.Patient) *entity.Appointment {
	t.Helper()
	date := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	a := &entity.Appointment{AppointmentDate: &date, Doctor: doctor, Patient: patient}
	require.NoError(t, repository.NewAppointmentRepository().Add(db, a))
	return a
}

func loadDoctor(t *testing.T, db *gorm.DB, name string) *entity.Doctor {
	t.Helper()
	d, err := repository.NewDoctorRepository().GetOne(db, func(d *entity.Doctor) bool { return d.Name == name })
	require.NoError(t, err)
	return d
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func specializationIDs(d *entity.Doctor) []string {
	ids := make([]string, len(d.Specializations))
	for i, s := range d.Specializations {
		ids[i] = s.ID.String()
	}
	return ids
}

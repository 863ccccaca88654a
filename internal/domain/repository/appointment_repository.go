package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Appointment, int64, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int) (int64, error)
}

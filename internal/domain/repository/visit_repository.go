package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByID(db *gorm.DB, id int) (*entity.Visit, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Visit, int64, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Visit, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Visit, error)
	Update(db *gorm.DB, visit *entity.Visit) error
	Delete(db *gorm.DB, id int) (int64, error)
}

package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id int) (int64, error)
}

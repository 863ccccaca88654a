package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int) (int64, error)
}

package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	if err := db.Model(&entity.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("id").Offset(offset).Limit(limit).Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(&entity.Doctor{}, id)
	return result.RowsAffected, result.Error
}

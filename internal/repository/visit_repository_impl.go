package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	return db.Create(visit).Error
}

func (r *visitRepository) FindByID(db *gorm.DB, id int) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.First(&visit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindAll(db *gorm.DB, offset, limit int) ([]entity.Visit, int64, error) {
	var visits []entity.Visit
	var total int64

	if err := db.Model(&entity.Visit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("id").Offset(offset).Limit(limit).Find(&visits).Error
	if err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

func (r *visitRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Where("patient_id = ?", patientID).Order("id").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Where("doctor_id = ?", doctorID).Order("id").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) Update(db *gorm.DB, visit *entity.Visit) error {
	return db.Save(visit).Error
}

func (r *visitRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(&entity.Visit{}, id)
	return result.RowsAffected, result.Error
}

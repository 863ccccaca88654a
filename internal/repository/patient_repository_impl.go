package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	if err := db.Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("id").Offset(offset).Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(&entity.Patient{}, id)
	return result.RowsAffected, result.Error
}

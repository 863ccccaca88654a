package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, offset, limit int) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	if err := db.Model(&entity.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("id").Offset(offset).Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ?", patientID).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ?", doctorID).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(&entity.Appointment{}, id)
	return result.RowsAffected, result.Error
}

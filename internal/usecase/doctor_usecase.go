package usecase

import (
	"context"
	"errors"
	"strconv"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorEmailExists   = errors.New("doctor email already registered")
	ErrDoctorLicenseExists = errors.New("doctor license number already registered")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, offset, limit int) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrDoctorLicenseExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionDoctorCreate, "doctor", strconv.Itoa(doctor.ID), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, offset, limit int) (*dto.DoctorListResponse, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	if req.FirstName != nil {
		doctor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		doctor.LastName = *req.LastName
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		doctor.PhoneNumber = *req.PhoneNumber
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.LicenseNumber != nil {
		doctor.LicenseNumber = *req.LicenseNumber
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrDoctorLicenseExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionDoctorUpdate, "doctor", strconv.Itoa(id), oldValue, converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	// Appointments cascade; visits keep their rows with doctor_id nulled.
	affectedRows, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionDoctorDelete, "doctor", strconv.Itoa(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

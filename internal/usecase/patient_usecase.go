package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

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
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPatientEmailExists = errors.New("patient email already registered")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, offset, limit int) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Address:     req.Address,
		Gender:      req.Gender,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionPatientCreate, "patient", strconv.Itoa(patient.ID), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, offset, limit int) (*dto.PatientListResponse, error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	// Patch semantics: only fields present in the request are applied.
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionPatientUpdate, "patient", strconv.Itoa(id), oldValue, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	// Dependent appointments and visits cascade at the database level.
	affectedRows, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionPatientDelete, "patient", strconv.Itoa(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

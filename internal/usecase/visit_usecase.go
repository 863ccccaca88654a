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
	ErrVisitNotFound        = errors.New("visit not found")
	ErrVisitPatientNotFound = errors.New("patient not found")
	ErrVisitDoctorNotFound  = errors.New("doctor not found")
)

type VisitUsecase interface {
	CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	GetVisit(ctx context.Context, id int) (*dto.VisitResponse, error)
	ListVisits(ctx context.Context, offset, limit int) (*dto.VisitListResponse, error)
	ListVisitsByPatient(ctx context.Context, patientID int) ([]dto.VisitResponse, error)
	ListVisitsByDoctor(ctx context.Context, doctorID int) ([]dto.VisitResponse, error)
	UpdateVisit(ctx context.Context, id int, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	DeleteVisit(ctx context.Context, id int) error
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	visitRepo    repository.VisitRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		visitRepo:    visitRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *visitUsecase) CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	visitDate := time.Now().UTC()
	if req.VisitDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.VisitDate)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		visitDate = parsed
	}

	var nextAppointmentDate *time.Time
	if req.NextAppointmentDate != "" {
		parsed, err := time.Parse(dateLayout, req.NextAppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		nextAppointmentDate = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrVisitPatientNotFound
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrVisitDoctorNotFound
		}
	}

	visit := &entity.Visit{
		PatientID:            req.PatientID,
		DoctorID:             req.DoctorID,
		VisitDate:            visitDate,
		ChiefComplaint:       req.ChiefComplaint,
		ClinicalNotes:        req.ClinicalNotes,
		BloodPressure:        req.BloodPressure,
		Temperature:          req.Temperature,
		PulseRate:            req.PulseRate,
		RespirationRate:      req.RespirationRate,
		WeightKg:             req.WeightKg,
		HeightCm:             req.HeightCm,
		Diagnosis:            req.Diagnosis,
		Treatment:            req.Treatment,
		ProceduresPerformed:  req.ProceduresPerformed,
		Prescriptions:        req.Prescriptions,
		FollowUpInstructions: req.FollowUpInstructions,
		NextAppointmentDate:  nextAppointmentDate,
	}

	if err := u.visitRepo.Create(tx, visit); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrVisitPatientNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrVisitDoctorNotFound
		}
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionVisitCreate, "visit", strconv.Itoa(visit.ID), converter.VisitToResponse(visit)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) GetVisit(ctx context.Context, id int) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) ListVisits(ctx context.Context, offset, limit int) (*dto.VisitListResponse, error) {
	visits, total, err := u.visitRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to find all visits: %+v", err)
		return nil, err
	}

	return &dto.VisitListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  total,
	}, nil
}

func (u *visitUsecase) ListVisitsByPatient(ctx context.Context, patientID int) ([]dto.VisitResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrVisitPatientNotFound
	}

	visits, err := u.visitRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find visits by patient: %+v", err)
		return nil, err
	}

	return converter.VisitsToResponses(visits), nil
}

func (u *visitUsecase) ListVisitsByDoctor(ctx context.Context, doctorID int) ([]dto.VisitResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrVisitDoctorNotFound
	}

	visits, err := u.visitRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find visits by doctor: %+v", err)
		return nil, err
	}

	return converter.VisitsToResponses(visits), nil
}

func (u *visitUsecase) UpdateVisit(ctx context.Context, id int, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	oldValue := converter.VisitToResponse(visit)

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrVisitDoctorNotFound
		}
		visit.DoctorID = req.DoctorID
	}
	if req.VisitDate != nil {
		visitDate, err := time.Parse(time.RFC3339, *req.VisitDate)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		visit.VisitDate = visitDate
	}
	if req.ChiefComplaint != nil {
		visit.ChiefComplaint = *req.ChiefComplaint
	}
	if req.ClinicalNotes != nil {
		visit.ClinicalNotes = *req.ClinicalNotes
	}
	if req.BloodPressure != nil {
		visit.BloodPressure = *req.BloodPressure
	}
	if req.Temperature != nil {
		visit.Temperature = *req.Temperature
	}
	if req.PulseRate != nil {
		visit.PulseRate = req.PulseRate
	}
	if req.RespirationRate != nil {
		visit.RespirationRate = req.RespirationRate
	}
	if req.WeightKg != nil {
		visit.WeightKg = *req.WeightKg
	}
	if req.HeightCm != nil {
		visit.HeightCm = *req.HeightCm
	}
	if req.Diagnosis != nil {
		visit.Diagnosis = *req.Diagnosis
	}
	if req.Treatment != nil {
		visit.Treatment = *req.Treatment
	}
	if req.ProceduresPerformed != nil {
		visit.ProceduresPerformed = *req.ProceduresPerformed
	}
	if req.Prescriptions != nil {
		visit.Prescriptions = *req.Prescriptions
	}
	if req.FollowUpInstructions != nil {
		visit.FollowUpInstructions = *req.FollowUpInstructions
	}
	if req.NextAppointmentDate != nil {
		parsed, err := time.Parse(dateLayout, *req.NextAppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		visit.NextAppointmentDate = &parsed
	}

	if err := u.visitRepo.Update(tx, visit); err != nil {
		u.log.Warnf("Failed to update visit: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionVisitUpdate, "visit", strconv.Itoa(id), oldValue, converter.VisitToResponse(visit)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) DeleteVisit(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}
	oldValue := converter.VisitToResponse(visit)

	affectedRows, err := u.visitRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete visit: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrVisitNotFound
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionVisitDelete, "visit", strconv.Itoa(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

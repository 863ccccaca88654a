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
	ErrAppointmentNotFound        = errors.New("appointment not found")
	ErrAppointmentPatientNotFound = errors.New("patient not found")
	ErrAppointmentDoctorNotFound  = errors.New("doctor not found")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, offset, limit int) (*dto.AppointmentListResponse, error)
	ListAppointmentsByPatient(ctx context.Context, patientID int) ([]dto.AppointmentResponse, error)
	ListAppointmentsByDoctor(ctx context.Context, doctorID int) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentTime, err := time.Parse(time.RFC3339, req.AppointmentTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrAppointmentPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrAppointmentDoctorNotFound
	}

	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentTime: appointmentTime,
		Reason:          req.Reason,
		Status:          status,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrAppointmentPatientNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrAppointmentDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionAppointmentCreate, "appointment", strconv.Itoa(appointment.ID), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, offset, limit int) (*dto.AppointmentListResponse, error) {
	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

func (u *appointmentUsecase) ListAppointmentsByPatient(ctx context.Context, patientID int) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrAppointmentPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by patient: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ListAppointmentsByDoctor(ctx context.Context, doctorID int) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrAppointmentDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by doctor: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.AppointmentTime != nil {
		appointmentTime, err := time.Parse(time.RFC3339, *req.AppointmentTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.AppointmentTime = appointmentTime
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionAppointmentUpdate, "appointment", strconv.Itoa(id), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	oldValue := converter.AppointmentToResponse(appointment)

	affectedRows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionAppointmentDelete, "appointment", strconv.Itoa(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

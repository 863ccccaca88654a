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
	"go-hospital-management/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already registered")
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrInvalidRole          = errors.New("invalid role")
	ErrUserInactive         = errors.New("inactive user")
	ErrUserNotFound         = errors.New("user not found")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	throttle     service.LoginThrottle
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	throttle service.LoginThrottle,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		throttle:     throttle,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     req.Role,
		IsActive: &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUsernameFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionUserRegister, "user", strconv.Itoa(user.ID), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if !u.throttle.Allow(ctx, req.Username) {
		return nil, ErrTooManyLoginAttempts
	}

	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		u.throttle.RecordFailure(ctx, req.Username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		u.throttle.RecordFailure(ctx, req.Username)
		return nil, ErrInvalidCredentials
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := u.jwtService.Generate(user.Username, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	u.throttle.Reset(ctx, req.Username)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

package services

import (
	"strings"
	"time"

	"interntrack_backend/internal/auth"
	"interntrack_backend/internal/config"
	"interntrack_backend/internal/models"
	"interntrack_backend/internal/repositories"
	"interntrack_backend/internal/services/dto"
	"interntrack_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a new identity and issues its first session token.
// The email is normalized to lowercase before the uniqueness check, storage
// and lookup, so registration and login are case-insensitive.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:       req.FullName,
		Email:          email,
		PasswordHash:   hashedPassword,
		Phone:          req.Phone,
		University:     req.University,
		Degree:         req.Degree,
		GraduationYear: req.GraduationYear,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserSummary(user),
	}, nil
}

// Login verifies credentials and issues a session token. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserSummary(user),
	}, nil
}

func (s *AuthServiceImpl) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile applies the typed patch. Only fields present on the patch
// struct can ever reach the store; the password hash is never recomputed
// here.
func (s *AuthServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{}

	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.University != nil {
		updates["university"] = *req.University
	}
	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}
	if req.GraduationYear != nil {
		updates["graduation_year"] = *req.GraduationYear
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	user, err := s.userRepo.UpdateProfile(userID, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) issueToken(userID string) (string, error) {
	ttl := time.Duration(s.cfg.JWT.TTLHours) * time.Hour
	return auth.GenerateToken(s.cfg.JWT.Secret, userID, ttl)
}

// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/utils"
)

var ErrInactiveUser = errors.New("user account is inactive")

type UserService struct {
	db *gorm.DB
}

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,username"`
	Password    string `json:"password" validate:"required,strong_password"`
	IsActive    *bool  `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UpdateUserRequest replaces the flags; an empty password keeps the old one.
type UpdateUserRequest struct {
	Username    string `json:"username" validate:"required,username"`
	Password    string `json:"password,omitempty" validate:"omitempty,strong_password"`
	IsActive    bool   `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Authenticate resolves a token subject to an active stored user.
func (s *UserService) Authenticate(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	now := time.Now()
	if err := s.db.Model(&user).UpdateColumn("last_seen_at", now).Error; err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last seen time")
	}
	user.LastSeenAt = &now

	return &user, nil
}

func (s *UserService) ListUsers(caller models.Caller, params utils.PaginationParams) ([]models.User, int64, error) {
	if !caller.Superuser {
		return nil, 0, ErrForbidden
	}

	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := utils.ApplyPagination(s.db.Order("created_at").Order("id"), params).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

func (s *UserService) GetUser(caller models.Caller, id uuid.UUID) (*models.User, error) {
	if !caller.Superuser && caller.UserID != id {
		return nil, ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) CreateUser(caller models.Caller, req *CreateUserRequest) (*models.User, error) {
	if !caller.Superuser {
		return nil, ErrForbidden
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		IsActive:    req.IsActive == nil || *req.IsActive,
		IsStaff:     req.IsStaff || req.IsSuperuser,
		IsSuperuser: req.IsSuperuser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureUsernameFree(tx, req.Username, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"username":   user.Username,
		"created_by": caller.UserID,
	}).Info("User created")
	return user, nil
}

func (s *UserService) UpdateUser(caller models.Caller, id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if !caller.Superuser {
		return nil, ErrForbidden
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(lockForUpdate).First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}
		if err := s.ensureUsernameFree(tx, req.Username, id); err != nil {
			return err
		}

		user.Username = req.Username
		user.IsActive = req.IsActive
		user.IsStaff = req.IsStaff || req.IsSuperuser
		user.IsSuperuser = req.IsSuperuser
		if req.Password != "" {
			if err := user.SetPassword(req.Password); err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserService) ensureUsernameFree(tx *gorm.DB, username string, exceptID uuid.UUID) error {
	var count int64
	query := tx.Model(&models.User{}).Where("username = ?", username)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	return nil
}

package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// profileService handles profile and authentication logic.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// Register creates a new profile with a bcrypt-hashed password.
func (s *profileService) Register(email, password, fullName, username string) (*models.Profile, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	s.db.Model(&models.Profile{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile := &models.Profile{
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
		FullName: fullName,
		Username: username,
		IsActive: true,
	}

	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return profile, nil
}

// GetByEmail retrieves an active profile by email.
func (s *profileService) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// GetByID retrieves a profile by ID.
func (s *profileService) GetByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// VerifyPassword checks a password against the stored hash.
func (s *profileService) VerifyPassword(profile *models.Profile, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)) == nil
}

// StoreRefreshTokenHash persists the hash of the profile's current
// refresh token.
func (s *profileService) StoreRefreshTokenHash(profileID uint, tokenHash string) error {
	if err := s.db.Model(&models.Profile{}).Where("id = ?", profileID).
		Update("refresh_token_hash", tokenHash).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash.
func (s *profileService) GetRefreshTokenHash(profileID uint) (string, error) {
	profile, err := s.GetByID(profileID)
	if err != nil {
		return "", err
	}
	return profile.RefreshTokenHash, nil
}

// UpdateProfile applies a partial update to the profile's public fields.
func (s *profileService) UpdateProfile(profileID uint, fullName, username, website, avatarURL *string) (*models.Profile, error) {
	profile, err := s.GetByID(profileID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if username != nil {
		updates["username"] = *username
	}
	if website != nil {
		updates["website"] = *website
	}
	if avatarURL != nil {
		updates["avatar_url"] = *avatarURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return profile, nil
}

// GetSummary returns the profile with its year-to-date income and
// expense totals. Total income includes additional income created in
// the year.
func (s *profileService) GetSummary(profileID uint, year int) (*ProfileSummary, error) {
	profile, err := s.GetByID(profileID)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	var incomeTotal float64
	if err := s.db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("profile_id = ? AND date_received >= ?", profileID, yearStart).
		Scan(&incomeTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var additionalTotal float64
	if err := s.db.Model(&models.AdditionalIncome{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("profile_id = ? AND created_at >= ?", profileID, yearStart).
		Scan(&additionalTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenseTotal float64
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("profile_id = ? AND date_due >= ?", profileID, yearStart).
		Scan(&expenseTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ProfileSummary{
		Profile:       *profile,
		TotalIncome:   incomeTotal + additionalTotal,
		TotalExpenses: expenseTotal,
	}, nil
}

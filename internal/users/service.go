package users

import (
	"context"
	"errors"

	"regive-backend/internal/identity"
	"regive-backend/internal/models"
	"regive-backend/internal/pkg/apperrors"

	"gorm.io/gorm"
)

// Service handles app-side profiles and admin views over identity-provider
// accounts.
type Service struct {
	DB       *gorm.DB
	Provider identity.Provider
}

// Profile returns the profile for a subject id, creating it on first view.
func (s *Service) Profile(ctx context.Context, subjectID, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.DB.WithContext(ctx).Where("subject_id = ?", subjectID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorage("find profile", err)
	}
	profile = models.UserProfile{SubjectID: subjectID, Email: email}
	if err := s.DB.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, apperrors.NewStorage("create profile", err)
	}
	return &profile, nil
}

// UpdateProfileInput is the editable subset of a profile.
type UpdateProfileInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// UpdateProfile upserts the profile's editable fields.
func (s *Service) UpdateProfile(ctx context.Context, subjectID, email string, in UpdateProfileInput) (*models.UserProfile, error) {
	profile, err := s.Profile(ctx, subjectID, email)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": in.Name, "contact": in.Contact}
	if err := s.DB.WithContext(ctx).Model(profile).Updates(updates).Error; err != nil {
		return nil, apperrors.NewStorage("update profile", err)
	}
	return profile, nil
}

// ListAccounts drains the identity provider's paginated account list.
func (s *Service) ListAccounts(ctx context.Context) ([]identity.Account, error) {
	var all []identity.Account
	pageToken := ""
	for {
		accounts, next, err := s.Provider.ListAccounts(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, accounts...)
		if next == "" {
			return all, nil
		}
		pageToken = next
	}
}

// ListAdmins returns the accounts holding the admin claim.
func (s *Service) ListAdmins(ctx context.Context) ([]identity.Account, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	admins := make([]identity.Account, 0)
	for _, account := range accounts {
		if account.Admin {
			admins = append(admins, account)
		}
	}
	return admins, nil
}

// Promote grants the admin claim to an account.
func (s *Service) Promote(ctx context.Context, uid string) error {
	return s.Provider.SetAdminClaim(ctx, uid, true)
}

// DeleteAccount removes a provider account and any app-side profile for it.
func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.Provider.DeleteAccount(ctx, uid); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&models.UserProfile{}, "subject_id = ?", uid).Error; err != nil {
		return apperrors.NewStorage("delete profile", err)
	}
	return nil
}

// CountAccounts returns the total number of provider accounts (dashboard).
func (s *Service) CountAccounts(ctx context.Context) (int, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}

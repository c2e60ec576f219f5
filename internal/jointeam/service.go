package jointeam

import (
	"context"
	"errors"

	"regive-backend/internal/identity"
	"regive-backend/internal/models"
	"regive-backend/internal/pkg/apperrors"
	"regive-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service handles the volunteer intake pipeline. Approval promotes the
// applicant's identity-provider account to admin; the intake record is only
// removed after the promotion is confirmed.
type Service struct {
	DB       *gorm.DB
	Provider identity.Provider
}

// ApplyInput is the typed shape of a volunteer application.
type ApplyInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Interest   string `json:"interest"`
	Message    string `json:"message"`
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (*models.JoinTeamRequest, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Department == "" || in.Message == "" {
		return nil, apperrors.NewValidation("", "All fields are required")
	}
	if !validation.IsValidJoinTeamYear(in.Year) {
		return nil, apperrors.NewValidation("year", "Year must be 1, 2, 3 or 4")
	}
	if !validation.IsValidJoinTeamInterest(in.Interest) {
		return nil, apperrors.NewValidation("interest", "Unknown area of interest")
	}

	request := &models.JoinTeamRequest{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Department: in.Department,
		Year:       in.Year,
		Interest:   in.Interest,
		Message:    in.Message,
		Status:     models.JoinTeamStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(request).Error; err != nil {
		return nil, apperrors.NewStorage("create join request", err)
	}
	return request, nil
}

// List returns all join requests, newest first.
func (s *Service) List(ctx context.Context) ([]models.JoinTeamRequest, error) {
	var requests []models.JoinTeamRequest
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, apperrors.NewStorage("list join requests", err)
	}
	return requests, nil
}

// Approve promotes the applicant to admin and deletes the request. The order
// matters: if the claim grant fails the request stays so the approval can be
// retried — the claim is never observed granted with the request deleted
// out from under it, nor vice versa.
func (s *Service) Approve(ctx context.Context, requestID uuid.UUID) error {
	var request models.JoinTeamRequest
	if err := s.DB.WithContext(ctx).Where("request_id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Join request")
		}
		return apperrors.NewStorage("find join request", err)
	}

	account, err := s.Provider.GetAccountByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if err := s.Provider.SetAdminClaim(ctx, account.UID, true); err != nil {
		return err
	}

	log.Info().Str("email", request.Email).Msg("Volunteer promoted to admin")

	if err := s.DB.WithContext(ctx).Delete(&models.JoinTeamRequest{}, "request_id = ?", requestID).Error; err != nil {
		return apperrors.NewStorage("delete join request", err)
	}
	return nil
}

// Reject marks the request rejected. The record is kept for audit.
func (s *Service) Reject(ctx context.Context, requestID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&models.JoinTeamRequest{}).
		Where("request_id = ?", requestID).
		Update("status", models.JoinTeamStatusRejected)
	if res.Error != nil {
		return apperrors.NewStorage("reject join request", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Join request")
	}
	return nil
}

// Delete removes an intake record and best-effort deletes the matching
// identity-provider account (a volunteer may never have signed up).
func (s *Service) Delete(ctx context.Context, requestID uuid.UUID) error {
	var request models.JoinTeamRequest
	if err := s.DB.WithContext(ctx).Where("request_id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Join request")
		}
		return apperrors.NewStorage("find join request", err)
	}
	if err := s.DB.WithContext(ctx).Delete(&models.JoinTeamRequest{}, "request_id = ?", requestID).Error; err != nil {
		return apperrors.NewStorage("delete join request", err)
	}
	if account, err := s.Provider.GetAccountByEmail(ctx, request.Email); err == nil {
		if err := s.Provider.DeleteAccount(ctx, account.UID); err != nil {
			log.Warn().Err(err).Str("email", request.Email).Msg("Provider account delete failed")
		}
	} else {
		log.Warn().Str("email", request.Email).Msg("Provider account not found")
	}
	return nil
}

// CountVolunteers returns the number of join requests (dashboard).
func (s *Service) CountVolunteers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.JoinTeamRequest{}).Count(&n).Error; err != nil {
		return 0, apperrors.NewStorage("count join requests", err)
	}
	return n, nil
}

package donations

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"regive-backend/internal/models"
	"regive-backend/internal/pkg/apperrors"
	"regive-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service owns the donation lifecycle:
//
//	Pending --Collect--> Collected --Distribute--> Distributed
//
// Collect and Distribute move the record between collections inside one
// transaction and keep its id stable across stages, so a retried transition
// finds the already-moved record instead of duplicating it.
type Service struct {
	DB *gorm.DB
}

// SubmitInput is the typed shape of a donation submission.
type SubmitInput struct {
	Items         []string `json:"items"`
	OtherItems    string   `json:"other_items"`
	DonorName     string   `json:"donor_name"`
	DonorEmail    string   `json:"donor_email"`
	DonorContact  string   `json:"donor_contact"`
	Pickup        string   `json:"pickup"`
	OtherLocation string   `json:"other_location"`
	Images        []string `json:"images"`
}

// Submit creates a Pending donation.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*models.Donation, error) {
	if len(in.Items) == 0 {
		return nil, apperrors.NewValidation("items", "At least one item is required")
	}
	if in.DonorName == "" {
		return nil, apperrors.NewValidation("donor_name", "Donor name is required")
	}
	if in.DonorContact == "" {
		return nil, apperrors.NewValidation("donor_contact", "Donor contact is required")
	}
	if in.Pickup == "" {
		return nil, apperrors.NewValidation("pickup", "Pickup method is required")
	}
	if !validation.IsValidDonorEmail(in.DonorEmail) {
		return nil, apperrors.NewValidation("donor_email", "Please use a valid Gmail address")
	}
	if len(in.Images) == 0 {
		return nil, apperrors.NewValidation("images", "At least one donation image is required")
	}

	donation := &models.Donation{
		Items:         mustJSON(in.Items),
		OtherItems:    in.OtherItems,
		DonorName:     in.DonorName,
		DonorEmail:    in.DonorEmail,
		DonorContact:  in.DonorContact,
		Pickup:        in.Pickup,
		OtherLocation: in.OtherLocation,
		Images:        mustJSON(in.Images),
	}
	if err := s.DB.WithContext(ctx).Create(donation).Error; err != nil {
		return nil, apperrors.NewStorage("create donation", err)
	}
	return donation, nil
}

// Collect moves a Pending donation into the Collected collection, dropping
// other_location. Both writes happen in one transaction. If the donation is
// gone but a collected record with the same id exists, the transition already
// ran and that record is returned.
func (s *Service) Collect(ctx context.Context, donationID uuid.UUID) (*models.CollectedDonation, error) {
	var collected models.CollectedDonation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation models.Donation
		if err := tx.Where("donation_id = ?", donationID).First(&donation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if tx.Where("donation_id = ?", donationID).First(&collected).Error == nil {
					return nil // already collected; retry repaired by replay
				}
				return apperrors.NewNotFound("Donation")
			}
			return apperrors.NewStorage("find donation", err)
		}

		collected = models.CollectedDonation{
			DonationID:   donation.DonationID,
			DonorName:    donation.DonorName,
			DonorEmail:   donation.DonorEmail,
			DonorContact: donation.DonorContact,
			Pickup:       donation.Pickup,
			Items:        donation.Items,
			OtherItems:   donation.OtherItems,
			Images:       donation.Images,
			CollectedAt:  time.Now(),
		}
		if err := tx.Create(&collected).Error; err != nil {
			return apperrors.NewStorage("create collected donation", err)
		}
		if err := tx.Delete(&models.Donation{}, "donation_id = ?", donationID).Error; err != nil {
			return apperrors.NewStorage("delete donation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("donation_id", donationID.String()).Msg("Donation marked as collected")
	return &collected, nil
}

// DistributeInput carries the beneficiary details for a distribution.
type DistributeInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// Distribute moves a Collected donation into the Beneficiaries collection,
// carrying the donor-facing fields and collection timestamp forward and
// stamping the distribution time. Same transactional and replay semantics as
// Collect.
func (s *Service) Distribute(ctx context.Context, donationID uuid.UUID, in DistributeInput) (*models.Beneficiary, error) {
	if in.Name == "" {
		return nil, apperrors.NewValidation("name", "Beneficiary name is required")
	}
	if in.Address == "" {
		return nil, apperrors.NewValidation("address", "Beneficiary address is required")
	}

	var beneficiary models.Beneficiary
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collected models.CollectedDonation
		if err := tx.Where("donation_id = ?", donationID).First(&collected).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if tx.Where("donation_id = ?", donationID).First(&beneficiary).Error == nil {
					return nil
				}
				return apperrors.NewNotFound("Collected donation")
			}
			return apperrors.NewStorage("find collected donation", err)
		}

		beneficiary = models.Beneficiary{
			DonationID:    collected.DonationID,
			Name:          in.Name,
			Contact:       in.Contact,
			Address:       in.Address,
			DonorName:     collected.DonorName,
			DonorEmail:    collected.DonorEmail,
			DonorContact:  collected.DonorContact,
			Pickup:        collected.Pickup,
			Items:         collected.Items,
			OtherItems:    collected.OtherItems,
			Images:        collected.Images,
			CollectedAt:   collected.CollectedAt,
			DistributedAt: time.Now(),
		}
		if err := tx.Create(&beneficiary).Error; err != nil {
			return apperrors.NewStorage("create beneficiary", err)
		}
		if err := tx.Delete(&models.CollectedDonation{}, "donation_id = ?", donationID).Error; err != nil {
			return apperrors.NewStorage("delete collected donation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("donation_id", donationID.String()).Str("beneficiary", in.Name).Msg("Donation distributed")
	return &beneficiary, nil
}

// DiscardPending permanently deletes a Pending donation. The deletion is
// audit-logged with the acting admin.
func (s *Service) DiscardPending(ctx context.Context, donationID uuid.UUID, actor string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Donation{}, "donation_id = ?", donationID)
	if res.Error != nil {
		return apperrors.NewStorage("delete donation", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Donation")
	}
	log.Warn().Str("donation_id", donationID.String()).Str("actor", actor).Str("stage", "pending").Msg("Donation discarded")
	return nil
}

// DiscardCollected permanently deletes a Collected donation.
func (s *Service) DiscardCollected(ctx context.Context, donationID uuid.UUID, actor string) error {
	res := s.DB.WithContext(ctx).Delete(&models.CollectedDonation{}, "donation_id = ?", donationID)
	if res.Error != nil {
		return apperrors.NewStorage("delete collected donation", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Collected donation")
	}
	log.Warn().Str("donation_id", donationID.String()).Str("actor", actor).Str("stage", "collected").Msg("Donation discarded")
	return nil
}

// ListPending returns all pending donations, newest first.
func (s *Service) ListPending(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, apperrors.NewStorage("list donations", err)
	}
	return donations, nil
}

// ListByDonor returns a donor's pending donations, newest first.
func (s *Service) ListByDonor(ctx context.Context, donorEmail string) ([]models.Donation, error) {
	var donations []models.Donation
	if err := s.DB.WithContext(ctx).Where("donor_email = ?", donorEmail).Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, apperrors.NewStorage("list donor donations", err)
	}
	return donations, nil
}

// ListCollected returns collected donations, most recently collected first.
func (s *Service) ListCollected(ctx context.Context) ([]models.CollectedDonation, error) {
	var collected []models.CollectedDonation
	if err := s.DB.WithContext(ctx).Order("collected_at DESC").Find(&collected).Error; err != nil {
		return nil, apperrors.NewStorage("list collected donations", err)
	}
	return collected, nil
}

// ListBeneficiaries returns distributed donations, most recent first.
func (s *Service) ListBeneficiaries(ctx context.Context) ([]models.Beneficiary, error) {
	var beneficiaries []models.Beneficiary
	if err := s.DB.WithContext(ctx).Order("distributed_at DESC").Find(&beneficiaries).Error; err != nil {
		return nil, apperrors.NewStorage("list beneficiaries", err)
	}
	return beneficiaries, nil
}

// CountPending returns the number of pending donations (dashboard).
func (s *Service) CountPending(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Donation{}).Count(&n).Error; err != nil {
		return 0, apperrors.NewStorage("count donations", err)
	}
	return n, nil
}

func mustJSON(v []string) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

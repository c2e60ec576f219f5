package jointeam

import (
	"context"
	"errors"
	"testing"

	"regive-backend/internal/identity"
	"regive-backend/internal/models"
	"regive-backend/internal/pkg/apperrors"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProvider records claim grants and can be told to fail them.
type fakeProvider struct {
	accounts    map[string]identity.Account // keyed by email
	claims      map[string]bool             // keyed by uid
	failSetting bool
	deleted     []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		accounts: make(map[string]identity.Account),
		claims:   make(map[string]bool),
	}
}

func (f *fakeProvider) VerifyToken(ctx context.Context, token string) (*identity.Account, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) GetAccountByEmail(ctx context.Context, email string) (*identity.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, apperrors.NewExternal("identity provider", errors.New("no account for email "+email))
	}
	return &account, nil
}

func (f *fakeProvider) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	if f.failSetting {
		return apperrors.NewExternal("identity provider", errors.New("claim update failed"))
	}
	f.claims[uid] = admin
	return nil
}

func (f *fakeProvider) ListAccounts(ctx context.Context, pageToken string) ([]identity.Account, string, error) {
	var all []identity.Account
	for _, account := range f.accounts {
		all = append(all, account)
	}
	return all, "", nil
}

func (f *fakeProvider) DeleteAccount(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

func setupJoinTeamTest(t *testing.T) (*Service, *fakeProvider, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.JoinTeamRequest{}))
	provider := newFakeProvider()
	return &Service{DB: db, Provider: provider}, provider, db
}

func validApply() ApplyInput {
	return ApplyInput{
		Name:       "Vol Unteer",
		Email:      "vol@gmail.com",
		Phone:      "0123456789",
		Department: "CS",
		Year:       "2",
		Interest:   "collection",
		Message:    "I want to help",
	}
}

func TestApply_InvalidYear(t *testing.T) {
	s, _, _ := setupJoinTeamTest(t)
	in := validApply()
	in.Year = "5"
	_, err := s.Apply(context.Background(), in)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "year", ve.Field)
}

func TestApply_InvalidInterest(t *testing.T) {
	s, _, _ := setupJoinTeamTest(t)
	in := validApply()
	in.Interest = "gardening"
	_, err := s.Apply(context.Background(), in)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "interest", ve.Field)
}

func TestApply_CreatesPendingRequest(t *testing.T) {
	s, _, _ := setupJoinTeamTest(t)
	request, err := s.Apply(context.Background(), validApply())
	require.NoError(t, err)
	assert.Equal(t, models.JoinTeamStatusPending, request.Status)
}

func TestApprove_GrantsClaimAndDeletesRequest(t *testing.T) {
	s, provider, db := setupJoinTeamTest(t)
	provider.accounts["vol@gmail.com"] = identity.Account{UID: "uid-vol", Email: "vol@gmail.com"}

	request, err := s.Apply(context.Background(), validApply())
	require.NoError(t, err)

	require.NoError(t, s.Approve(context.Background(), request.RequestID))
	assert.True(t, provider.claims["uid-vol"])

	var count int64
	db.Model(&models.JoinTeamRequest{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestApprove_ClaimFailureKeepsRequest(t *testing.T) {
	s, provider, db := setupJoinTeamTest(t)
	provider.accounts["vol@gmail.com"] = identity.Account{UID: "uid-vol", Email: "vol@gmail.com"}
	provider.failSetting = true

	request, err := s.Apply(context.Background(), validApply())
	require.NoError(t, err)

	err = s.Approve(context.Background(), request.RequestID)
	var ee *apperrors.ExternalServiceError
	require.ErrorAs(t, err, &ee)

	// Never: claim granted with the request gone, or grant failed with it deleted.
	assert.False(t, provider.claims["uid-vol"])
	var count int64
	db.Model(&models.JoinTeamRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApprove_NoProviderAccountKeepsRequest(t *testing.T) {
	s, _, db := setupJoinTeamTest(t)
	request, err := s.Apply(context.Background(), validApply())
	require.NoError(t, err)

	err = s.Approve(context.Background(), request.RequestID)
	var ee *apperrors.ExternalServiceError
	require.ErrorAs(t, err, &ee)

	var count int64
	db.Model(&models.JoinTeamRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApprove_NotFound(t *testing.T) {
	s, _, _ := setupJoinTeamTest(t)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, s.Approve(context.Background(), uuid.New()), &nf)
}

func TestReject_KeepsRecordWithStatus(t *testing.T) {
	s, _, db := setupJoinTeamTest(t)
	request, err := s.Apply(context.Background(), validApply())
	require.NoError(t, err)

	require.NoError(t, s.Reject(context.Background(), request.RequestID))

	var stored models.JoinTeamRequest
	require.NoError(t, db.Where("request_id = ?", request.RequestID).First(&stored).Error)
	assert.Equal(t, models.JoinTeamStatusRejected, stored.Status)
}

func TestDelete_RemovesRequestAndProviderAccount(t *testing.T) {
	s, provider, db := setupJoinTeamTest(t)
	provider.accounts["vol@gmail.com"] = identity.Account{UID: "uid-vol", Email: "vol@gmail.com"}

	request, err := s.Apply(context.Background(), validApply())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), request.RequestID))
	var count int64
	db.Model(&models.JoinTeamRequest{}).Count(&count)
	assert.EqualValues(t, 0, count)
	assert.Equal(t, []string{"uid-vol"}, provider.deleted)
}

package identity

import "context"

// Account is an identity-provider account as seen by this service.
type Account struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	Phone       string `json:"phone"`
	Admin       bool   `json:"isAdmin"`
}

// Provider is the identity-provider contract. Tokens are verified remotely on
// every call; claims are never cached by this service.
type Provider interface {
	// VerifyToken resolves a session token to the account it belongs to,
	// including the current admin claim.
	VerifyToken(ctx context.Context, token string) (*Account, error)
	// GetAccountByEmail resolves an account by its email address.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	// SetAdminClaim grants or revokes the admin custom claim on an account.
	SetAdminClaim(ctx context.Context, uid string, admin bool) error
	// ListAccounts returns one page of accounts and the token for the next
	// page ("" when exhausted).
	ListAccounts(ctx context.Context, pageToken string) ([]Account, string, error)
	// DeleteAccount permanently removes an account.
	DeleteAccount(ctx context.Context, uid string) error
}

package main

import (
	"context"
	"fmt"
	"os"

	"regive-backend/internal/config"
	"regive-backend/internal/identity"
)

// Grants the admin claim to an identity-provider account by uid.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: make-admin <uid>")
		os.Exit(2)
	}
	uid := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load:", err)
		os.Exit(1)
	}

	provider := &identity.HTTPClient{
		BaseURL:   cfg.IdentityBaseURL,
		APIKey:    cfg.IdentityAPIKey,
		ProjectID: cfg.IdentityProjectID,
	}
	if err := provider.SetAdminClaim(context.Background(), uid, true); err != nil {
		fmt.Fprintln(os.Stderr, "failed to set admin claim:", err)
		os.Exit(1)
	}
	fmt.Printf("User %s is now an admin\n", uid)
}

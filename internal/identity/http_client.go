package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"regive-backend/internal/pkg/apperrors"
)

const serviceName = "identity provider"

// HTTPClient is a Provider backed by the provider's REST API (Firebase-style
// identitytoolkit endpoints).
type HTTPClient struct {
	BaseURL   string
	APIKey    string
	ProjectID string
	Client    *http.Client
}

type accountRecord struct {
	LocalID          string `json:"localId"`
	Email            string `json:"email"`
	DisplayName      string `json:"displayName"`
	PhoneNumber      string `json:"phoneNumber"`
	CustomAttributes string `json:"customAttributes"`
}

func (r accountRecord) toAccount() Account {
	acc := Account{
		UID:         r.LocalID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Phone:       r.PhoneNumber,
	}
	if r.CustomAttributes != "" {
		var claims map[string]interface{}
		if err := json.Unmarshal([]byte(r.CustomAttributes), &claims); err == nil {
			acc.Admin, _ = claims["admin"].(bool)
		}
	}
	return acc
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if c.BaseURL == "" {
		return apperrors.NewExternal(serviceName, fmt.Errorf("IDENTITY_BASE_URL is not set"))
	}
	base := strings.TrimRight(c.BaseURL, "/")
	endpoint := base + path
	if c.APIKey != "" {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		endpoint += sep + "key=" + url.QueryEscape(c.APIKey)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewExternal(serviceName, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.NewExternal(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return apperrors.NewExternal(serviceName, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewExternal(serviceName, fmt.Errorf("status %d body: %s", resp.StatusCode, string(respBody)))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return apperrors.NewExternal(serviceName, fmt.Errorf("response decode: %w", err))
		}
	}
	return nil
}

// adminPath builds the path for privileged account operations, which are
// project-scoped when a project id is configured.
func (c *HTTPClient) adminPath(op string) string {
	if c.ProjectID != "" {
		return "/v1/projects/" + c.ProjectID + "/accounts:" + op
	}
	return "/v1/accounts:" + op
}

type lookupResponse struct {
	Users []accountRecord `json:"users"`
}

// VerifyToken resolves the token via accounts:lookup. An invalid or expired
// token surfaces as a provider error; an empty user list as "account not found".
func (c *HTTPClient) VerifyToken(ctx context.Context, token string) (*Account, error) {
	var res lookupResponse
	err := c.do(ctx, http.MethodPost, "/v1/accounts:lookup", map[string]string{"idToken": token}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.Users) == 0 {
		return nil, apperrors.NewExternal(serviceName, fmt.Errorf("token resolved to no account"))
	}
	acc := res.Users[0].toAccount()
	return &acc, nil
}

func (c *HTTPClient) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	var res lookupResponse
	err := c.do(ctx, http.MethodPost, "/v1/accounts:lookup", map[string][]string{"email": {email}}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.Users) == 0 {
		return nil, apperrors.NewExternal(serviceName, fmt.Errorf("no account for email %s", email))
	}
	acc := res.Users[0].toAccount()
	return &acc, nil
}

func (c *HTTPClient) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	attrs, _ := json.Marshal(map[string]bool{"admin": admin})
	body := map[string]string{
		"localId":          uid,
		"customAttributes": string(attrs),
	}
	return c.do(ctx, http.MethodPost, c.adminPath("update"), body, nil)
}

type batchGetResponse struct {
	Users         []accountRecord `json:"users"`
	NextPageToken string          `json:"nextPageToken"`
}

func (c *HTTPClient) ListAccounts(ctx context.Context, pageToken string) ([]Account, string, error) {
	path := c.adminPath("batchGet") + "?maxResults=1000"
	if pageToken != "" {
		path += "&nextPageToken=" + url.QueryEscape(pageToken)
	}
	var res batchGetResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, "", err
	}
	accounts := make([]Account, 0, len(res.Users))
	for _, u := range res.Users {
		accounts = append(accounts, u.toAccount())
	}
	return accounts, res.NextPageToken, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, uid string) error {
	return c.do(ctx, http.MethodPost, c.adminPath("delete"), map[string]string{"localId": uid}, nil)
}

package uploads

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"regive-backend/internal/pkg/apperrors"
)

const serviceName = "object storage"

// StorageClient is the object-storage contract: push bytes, get a stable
// public URL back.
type StorageClient interface {
	Store(ctx context.Context, publicID, fileName string, data []byte) (string, error)
}

// HTTPClient is a StorageClient backed by the CDN's signed upload API
// (Cloudinary-style).
type HTTPClient struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	Client    *http.Client
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Store uploads data under publicID and returns the public URL.
func (c *HTTPClient) Store(ctx context.Context, publicID, fileName string, data []byte) (string, error) {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
		return "", apperrors.NewExternal(serviceName, fmt.Errorf("storage credentials are not set"))
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"folder":    c.Folder,
		"public_id": publicID,
		"timestamp": timestamp,
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range params {
		_ = writer.WriteField(k, v)
	}
	_ = writer.WriteField("api_key", c.APIKey)
	_ = writer.WriteField("signature", signParams(params, c.APISecret))
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", apperrors.NewExternal(serviceName, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", apperrors.NewExternal(serviceName, err)
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.NewExternal(serviceName, err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", apperrors.NewExternal(serviceName, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", apperrors.NewExternal(serviceName, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewExternal(serviceName, fmt.Errorf("status %d body: %s", resp.StatusCode, string(respBody)))
	}

	var res uploadResponse
	if err := json.Unmarshal(respBody, &res); err != nil {
		return "", apperrors.NewExternal(serviceName, fmt.Errorf("response decode: %w", err))
	}
	if res.SecureURL != "" {
		return res.SecureURL, nil
	}
	if res.URL != "" {
		return res.URL, nil
	}
	return "", apperrors.NewExternal(serviceName, fmt.Errorf("no URL in upload response: %s", string(respBody)))
}

// signParams builds the API signature: sorted key=value pairs joined with &,
// with the secret appended, SHA-1 hex encoded.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

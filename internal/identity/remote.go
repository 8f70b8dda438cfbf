package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

// RemoteVerifier asks Supabase Auth who owns the token (GET /auth/v1/user).
type RemoteVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[uuid.UUID]
}

var _ Verifier = (*RemoteVerifier)(nil)

func NewRemoteVerifier(baseURL, anonKey string, timeout time.Duration) *RemoteVerifier {
	return &RemoteVerifier{
		baseURL: baseURL,
		apiKey:  anonKey,
		client:  &http.Client{Timeout: timeout},
		cb:      newBreaker[uuid.UUID]("identity-verify"),
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	return v.cb.Execute(func() (uuid.UUID, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
		if err != nil {
			return uuid.Nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("apikey", v.apiKey)

		resp, err := v.client.Do(req)
		if err != nil {
			return uuid.Nil, fmt.Errorf("identity provider: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			_, _ = io.Copy(io.Discard, resp.Body)
			return uuid.Nil, errInvalidToken
		default:
			return uuid.Nil, fmt.Errorf("identity provider: unexpected status %d", resp.StatusCode)
		}

		var body userResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return uuid.Nil, fmt.Errorf("identity provider: decode user: %w", err)
		}

		sub, err := uuid.Parse(body.ID)
		if err != nil {
			return uuid.Nil, errInvalidToken
		}
		return sub, nil
	})
}

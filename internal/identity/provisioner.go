package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
)

// Provisioner creates pre-confirmed accounts through the Supabase admin API.
type Provisioner struct {
	baseURL    string
	serviceKey string
	client     *http.Client
	cb         *gobreaker.CircuitBreaker[uuid.UUID]
}

func NewProvisioner(baseURL, serviceRoleKey string, timeout time.Duration) *Provisioner {
	return &Provisioner{
		baseURL:    baseURL,
		serviceKey: serviceRoleKey,
		client:     &http.Client{Timeout: timeout},
		cb:         newBreaker[uuid.UUID]("identity-admin"),
	}
}

type createUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

type providerError struct {
	Code        string `json:"error_code"`
	Msg         string `json:"msg"`
	Message     string `json:"message"`
	Description string `json:"error_description"`
}

func (e providerError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.Description} {
		if s != "" {
			return s
		}
	}
	return "El proveedor de identidad rechazó la solicitud."
}

// CreateUser returns the new account's subject.
func (p *Provisioner) CreateUser(ctx context.Context, email, password string) (uuid.UUID, error) {
	if p.serviceKey == "" {
		return uuid.Nil, fmt.Errorf("identity provider: service role key not configured")
	}

	payload, err := json.Marshal(createUserRequest{Email: email, Password: password, EmailConfirm: true})
	if err != nil {
		return uuid.Nil, err
	}

	return p.cb.Execute(func() (uuid.UUID, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/admin/users", bytes.NewReader(payload))
		if err != nil {
			return uuid.Nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("apikey", p.serviceKey)
		req.Header.Set("Authorization", "Bearer "+p.serviceKey)

		resp, err := p.client.Do(req)
		if err != nil {
			return uuid.Nil, fmt.Errorf("identity provider: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			var pe providerError
			_ = json.NewDecoder(resp.Body).Decode(&pe)
			if pe.Code == "email_exists" || pe.Code == "user_already_exists" {
				return uuid.Nil, httperr.Conflict("email_exists", "Ya existe una cuenta con ese email.")
			}
			return uuid.Nil, httperr.InvalidInput("identity_rejected", pe.text())
		}
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return uuid.Nil, fmt.Errorf("identity provider: unexpected status %d", resp.StatusCode)
		}

		var body userResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return uuid.Nil, fmt.Errorf("identity provider: decode user: %w", err)
		}
		id, err := uuid.Parse(body.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("identity provider: bad user id %q", body.ID)
		}
		return id, nil
	})
}

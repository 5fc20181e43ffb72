package athena_dto

import (
	"athena-relay-service/internal/pkg/constvars"
	"net/url"

	"github.com/goccy/go-json"
)

type TokenRequest struct {
	GrantType string
	Scope     string
}

func (t TokenRequest) FormValues() url.Values {
	values := url.Values{}
	values.Set(constvars.AthenaFormGrantType, t.GrantType)
	values.Set(constvars.AthenaFormScope, t.Scope)
	return values
}

type TokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   json.RawMessage `json:"expires_in,omitempty"`
	Scope       string          `json:"scope"`
}

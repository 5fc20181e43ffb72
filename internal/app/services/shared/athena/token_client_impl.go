package athena

import (
	"athena-relay-service/internal/app/config"
	"athena-relay-service/internal/app/contracts"
	"athena-relay-service/internal/pkg/athena_dto"
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/exceptions"
	"athena-relay-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type tokenClient struct {
	TokenUrl     string
	ClientID     string
	ClientSecret string
	Scope        string
	HTTPClient   *http.Client
	Metrics      contracts.RelayMetrics
	Log          *zap.Logger
}

func NewTokenClient(athenaConfig config.Athena, httpClient *http.Client, metrics contracts.RelayMetrics, logger *zap.Logger) contracts.AthenaTokenClient {
	return &tokenClient{
		TokenUrl:     athenaConfig.TokenUrl(),
		ClientID:     athenaConfig.ClientID,
		ClientSecret: athenaConfig.ClientSecret,
		Scope:        athenaConfig.Scope,
		HTTPClient:   httpClient,
		Metrics:      metrics,
		Log:          logger,
	}
}

// AcquireToken runs a client credentials grant and returns the bearer token.
// Every failure comes back as an UpstreamAuth error.
func (c *tokenClient) AcquireToken(ctx context.Context) (string, error) {
	start := time.Now()
	requestID := utils.RequestIDFromContext(ctx)

	form := athena_dto.TokenRequest{
		GrantType: constvars.AthenaGrantTypeClientCreds,
		Scope:     c.Scope,
	}.FormValues()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.TokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		c.Log.Error("tokenClient.AcquireToken error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.NewUpstreamAuthError(exceptions.ErrCreateHTTPRequest(err))
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(c.ClientID, c.ClientSecret)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaToken, outcomeNetworkError, time.Since(start))
		c.Log.Error("tokenClient.AcquireToken error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, c.TokenUrl),
			zap.Error(err),
		)
		return "", exceptions.NewUpstreamAuthError(exceptions.NewUpstreamNetworkError(constvars.ServiceAthenaToken, err))
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaToken, outcomeNetworkError, time.Since(start))
		c.Log.Error("tokenClient.AcquireToken error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.NewUpstreamAuthError(exceptions.NewUpstreamNetworkError(constvars.ServiceAthenaToken, err))
	}

	if !isSuccessStatus(resp.StatusCode) {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaToken, outcomeHTTPError, time.Since(start))
		c.Log.Error("tokenClient.AcquireToken athena rejected the credentials exchange",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString(constvars.LoggingUpstreamBodyKey, bodyBytes),
		)
		return "", exceptions.NewUpstreamAuthError(exceptions.NewUpstreamStatusError(constvars.ServiceAthenaToken, resp.StatusCode, bodyBytes))
	}

	token := new(athena_dto.TokenResponse)
	err = json.Unmarshal(bodyBytes, token)
	if err == nil && token.AccessToken == "" {
		err = errors.New(constvars.ErrDevAthenaTokenEmpty)
	}
	if err != nil {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaToken, outcomeInvalidResponse, time.Since(start))
		c.Log.Error("tokenClient.AcquireToken error decoding token response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.NewUpstreamAuthError(err)
	}

	c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaToken, outcomeSuccess, time.Since(start))
	c.Log.Info("Access token retrieved successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenTypeKey, token.TokenType),
		zap.ByteString(constvars.LoggingTokenExpiresInKey, token.ExpiresIn),
	)
	return token.AccessToken, nil
}

// Package mail holds both ends of quote delivery: the HTTP client the api uses
// to reach the mail relay, and the SMTP sender the relay itself uses.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const sendQuotePath = "/api/send-orcamento"

var ErrRelayRejected = errors.New("mail relay rejected the message")

// RelayClient posts quote emails to the relay service.
type RelayClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IMailRelayClient = (*RelayClient)(nil)

func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &RelayClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type relayResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func (c *RelayClient) SendQuote(ctx context.Context, msg interfaces.QuoteEmail) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("mail relay: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendQuotePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mail relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("mail relay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("mail relay: read response: %w", err)
	}

	var out relayResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("mail relay: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		reason := out.Error
		if reason == "" {
			reason = out.Message
		}
		log.Warn().Str("component", "mail_relay_client").Int("status", resp.StatusCode).Str("reason", reason).Msg("relay refused quote email")
		return "", fmt.Errorf("%w: %s", ErrRelayRejected, reason)
	}
	return out.MessageID, nil
}

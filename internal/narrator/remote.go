package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finwise/backend/internal/models"
)

// DefaultTimeout limits a single remote request.
const DefaultTimeout = 10 * time.Second

var (
	errRemoteStatus  = errors.New("unexpected response status")
	errRemoteEmpty   = errors.New("the response does not contain any content")
	errRemoteMessage = errors.New("the text generation service returned an error")
)

type remoteRequest struct {
	Transactions []models.Transaction `json:"transactions"`
	Type         Kind                 `json:"type"`
}

type remoteResponse struct {
	Content string `json:"content"`
	Error   string `json:"error"`
}

// Remote delegates text generation to an HTTP endpoint.
//
// The endpoint receives the transactions and the kind as JSON and answers
// with {"content": "..."}. Requests are not retried.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote returns a Remote for the endpoint. A timeout of zero uses
// DefaultTimeout.
func NewRemote(url string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Remote{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Narrate(ctx context.Context, txns []models.Transaction, kind Kind) (string, error) {
	if txns == nil {
		txns = []models.Transaction{}
	}

	body, err := json.Marshal(remoteRequest{Transactions: txns, Type: kind})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w %d: %s", errRemoteStatus, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var response remoteResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != "" {
		return "", fmt.Errorf("%w: %s", errRemoteMessage, response.Error)
	}

	content := strings.TrimSpace(response.Content)
	if content == "" {
		return "", errRemoteEmpty
	}

	return content, nil
}

package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/types"
)

// ErrUnexpectedStatus is returned when the server answers with a status
// the call does not expect.
var ErrUnexpectedStatus = errors.New("unexpected status")

// client speaks the bizmatch HTTP API.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *client) health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/healthz", nil, http.StatusOK)
	return err
}

func (c *client) createSession(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/sessions", nil, http.StatusCreated)
	if err != nil {
		return "", err
	}
	var created types.SessionCreated
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decode session: %w", err)
	}
	return created.SessionID, nil
}

func (c *client) saveAnswers(ctx context.Context, sessionID string, answers []model.Answer) error {
	payload, err := json.Marshal(struct {
		Answers []model.Answer `json:"answers"`
	}{Answers: answers})
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	_, err = c.do(ctx, http.MethodPut, "/sessions/"+sessionID+"/answers", payload, http.StatusNoContent)
	return err
}

func (c *client) recommendations(ctx context.Context, sessionID string, limit int) (types.Report, error) {
	path := "/sessions/" + sessionID + "/recommendations"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	body, err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return types.Report{}, err
	}
	var report types.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return types.Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

func (c *client) deleteSession(ctx context.Context, sessionID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/sessions/"+sessionID, nil, http.StatusNoContent)
	return err
}

func (c *client) do(ctx context.Context, method, path string, payload []byte, want int) ([]byte, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if resp.StatusCode != want {
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", ErrUnexpectedStatus, method, path, resp.StatusCode, bytes.TrimSpace(data))
	}
	return data, nil
}

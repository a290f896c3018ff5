package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"TokenKeeper/internal/cli/auth"
)

// StatusError: ответ сервера с неуспешным HTTP-статусом.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Code)
	}
	return fmt.Sprintf("server status %d: %s", e.Code, e.Message)
}

// Client: типизированный клиент API поверх auth.Helper: все запросы идут через FetchWithAuth.
type Client struct {
	BaseURL string
	Helper  *auth.Helper
}

// NewClient создаёт клиента для сервера baseURL.
func NewClient(baseURL string, h *auth.Helper) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Helper: h}
}

func (c *Client) endpoint(path string) string {
	return c.BaseURL + path
}

// DoJSON отправляет JSON-запрос и возвращает ответ с уже прочитанным телом.
// payload == nil: запрос без тела.
func (c *Client) DoJSON(ctx context.Context, method, path string, payload any) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	resp, err := c.Helper.FetchWithAuth(ctx, c.endpoint(path), &auth.RequestOptions{Method: method, Body: body})
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, bytes.TrimSpace(b), nil
}

// statusError строит StatusError из тела ответа: {"message": ...} или сырой текст.
func statusError(code int, body []byte) *StatusError {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
		return &StatusError{Code: code, Message: m.Message}
	}
	return &StatusError{Code: code, Message: strings.TrimSpace(string(body))}
}

// call выполняет запрос, проверяет ожидаемый статус и декодирует ответ в out (если out != nil).
func (c *Client) call(ctx context.Context, method, path string, payload any, want int, out any) error {
	resp, body, err := c.DoJSON(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != want {
		return statusError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

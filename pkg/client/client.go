package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// APIError is a non-2xx response. Message is what the server put in the
// envelope's "message", Detail its "error".
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return fmt.Sprintf("%d: %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// File is an image attached to a multipart request.
type File struct {
	Name string
	Data []byte
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client talks to the HTTP API. The session cookie set by login or signup
// is kept in a cookie jar and sent on every later request.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}, nil
}

// doJSON sends in as a JSON body (when non-nil) and decodes the response
// envelope into out (when non-nil). It returns the envelope message.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) (string, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return "", err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return "", err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart sends fields and an optional image as multipart/form-data.
// Fields with several values are written once per value.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string][]string, image *File, out any) (string, error) {
	return c.doMultipartFile(ctx, method, path, fields, "image", image, out)
}

func (c *Client) doMultipartFile(ctx context.Context, method, path string, fields map[string][]string, fileField string, file *File, out any) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return "", err
			}
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, file.Name)
		if err != nil {
			return "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

// download streams a non-JSON response body into w.
func (c *Client) download(ctx context.Context, path string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return decodeError(resp.StatusCode, raw)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func (c *Client) send(req *http.Request, out any) (string, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", decodeError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
	}
	return env.Message, nil
}

func decodeError(status int, raw []byte) error {
	apiErr := &APIError{Status: status}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Message = env.Message
		apiErr.Detail = env.Error
	}
	if apiErr.Message == "" {
		apiErr.Message = apiErr.Detail
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

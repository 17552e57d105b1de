package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

// APIClient talks to the chat server's HTTP API. Calls rely on the
// transport's default timeout behavior; the progress coordinator is the only
// place with an explicit timeout.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Upload posts the file at path as multipart form data to /api/upload.
func (c *APIClient) Upload(ctx context.Context, path string) (*types.UploadResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploadRes types.UploadResponse
	if err := c.do(req, &uploadRes); err != nil {
		return nil, err
	}
	return &uploadRes, nil
}

// Chat posts a question to /api/chat and returns the answered turn.
func (c *APIClient) Chat(ctx context.Context, question string) (*types.ChatResponse, error) {
	payload, err := json.Marshal(types.ChatRequest{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var chatRes types.ChatResponse
	if err := c.do(req, &chatRes); err != nil {
		return nil, err
	}
	return &chatRes, nil
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errRes types.ErrorResponse
		if err := json.Unmarshal(raw, &errRes); err == nil && errRes.Error != "" {
			if errRes.Details != "" {
				return fmt.Errorf("%s: %s", errRes.Error, errRes.Details)
			}
			return fmt.Errorf("%s", errRes.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return json.Unmarshal(raw, out)
}

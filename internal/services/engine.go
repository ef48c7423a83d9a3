package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"resumatch/resume-match/internal/models"
)

// EngineClient is the gateway to the external skill-extraction engine. One
// submission means exactly one engine call: a transient failure is surfaced
// to the caller instead of being retried against a paid, rate-limited API.
type EngineClient interface {
	Analyze(ctx context.Context, filePath, originalName, jobDescription string) (*models.RawAnalysisResult, json.RawMessage, error)
}

type engineClient struct {
	baseURL     string
	analyzePath string
	httpClient  *http.Client
	timeout     time.Duration
}

func NewEngineClient(baseURL, analyzePath string, timeout time.Duration) EngineClient {
	return &engineClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		analyzePath: analyzePath,
		httpClient:  &http.Client{},
		timeout:     timeout,
	}
}

// Analyze posts the stored document to the engine and decodes the reply. The
// file part streams from disk through an io.Pipe, so large uploads are never
// buffered whole. The wait ceiling applies to the entire exchange.
func (e *engineClient) Analyze(ctx context.Context, filePath, originalName, jobDescription string) (*models.RawAnalysisResult, json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stored document: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", originalName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if jobDescription != "" {
			if err := writer.WriteField("job_description", jobDescription); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+e.analyzePath, pr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build engine request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, nil, models.ErrAnalysisTimeout
		}
		return nil, nil, fmt.Errorf("%w: %v", models.ErrAnalysisUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, nil, models.ErrAnalysisTimeout
		}
		return nil, nil, fmt.Errorf("%w: failed to read engine response: %v", models.ErrAnalysisUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := engineErrorMessage(body); msg != "" {
			return nil, nil, fmt.Errorf("%w: %s", models.ErrAnalysisUnavailable, msg)
		}
		return nil, nil, fmt.Errorf("%w: engine returned status %d", models.ErrAnalysisUnavailable, resp.StatusCode)
	}

	var raw models.RawAnalysisResult
	if err := json.Unmarshal(body, &raw); err != nil {
		// A 2xx body that isn't the expected shape still counts as a result;
		// the normalizer degrades missing fields to empty sets. A body that
		// isn't JSON at all is re-encoded as a JSON string so it can still be
		// persisted in a jsonb column.
		if !json.Valid(body) {
			quoted, _ := json.Marshal(string(body))
			return &models.RawAnalysisResult{}, json.RawMessage(quoted), nil
		}
		return &models.RawAnalysisResult{}, json.RawMessage(body), nil
	}

	return &raw, json.RawMessage(body), nil
}

// engineErrorMessage pulls a human-readable message out of an engine error
// body. FastAPI-style engines use "detail", others "error" or "message".
func engineErrorMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, msg := range []string{payload.Detail, payload.Error, payload.Message} {
		if msg != "" {
			return msg
		}
	}
	return ""
}

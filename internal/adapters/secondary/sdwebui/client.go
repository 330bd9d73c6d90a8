package sdwebui

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"dormlife-art-generator/internal/config"
	"dormlife-art-generator/internal/core/domain"
	ports "dormlife-art-generator/internal/core/ports/output"
)

const txt2imgPath = "/sdapi/v1/txt2img"

// maxErrorBody caps how much of a failed response body is kept in HTTPError.
const maxErrorBody = 4096

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Stable Diffusion WebUI txt2img client adapter.
// A zero timeout leaves the request unbounded.
func NewClient(cfg *config.Txt2ImgConfig) ports.ImageGenerator {
	return &client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// HTTPError is returned for any non-2xx txt2img response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("txt2img http %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) Unwrap() error {
	return domain.ErrUpstreamStatus
}

type txt2imgResponse struct {
	Images []string `json:"images"`
}

func (c *client) Txt2Img(ctx context.Context, req *domain.GenerationRequest) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode txt2img request: %w", err)
	}

	url := c.baseURL + txt2imgPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create txt2img request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"url":    url,
		"steps":  req.Steps,
		"width":  req.Width,
		"height": req.Height,
	}).Debug("sending txt2img request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("txt2img request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out txt2imgResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode txt2img response: %w", err)
	}
	if len(out.Images) == 0 || strings.TrimSpace(out.Images[0]) == "" {
		return nil, domain.ErrNoImages
	}

	image, err := base64.StdEncoding.DecodeString(stripDataURI(out.Images[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImagePayload, err)
	}

	log.WithFields(log.Fields{
		"bytes":      len(image),
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("txt2img response decoded")

	return image, nil
}

// stripDataURI drops a "data:image/png;base64," prefix when the server adds one.
func stripDataURI(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}

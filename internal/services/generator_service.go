package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"quizgen/internal/models/response_models"
	"quizgen/pkg/utils"
)

// GeneratorClientInterface is the boundary to the remote generation service.
// Every call maps to exactly one HTTP request and returns one outcome per
// submitted source, in backend order.
type GeneratorClientInterface interface {
	GenerateFromVideoURL(ctx context.Context, urls string) ([]response_models.GenerationOutcome, error)
	GenerateFromLocalPath(ctx context.Context, paths string) ([]response_models.GenerationOutcome, error)
	GenerateFromPDF(ctx context.Context, filename string, data []byte) ([]response_models.GenerationOutcome, error)
}

type GeneratorClient struct {
	httpClient *http.Client
	apiURL     string
}

func NewGeneratorClient(apiURL string) GeneratorClientInterface {
	return &GeneratorClient{
		httpClient: &http.Client{Timeout: 300 * time.Second},
		apiURL:     apiURL,
	}
}

func (g *GeneratorClient) GenerateFromVideoURL(ctx context.Context, urls string) ([]response_models.GenerationOutcome, error) {
	return g.postJSON(ctx, map[string]string{"video_url": urls})
}

func (g *GeneratorClient) GenerateFromLocalPath(ctx context.Context, paths string) ([]response_models.GenerationOutcome, error) {
	return g.postJSON(ctx, map[string]string{"os_video_path": paths})
}

func (g *GeneratorClient) GenerateFromPDF(ctx context.Context, filename string, data []byte) ([]response_models.GenerationOutcome, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return g.do(req)
}

func (g *GeneratorClient) postJSON(ctx context.Context, payload map[string]string) ([]response_models.GenerationOutcome, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req)
}

func (g *GeneratorClient) do(req *http.Request) ([]response_models.GenerationOutcome, error) {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var ge response_models.GenerationError
		if json.Unmarshal(raw, &ge) == nil && ge.Error != "" {
			return nil, fmt.Errorf("%w: %s", utils.ErrGenerationFailed, ge.Error)
		}
		return nil, fmt.Errorf("%w: backend returned status %d", utils.ErrGenerationFailed, resp.StatusCode)
	}

	var outcomes []response_models.GenerationOutcome
	if err := json.Unmarshal(raw, &outcomes); err != nil {
		return nil, fmt.Errorf("%w: malformed backend response", utils.ErrGenerationFailed)
	}
	return outcomes, nil
}

package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/kaiwen-teo/primeprep-lambda/internal/config"
	"google.golang.org/genai"
)

const modelID = "gemini-2.0-flash"

// Provider issues a single text-generation call. When schema is non-nil the
// model is constrained to JSON output matching it, and the returned payload is
// the parsed JSON document; otherwise the raw text is wrapped as {"text": ...}.
type Provider interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error)
}

type geminiProvider struct {
	client  *genai.Client
	initErr error
}

// NewProvider builds a Gemini-backed provider from GOOGLE_API_KEY. A missing
// key does not fail startup; the provider is returned unconfigured and every
// Generate call reports ErrNotConfigured instead. A failed client construction
// is kept apart so clients are not told the key is missing when it is not.
func NewProvider(ctx context.Context) Provider {
	apiKey := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	if apiKey == "" {
		config.WithContext(ctx).Warn("GOOGLE_API_KEY is not set; generation calls will fail closed")
		return &geminiProvider{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to create Gemini client")
		return &geminiProvider{initErr: fmt.Errorf("create Gemini client: %w", err)}
	}

	return &geminiProvider{client: client}
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error) {
	log := config.WithContext(ctx).WithField("call_id", uuid.NewString())

	if p.initErr != nil {
		return nil, p.initErr
	}
	if p.client == nil {
		return nil, ErrNotConfigured
	}

	var genConfig *genai.GenerateContentConfig
	if schema != nil {
		genConfig = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, modelID, genai.Text(prompt), genConfig)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			log.WithError(err).Errorf("Gemini API returned HTTP %d", apiErr.Code)
			return nil, &UpstreamError{Code: apiErr.Code, Details: apiErr.Message}
		}
		log.WithError(err).Error("Gemini call failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		log.Error("Gemini response carried no candidates or text")
		return nil, ErrInvalidResponse
	}

	payload, err := normalizeResult(raw, schema != nil)
	if err != nil {
		log.WithError(err).Errorf("Unusable model output:\n%s", raw)
		return nil, err
	}

	return payload, nil
}

// normalizeResult reshapes the generated text for the client. Gemini sometimes
// wraps JSON output in markdown fences even when a response schema was set, so
// those are stripped before parsing.
func normalizeResult(raw string, wantJSON bool) (json.RawMessage, error) {
	if !wantJSON {
		return json.Marshal(map[string]string{"text": raw})
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	if !json.Valid([]byte(clean)) {
		return nil, ErrMalformedJSON
	}
	return json.RawMessage(clean), nil
}

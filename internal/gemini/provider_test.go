package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestGenerateFailsClosedWithoutKey(t *testing.T) {
	provider := &geminiProvider{}

	_, err := provider.Generate(context.Background(), "any prompt", nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateReportsClientInitFailure(t *testing.T) {
	initErr := errors.New("create Gemini client: bad backend")
	provider := &geminiProvider{initErr: initErr}

	_, err := provider.Generate(context.Background(), "any prompt", nil)
	if !errors.Is(err, initErr) {
		t.Errorf("expected the construction error to surface, got %v", err)
	}
	if errors.Is(err, ErrNotConfigured) {
		t.Error("a failed client construction must not be reported as a missing key")
	}
}

func TestNormalizeResult(t *testing.T) {
	t.Run("PlainTextWrapped", func(t *testing.T) {
		payload, err := normalizeResult("Think about groups of 7.", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body map[string]string
		if err := json.Unmarshal(payload, &body); err != nil {
			t.Fatalf("wrapped payload is not JSON: %v", err)
		}
		if body["text"] != "Think about groups of 7." {
			t.Errorf("text must be wrapped untouched, got %q", body["text"])
		}
	})

	t.Run("ValidJSONPassedThrough", func(t *testing.T) {
		payload, err := normalizeResult(`{"questions":[]}`, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payload) != `{"questions":[]}` {
			t.Errorf("JSON must pass through verbatim, got %s", payload)
		}
	})

	t.Run("MarkdownFencesStripped", func(t *testing.T) {
		payload, err := normalizeResult("```json\n{\"questions\":[]}\n```", true)
		if err != nil {
			t.Fatalf("fenced JSON should be accepted: %v", err)
		}
		if !json.Valid(payload) {
			t.Errorf("stripped payload is not valid JSON: %s", payload)
		}
	})

	t.Run("MalformedJSONRejected", func(t *testing.T) {
		_, err := normalizeResult("Sure! Here is your quiz: ...", true)
		if !errors.Is(err, ErrMalformedJSON) {
			t.Errorf("expected ErrMalformedJSON, got %v", err)
		}
	})
}

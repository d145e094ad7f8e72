package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError marks a client input problem. Handlers map it to a 400 and the
// request never reaches the Gemini provider.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

type QuizRequest struct {
	ClassLevel        string   `json:"classLevel"`
	Subject           string   `json:"subject"`
	Topic             string   `json:"topic"`
	Difficulty        string   `json:"difficulty"`
	Template          string   `json:"template,omitempty"`
	PreviousQuestions []string `json:"previous_questions,omitempty"`
}

func (r QuizRequest) Validate() error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"classLevel", r.ClassLevel},
		{"subject", r.Subject},
		{"topic", r.Topic},
		{"difficulty", r.Difficulty},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &RequestError{fmt.Sprintf("Missing or empty required fields: %s", strings.Join(missing, ", "))}
	}
	return nil
}

type QuestionPaperRequest struct {
	ClassLevel        string          `json:"classLevel"`
	Subject           string          `json:"subject"`
	QuestionCount     json.RawMessage `json:"questionCount,omitempty"`
	PreviousQuestions []string        `json:"previous_questions,omitempty"`
}

func (r QuestionPaperRequest) Validate() error {
	if r.ClassLevel == "" || r.Subject == "" {
		return &RequestError{"Missing 'classLevel' or 'subject'."}
	}
	return nil
}

// ResolveCount parses questionCount from the raw body. The field is loosely
// typed on the wire: clients send numbers, numeric strings, or nothing at all.
func (r QuestionPaperRequest) ResolveCount() (int, error) {
	if len(r.QuestionCount) == 0 {
		return defaultQuestionCount, nil
	}

	countErr := &RequestError{"'questionCount' must be a number."}

	var num json.Number
	if err := json.Unmarshal(r.QuestionCount, &num); err != nil {
		var s string
		if err := json.Unmarshal(r.QuestionCount, &s); err != nil {
			return 0, countErr
		}
		num = json.Number(strings.TrimSpace(s))
	}
	if num == "" {
		return 0, countErr
	}

	if n, err := num.Int64(); err == nil {
		return int(n), nil
	}
	if f, err := num.Float64(); err == nil {
		return int(f), nil
	}
	return 0, countErr
}

type YearEndRequest struct {
	ClassLevel string          `json:"classLevel"`
	Difficulty string          `json:"difficulty,omitempty"`
	Subjects   json.RawMessage `json:"subjects,omitempty"`
}

// TopicSelections decodes the caller's subject→topics mapping. The field is
// tolerated rather than validated: a subjects value that is not an object, or
// an entry whose topics are not an array of strings, is skipped so the subject
// falls back to its default topic list.
func (r YearEndRequest) TopicSelections() map[string][]string {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(r.Subjects, &entries); err != nil {
		return nil
	}

	selected := make(map[string][]string, len(entries))
	for subject, raw := range entries {
		var topics []string
		if err := json.Unmarshal(raw, &topics); err != nil {
			continue
		}
		selected[subject] = topics
	}
	return selected
}

func (r YearEndRequest) Validate() error {
	if r.ClassLevel == "" {
		return &RequestError{"Missing 'classLevel' in request."}
	}
	if r.ClassLevel != supportedClassLevel {
		return &RequestError{"Year-end paper generation is currently supported for Primary 3 only."}
	}
	return nil
}

type QuestionItem struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

type EvaluationRequest struct {
	Questions []QuestionItem `json:"questions"`
	Answers   []any          `json:"answers"`
}

func (r EvaluationRequest) Validate() error {
	if r.Questions == nil || r.Answers == nil {
		return &RequestError{"Missing 'questions' or 'answers' in request."}
	}
	if len(r.Questions) == 0 {
		return &RequestError{"At least one question is required for evaluation."}
	}
	// Positional alignment is part of the contract; a short answers list would
	// otherwise mean indexing past its end.
	if len(r.Answers) != len(r.Questions) {
		return &RequestError{"Number of answers must match the number of questions."}
	}
	return nil
}

type HintRequest struct {
	Question string `json:"question"`
}

func (r HintRequest) Validate() error {
	if r.Question == "" {
		return &RequestError{"Missing 'question' in request."}
	}
	return nil
}

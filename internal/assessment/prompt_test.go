package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestBuildQuizPrompt(t *testing.T) {
	base := QuizRequest{
		ClassLevel: "P3",
		Subject:    "Maths",
		Topic:      "Fractions",
		Difficulty: "medium",
	}

	t.Run("MixedFormat", func(t *testing.T) {
		prompt := BuildQuizPrompt(base)

		if !strings.Contains(prompt, "Generate a quiz with exactly 5 questions") {
			t.Errorf("mixed prompt should request 5 questions, got:\n%s", prompt)
		}
		single := strings.Index(prompt, "Two 'single-choice' questions")
		multi := strings.Index(prompt, "One 'multi-select' question")
		free := strings.Index(prompt, "Two 'free-text' questions")
		if single == -1 || multi == -1 || free == -1 {
			t.Fatalf("mixed prompt is missing a question-type block:\n%s", prompt)
		}
		if !(single < multi && multi < free) {
			t.Errorf("question types must appear in single/multi/free order, got indexes %d/%d/%d", single, multi, free)
		}
	})

	t.Run("EnglishMCQTopic", func(t *testing.T) {
		req := base
		req.Subject = "English"
		req.Topic = "Vocab MCQ"
		prompt := BuildQuizPrompt(req)

		if !strings.Contains(prompt, "exactly 5 'single-choice' multiple-choice questions") {
			t.Errorf("English MCQ topic should produce an all-MCQ prompt:\n%s", prompt)
		}
		if strings.Contains(prompt, "multi-select' question (") || strings.Contains(prompt, "free-text' questions (") {
			t.Errorf("all-MCQ prompt must not request multi-select or free-text items:\n%s", prompt)
		}
	})

	t.Run("MCQTopicOnlyAppliesToEnglish", func(t *testing.T) {
		req := base
		req.Topic = "Vocab MCQ"
		prompt := BuildQuizPrompt(req)

		if strings.Contains(prompt, "multiple-choice questions for a") {
			t.Errorf("non-English subjects must get the mixed format even for MCQ topic names:\n%s", prompt)
		}
	})

	t.Run("TemplateOnlyForEnglish", func(t *testing.T) {
		req := base
		req.Template = "Fill in the blank: ___"
		if prompt := BuildQuizPrompt(req); strings.Contains(prompt, req.Template) {
			t.Errorf("template must be ignored for non-English subjects:\n%s", prompt)
		}

		req.Subject = "English"
		if prompt := BuildQuizPrompt(req); !strings.Contains(prompt, "Use the following question template for formatting:\nFill in the blank: ___") {
			t.Errorf("template must be appended for English:\n%s", prompt)
		}
	})

	t.Run("ComprehensionImageInstruction", func(t *testing.T) {
		req := base
		req.Subject = "English"
		req.Topic = "Comprehension (Open-Ended)"
		prompt := BuildQuizPrompt(req)

		if !strings.Contains(prompt, "Include an 'image' field with the same URL for each question.") {
			t.Errorf("comprehension topics must share one image:\n%s", prompt)
		}
	})

	t.Run("PreviousQuestions", func(t *testing.T) {
		req := base
		req.PreviousQuestions = []string{"What is 1/2 + 1/4?", "Shade 3/8 of the figure."}
		prompt := BuildQuizPrompt(req)

		if !strings.Contains(prompt, "- What is 1/2 + 1/4?\n- Shade 3/8 of the figure.") {
			t.Errorf("previous questions must be enumerated:\n%s", prompt)
		}
		if !strings.Contains(prompt, "different patterns and structures") {
			t.Errorf("prompt must ask for structurally different questions:\n%s", prompt)
		}
	})

	t.Run("OutputShapeAlwaysLast", func(t *testing.T) {
		prompt := BuildQuizPrompt(base)
		if !strings.HasSuffix(prompt, "an 'options' array of 4 strings.") {
			t.Errorf("JSON output instruction must close the prompt:\n%s", prompt)
		}
	})
}

func TestBuildQuestionPaperPrompt(t *testing.T) {
	req := QuestionPaperRequest{ClassLevel: "P4", Subject: "Science"}

	prompt := BuildQuestionPaperPrompt(req, 12)
	if !strings.Contains(prompt, "exactly 12 questions") {
		t.Errorf("prompt must carry the resolved question count:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Do not include answer keys, hints, or explanations") {
		t.Errorf("prompt must forbid leaked answer keys:\n%s", prompt)
	}

	req.PreviousQuestions = []string{"Name a magnetic material."}
	prompt = BuildQuestionPaperPrompt(req, 12)
	if !strings.Contains(prompt, "Avoid reusing any of the following questions") {
		t.Errorf("prompt must carry the de-duplication block:\n%s", prompt)
	}
}

func TestBuildYearEndPrompt(t *testing.T) {
	t.Run("DifficultySentences", func(t *testing.T) {
		cases := map[string]string{
			"medium":       "reflects medium difficulty",
			"hard":         "is hard difficulty",
			"medium-hard":  "span medium to hard difficulty",
			"unrecognized": "span medium to hard difficulty",
		}
		for input, want := range cases {
			prompt := BuildYearEndPrompt(YearEndRequest{ClassLevel: "P3", Difficulty: input})
			if !strings.Contains(prompt, want) {
				t.Errorf("difficulty %q: expected sentence containing %q", input, want)
			}
		}
	})

	t.Run("SubjectOrderAndTopics", func(t *testing.T) {
		prompt := BuildYearEndPrompt(YearEndRequest{
			ClassLevel: "P3",
			Subjects:   json.RawMessage(`{"Maths":["Fractions","Time"]}`),
		})

		english := strings.Index(prompt, "English: ")
		maths := strings.Index(prompt, "Maths: Fractions, Time")
		science := strings.Index(prompt, "Science: ")
		if english == -1 || maths == -1 || science == -1 {
			t.Fatalf("topic lines missing:\n%s", prompt)
		}
		if !(english < maths && maths < science) {
			t.Errorf("subjects must be listed English, Maths, Science; got indexes %d/%d/%d", english, maths, science)
		}
	})

	t.Run("SectionRequirements", func(t *testing.T) {
		prompt := BuildYearEndPrompt(YearEndRequest{ClassLevel: "P3"})
		for _, want := range []string{
			"Add 3 Vocabulary MCQ questions and 3 Grammar MCQ questions.",
			"Add 2 Grammar Cloze questions.",
			"1 Comprehension Cloze passage with five blanks",
			"Add 2 Sentence Combining questions that are open-ended.",
			"Include 10 questions: 4 MCQ, 4 short-answer, and 2 structured word problems",
			"Include 8 questions: 4 MCQ and 4 open-ended questions",
			"Number questions within each section starting from Q1.",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("year-end prompt missing %q", want)
			}
		}
	})
}

func TestBuildEvaluationPrompt(t *testing.T) {
	req := EvaluationRequest{
		Questions: []QuestionItem{
			{Type: "single-choice", Question: "2+2?", Options: []string{"3", "4", "5", "6"}},
			{Type: "free-text", Question: "Explain photosynthesis."},
		},
		Answers: []any{"4", "Plants make food from light."},
	}

	prompt := BuildEvaluationPrompt(req)

	if !strings.Contains(prompt, "Question 1 (type: single-choice): 2+2?") {
		t.Errorf("first question block missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Options: N/A") {
		t.Errorf("questions without options must render the N/A placeholder:\n%s", prompt)
	}
	if !strings.Contains(prompt, fmt.Sprintf("an array of %d objects", len(req.Questions))) {
		t.Errorf("prompt must pin the evaluation array length:\n%s", prompt)
	}
}

func TestBuildHintPrompt(t *testing.T) {
	prompt := BuildHintPrompt(HintRequest{Question: "What is 7 x 8?"})

	if !strings.Contains(prompt, "do not give away the answer") {
		t.Errorf("hint prompt must forbid revealing the answer:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"What is 7 x 8?"`) {
		t.Errorf("hint prompt must quote the question:\n%s", prompt)
	}
}

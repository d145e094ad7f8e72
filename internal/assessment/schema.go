package assessment

import "google.golang.org/genai"

// Response schema descriptors handed to the Gemini call alongside each
// structured prompt. They constrain the model to the exact JSON shapes the
// client app consumes; the hint task has none and receives plain text.

var quizSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type":     {Type: genai.TypeString},
					"question": {Type: genai.TypeString},
					"options":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"image":    {Type: genai.TypeString},
				},
				Required: []string{"type", "question"},
			},
		},
	},
}

var questionPaperSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type":     {Type: genai.TypeString},
					"question": {Type: genai.TypeString},
					"options":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"type", "question"},
			},
		},
	},
}

var yearEndSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"paper_title":      {Type: genai.TypeString},
		"duration_minutes": {Type: genai.TypeInteger},
		"sections": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"subject":                {Type: genai.TypeString},
					"section_title":          {Type: genai.TypeString},
					"instructions":           {Type: genai.TypeString},
					"time_allocated_minutes": {Type: genai.TypeInteger},
					"total_marks":            {Type: genai.TypeInteger},
					"questions": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"number":             {Type: genai.TypeString},
								"type":               {Type: genai.TypeString},
								"prompt":             {Type: genai.TypeString},
								"options":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
								"topic":              {Type: genai.TypeString},
								"marks":              {Type: genai.TypeInteger},
								"answer":             {Type: genai.TypeString},
								"answer_explanation": {Type: genai.TypeString},
							},
							Required: []string{"number", "type", "prompt", "answer", "topic"},
						},
					},
				},
				Required: []string{"subject", "section_title", "instructions", "questions"},
			},
		},
	},
	Required: []string{"paper_title", "sections"},
}

var evaluationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"evaluation": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"is_correct":     {Type: genai.TypeBoolean},
					"correct_answer": {Type: genai.TypeString},
					"explanation":    {Type: genai.TypeString},
				},
				Required: []string{"is_correct", "correct_answer", "explanation"},
			},
		},
	},
}

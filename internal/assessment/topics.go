package assessment

import (
	"slices"
	"strings"
	"unicode"
)

// Fixed syllabus reference data. Loaded once, never mutated.

const (
	supportedClassLevel  = "P3"
	defaultQuestionCount = 10
	maxQuestionCount     = 15
	defaultDifficulty    = "medium-hard"
)

// p3YearEndTopics is the per-subject topic allow-list for the year-end paper,
// aligned with the Primary 3 MOE syllabus.
var p3YearEndTopics = map[string][]string{
	"English": {
		"Vocab MCQ",
		"Grammar MCQ",
		"Grammar Cloze",
		"Comprehension Cloze",
		"Sentence Combining",
		"Comprehension (Open-Ended)",
	},
	"Maths": {
		"Numbers to 10 000",
		"Addition and Subtraction",
		"Money",
		"Multiplication Tables of 6, 7, 8 and 9",
		"Multiplication and Division",
		"More Word Problems",
		"Bar Graphs",
		"Angles",
		"Perpendicular and Parallel Lines",
		"Fractions",
		"Length, Mass and Volume",
		"Area and Perimeter",
		"Time",
	},
	"Science": {
		"Diversity of Living Things",
		"Classification of Living Things",
		"Diversity of Materials",
		"Life cycles (Plants & Animals)",
		"Properties of Magnets",
		"Making and Using Magnets",
	},
}

// yearEndSubjectOrder fixes the section order of the generated paper.
var yearEndSubjectOrder = []string{"English", "Maths", "Science"}

// englishMCQTopics are the English topics rendered as all-MCQ quizzes.
var englishMCQTopics = map[string]bool{
	"Vocab MCQ":           true,
	"Grammar MCQ":         true,
	"Grammar Cloze":       true,
	"Comprehension Cloze": true,
}

// englishComprehensionTopics share a single passage/image across the quiz.
var englishComprehensionTopics = map[string]bool{
	"Comprehension (Open-Ended)": true,
}

var difficultyLevels = map[string]string{
	"medium":          "medium",
	"med":             "medium",
	"mediumhard":      "medium-hard",
	"mediumhardmix":   "medium-hard",
	"mediumtohardmix": "medium-hard",
	"hard":            "hard",
}

// normalizeDifficulty lower-cases the input, strips everything that is not a
// letter or digit, and maps the remainder to a canonical level. Anything
// unrecognized falls back to medium-hard.
func normalizeDifficulty(raw string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
		}
	}
	if level, ok := difficultyLevels[b.String()]; ok {
		return level
	}
	return defaultDifficulty
}

// resolveYearEndTopics keeps only caller topics present in the allow-list,
// drops subjects left with nothing valid, and fills every missing subject with
// its full default topic list.
func resolveYearEndTopics(requested map[string][]string) map[string][]string {
	resolved := make(map[string][]string, len(p3YearEndTopics))

	for subject, topics := range requested {
		allowed := p3YearEndTopics[subject]
		var filtered []string
		for _, topic := range topics {
			if slices.Contains(allowed, topic) {
				filtered = append(filtered, topic)
			}
		}
		if len(filtered) > 0 {
			resolved[subject] = filtered
		}
	}

	for subject, defaults := range p3YearEndTopics {
		if _, ok := resolved[subject]; !ok {
			resolved[subject] = defaults
		}
	}

	return resolved
}

package assessment

import (
	"fmt"
	"strings"
)

// BuildQuizPrompt renders the instruction string for a single-topic quiz.
// English MCQ-eligible topics get an all-multiple-choice paper; everything
// else gets the fixed 2 single-choice / 1 multi-select / 2 free-text mix.
func BuildQuizPrompt(req QuizRequest) string {
	var b strings.Builder

	if req.Subject == "English" && englishMCQTopics[req.Topic] {
		fmt.Fprintf(&b,
			"Act as a Primary School teacher in Singapore. "+
				"Generate a quiz with exactly 5 'single-choice' multiple-choice questions for a %s student. "+
				"The subject is %s and the specific topic is %s. "+
				"The difficulty level should be %s. "+
				"Each question must have four options with exactly one correct answer. "+
				"Ensure the questions are aligned with the Singapore MOE syllabus. ",
			req.ClassLevel, req.Subject, req.Topic, req.Difficulty)
	} else {
		fmt.Fprintf(&b,
			"Act as a Primary School teacher in Singapore. "+
				"Generate a quiz with exactly 5 questions for a %s student. "+
				"The subject is %s and the specific topic is %s. "+
				"The difficulty level should be %s. "+
				"The quiz must have this structure: "+
				"1. Two 'single-choice' questions (select one correct answer from 4 options). "+
				"2. One 'multi-select' question (select one or more correct answers from 4 options). "+
				"3. Two 'free-text' questions (open-ended questions requiring a written answer). "+
				"Ensure the questions are aligned with the Singapore MOE syllabus. ",
			req.ClassLevel, req.Subject, req.Topic, req.Difficulty)
	}

	if req.Subject == "English" && req.Template != "" {
		fmt.Fprintf(&b, "\nUse the following question template for formatting:\n%s", req.Template)
	}

	if req.Subject == "English" && englishComprehensionTopics[req.Topic] {
		b.WriteString("\nAll five questions must be based on the same image. Include an 'image' field with the same URL for each question.")
	}

	if len(req.PreviousQuestions) > 0 {
		b.WriteString("\nIMPORTANT: To ensure variety, do not generate any of the following questions that the student has already answered for this topic:\n")
		b.WriteString(bulletList(req.PreviousQuestions))
		b.WriteString("\nAlso, try to create questions with different patterns and structures than the ones listed above.")
	}

	b.WriteString(
		"\nReturn a single JSON object with a key 'questions', which is an array of 5 question objects. " +
			"Each question object must have: a 'type' (string: 'single-choice', 'multi-select', or 'free-text'), " +
			"a 'question' (string), and for choice questions, an 'options' array of 4 strings.")

	return b.String()
}

// BuildQuestionPaperPrompt renders the instruction string for a full question
// paper of count questions. count is already validated and clamped.
func BuildQuestionPaperPrompt(req QuestionPaperRequest, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Act as a Primary School teacher in Singapore. "+
			"Create a question paper with exactly %d questions for a %s student. "+
			"The subject is %s. "+
			"Provide a healthy mix of question types that reflects the MOE syllabus: include several 'single-choice' multiple-choice questions, at least one 'multi-select' question, and at least two 'free-text' questions. "+
			"For all multiple-choice or multi-select questions, include four options with clear wording. "+
			"Do not include answer keys, hints, or explanations in the question paper itself. ",
		count, req.ClassLevel, req.Subject)

	if len(req.PreviousQuestions) > 0 {
		b.WriteString("\nAvoid reusing any of the following questions that the student has already seen for this subject:\n")
		b.WriteString(bulletList(req.PreviousQuestions))
		b.WriteString("\nCreate fresh variations with different numbers, scenarios, or phrasing wherever possible.")
	}

	b.WriteString(
		"\nReturn a single JSON object with a key 'questions', which is an array of question objects. " +
			"Each question object must contain: 'type' (one of 'single-choice', 'multi-select', or 'free-text'), " +
			"a 'question' field containing the question text, and an 'options' array of four strings for choice-based questions.")

	return b.String()
}

// BuildYearEndPrompt renders the three-section Primary 3 year-end paper
// instruction from the resolved topic lists and canonical difficulty level.
func BuildYearEndPrompt(req YearEndRequest) string {
	difficulty := normalizeDifficulty(req.Difficulty)

	var difficultySentence string
	switch difficulty {
	case "medium":
		difficultySentence = "Ensure every question reflects medium difficulty suitable for confident Primary 3 pupils preparing for the year-end assessment."
	case "hard":
		difficultySentence = "Ensure every question is hard difficulty, stretching capable Primary 3 pupils while staying within MOE expectations."
	default:
		difficultySentence = "Ensure the questions span medium to hard difficulty, mirroring the rigour of Primary 3 year-end examinations."
	}

	topics := resolveYearEndTopics(req.TopicSelections())
	var topicLines []string
	for _, subject := range yearEndSubjectOrder {
		if list := topics[subject]; len(list) > 0 {
			topicLines = append(topicLines, fmt.Sprintf("%s: %s", subject, strings.Join(list, ", ")))
		}
	}

	return fmt.Sprintf(
		"Act as an experienced Primary 3 teacher in Singapore preparing a year-end practice examination that follows the latest Singapore MOE syllabus. "+
			"Create a complete Primary 3 practice paper with separate sections for English, Mathematics, and Science. "+
			"Follow these requirements:\n"+
			"1. Present the paper in three sections (English, Mathematics, Science) in that order with clear section titles.\n"+
			"2. Use only these Primary 3 topics and tag every question with a 'topic' field that matches one of them exactly:\n"+
			"%s\n"+
			"3. %s\n"+
			"4. Provide an overall paper title and recommended total duration in minutes.\n"+
			"5. English section (align with Paper 2 Language Use & Comprehension):\n"+
			"   • Include section instructions suitable for Primary 3 students.\n"+
			"   • Add 3 Vocabulary MCQ questions and 3 Grammar MCQ questions.\n"+
			"   • Add 2 Grammar Cloze questions. Each Grammar Cloze question should contain a short passage with three blanks, each blank offering four MCQ options.\n"+
			"   • Add 1 Comprehension Cloze passage with five blanks (treated as five questions) and four MCQ options for each blank.\n"+
			"   • Add 2 Sentence Combining questions that are open-ended.\n"+
			"   • Add 2 Comprehension open-ended questions tied to one short passage.\n"+
			"6. Mathematics section:\n"+
			"   • Provide section instructions, suggested time, and total marks.\n"+
			"   • Include 10 questions: 4 MCQ, 4 short-answer, and 2 structured word problems that expect working steps.\n"+
			"7. Science section:\n"+
			"   • Provide section instructions, suggested time, and total marks.\n"+
			"   • Include 8 questions: 4 MCQ and 4 open-ended questions focusing on explanation or application of concepts.\n"+
			"8. For every question, include an answer and, where helpful, a short explanation aligned with MOE marking expectations.\n"+
			"9. Number questions within each section starting from Q1.\n"+
			"10. Return the paper strictly as JSON that follows the provided schema.",
		strings.Join(topicLines, "\n"), difficultySentence)
}

// BuildEvaluationPrompt renders one block per question/answer pair and asks
// for a verdict, concise correct answer, and an encouraging explanation.
func BuildEvaluationPrompt(req EvaluationRequest) string {
	var b strings.Builder

	for i, q := range req.Questions {
		options := "N/A"
		if len(q.Options) > 0 {
			options = strings.Join(q.Options, ", ")
		}
		fmt.Fprintf(&b,
			"Question %d (type: %s): %s\nOptions: %s\nStudent's Answer: %v\n\n",
			i+1, q.Type, q.Question, options, req.Answers[i])
	}

	return fmt.Sprintf(
		"Act as a Primary School teacher in Singapore. "+
			"Evaluate the following questions and student answers. For each one, provide whether it is correct, the correct answer (be concise), and a simple, encouraging one-sentence explanation. "+
			"Here are the questions and answers:\n%s"+
			"Return the response as a single JSON object with a key 'evaluation', which is an array of %d objects. "+
			"Each object must have three keys: 'is_correct' (boolean), 'correct_answer' (string), and 'explanation' (string).",
		b.String(), len(req.Questions))
}

func BuildHintPrompt(req HintRequest) string {
	return fmt.Sprintf(
		"Provide a simple one-sentence hint for a Primary 3 student for the following question, "+
			"but do not give away the answer: %q", req.Question)
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

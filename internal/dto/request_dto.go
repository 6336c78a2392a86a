package dto

// CreateQuestionRequest carries a new question submission. Question and
// Answer are pointers so that an absent field and an empty string fail
// validation the same way instead of inserting blank rows.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   uint    `json:"category"`
	Difficulty int     `json:"difficulty"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// QuizCategory narrows a quiz round to one category. ID zero means any.
type QuizCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// QuizRequest asks for the next question of a running quiz. Both fields
// must be present; an empty previous_questions list is a fresh quiz.
type QuizRequest struct {
	PreviousQuestions *[]uint       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type SuggestQuestionRequest struct {
	Category *uint `json:"category"`
}

package dto

type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionListResponse is the GET /questions payload. CurrentCategory
// lists the category id of every stored question, duplicates included,
// which is what the list view consumes.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	CurrentCategory []uint             `json:"currentCategory"`
	Categories      map[uint]string    `json:"categories"`
	TotalQuestions  int                `json:"total_questions"`
}

type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// SearchQuestionsResponse reports matches for a search term. Questions is
// the requested page of matches while TotalQuestions counts all of them.
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	CurrentCategory []uint             `json:"currentCategory"`
	TotalQuestions  int                `json:"total_questions"`
}

// CategoryQuestionsResponse carries one category's questions. Unlike the
// list and search payloads, CurrentCategory is the single category id.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	CurrentCategory uint               `json:"currentCategory"`
	TotalQuestions  int                `json:"total_questions"`
}

// QuizResponse returns the next quiz question, or a null question once
// every candidate has been played.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// QuestionDraft is an AI-suggested question that has not been stored, so
// it carries no id.
type QuestionDraft struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type SuggestQuestionResponse struct {
	Success  bool          `json:"success"`
	Question QuestionDraft `json:"question"`
}

// ErrorResponse is the uniform error payload for every non-2xx status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

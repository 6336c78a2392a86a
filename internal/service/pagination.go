package service

import "github.com/lshigami/trivium/internal/dto"

// QuestionsPerPage is the fixed page size for every question listing.
const QuestionsPerPage = 10

// PaginateQuestions slices out the 1-based page of a question list. Pages
// before the first or past the data yield an empty slice, never an error,
// so callers decide whether an empty page is a failure.
func PaginateQuestions(questions []dto.QuestionResponse, page int) []dto.QuestionResponse {
	if page < 1 {
		return []dto.QuestionResponse{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []dto.QuestionResponse{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

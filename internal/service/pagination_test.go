package service

import (
	"testing"

	"github.com/lshigami/trivium/internal/dto"
)

func makeQuestions(n int) []dto.QuestionResponse {
	questions := make([]dto.QuestionResponse, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, dto.QuestionResponse{ID: uint(i)})
	}
	return questions
}

func TestPaginateQuestionsFirstPage(t *testing.T) {
	questions := makeQuestions(25)

	page := PaginateQuestions(questions, 1)
	if len(page) != QuestionsPerPage {
		t.Errorf("Expected %d questions on page 1, got %d", QuestionsPerPage, len(page))
	}
	if page[0].ID != 1 || page[len(page)-1].ID != 10 {
		t.Errorf("Expected questions 1-10 on page 1, got %d-%d", page[0].ID, page[len(page)-1].ID)
	}
}

func TestPaginateQuestionsLastPartialPage(t *testing.T) {
	questions := makeQuestions(25)

	page := PaginateQuestions(questions, 3)
	if len(page) != 5 {
		t.Errorf("Expected 5 questions on page 3, got %d", len(page))
	}
	if page[0].ID != 21 {
		t.Errorf("Expected page 3 to start at question 21, got %d", page[0].ID)
	}
}

func TestPaginateQuestionsOutOfRange(t *testing.T) {
	questions := makeQuestions(25)

	for _, page := range []int{0, -1, 4, 100} {
		got := PaginateQuestions(questions, page)
		if len(got) != 0 {
			t.Errorf("Expected empty result for page %d, got %d questions", page, len(got))
		}
		if got == nil {
			t.Errorf("Expected non-nil empty slice for page %d", page)
		}
	}
}

func TestPaginateQuestionsEmptyInput(t *testing.T) {
	page := PaginateQuestions([]dto.QuestionResponse{}, 1)
	if len(page) != 0 {
		t.Errorf("Expected empty page for empty input, got %d questions", len(page))
	}
}

func TestPaginateQuestionsExactMultiple(t *testing.T) {
	questions := makeQuestions(20)

	page := PaginateQuestions(questions, 2)
	if len(page) != QuestionsPerPage {
		t.Errorf("Expected a full page 2, got %d questions", len(page))
	}
	if PaginateQuestions(questions, 3) == nil || len(PaginateQuestions(questions, 3)) != 0 {
		t.Errorf("Expected empty page 3 for 20 questions")
	}
}

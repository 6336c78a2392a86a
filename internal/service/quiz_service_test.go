package service

import (
	"testing"

	"github.com/lshigami/trivium/internal/dto"
	"github.com/lshigami/trivium/internal/model"
	"github.com/lshigami/trivium/internal/repository"
	"gorm.io/gorm"
)

func seedQuizQuestions(t *testing.T, db *gorm.DB) {
	t.Helper()
	questions := []model.Question{
		{Question: "First?", Answer: "One", Category: 1, Difficulty: 1},
		{Question: "Second?", Answer: "Two", Category: 1, Difficulty: 1},
		{Question: "Third?", Answer: "Three", Category: 2, Difficulty: 1},
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("Failed to seed questions: %v", err)
	}
}

func quizReq(previous []uint, categoryID uint) dto.QuizRequest {
	return dto.QuizRequest{
		PreviousQuestions: &previous,
		QuizCategory:      &dto.QuizCategory{ID: categoryID},
	}
}

func TestNextQuestionRequiresBothFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuestionRepository(db))

	previous := []uint{}
	cases := []dto.QuizRequest{
		{},
		{PreviousQuestions: &previous},
		{QuizCategory: &dto.QuizCategory{ID: 1}},
	}
	for i, req := range cases {
		_, err := svc.NextQuestion(req)
		if err == nil {
			t.Fatalf("Expected case %d to fail", i)
		}
		if _, ok := err.(interface{ Unprocessable() }); !ok {
			t.Errorf("Expected an unprocessable error for case %d, got %v", i, err)
		}
	}
}

func TestNextQuestionExcludesPrevious(t *testing.T) {
	db := newTestDB(t)
	seedQuizQuestions(t, db)
	svc := NewQuizService(repository.NewQuestionRepository(db))

	// Only question 3 is left, so the pick is deterministic
	resp, err := svc.NextQuestion(quizReq([]uint{1, 2}, 0))
	if err != nil {
		t.Fatalf("NextQuestion failed: %v", err)
	}
	if resp.Question == nil {
		t.Fatal("Expected a question, got null")
	}
	if resp.Question.ID != 3 {
		t.Errorf("Expected question 3, got %d", resp.Question.ID)
	}
}

func TestNextQuestionExhausted(t *testing.T) {
	db := newTestDB(t)
	seedQuizQuestions(t, db)
	svc := NewQuizService(repository.NewQuestionRepository(db))

	resp, err := svc.NextQuestion(quizReq([]uint{1, 2, 3}, 0))
	if err != nil {
		t.Fatalf("NextQuestion failed: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success to be true when the quiz is exhausted")
	}
	if resp.Question != nil {
		t.Errorf("Expected a null question, got %+v", resp.Question)
	}
}

func TestNextQuestionCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	seedQuizQuestions(t, db)
	svc := NewQuizService(repository.NewQuestionRepository(db))

	resp, err := svc.NextQuestion(quizReq([]uint{}, 2))
	if err != nil {
		t.Fatalf("NextQuestion failed: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != 3 {
		t.Errorf("Expected the single category 2 question, got %+v", resp.Question)
	}

	// Category 2 exhausted even though other categories have questions left
	resp, err = svc.NextQuestion(quizReq([]uint{3}, 2))
	if err != nil {
		t.Fatalf("NextQuestion failed: %v", err)
	}
	if resp.Question != nil {
		t.Errorf("Expected a null question for exhausted category, got %+v", resp.Question)
	}
}

func TestNextQuestionZeroCategoryPlaysAll(t *testing.T) {
	db := newTestDB(t)
	seedQuizQuestions(t, db)
	svc := NewQuizService(repository.NewQuestionRepository(db))

	seen := make(map[uint]bool)
	previous := []uint{}
	for i := 0; i < 3; i++ {
		resp, err := svc.NextQuestion(quizReq(previous, 0))
		if err != nil {
			t.Fatalf("NextQuestion failed on round %d: %v", i, err)
		}
		if resp.Question == nil {
			t.Fatalf("Quiz exhausted after %d rounds, expected 3", i)
		}
		if seen[resp.Question.ID] {
			t.Fatalf("Question %d repeated despite being in previous_questions", resp.Question.ID)
		}
		seen[resp.Question.ID] = true
		previous = append(previous, resp.Question.ID)
	}

	resp, err := svc.NextQuestion(quizReq(previous, 0))
	if err != nil {
		t.Fatalf("NextQuestion failed after exhaustion: %v", err)
	}
	if resp.Question != nil {
		t.Errorf("Expected a null question after all rounds, got %+v", resp.Question)
	}
}

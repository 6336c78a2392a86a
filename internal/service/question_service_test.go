package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/trivium/internal/dto"
	"github.com/lshigami/trivium/internal/model"
	"github.com/lshigami/trivium/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory SQLite database exists per connection, so the pool must
	// be pinned to one connection or tables vanish between queries.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.Category{}, &model.Question{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newQuestionService(db *gorm.DB) QuestionService {
	categorySvc := NewCategoryService(repository.NewCategoryRepository(db))
	return NewQuestionService(repository.NewQuestionRepository(db), categorySvc)
}

func seedTrivia(t *testing.T, db *gorm.DB) {
	t.Helper()
	categories := []model.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("Failed to seed categories: %v", err)
	}
	questions := make([]model.Question, 0, 12)
	for i := 1; i <= 12; i++ {
		category := uint(1)
		if i > 8 {
			category = 2
		}
		questions = append(questions, model.Question{
			Question:   fmt.Sprintf("Sample question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   category,
			Difficulty: 1 + i%5,
		})
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("Failed to seed questions: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func TestListQuestionsFirstPage(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	resp, err := svc.ListQuestions(1)
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if len(resp.Questions) != 10 {
		t.Errorf("Expected 10 questions on page 1, got %d", len(resp.Questions))
	}
	if resp.TotalQuestions != 12 {
		t.Errorf("Expected 12 total questions, got %d", resp.TotalQuestions)
	}
	if len(resp.CurrentCategory) != 12 {
		t.Errorf("Expected one category id per stored question, got %d", len(resp.CurrentCategory))
	}
	if resp.Categories[1] != "Science" || resp.Categories[2] != "Art" {
		t.Errorf("Expected category labels in response, got %v", resp.Categories)
	}
}

func TestListQuestionsSecondPage(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	resp, err := svc.ListQuestions(2)
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(resp.Questions) != 2 {
		t.Errorf("Expected 2 questions on page 2, got %d", len(resp.Questions))
	}
	if resp.Questions[0].ID != 11 {
		t.Errorf("Expected page 2 to start at question 11, got %d", resp.Questions[0].ID)
	}
}

func TestListQuestionsEmptyPageIsNotFound(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	for _, page := range []int{0, -3, 5} {
		_, err := svc.ListQuestions(page)
		if err == nil {
			t.Fatalf("Expected an error for page %d", page)
		}
		if _, ok := err.(interface{ NotFound() }); !ok {
			t.Errorf("Expected a not-found error for page %d, got %v", page, err)
		}
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)

	cases := []dto.CreateQuestionRequest{
		{Answer: strPtr("An answer"), Category: 1, Difficulty: 2},
		{Question: strPtr("A question?"), Category: 1, Difficulty: 2},
		{Question: strPtr(""), Answer: strPtr("An answer"), Category: 1, Difficulty: 2},
		{Question: strPtr("A question?"), Answer: strPtr(""), Category: 1, Difficulty: 2},
	}
	for i, req := range cases {
		_, err := svc.CreateQuestion(req, 1)
		if err == nil {
			t.Fatalf("Expected case %d to fail", i)
		}
		if _, ok := err.(interface{ Unprocessable() }); !ok {
			t.Errorf("Expected an unprocessable error for case %d, got %v", i, err)
		}
	}
}

func TestCreateQuestionStores(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	req := dto.CreateQuestionRequest{
		Question:   strPtr("Who discovered penicillin?"),
		Answer:     strPtr("Alexander Fleming"),
		Category:   1,
		Difficulty: 3,
	}
	resp, err := svc.CreateQuestion(req, 1)
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if resp.Created == 0 {
		t.Error("Expected a non-zero created id")
	}
	if resp.TotalQuestions != 13 {
		t.Errorf("Expected 13 total questions after create, got %d", resp.TotalQuestions)
	}
	if len(resp.Questions) != 10 {
		t.Errorf("Expected a full first page after create, got %d", len(resp.Questions))
	}

	var stored model.Question
	if err := db.First(&stored, resp.Created).Error; err != nil {
		t.Fatalf("Created question not found in store: %v", err)
	}
	if stored.Question != "Who discovered penicillin?" || stored.Answer != "Alexander Fleming" {
		t.Errorf("Stored question does not match request: %+v", stored)
	}
}

func TestDeleteQuestion(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	resp, err := svc.DeleteQuestion(3, 1)
	if err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if resp.Deleted != 3 {
		t.Errorf("Expected deleted id 3, got %d", resp.Deleted)
	}
	if resp.TotalQuestions != 11 {
		t.Errorf("Expected 11 total questions after delete, got %d", resp.TotalQuestions)
	}

	var count int64
	db.Model(&model.Question{}).Where("id = ?", 3).Count(&count)
	if count != 0 {
		t.Error("Expected question 3 to be removed from the store")
	}

	// Deleting the same id again reports not found
	_, err = svc.DeleteQuestion(3, 1)
	if err == nil {
		t.Fatal("Expected an error deleting an unknown id")
	}
	if _, ok := err.(interface{ NotFound() }); !ok {
		t.Errorf("Expected a not-found error, got %v", err)
	}
}

func TestDeleteQuestionEmptyPageIsFine(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	// Unlike listing, an out-of-range page is no failure here
	resp, err := svc.DeleteQuestion(5, 9)
	if err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if len(resp.Questions) != 0 {
		t.Errorf("Expected an empty page 9, got %d questions", len(resp.Questions))
	}
	if resp.TotalQuestions != 11 {
		t.Errorf("Expected 11 total questions, got %d", resp.TotalQuestions)
	}
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	db.Create(&model.Question{Question: "Which movie title won in 1996?", Answer: "Apollo 13", Category: 2, Difficulty: 4})
	svc := newQuestionService(db)

	resp, err := svc.SearchQuestions(dto.SearchRequest{SearchTerm: strPtr("TITLE")}, 1)
	if err != nil {
		t.Fatalf("SearchQuestions failed: %v", err)
	}
	if resp.TotalQuestions != 1 {
		t.Fatalf("Expected 1 match, got %d", resp.TotalQuestions)
	}
	if resp.Questions[0].Answer != "Apollo 13" {
		t.Errorf("Expected the movie question, got %+v", resp.Questions[0])
	}
	if len(resp.CurrentCategory) != 1 || resp.CurrentCategory[0] != 2 {
		t.Errorf("Expected currentCategory [2], got %v", resp.CurrentCategory)
	}
}

func TestSearchQuestionsMissingTerm(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)

	for i, req := range []dto.SearchRequest{{}, {SearchTerm: strPtr("")}} {
		_, err := svc.SearchQuestions(req, 1)
		if err == nil {
			t.Fatalf("Expected case %d to fail", i)
		}
		if _, ok := err.(interface{ Unprocessable() }); !ok {
			t.Errorf("Expected an unprocessable error for case %d, got %v", i, err)
		}
	}
}

func TestSearchQuestionsNoMatchesIsSuccess(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	resp, err := svc.SearchQuestions(dto.SearchRequest{SearchTerm: strPtr("zebra")}, 1)
	if err != nil {
		t.Fatalf("SearchQuestions failed: %v", err)
	}
	if resp.TotalQuestions != 0 {
		t.Errorf("Expected 0 matches, got %d", resp.TotalQuestions)
	}
	if resp.Questions == nil || len(resp.Questions) != 0 {
		t.Errorf("Expected an empty question list, got %v", resp.Questions)
	}
}

func TestQuestionsByCategory(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	svc := newQuestionService(db)

	resp, err := svc.QuestionsByCategory(2, 1)
	if err != nil {
		t.Fatalf("QuestionsByCategory failed: %v", err)
	}
	if resp.CurrentCategory != 2 {
		t.Errorf("Expected currentCategory 2, got %d", resp.CurrentCategory)
	}
	if resp.TotalQuestions != 4 {
		t.Errorf("Expected 4 questions in category 2, got %d", resp.TotalQuestions)
	}
	for _, question := range resp.Questions {
		if question.Category != 2 {
			t.Errorf("Expected only category 2 questions, got %+v", question)
		}
	}
}

func TestQuestionsByCategoryUnreferenced(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	// A category row without questions still counts as unreferenced
	db.Create(&model.Category{ID: 3, Type: "Geography"})
	svc := newQuestionService(db)

	for _, categoryID := range []uint{3, 99} {
		_, err := svc.QuestionsByCategory(categoryID, 1)
		if err == nil {
			t.Fatalf("Expected an error for category %d", categoryID)
		}
		if _, ok := err.(interface{ Unprocessable() }); !ok {
			t.Errorf("Expected an unprocessable error for category %d, got %v", categoryID, err)
		}
	}
}

func TestGetCategoriesMap(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	categories, err := svc.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("Expected no categories in an empty store, got %v", categories)
	}

	db.Create(&model.Category{ID: 1, Type: "Science"})
	categories, err = svc.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if categories[1] != "Science" {
		t.Errorf("Expected category 1 to be Science, got %v", categories)
	}
}

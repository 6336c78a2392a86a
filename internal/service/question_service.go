package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivium/internal/dto"
	"github.com/lshigami/trivium/internal/model"
	"github.com/lshigami/trivium/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	ListQuestions(page int) (*dto.QuestionListResponse, error)
	CreateQuestion(req dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(id uint, page int) (*dto.DeleteQuestionResponse, error)
	SearchQuestions(req dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error)
	QuestionsByCategory(categoryID uint, page int) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	repo        repository.QuestionRepository
	categorySvc CategoryService
}

func NewQuestionService(repo repository.QuestionRepository, categorySvc CategoryService) QuestionService {
	return &questionService{repo: repo, categorySvc: categorySvc}
}

// toQuestionResponses maps stored questions onto the wire shape. The
// result is never nil so empty lists serialize as [] rather than null.
func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp
}

func categoryIDsOf(questions []dto.QuestionResponse) []uint {
	ids := make([]uint, 0, len(questions))
	for _, question := range questions {
		ids = append(ids, question.Category)
	}
	return ids
}

// ListQuestions returns one page of the full question list together with
// the category map and the category id of every stored question. A page
// with no questions on it is a not-found failure.
func (s *questionService) ListQuestions(page int) (*dto.QuestionListResponse, error) {
	questions, err := s.repo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, err
	}
	all := toQuestionResponses(questions)
	current := PaginateQuestions(all, page)
	if len(current) == 0 {
		return nil, &notFoundError{msg: fmt.Sprintf("no questions on page %d", page)}
	}

	categories, err := s.categorySvc.GetCategories()
	if err != nil {
		return nil, err
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       current,
		CurrentCategory: categoryIDsOf(all),
		Categories:      categories,
		TotalQuestions:  len(all),
	}, nil
}

// CreateQuestion stores a new question and answers with the refreshed
// question page. A missing or empty question or answer is unprocessable.
func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if req.Question == nil || *req.Question == "" || req.Answer == nil || *req.Answer == "" {
		return nil, &unprocessableError{msg: "question and answer are required"}
	}

	question := model.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}

	all, err := s.reloadAll()
	if err != nil {
		return nil, err
	}
	return &dto.CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      PaginateQuestions(all, page),
		TotalQuestions: len(all),
	}, nil
}

// DeleteQuestion removes a question by id and answers with the refreshed
// question page. Unknown ids are not found; an empty page here is fine.
func (s *questionService) DeleteQuestion(id uint, page int) (*dto.DeleteQuestionResponse, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return nil, err
	}
	if !deleted {
		return nil, &notFoundError{msg: fmt.Sprintf("question %d not found", id)}
	}

	all, err := s.reloadAll()
	if err != nil {
		return nil, err
	}
	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      PaginateQuestions(all, page),
		TotalQuestions: len(all),
	}, nil
}

// SearchQuestions finds every question whose text contains the term,
// case-insensitively, and pages the matches. TotalQuestions counts all
// matches; no match at all is still a success.
func (s *questionService) SearchQuestions(req dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error) {
	if req.SearchTerm == nil || *req.SearchTerm == "" {
		return nil, &unprocessableError{msg: "searchTerm is required"}
	}

	questions, err := s.repo.SearchByQuestion(*req.SearchTerm)
	if err != nil {
		log.Error().Err(err).Str("term", *req.SearchTerm).Msg("Failed to search questions")
		return nil, err
	}
	matches := toQuestionResponses(questions)

	return &dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       PaginateQuestions(matches, page),
		CurrentCategory: categoryIDsOf(matches),
		TotalQuestions:  len(matches),
	}, nil
}

// QuestionsByCategory pages the questions of one category. A category id
// no stored question references is unprocessable; whether a category row
// with that id exists is deliberately not consulted.
func (s *questionService) QuestionsByCategory(categoryID uint, page int) (*dto.CategoryQuestionsResponse, error) {
	questions, err := s.repo.FindByCategory(categoryID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to load category questions")
		return nil, err
	}
	if len(questions) == 0 {
		return nil, &unprocessableError{msg: fmt.Sprintf("no questions in category %d", categoryID)}
	}
	selection := toQuestionResponses(questions)

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       PaginateQuestions(selection, page),
		CurrentCategory: categoryID,
		TotalQuestions:  len(selection),
	}, nil
}

func (s *questionService) reloadAll() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Failed to reload questions")
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

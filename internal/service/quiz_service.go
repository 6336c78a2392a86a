package service

import (
	"math/rand"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivium/internal/dto"
	"github.com/lshigami/trivium/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	NextQuestion(req dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo repository.QuestionRepository
}

func NewQuizService(repo repository.QuestionRepository) QuizService {
	return &quizService{repo: repo}
}

// NextQuestion picks a uniformly random question that has not been played
// yet, optionally narrowed to one category. Both request fields must be
// present; once no candidate is left the question comes back null, which
// tells the client the quiz is over.
func (s *quizService) NextQuestion(req dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		return nil, &unprocessableError{msg: "previous_questions and quiz_category are required"}
	}

	candidates, err := s.repo.FindCandidates(req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", req.QuizCategory.ID).Msg("Failed to load quiz candidates")
		return nil, err
	}
	if len(candidates) == 0 {
		return &dto.QuizResponse{Success: true, Question: nil}, nil
	}

	selected := candidates[rand.Intn(len(candidates))]
	var question dto.QuestionResponse
	copier.Copy(&question, &selected)
	return &dto.QuizResponse{Success: true, Question: &question}, nil
}

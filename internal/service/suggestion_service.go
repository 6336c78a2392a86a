package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/trivium/config"
	"github.com/lshigami/trivium/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// SuggestionService drafts new trivia questions with Gemini. Drafts are
// returned to the caller for review and never stored directly.
type SuggestionService interface {
	SuggestQuestion(req dto.SuggestQuestionRequest) (*dto.SuggestQuestionResponse, error)
}

type suggestionService struct {
	client      *genai.GenerativeModel
	cfg         *config.Config
	categorySvc CategoryService
}

func NewSuggestionService(cfg *config.Config, categorySvc CategoryService) (SuggestionService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. SuggestionService will be non-functional.")
		return &suggestionService{cfg: cfg, categorySvc: categorySvc, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &suggestionService{client: model, cfg: cfg, categorySvc: categorySvc}, nil
}

// parseQuestionAndAnswer pulls the drafted question and answer out of the
// model's plain-text reply. The prompt asks for "Question:" and "Answer:"
// lines; anything else fails the parse.
func parseQuestionAndAnswer(rawResponse string) (questionStr string, answerStr string, err error) {
	questionPrefix := "Question:"
	answerPrefix := "Answer:"

	questionIndex := strings.Index(rawResponse, questionPrefix)
	answerIndex := strings.Index(rawResponse, answerPrefix)

	if questionIndex == -1 || answerIndex == -1 || answerIndex < questionIndex {
		return "", "", fmt.Errorf("response does not contain 'Question:' and 'Answer:' lines. Raw: %s", rawResponse)
	}

	questionStr = strings.TrimSpace(rawResponse[questionIndex+len(questionPrefix) : answerIndex])
	answerStr = strings.TrimSpace(rawResponse[answerIndex+len(answerPrefix):])
	if endOfAnswerLine := strings.Index(answerStr, "\n"); endOfAnswerLine != -1 {
		answerStr = strings.TrimSpace(answerStr[:endOfAnswerLine])
	}

	if questionStr == "" || answerStr == "" {
		return "", "", fmt.Errorf("parsed an empty question or answer. Raw: %s", rawResponse)
	}
	return questionStr, answerStr, nil
}

// SuggestQuestion asks Gemini for one quiz question in the given category.
// The category must be present and must resolve to a stored label so the
// prompt can name it.
func (s *suggestionService) SuggestQuestion(req dto.SuggestQuestionRequest) (*dto.SuggestQuestionResponse, error) {
	if req.Category == nil {
		return nil, &unprocessableError{msg: "category is required"}
	}

	categories, err := s.categorySvc.GetCategories()
	if err != nil {
		return nil, err
	}
	label, ok := categories[*req.Category]
	if !ok {
		return nil, &unprocessableError{msg: fmt.Sprintf("unknown category %d", *req.Category)}
	}

	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	ctx := context.Background()
	var promptBuilder strings.Builder
	promptBuilder.WriteString("You are writing material for a trivia game.\n")
	promptBuilder.WriteString(fmt.Sprintf("Draft exactly one trivia question in the category %q.\n", label))
	promptBuilder.WriteString("The question must have a single short factual answer.\n\n")
	promptBuilder.WriteString("Reply in exactly this format, with no extra commentary:\n")
	promptBuilder.WriteString("Question: <the question text>\n")
	promptBuilder.WriteString("Answer: <the answer text>\n")

	resp, err := s.client.GenerateContent(ctx, genai.Text(promptBuilder.String()))
	if err != nil {
		log.Error().Err(err).Str("category", label).Msg("Gemini API error while drafting question")
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	questionStr, answerStr, parseErr := parseQuestionAndAnswer(fullResponseText)
	if parseErr != nil {
		log.Warn().Err(parseErr).Str("rawResponse", fullResponseText).Msg("Failed to parse drafted question from Gemini response")
		return nil, parseErr
	}

	return &dto.SuggestQuestionResponse{
		Success: true,
		Question: dto.QuestionDraft{
			Question:   questionStr,
			Answer:     answerStr,
			Category:   *req.Category,
			Difficulty: 1,
		},
	}, nil
}

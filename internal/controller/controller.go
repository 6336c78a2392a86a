package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lshigami/trivium/internal/dto"
	"github.com/lshigami/trivium/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	categorySvc   service.CategoryService
	questionSvc   service.QuestionService
	quizSvc       service.QuizService
	suggestionSvc service.SuggestionService
}

func NewController(catSvc service.CategoryService, qSvc service.QuestionService, quizSvc service.QuizService, sugSvc service.SuggestionService) *Controller {
	return &Controller{
		categorySvc:   catSvc,
		questionSvc:   qSvc,
		quizSvc:       quizSvc,
		suggestionSvc: sugSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed)
	})

	categories := router.Group("/categories")
	categories.GET("", ctrl.GetCategoriesHandler)
	categories.GET("/:id/questions", ctrl.GetQuestionsByCategoryHandler)

	questions := router.Group("/questions")
	questions.GET("", ctrl.GetQuestionsHandler)
	questions.POST("", ctrl.CreateQuestionHandler)
	questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
	questions.POST("/suggest", ctrl.SuggestQuestionHandler)

	router.POST("/search", ctrl.SearchQuestionsHandler)
	router.POST("/quizzes", ctrl.PlayQuizHandler)
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

// respondError writes the uniform error payload for the given status.
func respondError(c *gin.Context, status int) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: status, Message: statusMessages[status]})
}

// respondServiceError translates a service failure into a status via the
// error's marker method, defaulting to 500.
func respondServiceError(c *gin.Context, err error) {
	if _, ok := err.(interface{ NotFound() }); ok {
		respondError(c, http.StatusNotFound)
		return
	}
	if _, ok := err.(interface{ Unprocessable() }); ok {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
	respondError(c, http.StatusInternalServerError)
}

// pageParam reads the 1-based page query parameter, falling back to 1 when
// it is missing or not a number.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Description Get every category as an id-to-label map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	categories, err := ctrl.categorySvc.GetCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: categories})
}

// GetQuestionsHandler godoc
// @Summary List questions
// @Description Get one page of questions plus the category map and totals
// @Tags questions
// @Produce json
// @Param page query int false "1-based page number, 10 questions per page"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse "Page holds no questions"
// @Router /questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	resp, err := ctrl.questionSvc.ListQuestions(pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Description Add a new question with its answer, category and difficulty
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Param page query int false "Page of the refreshed list to return"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.ErrorResponse "Missing question or answer"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		respondError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.questionSvc.CreateQuestion(req, pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Remove a question by id and return the refreshed list page
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page of the refreshed list to return"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Non-numeric id"
// @Failure 404 {object} dto.ErrorResponse "Unknown question id"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn().Str("id", c.Param("id")).Msg("Invalid question ID format for deletion")
		respondError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.questionSvc.DeleteQuestion(uint(id), pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchQuestionsHandler godoc
// @Summary Search questions
// @Description Find questions containing the search term, case-insensitively
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchRequest true "Search term"
// @Param page query int false "Page of the matches to return"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.ErrorResponse "Missing search term"
// @Router /search [post]
func (ctrl *Controller) SearchQuestionsHandler(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SearchRequest")
		respondError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.questionSvc.SearchQuestions(req, pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionsByCategoryHandler godoc
// @Summary List questions of a category
// @Description Get one page of the questions referencing a category id
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "1-based page number"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Non-numeric id"
// @Failure 422 {object} dto.ErrorResponse "No question references the id"
// @Router /categories/{id}/questions [get]
func (ctrl *Controller) GetQuestionsByCategoryHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn().Str("id", c.Param("id")).Msg("Invalid category ID format")
		respondError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.questionSvc.QuestionsByCategory(uint(id), pageParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PlayQuizHandler godoc
// @Summary Next quiz question
// @Description Pick a random question outside previous_questions, optionally within a category; question is null once exhausted
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Previous question ids and the quiz category (id 0 plays all)"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.ErrorResponse "Missing previous_questions or quiz_category"
// @Router /quizzes [post]
func (ctrl *Controller) PlayQuizHandler(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizRequest")
		respondError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.quizSvc.NextQuestion(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SuggestQuestionHandler godoc
// @Summary Draft a question with AI
// @Description Ask Gemini to draft one question for a category; the draft is returned without being stored
// @Tags questions
// @Accept json
// @Produce json
// @Param suggestion body dto.SuggestQuestionRequest true "Category to draft for"
// @Success 200 {object} dto.SuggestQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.ErrorResponse "Missing or unknown category"
// @Failure 500 {object} dto.ErrorResponse "Gemini unavailable"
// @Router /questions/suggest [post]
func (ctrl *Controller) SuggestQuestionHandler(c *gin.Context) {
	var req dto.SuggestQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SuggestQuestionRequest")
		respondError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.suggestionSvc.SuggestQuestion(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

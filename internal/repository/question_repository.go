package repository

import (
	"strings"

	"github.com/lshigami/trivium/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindAllOrdered() ([]model.Question, error)
	FindByCategory(categoryID uint) ([]model.Question, error)
	SearchByQuestion(term string) ([]model.Question, error)
	FindCandidates(categoryID uint, excludeIDs []uint) ([]model.Question, error)
	Delete(id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindAllOrdered() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategory(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// SearchByQuestion matches the question text case-insensitively.
// LOWER/LIKE behaves identically on Postgres and SQLite, unlike ILIKE.
func (r *questionRepository) SearchByQuestion(term string) ([]model.Question, error) {
	var questions []model.Question
	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.Where("LOWER(question) LIKE ?", pattern).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindCandidates returns the questions still playable in a quiz round.
// A categoryID of zero means any category; excludeIDs holds the ids
// already played.
func (r *questionRepository) FindCandidates(categoryID uint, excludeIDs []uint) ([]model.Question, error) {
	query := r.db.Order("id")
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	var questions []model.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete removes a question by id and reports whether a row existed.
func (r *questionRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Question{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

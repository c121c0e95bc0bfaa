package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"quizgen/internal/models/db_models"
	"quizgen/internal/models/response_models"
)

type QuizRepositoryInterface interface {
	Save(result response_models.QuizResult, ctx context.Context) (*db_models.SavedQuiz, error)
	ListAll(ctx context.Context) ([]db_models.SavedQuiz, error)
	GetByID(id uint, ctx context.Context) (*db_models.SavedQuiz, error)
	DeleteByID(id uint, ctx context.Context) error
}

func NewQuizRepository(db *gorm.DB) QuizRepositoryInterface {
	return &QuizRepository{db: db}
}

type QuizRepository struct {
	db *gorm.DB
}

// Save persists one error-free result and assigns its id. Results that
// carry an error string must never reach the durable store.
func (r *QuizRepository) Save(result response_models.QuizResult, ctx context.Context) (*db_models.SavedQuiz, error) {
	if result.Error != "" {
		return nil, errors.New("refusing to persist a failed generation result")
	}

	payload, err := json.Marshal(result.Questions)
	if err != nil {
		return nil, err
	}

	record := db_models.SavedQuiz{
		Source:    result.Source,
		Origin:    string(result.Origin),
		Batch:     string(result.Batch),
		Questions: payload,
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListAll returns every saved quiz, most recent first.
func (r *QuizRepository) ListAll(ctx context.Context) ([]db_models.SavedQuiz, error) {
	var quizzes []db_models.SavedQuiz
	err := r.db.WithContext(ctx).Order("id DESC").Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *QuizRepository) GetByID(id uint, ctx context.Context) (*db_models.SavedQuiz, error) {
	var quiz db_models.SavedQuiz
	err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

// DeleteByID removes one saved quiz. Deleting an id that does not exist is
// a no-op, not an error.
func (r *QuizRepository) DeleteByID(id uint, ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&db_models.SavedQuiz{}, "id = ?", id).Error
}

package services

import (
	"sync"

	"github.com/google/uuid"

	"quizgen/internal/models/response_models"
	"quizgen/pkg/utils"
)

// Attempt tracks one pass through a quiz: answers are collected while
// unanswered, submission is irreversible, and the score only exists after
// submission.
type Attempt struct {
	ID        string
	Questions []response_models.Question

	answers   []string
	submitted bool
}

func newAttempt(questions []response_models.Question) *Attempt {
	return &Attempt{
		ID:        uuid.New().String(),
		Questions: questions,
		answers:   make([]string, len(questions)),
	}
}

func (a *Attempt) SelectAnswer(index int, value string) error {
	if a.submitted {
		return utils.ErrAttemptSubmitted
	}
	if index < 0 || index >= len(a.answers) {
		return utils.ErrInvalidAnswerIndex
	}
	a.answers[index] = value
	return nil
}

func (a *Attempt) Submit() {
	a.submitted = true
}

func (a *Attempt) Submitted() bool {
	return a.submitted
}

// Score counts exact matches between recorded answers and the correct
// answers. Before submission it is always 0, no matter what has been
// recorded.
func (a *Attempt) Score() int {
	if !a.submitted {
		return 0
	}

	score := 0
	for i, q := range a.Questions {
		if a.answers[i] == q.Answer {
			score++
		}
	}
	return score
}

type AttemptManagerInterface interface {
	Start(questions []response_models.Question) *Attempt
	Get(id string) (*Attempt, error)
	SelectAnswer(id string, index int, value string) error
	Submit(id string) (int, error)
	Clear(id string)
}

type AttemptManager struct {
	mu       sync.Mutex
	attempts map[string]*Attempt
}

func NewAttemptManager() AttemptManagerInterface {
	return &AttemptManager{attempts: make(map[string]*Attempt)}
}

func (m *AttemptManager) Start(questions []response_models.Question) *Attempt {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt := newAttempt(questions)
	m.attempts[attempt.ID] = attempt
	return attempt
}

func (m *AttemptManager) Get(id string) (*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt, ok := m.attempts[id]
	if !ok {
		return nil, utils.ErrAttemptNotFound
	}
	return attempt, nil
}

func (m *AttemptManager) SelectAnswer(id string, index int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt, ok := m.attempts[id]
	if !ok {
		return utils.ErrAttemptNotFound
	}
	return attempt.SelectAnswer(index, value)
}

func (m *AttemptManager) Submit(id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt, ok := m.attempts[id]
	if !ok {
		return 0, utils.ErrAttemptNotFound
	}
	attempt.Submit()
	return attempt.Score(), nil
}

func (m *AttemptManager) Clear(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, id)
}

package mem

import (
	"sync"

	"quizgen/internal/models/response_models"
)

type SessionStore interface {
	SetItems(items []response_models.QuizResult)
	Items() []response_models.QuizResult
	HasResults() bool

	// ReplaceQuestions swaps the question set of the item with the given
	// source label, returning false when no item matches.
	ReplaceQuestions(source string, questions []response_models.Question) bool

	SetPendingUpload(name string, data []byte)
	PendingUpload() (string, []byte, bool)

	// Reset clears items, the results flag and the pending upload in one step.
	Reset()
}

type sessionStore struct {
	mu         sync.RWMutex
	items      []response_models.QuizResult
	hasResults bool

	uploadName string
	uploadData []byte
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) SetItems(items []response_models.QuizResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// copy into store-owned memory so later writes to the caller's slice
	// cannot reach past the lock
	s.items = make([]response_models.QuizResult, len(items))
	copy(s.items, items)
	s.hasResults = true
}

func (s *sessionStore) Items() []response_models.QuizResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]response_models.QuizResult, len(s.items))
	copy(out, s.items)
	return out
}

func (s *sessionStore) HasResults() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasResults
}

func (s *sessionStore) ReplaceQuestions(source string, questions []response_models.Question) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Source == source {
			s.items[i].Questions = questions
			s.items[i].Error = ""
			return true
		}
	}
	return false
}

func (s *sessionStore) SetPendingUpload(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadName = name
	s.uploadData = data
}

func (s *sessionStore) PendingUpload() (string, []byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.uploadData == nil {
		return "", nil, false
	}
	return s.uploadName, s.uploadData, true
}

func (s *sessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.hasResults = false
	s.uploadName = ""
	s.uploadData = nil
}

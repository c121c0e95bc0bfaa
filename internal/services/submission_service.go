package services

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quizgen/internal/models/response_models"
	"quizgen/internal/repositories"
	mem "quizgen/pkg/memcache"
	"quizgen/pkg/utils"
)

type SubmissionServiceInterface interface {
	SubmitVideo(ctx context.Context, input string) ([]response_models.QuizResult, error)
	SubmitPDF(ctx context.Context, filename, contentType string, data []byte) ([]response_models.QuizResult, error)
	Regenerate(ctx context.Context, source string, origin response_models.QuizOrigin) ([]response_models.Question, error)
}

type SubmissionService struct {
	generator GeneratorClientInterface
	session   mem.SessionStore
	repo      repositories.QuizRepositoryInterface
	progress  ProgressTrackerInterface

	mu     sync.Mutex
	latest uuid.UUID
}

func NewSubmissionService(
	generator GeneratorClientInterface,
	session mem.SessionStore,
	repo repositories.QuizRepositoryInterface,
	progress ProgressTrackerInterface,
) SubmissionServiceInterface {
	return &SubmissionService{
		generator: generator,
		session:   session,
		repo:      repo,
		progress:  progress,
	}
}

var windowsPathPattern = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// splitSources breaks a freeform video input on newlines and commas,
// trimming each segment and dropping empties. Mixed separators yield the
// same segment set as either one alone.
func splitSources(input string) []string {
	raw := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})

	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}

// isLocalPath reports whether a segment looks like an absolute filesystem
// path rather than a remote URL. The first segment decides for the whole
// batch; classifications are never mixed within one submission.
func isLocalPath(segment string) bool {
	return strings.HasPrefix(segment, "/") ||
		strings.HasPrefix(segment, `\`) ||
		windowsPathPattern.MatchString(segment)
}

func (s *SubmissionService) SubmitVideo(ctx context.Context, input string) ([]response_models.QuizResult, error) {
	segments := splitSources(input)
	if len(segments) == 0 {
		return nil, utils.ErrEmptyInput
	}

	batch := response_models.BatchSingle
	if len(segments) > 1 {
		batch = response_models.BatchMultiple
	}

	generation := s.beginGeneration()
	s.progress.Start()

	log := logrus.WithFields(logrus.Fields{
		"sources": len(segments),
		"batch":   batch,
	})

	var outcomes []response_models.GenerationOutcome
	var err error
	if isLocalPath(segments[0]) {
		log.Info("Submitting local video paths for generation")
		outcomes, err = s.generator.GenerateFromLocalPath(ctx, strings.Join(segments, ","))
	} else {
		log.Info("Submitting video links for generation")
		outcomes, err = s.generator.GenerateFromVideoURL(ctx, strings.Join(segments, ", "))
	}

	return s.settle(ctx, generation, outcomes, err, response_models.OriginVideo, batch, segments)
}

func (s *SubmissionService) SubmitPDF(ctx context.Context, filename, contentType string, data []byte) ([]response_models.QuizResult, error) {
	if len(data) == 0 || filename == "" {
		return nil, utils.ErrEmptyInput
	}
	if contentType != "application/pdf" {
		return nil, utils.ErrInvalidFileType
	}

	// keep the upload in memory so a pdf quiz can be regenerated later
	s.session.SetPendingUpload(filename, data)

	generation := s.beginGeneration()
	s.progress.Start()

	logrus.WithField("file", filename).Info("Submitting document for generation")
	outcomes, err := s.generator.GenerateFromPDF(ctx, filename, data)

	return s.settle(ctx, generation, outcomes, err, response_models.OriginPdf, response_models.BatchSingle, []string{filename})
}

func (s *SubmissionService) Regenerate(ctx context.Context, source string, origin response_models.QuizOrigin) ([]response_models.Question, error) {
	var outcomes []response_models.GenerationOutcome
	var err error

	switch origin {
	case response_models.OriginPdf:
		name, data, ok := s.session.PendingUpload()
		if !ok {
			return nil, utils.ErrNoPendingUpload
		}
		outcomes, err = s.generator.GenerateFromPDF(ctx, name, data)
	default:
		outcomes, err = s.generator.GenerateFromVideoURL(ctx, source)
	}
	if err != nil {
		return nil, err
	}

	// only the first outcome counts for a regeneration
	if len(outcomes) == 0 || len(outcomes[0].QuizData) == 0 {
		return nil, utils.ErrRegenerationFailed
	}

	questions := outcomes[0].QuizData
	s.session.ReplaceQuestions(source, questions)

	logrus.WithFields(logrus.Fields{
		"source":    source,
		"questions": len(questions),
	}).Info("Quiz regenerated")

	return questions, nil
}

// beginGeneration stamps a new submission as the latest one. Responses from
// older submissions are discarded when they finally arrive.
func (s *SubmissionService) beginGeneration() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = uuid.New()
	return s.latest
}

func (s *SubmissionService) isLatest(generation uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest == generation
}

func (s *SubmissionService) settle(
	ctx context.Context,
	generation uuid.UUID,
	outcomes []response_models.GenerationOutcome,
	err error,
	origin response_models.QuizOrigin,
	batch response_models.SubmissionBatch,
	segments []string,
) ([]response_models.QuizResult, error) {
	if !s.isLatest(generation) {
		// a newer submission owns the tracker and the session now; the
		// stale response is discarded, never applied
		return nil, utils.ErrSuperseded
	}

	if err != nil {
		s.progress.Abort()
		logrus.WithError(err).Error("Quiz generation failed")
		return nil, err
	}

	s.progress.Complete()

	results := make([]response_models.QuizResult, 0, len(outcomes))
	for i, outcome := range outcomes {
		source := outcome.Label()
		if source == "" && i < len(segments) {
			source = segments[i]
		}
		results = append(results, response_models.QuizResult{
			Source:    source,
			Origin:    origin,
			Batch:     batch,
			Questions: outcome.QuizData,
			Error:     outcome.Error,
		})
	}

	s.session.SetItems(results)

	for i := range results {
		if results[i].Error != "" || results[i].Source == "" {
			continue
		}
		saved, saveErr := s.repo.Save(results[i], ctx)
		if saveErr != nil {
			logrus.WithError(saveErr).WithField("source", results[i].Source).
				Error("Failed to persist generated quiz")
			continue
		}
		results[i].ID = saved.ID
	}

	logrus.WithField("results", len(results)).Info("Submission completed")
	return results, nil
}

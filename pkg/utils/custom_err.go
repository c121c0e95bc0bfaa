package utils

import "errors"

var (
	ErrEmptyInput         = errors.New("no video links or file paths provided")
	ErrInvalidFileType    = errors.New("invalid file type, expected a PDF")
	ErrNoPendingUpload    = errors.New("no uploaded file available for regeneration")
	ErrRegenerationFailed = errors.New("regeneration returned no quiz data")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrGenerationFailed   = errors.New("failed to generate quiz")
	ErrDatabaseError      = errors.New("database error")
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrAttemptSubmitted   = errors.New("attempt already submitted")
	ErrInvalidAnswerIndex = errors.New("answer index out of range")
	ErrSuperseded         = errors.New("submission superseded by a newer one")
)

package request_models

type SubmissionMode string

const (
	ModeVideo SubmissionMode = "video"
	ModePdf   SubmissionMode = "pdf"
)

type SubmissionRequest struct {
	Input string         `json:"input" binding:"required"`
	Mode  SubmissionMode `json:"mode"`
}

type RegenerateRequest struct {
	Source string `json:"source" binding:"required"`
	Origin string `json:"origin" binding:"required"`
}

type StartAttemptRequest struct {
	QuizID uint `json:"quiz_id" binding:"required"`
}

type SelectAnswerRequest struct {
	Index int    `json:"index"`
	Value string `json:"value" binding:"required"`
}

package response_models

type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "Multiple Choice"
	KindTrueFalse      QuestionKind = "True/False"
)

type Question struct {
	Kind    QuestionKind `json:"type"`
	Text    string       `json:"question"`
	Options []string     `json:"options,omitempty"` // only for Multiple Choice
	Answer  string       `json:"answer"`
}

type QuizOrigin string

const (
	OriginVideo QuizOrigin = "video"
	OriginPdf   QuizOrigin = "pdf"
)

type SubmissionBatch string

const (
	BatchSingle   SubmissionBatch = "single"
	BatchMultiple SubmissionBatch = "multiple"
)

// QuizResult is one generated item, the unit held in the session and
// displayed to the user. Items carrying an Error are failed generations
// and are never persisted.
type QuizResult struct {
	ID        uint            `json:"id,omitempty"` // assigned on persistence only
	Source    string          `json:"source"`
	Origin    QuizOrigin      `json:"origin"`
	Batch     SubmissionBatch `json:"submission_batch"`
	Questions []Question      `json:"questions"`
	Error     string          `json:"error,omitempty"`
}

type SessionResponse struct {
	Items      []QuizResult `json:"items"`
	HasResults bool         `json:"has_results"`
}

type AttemptResponse struct {
	AttemptID string     `json:"attempt_id"`
	Questions []Question `json:"questions"`
	Submitted bool       `json:"submitted"`
	Score     int        `json:"score"`
}

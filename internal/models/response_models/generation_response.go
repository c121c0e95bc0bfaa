package response_models

// GenerationOutcome is the wire shape of one per-source result returned by
// the generation backend. Older backend builds send source_name instead of
// source, so both are accepted and the first non-empty one wins.
type GenerationOutcome struct {
	Source     string     `json:"source"`
	SourceName string     `json:"source_name"`
	QuizData   []Question `json:"quiz_data"`
	Error      string     `json:"error,omitempty"`
}

func (o GenerationOutcome) Label() string {
	if o.Source != "" {
		return o.Source
	}
	return o.SourceName
}

// GenerationError is the payload of a failed backend call.
type GenerationError struct {
	Error string `json:"error"`
}

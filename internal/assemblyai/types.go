package assemblyai

// Status is the lifecycle state of a transcript job as reported by the
// service. Only completed and error are terminal.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether no further status transition can occur.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// TimedWord is one word of a transcript payload. Offsets are milliseconds.
// The service has shipped the word text under both the "text" and "word"
// keys over time, so both are decoded.
type TimedWord struct {
	Text  string `json:"text,omitempty"`
	Word  string `json:"word,omitempty"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

type Utterance struct {
	Words []TimedWord `json:"words,omitempty"`
}

// Transcript is the service's full response for a transcript job. A completed
// job carries its words either flat or nested per utterance.
type Transcript struct {
	ID         string      `json:"id"`
	Status     Status      `json:"status"`
	Error      string      `json:"error,omitempty"`
	Words      []TimedWord `json:"words,omitempty"`
	Utterances []Utterance `json:"utterances,omitempty"`
}

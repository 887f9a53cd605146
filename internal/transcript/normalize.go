package transcript

import (
	"errors"

	"github.com/ytscribe/server/internal/assemblyai"
)

// ErrInvalidPayload marks a completed job whose payload carries neither a
// usable flat word list nor a usable utterance list.
var ErrInvalidPayload = errors.New("invalid transcript data received from AssemblyAI")

// Word is one word of the published transcript. Offsets are seconds.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Normalize flattens a service payload into word records. The service has
// shipped two response shapes over time, a flat words array and words nested
// per utterance; both are accepted, flat first. An empty flat array falls
// through to the utterance shape.
func Normalize(t *assemblyai.Transcript) ([]Word, error) {
	if len(t.Words) > 0 {
		return mapWords(t.Words), nil
	}

	var words []Word
	for _, u := range t.Utterances {
		words = append(words, mapWords(u.Words)...)
	}
	if len(words) == 0 {
		return nil, ErrInvalidPayload
	}
	return words, nil
}

func mapWords(in []assemblyai.TimedWord) []Word {
	out := make([]Word, 0, len(in))
	for _, w := range in {
		text := w.Text
		if text == "" {
			text = w.Word
		}
		out = append(out, Word{
			Word:  text,
			Start: float64(w.Start) / 1000,
			End:   float64(w.End) / 1000,
		})
	}
	return out
}

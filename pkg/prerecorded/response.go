package prerecorded

import "github.com/harunnryd/speechline-go/pkg/live"

// Metadata describes the processed request.
type Metadata struct {
	RequestID      string   `json:"request_id"`
	TransactionKey string   `json:"transaction_key,omitempty"`
	Sha256         string   `json:"sha256,omitempty"`
	Created        string   `json:"created,omitempty"`
	Duration       float64  `json:"duration,omitempty"`
	Channels       int      `json:"channels,omitempty"`
	Models         []string `json:"models,omitempty"`
}

// Utterance is one contiguous spoken segment when utterances are requested.
type Utterance struct {
	Start      float64     `json:"start"`
	End        float64     `json:"end"`
	Confidence float64     `json:"confidence"`
	Channel    int         `json:"channel"`
	Transcript string      `json:"transcript"`
	Words      []live.Word `json:"words,omitempty"`
	Speaker    *int        `json:"speaker,omitempty"`
	ID         string      `json:"id,omitempty"`
}

// Results holds per-channel transcription hypotheses.
type Results struct {
	Channels   []live.Channel `json:"channels"`
	Utterances []Utterance    `json:"utterances,omitempty"`
	Summary    *Summary       `json:"summary,omitempty"`
}

// Summary is the whole-audio summary when summarization is requested.
type Summary struct {
	Result string `json:"result,omitempty"`
	Short  string `json:"short,omitempty"`
}

// Response is a completed synchronous transcription.
type Response struct {
	Metadata Metadata `json:"metadata"`
	Results  Results  `json:"results"`
}

// AsyncResponse acknowledges a callback-style transcription request.
type AsyncResponse struct {
	RequestID string `json:"request_id"`
}

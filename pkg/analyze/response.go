package analyze

// Metadata describes the processed analysis request.
type Metadata struct {
	RequestID string `json:"request_id"`
	Created   string `json:"created,omitempty"`
	Language  string `json:"language,omitempty"`
}

type Summary struct {
	Text string `json:"text,omitempty"`
}

type Topic struct {
	Topic           string  `json:"topic"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type TopicSegment struct {
	Text      string  `json:"text"`
	StartWord int     `json:"start_word"`
	EndWord   int     `json:"end_word"`
	Topics    []Topic `json:"topics"`
}

type Topics struct {
	Segments []TopicSegment `json:"segments"`
}

type Intent struct {
	Intent          string  `json:"intent"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type IntentSegment struct {
	Text      string   `json:"text"`
	StartWord int      `json:"start_word"`
	EndWord   int      `json:"end_word"`
	Intents   []Intent `json:"intents"`
}

type Intents struct {
	Segments []IntentSegment `json:"segments"`
}

type Sentiment struct {
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
}

type SentimentSegment struct {
	Text           string  `json:"text"`
	StartWord      int     `json:"start_word"`
	EndWord        int     `json:"end_word"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
}

type Sentiments struct {
	Segments []SentimentSegment `json:"segments"`
	Average  Sentiment          `json:"average"`
}

// Results holds whichever feature outputs were requested.
type Results struct {
	Summary    *Summary    `json:"summary,omitempty"`
	Topics     *Topics     `json:"topics,omitempty"`
	Intents    *Intents    `json:"intents,omitempty"`
	Sentiments *Sentiments `json:"sentiments,omitempty"`
}

// Response is a completed synchronous analysis.
type Response struct {
	Metadata Metadata `json:"metadata"`
	Results  Results  `json:"results"`
}

// AsyncResponse acknowledges a callback-style analysis request.
type AsyncResponse struct {
	RequestID string `json:"request_id"`
}

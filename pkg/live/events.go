package live

// EventType identifies the category of an inbound event. The wire value of
// the "type" field on inbound text frames maps directly onto these, with
// EventOpen/EventClose synthesized by the connection itself.
type EventType string

const (
	EventOpen          EventType = "Open"
	EventResults       EventType = "Results"
	EventMetadata      EventType = "Metadata"
	EventSpeechStarted EventType = "SpeechStarted"
	EventUtteranceEnd  EventType = "UtteranceEnd"
	EventWarning       EventType = "Warning"
	EventError         EventType = "Error"
	EventClose         EventType = "Close"
	EventUnhandled     EventType = "Unhandled"

	// EventAll subscribes a handler to every dispatched event.
	EventAll EventType = "*"
)

// Event is one decoded inbound record.
type Event interface {
	EventType() EventType
}

// OpenEvent is delivered once per established socket session.
type OpenEvent struct{}

func (OpenEvent) EventType() EventType { return EventOpen }

// Word is a single recognized word with timing.
type Word struct {
	Word           string  `json:"word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	PunctuatedWord string  `json:"punctuated_word,omitempty"`
	Speaker        *int    `json:"speaker,omitempty"`
}

// Alternative is one transcription hypothesis.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words,omitempty"`
}

// Channel groups the alternatives produced for one audio channel.
type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

// ResultsEvent carries one transcription result, interim or final.
type ResultsEvent struct {
	ChannelIndex []int   `json:"channel_index,omitempty"`
	Duration     float64 `json:"duration"`
	Start        float64 `json:"start"`
	IsFinal      bool    `json:"is_final"`
	SpeechFinal  bool    `json:"speech_final"`
	Channel      Channel `json:"channel"`
}

func (ResultsEvent) EventType() EventType { return EventResults }

// MetadataEvent describes the session once the peer has accepted it.
type MetadataEvent struct {
	RequestID      string  `json:"request_id"`
	TransactionKey string  `json:"transaction_key,omitempty"`
	Sha256         string  `json:"sha256,omitempty"`
	Created        string  `json:"created,omitempty"`
	Duration       float64 `json:"duration,omitempty"`
	Channels       int     `json:"channels,omitempty"`
}

func (MetadataEvent) EventType() EventType { return EventMetadata }

// SpeechStartedEvent signals voice activity onset.
type SpeechStartedEvent struct {
	Timestamp float64 `json:"timestamp"`
	Channel   []int   `json:"channel,omitempty"`
}

func (SpeechStartedEvent) EventType() EventType { return EventSpeechStarted }

// UtteranceEndEvent signals the end of a spoken utterance.
type UtteranceEndEvent struct {
	LastWordEnd float64 `json:"last_word_end"`
	Channel     []int   `json:"channel,omitempty"`
}

func (UtteranceEndEvent) EventType() EventType { return EventUtteranceEnd }

// WarningEvent is a non-fatal advisory from the peer.
type WarningEvent struct {
	WarnCode string `json:"warn_code"`
	WarnMsg  string `json:"warn_msg"`
}

func (WarningEvent) EventType() EventType { return EventWarning }

// ErrorEvent reports a peer-side error or a local decode failure. The
// connection stays up; fatal transport failures surface as CloseEvent.
type ErrorEvent struct {
	ErrCode     string `json:"err_code"`
	ErrMsg      string `json:"err_msg"`
	Description string `json:"description,omitempty"`

	// Raw holds the undecodable frame when ErrCode is errCodeDecode.
	Raw []byte `json:"-"`
}

func (ErrorEvent) EventType() EventType { return EventError }

// CloseEvent is delivered exactly once when a session reaches its terminal
// state, whether gracefully or after a transport failure.
type CloseEvent struct {
	Code   int
	Reason string
}

func (CloseEvent) EventType() EventType { return EventClose }

// UnhandledEvent carries a frame whose discriminator the client does not
// recognize. Unknown message types must not break the session.
type UnhandledEvent struct {
	Type string
	Raw  []byte
}

func (UnhandledEvent) EventType() EventType { return EventUnhandled }

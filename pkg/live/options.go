package live

import (
	"net/url"
	"strconv"
	"time"
)

// Options controls one live transcription session. The recognition fields are
// passed through to the peer as query parameters at connect time and are not
// interpreted locally; the connection fields shape client behavior.
type Options struct {
	Model          string   `mapstructure:"model"`
	Language       string   `mapstructure:"language"`
	Encoding       string   `mapstructure:"encoding"`
	SampleRate     int      `mapstructure:"sample_rate"`
	Channels       int      `mapstructure:"channels"`
	InterimResults bool     `mapstructure:"interim_results"`
	SmartFormat    bool     `mapstructure:"smart_format"`
	Punctuate      bool     `mapstructure:"punctuate"`
	Diarize        bool     `mapstructure:"diarize"`
	VADEvents      bool     `mapstructure:"vad_events"`
	UtteranceEndMS int      `mapstructure:"utterance_end_ms"`
	Endpointing    string   `mapstructure:"endpointing"`
	Keywords       []string `mapstructure:"keywords"`

	// Extra holds passthrough query parameters with no client-side meaning.
	Extra map[string]string `mapstructure:"extra"`

	// Connection behavior.
	KeepAlive         time.Duration `mapstructure:"keepalive"`
	SendBuffer        int           `mapstructure:"send_buffer"`
	SendMaxWait       time.Duration `mapstructure:"send_max_wait"`
	DrainTimeout      time.Duration `mapstructure:"drain_timeout"`
	AutoReconnect     bool          `mapstructure:"auto_reconnect"`
	MaxReconnects     int           `mapstructure:"max_reconnects"`
	ReconnectBackoff  time.Duration `mapstructure:"reconnect_backoff"`
	ReconnectMaxDelay time.Duration `mapstructure:"reconnect_max_delay"`
}

func (o Options) withDefaults() Options {
	if o.SampleRate == 0 {
		o.SampleRate = 16000
	}
	if o.Channels == 0 {
		o.Channels = 1
	}
	if o.KeepAlive <= 0 {
		o.KeepAlive = 5 * time.Second
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 256
	}
	if o.SendMaxWait <= 0 {
		o.SendMaxWait = 250 * time.Millisecond
	}
	if o.DrainTimeout <= 0 {
		o.DrainTimeout = 5 * time.Second
	}
	if o.MaxReconnects <= 0 {
		o.MaxReconnects = 5
	}
	if o.ReconnectBackoff <= 0 {
		o.ReconnectBackoff = 200 * time.Millisecond
	}
	if o.ReconnectMaxDelay <= 0 {
		o.ReconnectMaxDelay = 5 * time.Second
	}
	return o
}

// queryValues encodes the recognition fields for the connect URL.
func (o Options) queryValues() url.Values {
	q := url.Values{}
	setStr := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	setStr("model", o.Model)
	setStr("language", o.Language)
	setStr("encoding", o.Encoding)
	if o.SampleRate > 0 {
		q.Set("sample_rate", strconv.Itoa(o.SampleRate))
	}
	if o.Channels > 0 {
		q.Set("channels", strconv.Itoa(o.Channels))
	}
	if o.InterimResults {
		q.Set("interim_results", "true")
	}
	if o.SmartFormat {
		q.Set("smart_format", "true")
	}
	if o.Punctuate {
		q.Set("punctuate", "true")
	}
	if o.Diarize {
		q.Set("diarize", "true")
	}
	if o.VADEvents {
		q.Set("vad_events", "true")
	}
	if o.UtteranceEndMS > 0 {
		q.Set("utterance_end_ms", strconv.Itoa(o.UtteranceEndMS))
	}
	setStr("endpointing", o.Endpointing)
	for _, kw := range o.Keywords {
		q.Add("keywords", kw)
	}
	for k, v := range o.Extra {
		q.Set(k, v)
	}
	return q
}

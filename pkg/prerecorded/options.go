package prerecorded

import (
	"net/url"
	"strconv"
)

// Options mirrors the live recognition options plus batch-only fields. All of
// it is passed through as query parameters; none of it is interpreted locally.
type Options struct {
	Model          string   `mapstructure:"model"`
	Language       string   `mapstructure:"language"`
	Punctuate      bool     `mapstructure:"punctuate"`
	SmartFormat    bool     `mapstructure:"smart_format"`
	Diarize        bool     `mapstructure:"diarize"`
	Utterances     bool     `mapstructure:"utterances"`
	Paragraphs     bool     `mapstructure:"paragraphs"`
	Summarize      string   `mapstructure:"summarize"`
	DetectLanguage bool     `mapstructure:"detect_language"`
	Keywords       []string `mapstructure:"keywords"`
	Channels       int      `mapstructure:"channels"`

	// Callback makes the transcription asynchronous; results are delivered to
	// this URL instead of the response body.
	Callback       string `mapstructure:"callback"`
	CallbackMethod string `mapstructure:"callback_method"`

	Extra map[string]string `mapstructure:"extra"`
}

func (o Options) queryValues() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("model", o.Model)
	set("language", o.Language)
	set("summarize", o.Summarize)
	set("callback", o.Callback)
	set("callback_method", o.CallbackMethod)
	if o.Punctuate {
		q.Set("punctuate", "true")
	}
	if o.SmartFormat {
		q.Set("smart_format", "true")
	}
	if o.Diarize {
		q.Set("diarize", "true")
	}
	if o.Utterances {
		q.Set("utterances", "true")
	}
	if o.Paragraphs {
		q.Set("paragraphs", "true")
	}
	if o.DetectLanguage {
		q.Set("detect_language", "true")
	}
	if o.Channels > 0 {
		q.Set("channels", strconv.Itoa(o.Channels))
	}
	for _, kw := range o.Keywords {
		q.Add("keywords", kw)
	}
	for k, v := range o.Extra {
		q.Set(k, v)
	}
	return q
}

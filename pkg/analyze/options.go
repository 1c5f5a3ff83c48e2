package analyze

import "net/url"

// Options selects which intelligence features run over the submitted text.
// Everything is passed through as query parameters.
type Options struct {
	Language  string `mapstructure:"language"`
	Summarize bool   `mapstructure:"summarize"`
	Topics    bool   `mapstructure:"topics"`
	Intents   bool   `mapstructure:"intents"`
	Sentiment bool   `mapstructure:"sentiment"`

	CustomTopic      []string `mapstructure:"custom_topic"`
	CustomTopicMode  string   `mapstructure:"custom_topic_mode"`
	CustomIntent     []string `mapstructure:"custom_intent"`
	CustomIntentMode string   `mapstructure:"custom_intent_mode"`

	// Callback makes the analysis asynchronous; results are delivered to
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
	set("language", o.Language)
	if o.Summarize {
		q.Set("summarize", "true")
	}
	if o.Topics {
		q.Set("topics", "true")
	}
	if o.Intents {
		q.Set("intents", "true")
	}
	if o.Sentiment {
		q.Set("sentiment", "true")
	}
	for _, topic := range o.CustomTopic {
		q.Add("custom_topic", topic)
	}
	set("custom_topic_mode", o.CustomTopicMode)
	for _, intent := range o.CustomIntent {
		q.Add("custom_intent", intent)
	}
	set("custom_intent_mode", o.CustomIntentMode)
	set("callback", o.Callback)
	set("callback_method", o.CallbackMethod)
	for k, v := range o.Extra {
		q.Set(k, v)
	}
	return q
}

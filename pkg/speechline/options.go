package speechline

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/harunnryd/speechline-go/pkg/configutil"
	"github.com/harunnryd/speechline-go/pkg/errorsx"
	"github.com/harunnryd/speechline-go/pkg/live"
)

const (
	DefaultHost       = "api.speechline.com"
	DefaultAPIVersion = "v1"

	envAPIKey     = "SPEECHLINE_API_KEY"
	envHost       = "SPEECHLINE_HOST"
	envAPIVersion = "SPEECHLINE_API_VERSION"
	envLogLevel   = "SPEECHLINE_LOG_LEVEL"
	envLogFormat  = "SPEECHLINE_LOG_FORMAT"
)

// ClientOptions identifies the platform endpoint and credential shared by
// every product client.
type ClientOptions struct {
	APIKey     string `mapstructure:"api_key"`
	Host       string `mapstructure:"host"`
	APIVersion string `mapstructure:"api_version"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`

	// Live carries default live-session settings from a config file. Decoded
	// lazily by LiveOptions so file-driven and code-driven setups share one
	// path.
	Live map[string]any `mapstructure:"live"`

	// Headers is merged into every request.
	Headers http.Header `mapstructure:"-"`
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Host == "" {
		o.Host = DefaultHost
	}
	if o.APIVersion == "" {
		o.APIVersion = DefaultAPIVersion
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
	if o.LogFormat == "" {
		o.LogFormat = "json"
	}
	o.Host = strings.TrimSuffix(trimScheme(o.Host), "/")
	return o
}

func (o ClientOptions) validate() error {
	if strings.TrimSpace(o.APIKey) == "" {
		return errorsx.New(errorsx.ReasonConfigMissingKey, "api key is required (set "+envAPIKey+")")
	}
	return nil
}

func (o ClientOptions) restBaseURL() string {
	return "https://" + o.Host + "/" + o.APIVersion
}

func (o ClientOptions) listenURL() string {
	return "wss://" + o.Host + "/" + o.APIVersion + "/listen"
}

// LiveOptions decodes the file-driven live settings into typed options.
func (o ClientOptions) LiveOptions() (live.Options, error) {
	var opts live.Options
	if len(o.Live) == 0 {
		return opts, nil
	}
	if err := configutil.ValidateSettings(o.Live, liveSettingsSchema); err != nil {
		return opts, errorsx.Wrap(err, errorsx.ReasonConfigInvalid)
	}
	if err := configutil.DecodeSettings(o.Live, &opts); err != nil {
		return opts, errorsx.Wrap(fmt.Errorf("decode live settings: %w", err), errorsx.ReasonConfigInvalid)
	}
	return opts, nil
}

var liveSettingsSchema = configutil.Schema{
	Optional: []string{
		"model", "language", "encoding", "sample_rate", "channels",
		"interim_results", "smart_format", "punctuate", "diarize",
		"vad_events", "utterance_end_ms", "endpointing", "keywords", "extra",
		"keepalive", "send_buffer", "send_max_wait", "drain_timeout",
		"auto_reconnect", "max_reconnects", "reconnect_backoff",
		"reconnect_max_delay",
	},
}

// OptionsFromEnv reads the SPEECHLINE_* environment variables.
func OptionsFromEnv() ClientOptions {
	return ClientOptions{
		APIKey:     os.Getenv(envAPIKey),
		Host:       os.Getenv(envHost),
		APIVersion: os.Getenv(envAPIVersion),
		LogLevel:   os.Getenv(envLogLevel),
		LogFormat:  os.Getenv(envLogFormat),
	}
}

// LoadOptions reads client options from a config file (yaml, json, or toml by
// extension). ${VAR} references in string values are expanded from the
// environment, so keys can stay out of the file.
func LoadOptions(path string) (ClientOptions, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("api_version", DefaultAPIVersion)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	if err := v.ReadInConfig(); err != nil {
		return ClientOptions{}, errorsx.Wrap(fmt.Errorf("read config: %w", err), errorsx.ReasonConfigInvalid)
	}

	var opts ClientOptions
	if err := v.Unmarshal(&opts); err != nil {
		return ClientOptions{}, errorsx.Wrap(fmt.Errorf("unmarshal config: %w", err), errorsx.ReasonConfigInvalid)
	}

	opts.APIKey = os.ExpandEnv(opts.APIKey)
	opts.Host = os.ExpandEnv(opts.Host)
	for k, val := range opts.Live {
		if s, ok := val.(string); ok {
			opts.Live[k] = os.ExpandEnv(s)
		}
	}

	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return ClientOptions{}, err
	}
	return opts, nil
}

func trimScheme(host string) string {
	for _, prefix := range []string{"https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(host, prefix) {
			return host[len(prefix):]
		}
	}
	return host
}

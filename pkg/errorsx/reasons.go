package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonConfigMissingKey ReasonCode = "config_missing_key"
	ReasonConfigInvalid    ReasonCode = "config_invalid"

	ReasonLiveConnect            ReasonCode = "live_connect"
	ReasonLiveSend               ReasonCode = "live_send"
	ReasonLiveState              ReasonCode = "live_state"
	ReasonLiveBackpressure       ReasonCode = "live_backpressure"
	ReasonLiveDecode             ReasonCode = "live_decode"
	ReasonLiveDisconnected       ReasonCode = "live_disconnected"
	ReasonLiveReconnectExhausted ReasonCode = "live_reconnect_exhausted"

	ReasonRESTRequest  ReasonCode = "rest_request"
	ReasonRESTResponse ReasonCode = "rest_response"

	ReasonAudioRead ReasonCode = "audio_read"
)

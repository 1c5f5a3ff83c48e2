package live

import "encoding/json"

// Control message kinds, sent as JSON text frames.
type controlKind string

const (
	controlKeepAlive   controlKind = "KeepAlive"
	controlFinalize    controlKind = "Finalize"
	controlCloseStream controlKind = "CloseStream"
)

const errCodeDecode = "DECODE_ERROR"

// outboundFrame is one queued unit of outbound work. Exactly one of audio or
// control is set. Immutable once enqueued.
type outboundFrame struct {
	audio   []byte
	control controlKind
	seq     uint64
}

func (f outboundFrame) isControl() bool { return f.control != "" }

type controlMessage struct {
	Type controlKind `json:"type"`
}

func encodeControl(kind controlKind) []byte {
	data, err := json.Marshal(controlMessage{Type: kind})
	if err != nil {
		// controlMessage cannot fail to marshal
		panic(err)
	}
	return data
}

// decodeEvent classifies one inbound text frame by its "type" discriminator.
// A malformed frame becomes an ErrorEvent rather than a hard failure, and an
// unknown discriminator becomes an UnhandledEvent so that new peer message
// types never break the session.
func decodeEvent(data []byte) Event {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return ErrorEvent{
			ErrCode: errCodeDecode,
			ErrMsg:  "malformed inbound frame: " + err.Error(),
			Raw:     data,
		}
	}

	switch EventType(head.Type) {
	case EventResults:
		return decodeAs[ResultsEvent](data)
	case EventMetadata:
		return decodeAs[MetadataEvent](data)
	case EventSpeechStarted:
		return decodeAs[SpeechStartedEvent](data)
	case EventUtteranceEnd:
		return decodeAs[UtteranceEndEvent](data)
	case EventWarning:
		return decodeAs[WarningEvent](data)
	case EventError:
		return decodeAs[ErrorEvent](data)
	default:
		return UnhandledEvent{Type: head.Type, Raw: data}
	}
}

func decodeAs[T Event](data []byte) Event {
	var ev T
	if err := json.Unmarshal(data, &ev); err != nil {
		return ErrorEvent{
			ErrCode: errCodeDecode,
			ErrMsg:  "malformed inbound frame: " + err.Error(),
			Raw:     data,
		}
	}
	return ev
}

package gemini

import "fmt"

// Kind tags the outcome of one generation call
type Kind int

const (
	// KindUnset is the zero Kind: no outcome has been recorded.
	KindUnset Kind = iota
	// KindAnswer carries the model's text.
	KindAnswer
	// KindFallback means the service answered without a text part.
	KindFallback
	// KindServerFault is a non-2xx reply from the service.
	KindServerFault
	// KindTransportFault covers network, decode and cancellation failures.
	KindTransportFault
	// KindUnavailable means no request was issued because no API key is configured.
	KindUnavailable
)

// FallbackText is shown when a successful reply carries no text
const FallbackText = "Sorry, I could not put an answer together."

const unknownServerError = "unknown server error"

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindAnswer:
		return "answer"
	case KindFallback:
		return "fallback"
	case KindServerFault:
		return "server_fault"
	case KindTransportFault:
		return "transport_fault"
	case KindUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label is the bracketed marker used when a fault is shown as text
func (k Kind) Label() string {
	switch k {
	case KindServerFault:
		return "[server error]"
	case KindTransportFault:
		return "[network error]"
	case KindUnavailable:
		return "[service unavailable]"
	case KindUnset:
		return "[no result]"
	default:
		return ""
	}
}

// Result is the outcome of one dispatcher call. Failures are values, never Go errors.
type Result struct {
	Kind Kind
	// Text is the answer, the fallback text, or the fault description.
	Text string
	// Err is the underlying error for fault kinds.
	Err error
}

// Failed reports whether the result is anything other than an answer or the fallback.
// A zero Result counts as failed.
func (r Result) Failed() bool {
	return r.Kind != KindAnswer && r.Kind != KindFallback
}

// Display renders the result as a single line of user-facing text
func (r Result) Display() string {
	if r.Failed() {
		if r.Text == "" {
			return r.Kind.Label()
		}
		return r.Kind.Label() + ": " + r.Text
	}
	return r.Text
}

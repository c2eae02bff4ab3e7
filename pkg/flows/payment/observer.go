package payment

import "strings"

// SignalKind tags what a checkout navigation event means
type SignalKind string

const (
	// SignalReturn means the hosted checkout redirected back to the app.
	// The outcome is still unknown until the server verifies the session.
	SignalReturn SignalKind = "return"

	// SignalOther is any navigation inside the checkout surface
	SignalOther SignalKind = "other"
)

// Signal is the tagged result of observing one navigation event
type Signal struct {
	Kind SignalKind
	URL  string
}

// CheckoutObserver turns raw navigation URLs from the embedded checkout
// surface into tagged signals. Completion detection is observation, not a
// structured callback, so the same return signal may be produced more than
// once for one session.
type CheckoutObserver interface {
	OnNavigate(url string) Signal
}

// ReturnMarkerObserver matches navigation targets against a pre-agreed
// return marker substring
type ReturnMarkerObserver struct {
	Marker string
}

// OnNavigate classifies a navigation target
func (o ReturnMarkerObserver) OnNavigate(url string) Signal {
	if o.Marker != "" && strings.Contains(url, o.Marker) {
		return Signal{Kind: SignalReturn, URL: url}
	}
	return Signal{Kind: SignalOther, URL: url}
}

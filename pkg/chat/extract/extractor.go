package extract

import "context"

// Intent classification of a WAITING_FOR_DATA turn.
const (
	IntentProvideData = "provide_data"
	IntentRefuse      = "refuse"
	IntentOther       = "other"
)

// Result carries whatever could be pulled from one message. Empty fields
// mean "not found"; a returned name always has more than 2 letters and a
// returned phone always has at least 10 digits.
type Result struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Intent      string `json:"intent"`
}

// Extractor pulls a visitor's name and phone number out of free text.
// Implementations never propagate failures: a broken parse or provider
// call degrades to an empty Result with IntentOther.
type Extractor interface {
	Extract(ctx context.Context, text string) Result
}

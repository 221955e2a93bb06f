package chat

import "unicode"

// Conversation stages. Progression is forward-only; the only way back to
// StageGreeting is a reset with a fresh session key.
const (
	StageGreeting       = "GREETING"
	StageDataCollection = "DATA_COLLECTION"
	StageWaitingForData = "WAITING_FOR_DATA"
	StageIdentification = "IDENTIFICATION"
	StageOpenChat       = "OPEN_CHAT"
)

// Visitor types assigned during IDENTIFICATION.
const (
	UserTypeNew      = "new"
	UserTypeExisting = "existing"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of the transcript. Options carries quick-reply
// buttons when the bot offers a menu.
type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Options []string `json:"options,omitempty"`
}

// UserData is accumulated across WAITING_FOR_DATA turns. Fields are filled
// monotonically and never cleared except by a full reset.
type UserData struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	UserType    string `json:"user_type,omitempty"`
}

// Session is one visitor's conversation state, keyed by an opaque
// client-supplied id. The transcript doubles as the completion history.
type Session struct {
	ID       string    `json:"id"`
	Stage    string    `json:"stage"`
	UserData UserData  `json:"user_data"`
	Messages []Message `json:"messages"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		Stage: StageGreeting,
	}
}

func (s *Session) AppendUser(content string) {
	s.Messages = append(s.Messages, Message{Role: RoleUser, Content: content})
}

func (s *Session) AppendAssistant(content string, options ...string) {
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: content, Options: options})
}

// History returns a copy of the transcript so the completion layer never
// aliases the session's mutable slice.
func (s *Session) History() []Message {
	history := make([]Message, len(s.Messages))
	copy(history, s.Messages)
	return history
}

// HasValidName reports whether the accumulated name passes validation
// (more than 2 letters).
func (s *Session) HasValidName() bool {
	return ValidName(s.UserData.Name)
}

// HasValidPhone reports whether the accumulated phone passes validation
// (at least 10 consecutive digits).
func (s *Session) HasValidPhone() bool {
	return ValidPhone(s.UserData.PhoneNumber)
}

// ValidName requires more than 2 letters in total.
func ValidName(name string) bool {
	letters := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters > 2
}

// ValidPhone requires a run of at least 10 consecutive digits.
func ValidPhone(phone string) bool {
	run := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			run++
			if run >= 10 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// CountDigits counts digit characters in the input. The corrective-prompt
// policy uses it to call out too-short phone attempts.
func CountDigits(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

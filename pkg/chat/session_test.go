package chat

import (
	"testing"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"two letters", "Al", false},
		{"three letters", "Ana", true},
		{"full name", "John Doe", true},
		{"digits only", "12345", false},
		{"two letters with digits", "Al 123", false},
		{"unicode letters", "राहुल", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"nine digits", "987654321", false},
		{"ten digits", "9876543210", true},
		{"eleven digits", "19876543210", true},
		{"digits split by dash", "98765-43210", false},
		{"ten digits embedded in text", "call me at 9876543210 please", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPhone(tt.input); got != tt.want {
				t.Errorf("ValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountDigits(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"no digits here", 0},
		{"12345", 5},
		{"John Doe 98765", 5},
		{"98765-43210", 10},
	}

	for _, tt := range tests {
		if got := CountDigits(tt.input); got != tt.want {
			t.Errorf("CountDigits(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSessionHistoryIsACopy(t *testing.T) {
	s := NewSession("abc")
	s.AppendUser("hello")
	s.AppendAssistant("hi there")

	history := s.History()
	history[0].Content = "mutated"

	if s.Messages[0].Content != "hello" {
		t.Errorf("mutating History() leaked into the session transcript")
	}
}

func TestNewSessionStartsAtGreeting(t *testing.T) {
	s := NewSession("abc")
	if s.Stage != StageGreeting {
		t.Errorf("Stage = %q, want %q", s.Stage, StageGreeting)
	}
	if len(s.Messages) != 0 {
		t.Errorf("new session transcript should be empty, got %d messages", len(s.Messages))
	}
}

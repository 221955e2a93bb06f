package extract

import (
	"context"
	"testing"
)

func TestPatternExtractor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantPhone  string
		wantIntent string
	}{
		{
			name:       "name and phone together",
			input:      "John Doe 9876543210",
			wantName:   "John Doe",
			wantPhone:  "9876543210",
			wantIntent: IntentProvideData,
		},
		{
			name:       "name only",
			input:      "Rahul",
			wantName:   "Rahul",
			wantPhone:  "",
			wantIntent: IntentProvideData,
		},
		{
			name:       "phone only",
			input:      "9876543210",
			wantName:   "",
			wantPhone:  "9876543210",
			wantIntent: IntentProvideData,
		},
		{
			name:       "greeting is not a name",
			input:      "Hello there",
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
		{
			name:       "question is not a name",
			input:      "What courses do you offer",
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
		{
			name:       "short digit run is not a phone",
			input:      "12345",
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
		{
			name:       "name with filler words",
			input:      "hi my name is Priya Sharma",
			wantName:   "Priya Sharma",
			wantPhone:  "",
			wantIntent: IntentProvideData,
		},
		{
			name:       "name with punctuated phone",
			input:      "John Doe, 9876543210",
			wantName:   "John Doe",
			wantPhone:  "9876543210",
			wantIntent: IntentProvideData,
		},
		{
			name:       "two letter remain is rejected",
			input:      "ab",
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
	}

	extractor := NewPatternExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(context.Background(), tt.input)

			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.PhoneNumber != tt.wantPhone {
				t.Errorf("PhoneNumber = %q, want %q", got.PhoneNumber, tt.wantPhone)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
		})
	}
}

func TestPatternExtractorNeverReturnsShortPhone(t *testing.T) {
	extractor := NewPatternExtractor()
	inputs := []string{"123", "98765", "987654321", "1 2 3 4 5 6 7 8 9 0"}

	for _, input := range inputs {
		got := extractor.Extract(context.Background(), input)
		if got.PhoneNumber != "" {
			t.Errorf("Extract(%q) returned phone %q, want none", input, got.PhoneNumber)
		}
	}
}

package extract

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"admissions-chat-be/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return f.response, f.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestModelExtractor(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		err        error
		wantName   string
		wantPhone  string
		wantIntent string
	}{
		{
			name:       "plain json",
			response:   `{"name": "John Doe", "phoneNumber": "9876543210", "intent": "provide_data"}`,
			wantName:   "John Doe",
			wantPhone:  "9876543210",
			wantIntent: IntentProvideData,
		},
		{
			name:       "fenced json",
			response:   "```json\n{\"name\": \"Rahul\", \"phoneNumber\": null, \"intent\": \"provide_data\"}\n```",
			wantName:   "Rahul",
			wantPhone:  "",
			wantIntent: IntentProvideData,
		},
		{
			name:       "refusal",
			response:   `{"name": null, "phoneNumber": null, "intent": "refuse"}`,
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentRefuse,
		},
		{
			name:       "nullish strings are dropped",
			response:   `{"name": "null", "phoneNumber": "N/A", "intent": "other"}`,
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
		{
			name:       "short phone from model is rejected",
			response:   `{"name": "John Doe", "phoneNumber": "12345", "intent": "provide_data"}`,
			wantName:   "John Doe",
			wantPhone:  "",
			wantIntent: IntentProvideData,
		},
		{
			name:       "short name from model is rejected",
			response:   `{"name": "Al", "phoneNumber": "9876543210", "intent": "provide_data"}`,
			wantName:   "",
			wantPhone:  "9876543210",
			wantIntent: IntentProvideData,
		},
		{
			name:       "unknown intent normalizes to other",
			response:   `{"name": null, "phoneNumber": null, "intent": "greeting"}`,
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
		{
			name:       "malformed json fails soft",
			response:   "I cannot answer that.",
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
		{
			name:       "provider failure fails soft",
			response:   "",
			err:        errors.New("connection refused"),
			wantName:   "",
			wantPhone:  "",
			wantIntent: IntentOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewModelExtractor(&fakeLLM{response: tt.response, err: tt.err}, testLogger())
			got := extractor.Extract(context.Background(), "does not matter")

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

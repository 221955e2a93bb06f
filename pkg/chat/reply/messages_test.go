package reply

import (
	"strings"
	"testing"

	"admissions-chat-be/pkg/chat"
)

func TestCorrective(t *testing.T) {
	tests := []struct {
		name       string
		data       chat.UserData
		digitCount int
		want       string
	}{
		{
			name:       "nothing collected, no digits",
			data:       chat.UserData{},
			digitCount: 0,
			want:       AskBothFields,
		},
		{
			name:       "nothing collected, short number",
			data:       chat.UserData{},
			digitCount: 5,
			want:       "That phone number looks too short (5 digits). Please provide your Name and a valid 10-digit Phone Number.",
		},
		{
			name:       "name collected, no digits",
			data:       chat.UserData{Name: "Rahul"},
			digitCount: 0,
			want:       "Thanks Rahul! Please provide your 10-digit Phone Number.",
		},
		{
			name:       "name collected, short number",
			data:       chat.UserData{Name: "Rahul"},
			digitCount: 7,
			want:       "Thanks Rahul! Please provide your 10-digit Phone Number. The number you entered has only 7 digits.",
		},
		{
			name:       "phone collected, name missing",
			data:       chat.UserData{PhoneNumber: "9876543210"},
			digitCount: 10,
			want:       "Thanks for the number! Please provide your Name.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Corrective(tt.data, tt.digitCount)
			if got != tt.want {
				t.Errorf("Corrective() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCorrectiveIsDeterministic(t *testing.T) {
	data := chat.UserData{Name: "Priya"}
	first := Corrective(data, 4)
	for i := 0; i < 5; i++ {
		if got := Corrective(data, 4); got != first {
			t.Fatalf("Corrective() changed between calls: %q vs %q", first, got)
		}
	}
}

func TestOptionMenu(t *testing.T) {
	menu := OptionMenu()
	if len(menu) != 5 {
		t.Fatalf("OptionMenu() returned %d options, want 5", len(menu))
	}

	msg := OptionMenuMessage("John Doe")
	if !strings.Contains(msg, "John Doe") {
		t.Errorf("OptionMenuMessage() = %q, should mention the visitor's name", msg)
	}
}

package answer

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"admissions-chat-be/pkg/chat"
	"admissions-chat-be/pkg/chat/reply"
	"admissions-chat-be/pkg/llm"
)

type fakeProvider struct {
	response string
	err      error
	got      []llm.Message
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.got = history
	return f.response, f.err
}

func (f *fakeProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return f.response, f.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestCompleteBuildsMessageSequence(t *testing.T) {
	provider := &fakeProvider{response: "The fees are ₹50,000 per year."}
	g := NewGenerator(provider, testLogger())

	history := []chat.Message{
		{Role: chat.RoleUser, Content: "earlier question"},
		{Role: chat.RoleAssistant, Content: "earlier answer"},
	}

	got, ok := g.Complete(context.Background(), "system text", history, "What are the fees?")
	if !ok {
		t.Fatal("Complete() reported failure for a successful call")
	}
	if got != "The fees are ₹50,000 per year." {
		t.Errorf("Complete() = %q", got)
	}

	if len(provider.got) != 4 {
		t.Fatalf("provider received %d messages, want 4", len(provider.got))
	}
	if provider.got[0].Role != chat.RoleSystem || provider.got[0].Content != "system text" {
		t.Errorf("first message should be the system prompt, got %+v", provider.got[0])
	}
	if provider.got[3].Role != chat.RoleUser || provider.got[3].Content != "What are the fees?" {
		t.Errorf("last message should be the current user turn, got %+v", provider.got[3])
	}
}

func TestCompleteNormalizesNonUserRoles(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	g := NewGenerator(provider, testLogger())

	history := []chat.Message{{Role: "model", Content: "legacy role"}}
	g.Complete(context.Background(), "sys", history, "hi")

	if provider.got[1].Role != "assistant" {
		t.Errorf("non-user history role = %q, want assistant", provider.got[1].Role)
	}
}

func TestCompleteAbsorbsProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("timeout")}
	g := NewGenerator(provider, testLogger())

	got, ok := g.Complete(context.Background(), "sys", nil, "hi")
	if ok {
		t.Error("Complete() should report failure when the provider errors")
	}
	if got != reply.Apology {
		t.Errorf("Complete() = %q, want the fixed apology", got)
	}
}

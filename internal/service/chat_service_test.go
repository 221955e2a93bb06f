package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-chat-be/internal/repository"
	"admissions-chat-be/pkg/chat"
	"admissions-chat-be/pkg/chat/extract"
	"admissions-chat-be/pkg/chat/reply"
	"admissions-chat-be/pkg/embedding"
	"admissions-chat-be/pkg/llm"
	"admissions-chat-be/pkg/rag"
	"admissions-chat-be/pkg/rag/answer"
)

// ---- fakes ----

type fakeSessionStore struct {
	sessions map[string]*chat.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*chat.Session)}
}

func (f *fakeSessionStore) Get(sessionID string) (*chat.Session, bool) {
	s, ok := f.sessions[sessionID]
	return s, ok
}

func (f *fakeSessionStore) Save(session *chat.Session) {
	f.sessions[session.ID] = session
}

func (f *fakeSessionStore) Delete(sessionID string) {
	delete(f.sessions, sessionID)
}

var _ repository.SessionStore = &fakeSessionStore{}

type scriptedExtractor struct {
	result extract.Result
}

func (s *scriptedExtractor) Extract(_ context.Context, _ string) extract.Result {
	return s.result
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Generate(_ context.Context, _ string, _ string) (*embedding.EmbeddingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1}},
	}, nil
}

type fakeIndex struct {
	passages []rag.ScoredPassage
	err      error
}

func (f *fakeIndex) SearchNearest(_ context.Context, _ []float32, _ int) ([]rag.ScoredPassage, error) {
	return f.passages, f.err
}

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

type fakeAudit struct {
	leads   []chat.UserData
	events  []string
	details []map[string]interface{}
}

func (f *fakeAudit) SaveLead(_ context.Context, _ string, data chat.UserData) {
	f.leads = append(f.leads, data)
}

func (f *fakeAudit) LogEvent(_ context.Context, event string, details map[string]interface{}) {
	f.events = append(f.events, event)
	f.details = append(f.details, details)
}

// ---- harness ----

type harness struct {
	store     *fakeSessionStore
	audit     *fakeAudit
	extractor extract.Extractor
	llm       *fakeLLM
	index     *fakeIndex
	embedder  *fakeEmbedder
}

func newHarness() *harness {
	return &harness{
		store:     newFakeSessionStore(),
		audit:     &fakeAudit{},
		extractor: extract.NewPatternExtractor(),
		llm:       &fakeLLM{response: "generated answer"},
		index:     &fakeIndex{},
		embedder:  &fakeEmbedder{},
	}
}

func (h *harness) service() IChatService {
	discard := log.New(io.Discard, "", 0)
	retriever := rag.NewRetriever(h.embedder, h.index, discard)
	generator := answer.NewGenerator(h.llm, discard)
	return NewChatService(
		h.store,
		h.extractor,
		retriever,
		generator,
		h.audit,
		noopLogger{},
		time.Minute,
		15*time.Second,
	)
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// ---- tests ----

func TestGreetingFlow(t *testing.T) {
	h := newHarness()
	svc := h.service()
	ctx := context.Background()

	res, err := svc.HandleMessage(ctx, "s1", "hi")
	require.NoError(t, err)
	assert.Equal(t, reply.Greeting, res.Message)
	assert.Equal(t, chat.StageDataCollection, h.store.sessions["s1"].Stage)

	res, err = svc.HandleMessage(ctx, "s1", "I want to know about courses")
	require.NoError(t, err)
	assert.Equal(t, reply.AskData, res.Message)
	assert.Equal(t, chat.StageWaitingForData, h.store.sessions["s1"].Stage)
}

func TestDataCollectionInOneTurn(t *testing.T) {
	h := newHarness()
	svc := h.service()
	ctx := context.Background()

	svc.HandleMessage(ctx, "s1", "hi")
	svc.HandleMessage(ctx, "s1", "ok")

	res, err := svc.HandleMessage(ctx, "s1", "John Doe 9876543210")
	require.NoError(t, err)

	assert.Equal(t, reply.OptionMenuMessage("John Doe"), res.Message)
	assert.Equal(t, reply.OptionMenu(), res.Options)

	session := h.store.sessions["s1"]
	assert.Equal(t, chat.StageIdentification, session.Stage)
	assert.Equal(t, "John Doe", session.UserData.Name)
	assert.Equal(t, "9876543210", session.UserData.PhoneNumber)

	require.Len(t, h.audit.leads, 1)
	assert.Equal(t, "John Doe", h.audit.leads[0].Name)
}

func TestDataCollectionAcrossTwoTurns(t *testing.T) {
	h := newHarness()
	svc := h.service()
	ctx := context.Background()

	svc.HandleMessage(ctx, "s1", "hi")
	svc.HandleMessage(ctx, "s1", "ok")

	res, err := svc.HandleMessage(ctx, "s1", "Rahul")
	require.NoError(t, err)
	assert.Equal(t, "Thanks Rahul! Please provide your 10-digit Phone Number.", res.Message)
	assert.Equal(t, chat.StageWaitingForData, h.store.sessions["s1"].Stage)
	assert.Empty(t, h.audit.leads)

	res, err = svc.HandleMessage(ctx, "s1", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, reply.OptionMenuMessage("Rahul"), res.Message)
	assert.Equal(t, chat.StageIdentification, h.store.sessions["s1"].Stage)
	require.Len(t, h.audit.leads, 1)
}

func TestShortPhoneCorrective(t *testing.T) {
	h := newHarness()
	svc := h.service()
	ctx := context.Background()

	svc.HandleMessage(ctx, "s1", "hi")
	svc.HandleMessage(ctx, "s1", "ok")

	res, err := svc.HandleMessage(ctx, "s1", "12345")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "too short (5 digits)")
	assert.Equal(t, chat.StageWaitingForData, h.store.sessions["s1"].Stage)
}

func TestRefusalKeepsStage(t *testing.T) {
	h := newHarness()
	h.extractor = &scriptedExtractor{result: extract.Result{Intent: extract.IntentRefuse}}
	svc := h.service()
	ctx := context.Background()

	svc.HandleMessage(ctx, "s1", "hi")
	svc.HandleMessage(ctx, "s1", "ok")

	res, err := svc.HandleMessage(ctx, "s1", "I will not share my number")
	require.NoError(t, err)
	assert.Equal(t, reply.RefusalPersuasion, res.Message)
	assert.Equal(t, chat.StageWaitingForData, h.store.sessions["s1"].Stage)
	assert.Empty(t, h.audit.leads)
}

func TestValidFieldIsNeverOverwritten(t *testing.T) {
	h := newHarness()
	svc := h.service()
	ctx := context.Background()

	svc.HandleMessage(ctx, "s1", "hi")
	svc.HandleMessage(ctx, "s1", "ok")
	svc.HandleMessage(ctx, "s1", "Rahul")

	// second turn offers a different name along with the phone; the
	// validated name must stick
	svc.HandleMessage(ctx, "s1", "Suresh 9876543210")

	assert.Equal(t, "Rahul", h.store.sessions["s1"].UserData.Name)
	assert.Equal(t, "9876543210", h.store.sessions["s1"].UserData.PhoneNumber)
}

func TestIdentificationKeywords(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantType     string
		wantResponse string
	}{
		{"lms keyword", "Access LMS / Student Login", chat.UserTypeExisting, reply.ExistingUserResponse},
		{"login keyword", "I need help with login", chat.UserTypeExisting, reply.ExistingUserResponse},
		{"explore keyword", "Explore Courses", chat.UserTypeNew, reply.NewUserResponse},
		{"admission keyword", "Apply for Admission", chat.UserTypeNew, reply.NewUserResponse},
		{"counsellor keyword", "Talk to a counsellor", chat.UserTypeNew, reply.NewUserResponse},
		{"unrecognized defaults to new", "something else entirely", chat.UserTypeNew, reply.NewUserResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			svc := h.service()
			ctx := context.Background()

			svc.HandleMessage(ctx, "s1", "hi")
			svc.HandleMessage(ctx, "s1", "ok")
			svc.HandleMessage(ctx, "s1", "John Doe 9876543210")

			res, err := svc.HandleMessage(ctx, "s1", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantResponse, res.Message)
			assert.Equal(t, tt.wantType, h.store.sessions["s1"].UserData.UserType)
			assert.Equal(t, chat.StageOpenChat, h.store.sessions["s1"].Stage)
		})
	}
}

func runToOpenChat(t *testing.T, h *harness, svc IChatService) {
	t.Helper()
	ctx := context.Background()
	svc.HandleMessage(ctx, "s1", "hi")
	svc.HandleMessage(ctx, "s1", "ok")
	svc.HandleMessage(ctx, "s1", "John Doe 9876543210")
	svc.HandleMessage(ctx, "s1", "Explore Courses")
	require.Equal(t, chat.StageOpenChat, h.store.sessions["s1"].Stage)
}

func TestOpenChatAnswers(t *testing.T) {
	h := newHarness()
	h.index.passages = []rag.ScoredPassage{{Text: "B.Tech fees are 50000", Distance: 0.2}}
	svc := h.service()
	runToOpenChat(t, h, svc)

	res, err := svc.HandleMessage(context.Background(), "s1", "What are the fees?")
	require.NoError(t, err)
	assert.Equal(t, "generated answer", res.Message)
	assert.Equal(t, chat.StageOpenChat, h.store.sessions["s1"].Stage)
	assert.Contains(t, h.audit.events, "CHAT_RESPONSE")
}

func TestOpenChatEmptyIndexStillCompletes(t *testing.T) {
	h := newHarness()
	// no passages in the index
	svc := h.service()
	runToOpenChat(t, h, svc)

	res, err := svc.HandleMessage(context.Background(), "s1", "What are the fees?")
	require.NoError(t, err)
	assert.Equal(t, "generated answer", res.Message, "completion must still be attempted")

	require.Contains(t, h.audit.events, "CHAT_RESPONSE")
	last := h.audit.details[len(h.audit.details)-1]
	assert.Equal(t, float64(0), last["confidence"], "empty index means confidence 0")
}

func TestOpenChatProviderFailureYieldsApology(t *testing.T) {
	h := newHarness()
	h.llm.err = errors.New("provider down")
	svc := h.service()
	runToOpenChat(t, h, svc)

	res, err := svc.HandleMessage(context.Background(), "s1", "What are the fees?")
	require.NoError(t, err)
	assert.Equal(t, reply.Apology, res.Message)
	assert.NotContains(t, h.audit.events, "CHAT_RESPONSE")
}

func TestOpenChatRetrievalFailureStillAnswers(t *testing.T) {
	h := newHarness()
	h.embedder.err = errors.New("embedding service down")
	svc := h.service()
	runToOpenChat(t, h, svc)

	res, err := svc.HandleMessage(context.Background(), "s1", "What are the fees?")
	require.NoError(t, err)
	assert.Equal(t, "generated answer", res.Message)
}

func TestStagesOnlyAdvance(t *testing.T) {
	h := newHarness()
	svc := h.service()
	ctx := context.Background()

	order := map[string]int{
		chat.StageGreeting:       0,
		chat.StageDataCollection: 1,
		chat.StageWaitingForData: 2,
		chat.StageIdentification: 3,
		chat.StageOpenChat:       4,
	}

	inputs := []string{"hi", "ok", "garbage", "12345", "John Doe 9876543210", "Explore Courses", "question one", "question two"}
	last := 0
	for _, input := range inputs {
		_, err := svc.HandleMessage(ctx, "s1", input)
		require.NoError(t, err)

		current := order[h.store.sessions["s1"].Stage]
		assert.GreaterOrEqual(t, current, last, "stage regressed after input %q", input)
		last = current
	}
}

func TestResetSeedsFreshSession(t *testing.T) {
	h := newHarness()
	svc := h.service()

	res, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, reply.Greeting, res.Message)

	session, ok := h.store.Get(res.SessionId)
	require.True(t, ok)
	assert.Equal(t, chat.StageDataCollection, session.Stage)
	assert.Empty(t, session.UserData.Name)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, chat.RoleAssistant, session.Messages[0].Role)
}

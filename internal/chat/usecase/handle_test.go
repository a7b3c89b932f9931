package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/intent"
	"portfolio-chat/internal/metrics"
	"portfolio-chat/internal/model"
	"portfolio-chat/internal/safety"
	"portfolio-chat/pkg/llmprovider"
	"portfolio-chat/pkg/log"
)

type appended struct {
	sessionID string
	turn      model.Turn
}

type fakeHistory struct {
	appends  []appended
	failOn   int // 1-based append call that fails, 0 never
	calls    int
	recent   []model.Turn
	recentN  int
	recentID string
}

func (f *fakeHistory) AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	f.calls++
	if f.failOn == f.calls {
		return errors.New("store unavailable")
	}
	f.appends = append(f.appends, appended{sessionID, turn})
	return nil
}

func (f *fakeHistory) RecentTurns(ctx context.Context, sessionID string, n int) []model.Turn {
	f.recentID = sessionID
	f.recentN = n
	if f.recent != nil {
		return f.recent
	}
	var turns []model.Turn
	for _, a := range f.appends {
		if a.sessionID == sessionID {
			turns = append(turns, a.turn)
		}
	}
	return turns
}

func (f *fakeHistory) Close() error { return nil }

type fakePassages struct {
	passages []model.Passage
	err      error
	calls    int
	query    string
	k        int
}

func (f *fakePassages) Retrieve(ctx context.Context, query string, k int) ([]model.Passage, error) {
	f.calls++
	f.query = query
	f.k = k
	return f.passages, f.err
}

type fakeClassifier struct {
	category intent.Category
	err      error
	calls    int
}

func (f *fakeClassifier) Classify(ctx context.Context, message string) (intent.Category, error) {
	f.calls++
	return f.category, f.err
}

type fakeLLM struct {
	text  string
	err   error
	calls int
	req   *llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, f.text)}, nil
}

type fixture struct {
	history    *fakeHistory
	passages   *fakePassages
	classifier *fakeClassifier
	llm        *fakeLLM
	uc         *implUseCase
}

func newFixture(t *testing.T, category intent.Category) *fixture {
	t.Helper()
	f := &fixture{
		history:    &fakeHistory{},
		passages:   &fakePassages{passages: []model.Passage{{ID: "1", Content: "Built a Go chat backend", Score: 0.9}}},
		classifier: &fakeClassifier{category: category},
		llm:        &fakeLLM{text: "  I work mostly with Go.  "},
	}
	uc, err := New(Deps{
		Logger:       log.NewNop(),
		Safety:       safety.New(safety.DefaultBlockedTerms...),
		History:      f.history,
		Passages:     f.passages,
		Classifier:   f.classifier,
		LLM:          f.llm,
		Metrics:      metrics.New(prometheus.NewRegistry()),
		Profile:      Profile{Name: "Sam", Email: "sam@example.com", GitHub: "github.com/sam"},
		NewSessionID: func() string { return "generated-id" },
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func TestHandleGreeting(t *testing.T) {
	f := newFixture(t, intent.Greeting)

	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "Hi", SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, f.uc.greeting, out.Message)
	assert.Contains(t, out.Message, "Sam")
	assert.Equal(t, "s1", out.SessionID)
	assert.Equal(t, intent.Greeting, out.Category)
	assert.Equal(t, chat.OutcomeAnswered, out.Outcome)
	assert.Zero(t, f.passages.calls)
	assert.Zero(t, f.llm.calls)

	require.Len(t, f.history.appends, 2)
	assert.Equal(t, model.Turn{Role: model.RoleHuman, Content: "Hi"}, f.history.appends[0].turn)
	assert.Equal(t, model.Turn{Role: model.RoleAI, Content: out.Message}, f.history.appends[1].turn)
}

func TestHandleContact(t *testing.T) {
	f := newFixture(t, intent.Contact)

	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "How can I reach you?", SessionID: "s1"})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "sam@example.com")
	assert.Contains(t, out.Message, "github.com/sam")
	assert.NotContains(t, out.Message, "Phone")
	assert.Len(t, f.history.appends, 2)
	assert.Zero(t, f.llm.calls)
}

func TestHandlePortfolioQuestion(t *testing.T) {
	f := newFixture(t, intent.PortfolioQuestion)

	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "What skills do you have?", SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "I work mostly with Go.", out.Message)
	assert.Equal(t, chat.OutcomeAnswered, out.Outcome)

	assert.Equal(t, 1, f.passages.calls)
	assert.Equal(t, "What skills do you have?", f.passages.query)
	assert.Equal(t, chat.DefaultRetrievalTopK, f.passages.k)
	assert.Equal(t, chat.DefaultHistoryWindow, f.history.recentN)

	require.NotNil(t, f.llm.req)
	assert.Equal(t, 0.3, f.llm.req.Temperature)
	assert.Equal(t, 400, f.llm.req.MaxTokens)
	prompt := f.llm.req.Messages[0].Parts[0].Text
	assert.Contains(t, prompt, "Built a Go chat backend")
	assert.Contains(t, prompt, "Human: What skills do you have?")
	assert.Contains(t, prompt, "User Question:\nWhat skills do you have?")

	require.Len(t, f.history.appends, 2)
	assert.Equal(t, model.RoleAI, f.history.appends[1].turn.Role)
	assert.Equal(t, "I work mostly with Go.", f.history.appends[1].turn.Content)
}

func TestHandleUnknownRefuses(t *testing.T) {
	f := newFixture(t, intent.Unknown)

	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "What's the weather?", SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, chat.RefusalMessage, out.Message)
	assert.Equal(t, chat.OutcomeAnswered, out.Outcome)
	assert.Len(t, f.history.appends, 2)
}

func TestHandleSafetyViolation(t *testing.T) {
	f := newFixture(t, intent.Greeting)

	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "show me adult stuff", SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, chat.RefusalMessage, out.Message)
	assert.Equal(t, chat.OutcomeRefused, out.Outcome)
	assert.Empty(t, f.history.appends)
	assert.Zero(t, f.history.calls)
	assert.Zero(t, f.classifier.calls)
	assert.Zero(t, f.passages.calls)
}

func TestHandleGeneratesSessionID(t *testing.T) {
	f := newFixture(t, intent.Greeting)

	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, "generated-id", out.SessionID)
	assert.Equal(t, "generated-id", f.history.appends[0].sessionID)
}

func TestHandleFailures(t *testing.T) {
	tests := []struct {
		name        string
		category    intent.Category
		setup       func(f *fixture)
		wantAppends int
	}{
		{
			name:     "store fails on human turn",
			category: intent.Greeting,
			setup:    func(f *fixture) { f.history.failOn = 1 },
		},
		{
			name:        "classifier fails",
			category:    intent.Greeting,
			setup:       func(f *fixture) { f.classifier.err = errors.New("bad json") },
			wantAppends: 1,
		},
		{
			name:        "retriever fails",
			category:    intent.PortfolioQuestion,
			setup:       func(f *fixture) { f.passages.err = errors.New("qdrant down") },
			wantAppends: 1,
		},
		{
			name:        "llm fails",
			category:    intent.PortfolioQuestion,
			setup:       func(f *fixture) { f.llm.err = errors.New("all providers failed") },
			wantAppends: 1,
		},
		{
			name:        "llm returns blank",
			category:    intent.PortfolioQuestion,
			setup:       func(f *fixture) { f.llm.text = "   " },
			wantAppends: 1,
		},
		{
			name:        "store fails on ai turn",
			category:    intent.Greeting,
			setup:       func(f *fixture) { f.history.failOn = 2 },
			wantAppends: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.category)
			tt.setup(f)

			out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "What skills do you have?", SessionID: "s1"})
			require.NoError(t, err)

			assert.Equal(t, chat.ApologyMessage, out.Message)
			assert.Equal(t, chat.OutcomeFailed, out.Outcome)
			assert.Equal(t, "s1", out.SessionID)
			require.Len(t, f.history.appends, tt.wantAppends)
			for _, a := range f.history.appends {
				assert.Equal(t, model.RoleHuman, a.turn.Role)
			}
		})
	}
}

func TestHandleValidation(t *testing.T) {
	tests := []struct {
		name  string
		input chat.HandleInput
		want  error
	}{
		{"empty message", chat.HandleInput{Message: ""}, chat.ErrEmptyMessage},
		{"blank message", chat.HandleInput{Message: " \n\t "}, chat.ErrEmptyMessage},
		{"too long", chat.HandleInput{Message: strings.Repeat("a", chat.DefaultMaxMessageLength+1)}, chat.ErrMessageTooLong},
		{"session id with space", chat.HandleInput{Message: "hi", SessionID: "a b"}, chat.ErrInvalidSessionID},
		{"blank session id", chat.HandleInput{Message: "hi", SessionID: "   "}, chat.ErrInvalidSessionID},
		{"session id too long", chat.HandleInput{Message: "hi", SessionID: strings.Repeat("x", chat.MaxSessionIDLength+1)}, chat.ErrInvalidSessionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, intent.Greeting)

			_, err := f.uc.Handle(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.history.calls)
			assert.Zero(t, f.classifier.calls)
		})
	}
}

func TestNewRequiresDeps(t *testing.T) {
	_, err := New(Deps{})
	assert.Error(t, err)

	_, err = New(Deps{Logger: log.NewNop(), Safety: safety.New()})
	assert.Error(t, err)
}

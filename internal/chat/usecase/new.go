package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/internal/intent"
	"portfolio-chat/internal/metrics"
	"portfolio-chat/internal/safety"
	"portfolio-chat/pkg/llmprovider"
	"portfolio-chat/pkg/log"
)

// Profile is the portfolio owner's public contact card.
type Profile struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
}

// Deps is everything the chat use case talks to.
type Deps struct {
	Logger     log.Logger
	Safety     safety.Filter
	History    repository.HistoryRepository
	Passages   repository.PassageRepository
	Classifier intent.Classifier
	LLM        llmprovider.Generator
	Metrics    *metrics.Metrics // optional

	Profile          Profile
	HistoryWindow    int
	RetrievalTopK    int
	MaxMessageLength int

	// NewSessionID defaults to uuid.NewString.
	NewSessionID func() string
	// Now defaults to time.Now.
	Now func() time.Time
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l          log.Logger
	safety     safety.Filter
	history    repository.HistoryRepository
	passages   repository.PassageRepository
	classifier intent.Classifier
	llm        llmprovider.Generator
	metrics    *metrics.Metrics

	greeting      string
	contact       string
	historyWindow int
	topK          int
	maxMsgLen     int

	newSessionID func() string
	now          func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat use case.
func New(deps Deps) (*implUseCase, error) {
	switch {
	case deps.Logger == nil:
		return nil, errors.New("chat usecase: logger is required")
	case deps.Safety == nil:
		return nil, errors.New("chat usecase: safety filter is required")
	case deps.History == nil:
		return nil, errors.New("chat usecase: history repository is required")
	case deps.Passages == nil:
		return nil, errors.New("chat usecase: passage repository is required")
	case deps.Classifier == nil:
		return nil, errors.New("chat usecase: classifier is required")
	case deps.LLM == nil:
		return nil, errors.New("chat usecase: llm is required")
	}

	uc := &implUseCase{
		l:             deps.Logger,
		safety:        deps.Safety,
		history:       deps.History,
		passages:      deps.Passages,
		classifier:    deps.Classifier,
		llm:           deps.LLM,
		metrics:       deps.Metrics,
		greeting:      renderGreeting(deps.Profile),
		contact:       renderContact(deps.Profile),
		historyWindow: deps.HistoryWindow,
		topK:          deps.RetrievalTopK,
		maxMsgLen:     deps.MaxMessageLength,
		newSessionID:  deps.NewSessionID,
		now:           deps.Now,
	}

	if uc.historyWindow <= 0 {
		uc.historyWindow = chat.DefaultHistoryWindow
	}
	if uc.topK <= 0 {
		uc.topK = chat.DefaultRetrievalTopK
	}
	if uc.maxMsgLen <= 0 {
		uc.maxMsgLen = chat.DefaultMaxMessageLength
	}
	if uc.newSessionID == nil {
		uc.newSessionID = uuid.NewString
	}
	if uc.now == nil {
		uc.now = time.Now
	}

	return uc, nil
}

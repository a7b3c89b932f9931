package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/intent"
	"portfolio-chat/pkg/log"
	"portfolio-chat/pkg/response"
)

type mockUseCase struct {
	handleFunc func(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error)
	lastInput  chat.HandleInput
	calls      int
}

func (m *mockUseCase) Handle(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
	m.calls++
	m.lastInput = input
	if m.handleFunc != nil {
		return m.handleFunc(ctx, input)
	}
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = "new-session"
	}
	return chat.HandleOutput{
		Message:   "Hi there!",
		SessionID: sessionID,
		Category:  intent.Greeting,
		Outcome:   chat.OutcomeAnswered,
	}, nil
}

func newRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	t.Run("success with new session", func(t *testing.T) {
		uc := &mockUseCase{}
		w := doRequest(newRouter(uc), http.MethodPost, "/api/v1/chat", `{"message":"Hi"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp chatResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Message != "Hi there!" || resp.SessionID != "new-session" {
			t.Errorf("unexpected response %+v", resp)
		}
		if uc.lastInput.SessionID != "" {
			t.Errorf("expected empty session id passed through, got %q", uc.lastInput.SessionID)
		}
	})

	t.Run("success with existing session", func(t *testing.T) {
		uc := &mockUseCase{}
		w := doRequest(newRouter(uc), http.MethodPost, "/api/v1/chat", `{"message":"Hi","session_id":"abc"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastInput.SessionID != "abc" || uc.lastInput.Message != "Hi" {
			t.Errorf("unexpected input %+v", uc.lastInput)
		}
	})

	badRequests := []struct {
		name string
		body string
		err  error
	}{
		{"not json", `message=hi`, nil},
		{"empty body", ``, nil},
		{"message not a string", `{"message":42}`, nil},
		{"message missing", `{"session_id":"abc"}`, nil},
		{"message null", `{"message":null}`, nil},
		{"session id not a string", `{"message":"hi","session_id":7}`, nil},
		{"blank message", `{"message":"   "}`, chat.ErrEmptyMessage},
		{"too long", `{"message":"x"}`, chat.ErrMessageTooLong},
		{"bad session id", `{"message":"hi","session_id":"a b"}`, chat.ErrInvalidSessionID},
	}
	for _, tt := range badRequests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				err := tt.err
				uc.handleFunc = func(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
					return chat.HandleOutput{}, err
				}
			}
			w := doRequest(newRouter(uc), http.MethodPost, "/api/v1/chat", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var resp response.ErrorResp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Error == "" {
				t.Errorf("expected error body, got %s", w.Body.String())
			}
			if tt.err == nil && uc.calls != 0 {
				t.Errorf("use case should not be called on malformed input")
			}
		})
	}

	t.Run("unexpected error is 500", func(t *testing.T) {
		uc := &mockUseCase{handleFunc: func(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
			return chat.HandleOutput{}, errors.New("boom")
		}}
		w := doRequest(newRouter(uc), http.MethodPost, "/api/v1/chat", `{"message":"Hi"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "boom") {
			t.Errorf("internal error leaked: %s", w.Body.String())
		}
	})

	t.Run("nil use case is 503", func(t *testing.T) {
		w := doRequest(newRouter(nil), http.MethodPost, "/api/v1/chat", `{"message":"Hi"}`)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var resp response.ErrorResp
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "Chat service unavailable" {
			t.Errorf("unexpected error %q", resp.Error)
		}
	})
}

func TestHealth(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		w := doRequest(newRouter(&mockUseCase{}), http.MethodGet, "/api/v1/chat/health", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), readyMessage) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("not ready", func(t *testing.T) {
		w := doRequest(newRouter(nil), http.MethodGet, "/api/v1/chat/health", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), notReadyMessage) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}

func TestRegisterRoutesMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	blocked := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	}
	uc := &mockUseCase{}
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), blocked)

	w := doRequest(r, http.MethodPost, "/api/v1/chat", `{"message":"Hi"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if uc.calls != 0 {
		t.Error("handler ran despite aborting middleware")
	}

	w = doRequest(r, http.MethodGet, "/api/v1/chat/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("health should bypass chat middleware, got %d", w.Code)
	}
}

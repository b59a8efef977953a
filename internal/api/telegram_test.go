package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/benzak-dev/benzak-api/internal/bot"
	"github.com/benzak-dev/benzak-api/internal/domain/dto"
	"github.com/benzak-dev/benzak-api/internal/domain/models"
	"github.com/benzak-dev/benzak-api/internal/service"
)

type mockLatest struct {
	summary string
	err     error
}

func (m *mockLatest) Latest(_ context.Context, _, _ int64) (*models.PriceRecord, error) {
	return nil, nil
}

func (m *mockLatest) ActualSummary(_ context.Context, _ time.Time) (string, error) {
	return m.summary, m.err
}

var _ service.LatestService = (*mockLatest)(nil)

type mockSender struct {
	res      *bot.SendResult
	err      error
	gotChat  int64
	gotText  string
	gotReply int64
}

func (m *mockSender) SendMessage(_ context.Context, chatID int64, text string, replyTo int64) (*bot.SendResult, error) {
	m.gotChat = chatID
	m.gotText = text
	m.gotReply = replyTo
	return m.res, m.err
}

func setupTelegramRouter(token string, latest service.LatestService, sender bot.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTelegramHandler(token, bot.NewResponder(latest), sender)
	r := gin.New()
	r.POST("/api/v1/telegram", h.Webhook)
	return r
}

const sampleUpdate = `{
	"message": {
		"message_id": 101,
		"chat": {"id": 42},
		"from": {"id": 7, "username": "vasya", "first_name": "Вася"},
		"text": "/actual"
	}
}`

func TestWebhook_PermissionDenied(t *testing.T) {
	cases := []struct {
		name  string
		token string
		body  string
	}{
		{name: "no bot token", token: "", body: sampleUpdate},
		{name: "no message field", token: "t", body: `{"edited_message": {}}`},
		{name: "not json", token: "t", body: `???`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupTelegramRouter(tc.token, &mockLatest{}, &mockSender{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/telegram", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", w.Code)
			}
		})
	}
}

func TestWebhook_Actual(t *testing.T) {
	sender := &mockSender{res: &bot.SendResult{Status: 200, Ok: true}}
	r := setupTelegramRouter("t", &mockLatest{summary: "ДТ: 2.36 р. (1 д.)"}, sender)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telegram", strings.NewReader(sampleUpdate))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	if sender.gotChat != 42 || sender.gotReply != 101 {
		t.Fatalf("unexpected delivery target: chat=%d reply=%d", sender.gotChat, sender.gotReply)
	}
	if !strings.HasPrefix(sender.gotText, "Актуальные цены:") || !strings.Contains(sender.gotText, "ДТ: 2.36") {
		t.Fatalf("unexpected reply text: %q", sender.gotText)
	}

	var out dto.TelegramReply
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Chat != 42 || out.Message != "/actual" || !out.Ok || out.Status != 200 || !out.Tg {
		t.Fatalf("unexpected body: %+v", out)
	}
	if out.User != "id=7,fn=Вася, username=vasya" {
		t.Fatalf("unexpected user echo: %q", out.User)
	}
}

func TestWebhook_Greeting(t *testing.T) {
	sender := &mockSender{res: &bot.SendResult{Status: 200, Ok: true}}
	r := setupTelegramRouter("t", &mockLatest{}, sender)

	body := `{"message": {"message_id": 5, "chat": {"id": 9}, "from": {"id": 1, "first_name": "Вася", "last_name": "Пупкин"}, "text": "привет"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if sender.gotText != "Вася Пупкин! За слова ответишь?" {
		t.Fatalf("unexpected reply text: %q", sender.gotText)
	}
}

func TestWebhook_DeliveryFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("connection refused")}
	r := setupTelegramRouter("t", &mockLatest{summary: "x"}, sender)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telegram", strings.NewReader(sampleUpdate))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Delivery failure must not fail the webhook itself.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out dto.TelegramReply
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Ok || out.Status != 0 || out.Tg {
		t.Fatalf("expected delivery failure to be reported, got %+v", out)
	}
}

func TestWebhook_SummaryFailure(t *testing.T) {
	r := setupTelegramRouter("t", &mockLatest{err: errors.New("db down")}, &mockSender{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telegram", strings.NewReader(sampleUpdate))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benzak-dev/benzak-api/internal/domain/dto"
	"github.com/benzak-dev/benzak-api/internal/domain/models"
	"github.com/benzak-dev/benzak-api/internal/service"
)

type stubLatest struct {
	summary string
	err     error
}

func (s *stubLatest) Latest(_ context.Context, _, _ int64) (*models.PriceRecord, error) {
	return nil, nil
}

func (s *stubLatest) ActualSummary(_ context.Context, _ time.Time) (string, error) {
	return s.summary, s.err
}

var _ service.LatestService = (*stubLatest)(nil)

func TestReply_Actual(t *testing.T) {
	r := NewResponder(&stubLatest{summary: "АИ-95: 2.36 р. (1 д.)"})

	got, err := r.Reply(context.Background(), dto.TelegramMessage{Text: "/actual"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Актуальные цены:\n\nАИ-95: 2.36 р. (1 д.)"
	if got != want {
		t.Fatalf("unexpected reply:\n%q\nwant\n%q", got, want)
	}
}

func TestReply_ActualError(t *testing.T) {
	r := NewResponder(&stubLatest{err: errors.New("db down")})

	if _, err := r.Reply(context.Background(), dto.TelegramMessage{Text: "/actual"}); err == nil {
		t.Fatalf("expected error when the summary cannot be built")
	}
}

func TestReply_Greeting(t *testing.T) {
	r := NewResponder(&stubLatest{})

	cases := []struct {
		name string
		from dto.TelegramUser
		text string
		want string
	}{
		{
			name: "username preferred",
			from: dto.TelegramUser{Username: "vasya", FirstName: "Вася", LastName: "Пупкин"},
			text: "привет",
			want: "@vasya! За слова ответишь?",
		},
		{
			name: "first and last name",
			from: dto.TelegramUser{FirstName: "Вася", LastName: "Пупкин"},
			text: "hi",
			want: "Вася Пупкин! За слова ответишь?",
		},
		{
			name: "first name only",
			from: dto.TelegramUser{FirstName: "Вася"},
			text: "hi",
			want: "Вася! За слова ответишь?",
		},
		{
			name: "anonymous",
			from: dto.TelegramUser{},
			text: "hi",
			want: "! За слова ответишь?",
		},
		{
			name: "empty text is not the command",
			from: dto.TelegramUser{Username: "vasya"},
			text: "",
			want: "@vasya! За слова ответишь?",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Reply(context.Background(), dto.TelegramMessage{From: tc.from, Text: tc.text})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

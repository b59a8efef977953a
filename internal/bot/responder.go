package bot

import (
	"context"
	"strings"
	"time"

	"github.com/benzak-dev/benzak-api/internal/domain/dto"
	"github.com/benzak-dev/benzak-api/internal/service"
)

const (
	actualCommand = "/actual"
	actualHeader  = "Актуальные цены:\n\n"
	closingLine   = "! За слова ответишь?"
)

// Responder composes the reply body for an inbound chat message. Two
// branches only: the /actual command produces the latest-price summary,
// anything else gets a personalized canned reply.
type Responder struct {
	latest service.LatestService
	now    func() time.Time
}

func NewResponder(latest service.LatestService) *Responder {
	return &Responder{latest: latest, now: time.Now}
}

func (r *Responder) Reply(ctx context.Context, msg dto.TelegramMessage) (string, error) {
	if msg.Text == actualCommand {
		summary, err := r.latest.ActualSummary(ctx, r.now().UTC())
		if err != nil {
			return "", err
		}
		return actualHeader + summary, nil
	}
	return greeting(msg.From), nil
}

func greeting(user dto.TelegramUser) string {
	var b strings.Builder
	switch {
	case user.Username != "":
		b.WriteString("@" + user.Username)
	case user.FirstName != "":
		b.WriteString(user.FirstName)
		if user.LastName != "" {
			b.WriteString(" " + user.LastName)
		}
	}
	b.WriteString(closingLine)
	return b.String()
}

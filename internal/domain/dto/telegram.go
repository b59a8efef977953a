package dto

import "fmt"

// TelegramUpdate is the inbound webhook payload. Only the message branch of
// the Bot API update is consumed; everything else is ignored.
type TelegramUpdate struct {
	Message *TelegramMessage `json:"message"`
}

// TelegramMessage carries the parts of a Bot API message the responder uses.
type TelegramMessage struct {
	MessageID int64        `json:"message_id"`
	Chat      TelegramChat `json:"chat"`
	From      TelegramUser `json:"from"`
	Text      string       `json:"text"`
}

type TelegramChat struct {
	ID int64 `json:"id"`
}

type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TelegramReply echoes the webhook processing outcome back to the caller.
// Status is the chat platform's HTTP status code verbatim (0 when the call
// never completed); Tg is the "ok" flag from the platform's response body.
type TelegramReply struct {
	Chat    int64  `json:"chat"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	Status  int    `json:"status"`
	Tg      bool   `json:"tg"`
	User    string `json:"user"`
}

// Label renders the sender identity string echoed in webhook responses.
func (u TelegramUser) Label() string {
	return fmt.Sprintf("id=%d,fn=%s, username=%s", u.ID, u.FirstName, u.Username)
}

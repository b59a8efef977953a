package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benzak-dev/benzak-api/internal/bot"
	"github.com/benzak-dev/benzak-api/internal/domain/dto"
	"github.com/benzak-dev/benzak-api/internal/logger"
)

// TelegramHandler serves the bot webhook. The endpoint trusts the payload
// shape (the platform is the only expected caller) but fails fast when the
// bot token is unconfigured or the payload carries no message.
type TelegramHandler struct {
	token     string
	responder *bot.Responder
	sender    bot.Sender
}

func NewTelegramHandler(token string, responder *bot.Responder, sender bot.Sender) *TelegramHandler {
	return &TelegramHandler{token: token, responder: responder, sender: sender}
}

// Webhook godoc
// @Summary      Telegram bot webhook
// @Description  Composes a reply for the inbound message ( /actual yields
// @Description  the latest-price summary) and delivers it via the Bot API.
// @Description  Delivery failure is reported in the body, never as a server
// @Description  error, so the platform does not re-deliver the update.
// @Tags         telegram
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TelegramUpdate  true  "Bot API update"
// @Success      200   {object}  dto.TelegramReply
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/telegram [post]
func (h *TelegramHandler) Webhook(c *gin.Context) {
	if h.token == "" {
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("invalid bot configuration", nil))
		return
	}

	var upd dto.TelegramUpdate
	if err := c.ShouldBindJSON(&upd); err != nil || upd.Message == nil {
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("invalid bot configuration", nil))
		return
	}
	msg := *upd.Message

	reply, err := h.responder.Reply(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compose reply", err))
		return
	}

	out := dto.TelegramReply{
		Chat:    msg.Chat.ID,
		Message: msg.Text,
		User:    msg.From.Label(),
	}

	res, err := h.sender.SendMessage(c.Request.Context(), msg.Chat.ID, reply, msg.MessageID)
	if err != nil {
		// Delivery failure is the platform's problem to observe, not ours
		// to escalate: the webhook stays 200 so the update is not retried.
		logger.L().Warn().Err(err).Int64("chat", msg.Chat.ID).Msg("telegram delivery failed")
		c.JSON(http.StatusOK, out)
		return
	}

	out.Ok = true
	out.Status = res.Status
	out.Tg = res.Ok
	c.JSON(http.StatusOK, out)
}

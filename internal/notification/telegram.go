package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/retry"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramChannel delivers messages to the user's Telegram chat.
type TelegramChannel struct {
	bot      telegramSender
	strategy retry.Strategy
}

func NewTelegramChannel(token string) (*TelegramChannel, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return newTelegramChannel(bot, retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}), nil
}

func newTelegramChannel(bot telegramSender, strategy retry.Strategy) *TelegramChannel {
	return &TelegramChannel{bot: bot, strategy: strategy}
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Send(ctx context.Context, user *domain.User, text string) (string, error) {
	if user == nil || user.TelegramChatID == nil {
		return "", domain.ErrNoRecipient
	}
	recipient := strconv.FormatInt(*user.TelegramChatID, 10)

	if err := ctx.Err(); err != nil {
		return recipient, err
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	var rejected error
	err := retry.DoContext(ctx, c.strategy, func() error {
		_, err := c.bot.Send(msg)
		if err != nil && !retryable(err) {
			rejected = err
			return nil
		}
		return err
	})
	if rejected != nil {
		err = rejected
	}
	if err != nil {
		return recipient, fmt.Errorf("telegram send: %w", err)
	}
	return recipient, nil
}

// retryable treats Bot API client errors as final, except rate limiting.
// Transport failures and server errors are worth another attempt.
func retryable(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}

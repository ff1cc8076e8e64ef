package notification

import (
	"context"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LogChannel writes messages to the application log. It is used when no bot
// token is configured.
type LogChannel struct {
	logger logger.Logger
}

func NewLogChannel(log logger.Logger) *LogChannel {
	return &LogChannel{logger: log}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Send(ctx context.Context, user *domain.User, text string) (string, error) {
	if user == nil {
		return "", domain.ErrNoRecipient
	}
	c.logger.LogAttrs(ctx, logger.InfoLevel, "notification",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
		logger.String("text", text),
	)
	return user.Email, nil
}

package insightcmd

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/internal/insights"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

const publishInsightMessageType = "sitecms.insights.publish"

// PublishInsightCommand flips one insight post to published.
type PublishInsightCommand struct {
	Slug        string     `json:"slug"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Type implements command.Message.
func (PublishInsightCommand) Type() string { return publishInsightMessageType }

// Validate ensures the command captures the required identifiers before
// reaching handlers.
func (m PublishInsightCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("sitecms.insights.publish.slug_required", "slug is required")
	}
	if m.PublishedAt != nil && m.PublishedAt.IsZero() {
		errs["published_at"] = validation.NewError("sitecms.insights.publish.published_at_invalid", "published_at must be a valid timestamp when provided")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishInsightHandler publishes posts via the insights service using the
// shared command handler foundation.
type PublishInsightHandler struct {
	inner *commands.Handler[PublishInsightCommand]
}

// NewPublishInsightHandler constructs a handler wired to the provided
// insights service.
func NewPublishInsightHandler(service insights.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishInsightCommand]) *PublishInsightHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PublishInsightCommand) error {
		_, err := service.Publish(ctx, msg.Slug, msg.PublishedAt)
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishInsightCommand]{
		commands.WithLogger[PublishInsightCommand](baseLogger),
		commands.WithOperation[PublishInsightCommand]("insights.publish"),
		commands.WithMessageFields(func(msg PublishInsightCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.Slug); trimmed != "" {
				fields["slug"] = trimmed
			}
			if msg.PublishedAt != nil && !msg.PublishedAt.IsZero() {
				fields["published_at"] = msg.PublishedAt
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishInsightHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishInsightCommand].Execute.
func (h *PublishInsightHandler) Execute(ctx context.Context, msg PublishInsightCommand) error {
	return h.inner.Execute(ctx, msg)
}

package pagecmd

import (
	"context"
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitecms/blocks"
	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/pages"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
)

const saveTranslationMessageType = "sitecms.pages.save_translation"

// SaveTranslationCommand carries one admin save of a page translation. The
// block payload travels as raw JSON and is strictly decoded before the write.
type SaveTranslationCommand struct {
	Slug           string          `json:"slug"`
	Locale         string          `json:"locale"`
	Title          string          `json:"title"`
	SEOTitle       *string         `json:"seo_title,omitempty"`
	SEODescription *string         `json:"seo_description,omitempty"`
	OGImage        *string         `json:"og_image,omitempty"`
	Blocks         json.RawMessage `json:"blocks"`
	Status         domain.Status   `json:"status"`
	UpdatedBy      *uuid.UUID      `json:"updated_by,omitempty"`
}

// Type implements command.Message.
func (SaveTranslationCommand) Type() string { return saveTranslationMessageType }

// Validate ensures the command captures the required identifiers before
// reaching handlers.
func (m SaveTranslationCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("sitecms.pages.save.slug_required", "slug is required")
	}
	if strings.TrimSpace(m.Locale) == "" {
		errs["locale"] = validation.NewError("sitecms.pages.save.locale_required", "locale is required")
	}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("sitecms.pages.save.title_required", "title is required")
	}
	if len(m.Blocks) == 0 {
		errs["blocks"] = validation.NewError("sitecms.pages.save.blocks_required", "blocks payload is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveTranslationHandler persists page translations via the page service
// using the shared command handler foundation.
type SaveTranslationHandler struct {
	inner *commands.Handler[SaveTranslationCommand]
}

// NewSaveTranslationHandler constructs a handler wired to the provided page
// service.
func NewSaveTranslationHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SaveTranslationCommand]) *SaveTranslationHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SaveTranslationCommand) error {
		if err := blocks.ValidateDocument(msg.Blocks); err != nil {
			return err
		}
		list, err := blocks.DecodeBlocks(msg.Blocks)
		if err != nil {
			return err
		}
		_, err = service.SaveTranslation(ctx, pages.SaveTranslationRequest{
			Slug:           msg.Slug,
			Locale:         msg.Locale,
			Title:          msg.Title,
			SEOTitle:       msg.SEOTitle,
			SEODescription: msg.SEODescription,
			OGImage:        msg.OGImage,
			Blocks:         list,
			Status:         msg.Status,
			UpdatedBy:      msg.UpdatedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SaveTranslationCommand]{
		commands.WithLogger[SaveTranslationCommand](baseLogger),
		commands.WithOperation[SaveTranslationCommand]("pages.save_translation"),
		commands.WithMessageFields(func(msg SaveTranslationCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.Slug); trimmed != "" {
				fields["slug"] = trimmed
			}
			if trimmed := strings.TrimSpace(msg.Locale); trimmed != "" {
				fields["locale"] = trimmed
			}
			if msg.Status != "" {
				fields["status"] = string(msg.Status)
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveTranslationHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveTranslationCommand].Execute.
func (h *SaveTranslationHandler) Execute(ctx context.Context, msg SaveTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}

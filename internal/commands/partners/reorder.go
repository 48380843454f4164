package partnercmd

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitecms/internal/commands"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/internal/partners"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
)

const reorderPartnersMessageType = "sitecms.partners.reorder"

// ReorderPartnersCommand carries a full set of new partner positions.
type ReorderPartnersCommand struct {
	Updates []partners.SortOrderUpdate `json:"updates"`
}

// Type implements command.Message.
func (ReorderPartnersCommand) Type() string { return reorderPartnersMessageType }

// Validate ensures every update names a partner before reaching handlers.
func (m ReorderPartnersCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Updates) == 0 {
		errs["updates"] = validation.NewError("sitecms.partners.reorder.updates_required", "at least one update is required")
	}
	seen := map[uuid.UUID]bool{}
	for i, update := range m.Updates {
		if update.ID == uuid.Nil {
			errs[fmt.Sprintf("updates.%d.id", i)] = validation.NewError("sitecms.partners.reorder.id_required", "partner id is required")
			continue
		}
		if seen[update.ID] {
			errs[fmt.Sprintf("updates.%d.id", i)] = validation.NewError("sitecms.partners.reorder.id_duplicate", "partner id appears more than once")
		}
		seen[update.ID] = true
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReorderPartnersHandler applies partner orderings via the partner service
// using the shared command handler foundation.
type ReorderPartnersHandler struct {
	inner *commands.Handler[ReorderPartnersCommand]
}

// NewReorderPartnersHandler constructs a handler wired to the provided
// partner service.
func NewReorderPartnersHandler(service partners.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReorderPartnersCommand]) *ReorderPartnersHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ReorderPartnersCommand) error {
		return service.Reorder(ctx, msg.Updates)
	}

	handlerOpts := []commands.HandlerOption[ReorderPartnersCommand]{
		commands.WithLogger[ReorderPartnersCommand](baseLogger),
		commands.WithOperation[ReorderPartnersCommand]("partners.reorder"),
		commands.WithMessageFields(func(msg ReorderPartnersCommand) map[string]any {
			if len(msg.Updates) == 0 {
				return nil
			}
			return map[string]any{"count": len(msg.Updates)}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReorderPartnersHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReorderPartnersCommand].Execute.
func (h *ReorderPartnersHandler) Execute(ctx context.Context, msg ReorderPartnersCommand) error {
	return h.inner.Execute(ctx, msg)
}

package events

import (
	"context"
	"time"

	appctx "imaut/internal/core/context"
	"imaut/internal/core/entity"
	"imaut/internal/domain"
)

// Bind registers after-hooks on hooks that publish created, updated and deleted events.
// project converts the entity into the event payload.
func Bind[T entity.Identifiable, R any](hooks *domain.HookRegistry[T], pub Publisher, resource string, project func(T) R) {
	publish := func(action string, withData bool) domain.Hook[T] {
		return func(ctx context.Context, e T) error {
			ev := Event{
				Resource:   resource,
				Action:     action,
				ID:         e.GetID(),
				RequestID:  appctx.GetRequestID(ctx),
				OccurredAt: time.Now().UTC(),
			}
			if withData {
				ev.Data = project(e)
			}
			return pub.Publish(ctx, ev)
		}
	}

	hooks.OnAfterCreate(publish(ActionCreated, true))
	hooks.OnAfterUpdate(publish(ActionUpdated, true))
	hooks.OnAfterDelete(publish(ActionDeleted, false))
}

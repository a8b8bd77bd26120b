package broadcast

import (
	"context"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/events"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

// Announcer manages the single global announcement slot. A broadcast writes
// the slot and rides the medium's change notification, so every watcher in the
// same storage scope sees the update; there is no acknowledgment or
// read-receipt tracking. Announcements additionally go out on the event bus
// for consumers outside the storage scope.
type Announcer struct {
	store     *store.Store
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewAnnouncer(s *store.Store, publisher events.EventPublisher, logger *slog.Logger) *Announcer {
	return &Announcer{
		store:     s,
		publisher: publisher,
		logger:    logger,
	}
}

func (a *Announcer) Broadcast(ctx context.Context, message, postedBy string) error {
	if err := a.store.Medium().Set(ctx, store.KeyAnnouncement, message); err != nil {
		return err
	}
	a.logger.Info("Announcement broadcast", "posted_by", postedBy)

	event := events.NewEvent(events.EventAnnouncementPosted, events.AnnouncementPostedEvent{
		Message:  message,
		PostedBy: postedBy,
	})
	if err := a.publisher.Publish(ctx, event); err != nil {
		// The slot write already landed; event delivery is best effort.
		a.logger.Warn("Announcement event not published", "error", err)
	}
	return nil
}

func (a *Announcer) Clear(ctx context.Context, clearedBy string) error {
	if err := a.store.Medium().Delete(ctx, store.KeyAnnouncement); err != nil {
		return err
	}
	a.logger.Info("Announcement cleared", "cleared_by", clearedBy)

	event := events.NewEvent(events.EventAnnouncementCleared, events.AnnouncementClearedEvent{
		ClearedBy: clearedBy,
	})
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.Warn("Announcement event not published", "error", err)
	}
	return nil
}

// Current returns the announcement slot, reporting absence distinctly from an
// empty string.
func (a *Announcer) Current(ctx context.Context) (string, bool) {
	msg, ok, err := a.store.Medium().Get(ctx, store.KeyAnnouncement)
	if err != nil {
		a.logger.Warn("Announcement read failed", "error", err)
		return "", false
	}
	return msg, ok
}

// Watch emits the announcement value after every change to its slot. The
// caller polls Current once at startup; this channel covers everything after.
func (a *Announcer) Watch(ctx context.Context) (<-chan string, error) {
	changes, err := a.store.Medium().Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan string, 4)
	go func() {
		defer close(out)
		for key := range changes {
			if key != store.KeyAnnouncement {
				continue
			}
			msg, _ := a.Current(ctx)
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

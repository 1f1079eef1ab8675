package sections

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"portfolio-admin/internal/domain/contact"
	"portfolio-admin/internal/panel/manager"
	"portfolio-admin/internal/panel/recordstore"

	"go.uber.org/zap"
)

// Inbox lists contact submissions and moves them through new, read and
// replied. It offers no way back to new.
type Inbox struct {
	client  *recordstore.Client
	notify  manager.Notifier
	confirm manager.Confirmer
	log     *zap.Logger

	mu    sync.Mutex
	items []contact.Submission
}

func NewInbox(client *recordstore.Client, notify manager.Notifier, confirm manager.Confirmer, log *zap.Logger) *Inbox {
	return &Inbox{client: client, notify: notify, confirm: confirm, log: log, items: []contact.Submission{}}
}

func (b *Inbox) LoadAll(ctx context.Context) error {
	var items []contact.Submission
	if err := b.client.Send(ctx, "fetch", http.MethodGet, "contact-submissions", nil, nil, &items); err != nil {
		b.notify.Error("Failed to fetch contact submissions")
		return err
	}
	if items == nil {
		items = []contact.Submission{}
	}
	b.mu.Lock()
	b.items = items
	b.mu.Unlock()
	return nil
}

func (b *Inbox) Items() []contact.Submission {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]contact.Submission, len(b.items))
	copy(out, b.items)
	return out
}

// Unread counts submissions still marked new.
func (b *Inbox) Unread() int {
	n := 0
	for _, s := range b.Items() {
		if s.Status == contact.StatusNew {
			n++
		}
	}
	return n
}

func (b *Inbox) MarkRead(ctx context.Context, id string) error {
	return b.setStatus(ctx, id, contact.StatusRead)
}

func (b *Inbox) MarkReplied(ctx context.Context, id string) error {
	return b.setStatus(ctx, id, contact.StatusReplied)
}

func (b *Inbox) setStatus(ctx context.Context, id string, status contact.Status) error {
	body := map[string]any{"id": id, "status": status}
	if err := b.client.Send(ctx, "update", http.MethodPut, "contact-submissions", nil, body, nil); err != nil {
		b.log.Warn("status update failed", zap.String("id", id), zap.Error(err))
		b.notify.Error("Failed to update status")
		return err
	}
	_ = b.LoadAll(ctx)
	b.notify.Success("Status updated successfully")
	return nil
}

// Delete removes a submission after confirmation. A no is not an error.
func (b *Inbox) Delete(ctx context.Context, id string) error {
	if !b.confirm.Confirm("Are you sure you want to delete this submission?") {
		return nil
	}
	err := b.client.Send(ctx, "delete", http.MethodDelete, "contact-submissions", url.Values{"id": {id}}, nil, nil)
	if err != nil {
		b.notify.Error("Failed to delete submission")
		return err
	}
	_ = b.LoadAll(ctx)
	b.notify.Success("Submission deleted successfully")
	return nil
}

func (b *Inbox) Snapshot() any { return b.Items() }

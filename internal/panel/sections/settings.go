package sections

import (
	"context"
	"net/http"
	"sync"

	"portfolio-admin/internal/domain/settings"
	"portfolio-admin/internal/panel/manager"
	"portfolio-admin/internal/panel/recordstore"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Settings edits site settings in place. Changes stay local until SaveAll.
type Settings struct {
	client *recordstore.Client
	notify manager.Notifier
	log    *zap.Logger

	mu    sync.Mutex
	items []settings.Setting
}

func NewSettings(client *recordstore.Client, notify manager.Notifier, log *zap.Logger) *Settings {
	return &Settings{client: client, notify: notify, log: log, items: []settings.Setting{}}
}

func (s *Settings) LoadAll(ctx context.Context) error {
	var items []settings.Setting
	if err := s.client.Send(ctx, "fetch", http.MethodGet, "site-settings", nil, nil, &items); err != nil {
		s.notify.Error("Failed to fetch settings")
		return err
	}
	if items == nil {
		items = []settings.Setting{}
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Settings) Items() []settings.Setting {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]settings.Setting, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Settings) Groups() []settings.Group {
	return settings.GroupByKey(s.Items())
}

// Set changes a loaded setting locally. The value is checked against the
// setting's type.
func (s *Settings) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Key != key {
			continue
		}
		vt := s.items[i].ValueType
		if vt == "" {
			vt = settings.InferValueType(key)
		}
		if err := vt.Check(value); err != nil {
			return err
		}
		s.items[i].Value = value
		return nil
	}
	return manager.ErrNotFound
}

// SaveAll sends every setting concurrently and reports the first failure.
func (s *Settings) SaveAll(ctx context.Context) error {
	items := s.Items()

	g, gctx := errgroup.WithContext(ctx)
	for _, it := range items {
		body := map[string]any{
			"key":         it.Key,
			"value":       it.Value,
			"description": it.Description,
			"value_type":  it.ValueType,
		}
		g.Go(func() error {
			return s.client.Send(gctx, "save", http.MethodPut, "site-settings", nil, body, nil)
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Warn("save settings failed", zap.Error(err))
		s.notify.Error("Failed to save settings")
		return err
	}
	s.notify.Success("All settings saved successfully")
	return nil
}

// Create adds a new setting and reloads.
func (s *Settings) Create(ctx context.Context, key, value, description string) error {
	body := map[string]any{"key": key, "value": value, "description": description}
	if err := s.client.Send(ctx, "create", http.MethodPost, "site-settings", nil, body, nil); err != nil {
		s.notify.Error("Failed to create setting")
		return err
	}
	return s.LoadAll(ctx)
}

func (s *Settings) Snapshot() any { return s.Groups() }

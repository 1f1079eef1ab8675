package sections

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"portfolio-admin/internal/domain/portfolio"
	"portfolio-admin/internal/panel/manager"
	"portfolio-admin/internal/panel/recordstore"
)

// Profile edits the single owner profile.
type Profile struct {
	res    *recordstore.Resource[portfolio.Profile]
	client *recordstore.Client
	notify manager.Notifier

	mu      sync.Mutex
	current portfolio.Profile
}

func NewProfile(client *recordstore.Client, notify manager.Notifier) *Profile {
	return &Profile{
		res:    recordstore.NewResource[portfolio.Profile](client, "profile"),
		client: client,
		notify: notify,
	}
}

func (p *Profile) LoadAll(ctx context.Context) error {
	cur, err := p.res.Get(ctx)
	if err != nil {
		p.notify.Error("Failed to fetch profile data")
		return err
	}
	p.mu.Lock()
	p.current = cur
	p.mu.Unlock()
	return nil
}

func (p *Profile) Current() portfolio.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Save merges fields, keyed by JSON name, over the loaded profile and
// writes it.
func (p *Profile) Save(ctx context.Context, fields map[string]string) error {
	body, err := p.merged(fields)
	if err != nil {
		return err
	}
	if body["name"] == "" || body["name"] == nil {
		verr := &manager.ValidationError{Label: "profile", Fields: []manager.FieldError{{Field: "name", Message: "is required"}}}
		p.notify.Error(verr.Error())
		return verr
	}

	saved, err := p.res.Put(ctx, body)
	if err != nil {
		p.notify.Error("Failed to update profile")
		return err
	}
	p.mu.Lock()
	p.current = saved
	p.mu.Unlock()
	p.notify.Success("Profile updated successfully")
	return nil
}

func (p *Profile) merged(fields map[string]string) (map[string]any, error) {
	raw, err := json.Marshal(p.Current())
	if err != nil {
		return nil, err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	for _, k := range []string{"id", "created_at", "updated_at"} {
		delete(body, k)
	}
	for k, v := range fields {
		body[k] = v
	}
	return body, nil
}

// UploadAvatar stores an image and saves its URL as avatar_url.
func (p *Profile) UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error) {
	return p.upload(ctx, "profile-images", "avatar_url", filename, r)
}

// UploadResume stores a document and saves its URL as resume_url.
func (p *Profile) UploadResume(ctx context.Context, filename string, r io.Reader) (string, error) {
	return p.upload(ctx, "general-assets", "resume_url", filename, r)
}

func (p *Profile) upload(ctx context.Context, bucket, field, filename string, r io.Reader) (string, error) {
	url, err := p.client.Upload(ctx, bucket, filename, r)
	if err != nil {
		p.notify.Error("Failed to upload file")
		return "", err
	}
	p.notify.Success("File uploaded successfully")
	if err := p.Save(ctx, map[string]string{field: url}); err != nil {
		return url, err
	}
	return url, nil
}

func (p *Profile) Snapshot() any { return p.Current() }

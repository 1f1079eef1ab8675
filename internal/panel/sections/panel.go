// Package sections assembles the panel: one section per content type plus
// the dashboard, settings, inbox and profile.
package sections

import (
	"context"
	"errors"
	"io"

	"portfolio-admin/internal/domain/portfolio"
	"portfolio-admin/internal/panel/manager"
	"portfolio-admin/internal/panel/recordstore"
	"portfolio-admin/internal/panel/shell"
	"portfolio-admin/internal/panel/summary"

	"go.uber.org/zap"
)

// Editable is the type-independent surface of a manager.Manager.
type Editable interface {
	shell.Section
	Config() manager.Config
	State() manager.State
	BeginCreate() (bool, error)
	BeginEditID(id string) (bool, error)
	UpdateDraftField(name, value string) error
	Save(ctx context.Context) error
	Cancel() error
	Delete(ctx context.Context, id string) error
}

type Panel struct {
	Shell    *shell.Shell
	Summary  *summary.View
	Profile  *Profile
	Settings *Settings
	Inbox    *Inbox

	Skills         *manager.Manager[portfolio.Skill]
	Technologies   *manager.Manager[portfolio.Technology]
	Certifications *manager.Manager[portfolio.Certification]
	Products       *manager.Manager[portfolio.Product]
	Projects       *manager.Manager[portfolio.Project]
	Experience     *manager.Manager[portfolio.Experience]
	Education      *manager.Manager[portfolio.Education]

	client   *recordstore.Client
	notify   manager.Notifier
	editable map[string]Editable
}

// ErrNoImage is returned for sections whose records carry no image.
var ErrNoImage = errors.New("section has no image field")

// imageTargets maps a section to its upload bucket and the draft field
// that takes the uploaded URL.
var imageTargets = map[string]struct{ bucket, field string }{
	"products": {bucket: "product-images", field: "image_url"},
}

func newManager[T manager.Record](c *recordstore.Client, cfg manager.Config, n manager.Notifier, cf manager.Confirmer, log *zap.Logger) *manager.Manager[T] {
	return manager.New[T](cfg, recordstore.NewResource[T](c, cfg.Resource), n, cf, manager.WithLogger(log))
}

// New wires every section to client, which must carry the session token.
func New(client *recordstore.Client, notify manager.Notifier, confirm manager.Confirmer, log *zap.Logger) *Panel {
	p := &Panel{
		client: client,
		notify: notify,

		Profile:  NewProfile(client, notify),
		Settings: NewSettings(client, notify, log),
		Inbox:    NewInbox(client, notify, confirm, log),

		Skills:         newManager[portfolio.Skill](client, SkillsConfig, notify, confirm, log),
		Technologies:   newManager[portfolio.Technology](client, TechnologiesConfig, notify, confirm, log),
		Certifications: newManager[portfolio.Certification](client, CertificationsConfig, notify, confirm, log),
		Products:       newManager[portfolio.Product](client, ProductsConfig, notify, confirm, log),
		Projects:       newManager[portfolio.Project](client, ProjectsConfig, notify, confirm, log),
		Experience:     newManager[portfolio.Experience](client, ExperienceConfig, notify, confirm, log),
		Education:      newManager[portfolio.Education](client, EducationConfig, notify, confirm, log),
	}

	p.Summary = summary.New(summary.Sources{
		Skills:       recordstore.NewResource[portfolio.Skill](client, "skills"),
		Technologies: recordstore.NewResource[portfolio.Technology](client, "technologies"),
		Products:     recordstore.NewResource[portfolio.Product](client, "products"),
		Experience:   recordstore.NewResource[portfolio.Experience](client, "experience"),
		Analytics:    summary.RemoteAnalytics(client),
	}, summary.WithLogger(log))

	p.editable = map[string]Editable{
		"skills":         p.Skills,
		"technologies":   p.Technologies,
		"certifications": p.Certifications,
		"products":       p.Products,
		"projects":       p.Projects,
		"experience":     p.Experience,
		"education":      p.Education,
	}

	p.Shell = shell.New(
		shell.Entry{ID: "dashboard", Title: "Dashboard", Section: p.Summary},
		shell.Entry{ID: "profile", Title: "Profile", Section: p.Profile},
		shell.Entry{ID: "skills", Title: "Skills", Section: p.Skills},
		shell.Entry{ID: "technologies", Title: "Technologies", Section: p.Technologies},
		shell.Entry{ID: "certifications", Title: "Certifications", Section: p.Certifications},
		shell.Entry{ID: "products", Title: "Products", Section: p.Products},
		shell.Entry{ID: "projects", Title: "Projects", Section: p.Projects},
		shell.Entry{ID: "experience", Title: "Experience", Section: p.Experience},
		shell.Entry{ID: "education", Title: "Education", Section: p.Education},
		shell.Entry{ID: "contact", Title: "Contact Submissions", Section: p.Inbox},
		shell.Entry{ID: "settings", Title: "Site Settings", Section: p.Settings},
	)
	return p
}

// Editable returns the manager behind a content section id.
func (p *Panel) Editable(id string) (Editable, bool) {
	e, ok := p.editable[id]
	return e, ok
}

// UploadImage stores an image for the draft open in section and points
// the draft's image field at it. The draft still has to be saved.
func (p *Panel) UploadImage(ctx context.Context, section, filename string, r io.Reader) (string, error) {
	target, ok := imageTargets[section]
	if !ok {
		return "", ErrNoImage
	}
	e := p.editable[section]
	if e.State() != manager.Drafting {
		return "", manager.ErrInvalidState
	}

	url, err := p.client.Upload(ctx, target.bucket, filename, r)
	if err != nil {
		p.notify.Error("Failed to upload image")
		return "", err
	}
	if err := e.UpdateDraftField(target.field, url); err != nil {
		return url, err
	}
	p.notify.Success("Image uploaded successfully")
	return url, nil
}

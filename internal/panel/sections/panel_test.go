package sections_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"portfolio-admin/internal/domain/contact"
	"portfolio-admin/internal/domain/settings"
	"portfolio-admin/internal/panel/manager"
	"portfolio-admin/internal/panel/recordstore"
	"portfolio-admin/internal/panel/sections"
	"portfolio-admin/internal/panel/summary"
	"portfolio-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

type notes struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *notes) Success(msg string) { n.mu.Lock(); n.successes = append(n.successes, msg); n.mu.Unlock() }
func (n *notes) Error(msg string)   { n.mu.Lock(); n.errors = append(n.errors, msg); n.mu.Unlock() }

type yes struct{}

func (yes) Confirm(string) bool { return true }

func newPanel(t *testing.T) (*sections.Panel, *testutil.Server, *notes) {
	t.Helper()
	ts := testutil.NewServer(t)
	client := recordstore.New(ts.URL, testutil.APIKey).
		Authorized(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: ts.Token}))
	n := &notes{}
	return sections.New(client, n, yes{}, zap.NewNop()), ts, n
}

func TestPanel_EditableSections(t *testing.T) {
	p, _, n := newPanel(t)
	ctx := context.Background()

	skills, ok := p.Editable("skills")
	require.True(t, ok)

	_, err := skills.BeginCreate()
	require.NoError(t, err)
	require.NoError(t, skills.UpdateDraftField("name", "Go"))
	require.NoError(t, skills.UpdateDraftField("level", "120"))

	var verr *manager.ValidationError
	require.ErrorAs(t, skills.Save(ctx), &verr)
	assert.Equal(t, "level", verr.Fields[0].Field)

	require.NoError(t, skills.UpdateDraftField("level", "90"))
	require.NoError(t, skills.Save(ctx))
	require.Len(t, p.Skills.Items(), 1)

	_, err = p.Experience.BeginCreate()
	require.NoError(t, err)
	require.NoError(t, p.Experience.UpdateDraftField("title", "Engineer"))
	require.NoError(t, p.Experience.UpdateDraftField("company", "Acme"))
	require.NoError(t, p.Experience.UpdateDraftField("achievements", "Led team\nShipped v2"))
	require.NoError(t, p.Experience.Save(ctx))
	require.Len(t, p.Experience.Items(), 1)
	assert.Equal(t, []string{"Led team", "Shipped v2"}, p.Experience.Items()[0].Achievements)

	require.NoError(t, p.Skills.Delete(ctx, p.Skills.Items()[0].ID))
	assert.Empty(t, p.Skills.Items())
	assert.Contains(t, n.successes, "Skill deleted successfully")

	_, ok = p.Editable("settings")
	assert.False(t, ok)
}

func TestPanel_DashboardCounts(t *testing.T) {
	p, ts, _ := newPanel(t)
	ctx := context.Background()

	for _, name := range []string{"Go", "SQL"} {
		_, err := p.Skills.BeginCreate()
		require.NoError(t, err)
		require.NoError(t, p.Skills.UpdateDraftField("name", name))
		require.NoError(t, p.Skills.UpdateDraftField("level", "50"))
		require.NoError(t, p.Skills.Save(ctx))
	}
	require.NoError(t, ts.DB.Create(&contact.Submission{Name: "a", Email: "a@example.com", Message: "m"}).Error)

	entry, err := p.Shell.Open(ctx, "unknown-section")
	require.NoError(t, err)
	assert.Equal(t, "dashboard", entry.ID)

	dash := entry.Section.Snapshot().(summary.Dashboard)
	assert.Equal(t, 2, dash.Counts.Skills)
	assert.Zero(t, dash.Counts.Products)
	assert.Empty(t, dash.Counts.Failed)
	require.NotNil(t, dash.Analytics)
	assert.EqualValues(t, 1, dash.Analytics.ContactForms.Total)
}

func TestSettings_SaveAll(t *testing.T) {
	p, ts, n := newPanel(t)
	ctx := context.Background()

	require.NoError(t, ts.DB.Create(&settings.Setting{Key: "site_title", Value: "Old"}).Error)
	require.NoError(t, ts.DB.Create(&settings.Setting{Key: "resume_download_enabled", Value: "true", ValueType: settings.Boolean}).Error)

	require.NoError(t, p.Settings.LoadAll(ctx))
	assert.ErrorIs(t, p.Settings.Set("resume_download_enabled", "maybe"), settings.ErrInvalidValue)
	assert.ErrorIs(t, p.Settings.Set("missing", "x"), manager.ErrNotFound)
	require.NoError(t, p.Settings.Set("site_title", "New"))
	require.NoError(t, p.Settings.Set("resume_download_enabled", "false"))
	require.NoError(t, p.Settings.SaveAll(ctx))
	assert.Contains(t, n.successes, "All settings saved successfully")

	var stored settings.Setting
	require.NoError(t, ts.DB.Where("key = ?", "site_title").First(&stored).Error)
	assert.Equal(t, "New", stored.Value)

	groups := p.Settings.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "General Settings", groups[0].Title)
	assert.Equal(t, "Download Settings", groups[1].Title)
}

func TestInbox_Triage(t *testing.T) {
	p, ts, n := newPanel(t)
	ctx := context.Background()

	sub := contact.Submission{Name: "a", Email: "a@example.com", Message: "hello"}
	require.NoError(t, ts.DB.Create(&sub).Error)

	require.NoError(t, p.Inbox.LoadAll(ctx))
	assert.Equal(t, 1, p.Inbox.Unread())

	require.Error(t, p.Inbox.MarkReplied(ctx, sub.ID))
	assert.Contains(t, n.errors, "Failed to update status")

	require.NoError(t, p.Inbox.MarkRead(ctx, sub.ID))
	assert.Zero(t, p.Inbox.Unread())
	require.NoError(t, p.Inbox.MarkReplied(ctx, sub.ID))
	assert.Equal(t, contact.StatusReplied, p.Inbox.Items()[0].Status)

	require.NoError(t, p.Inbox.Delete(ctx, sub.ID))
	assert.Empty(t, p.Inbox.Items())
}

func TestProfile_UploadAvatar(t *testing.T) {
	p, _, _ := newPanel(t)
	ctx := context.Background()

	require.NoError(t, p.Profile.LoadAll(ctx))

	var verr *manager.ValidationError
	require.ErrorAs(t, p.Profile.Save(ctx, map[string]string{"title": "Engineer"}), &verr)

	require.NoError(t, p.Profile.Save(ctx, map[string]string{"name": "Ada", "title": "Engineer"}))

	url, err := p.Profile.UploadAvatar(ctx, "me.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/profile-images/")

	require.NoError(t, p.Profile.LoadAll(ctx))
	cur := p.Profile.Current()
	assert.Equal(t, url, cur.AvatarURL)
	assert.Equal(t, "Engineer", cur.Title)
}

func TestPanel_UploadProductImage(t *testing.T) {
	p, _, n := newPanel(t)
	ctx := context.Background()

	_, err := p.UploadImage(ctx, "products", "shot.png", strings.NewReader("img"))
	require.ErrorIs(t, err, manager.ErrInvalidState)

	_, err = p.UploadImage(ctx, "skills", "shot.png", strings.NewReader("img"))
	require.ErrorIs(t, err, sections.ErrNoImage)

	_, err = p.Products.BeginCreate()
	require.NoError(t, err)
	require.NoError(t, p.Products.UpdateDraftField("title", "Notes"))
	require.NoError(t, p.Products.UpdateDraftField("description", "A notes app"))

	url, err := p.UploadImage(ctx, "products", "shot.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/product-images/shot-")

	d, ok := p.Products.Draft()
	require.True(t, ok)
	assert.Equal(t, url, d.Values["image_url"])

	require.NoError(t, p.Products.Save(ctx))
	require.Len(t, p.Products.Items(), 1)
	assert.Equal(t, url, p.Products.Items()[0].ImageURL)
	assert.Contains(t, n.successes, "Image uploaded successfully")
}

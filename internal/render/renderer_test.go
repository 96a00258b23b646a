package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/models"
)

func TestTemplateFor(t *testing.T) {
	tests := []struct {
		item models.Item
		want string
	}{
		{models.Item{Type: models.KindAvatar}, TemplateAvatar},
		{models.Item{Type: models.KindSkill}, TemplateSkill},
		{models.Item{Type: models.KindSkills}, TemplateSkills},
		{models.Item{Type: models.KindProject}, TemplateProject},
		{models.Item{Type: models.KindContact, Theme: "github"}, TemplateSocial},
		{models.Item{Type: models.KindContact}, TemplateEmail},
		{models.Item{Type: models.KindContactForm}, TemplateContactForm},
		{models.Item{Type: models.KindCertifications}, TemplateCertifications},
		{models.Item{Type: models.KindTimeline}, TemplateTimeline},
		{models.Item{Type: models.KindLocation}, TemplateLocation},
		{models.Item{Type: models.KindMap}, TemplateMap},
		{models.Item{Type: "hologram"}, TemplateUnknown},
	}
	for _, tt := range tests {
		t.Run(string(tt.item.Type)+"/"+tt.item.Theme, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateFor(&tt.item))
		})
	}
}

func TestEveryIconHasAPath(t *testing.T) {
	for _, icon := range models.Icons() {
		assert.NotEmpty(t, iconPath(icon), icon.String())
	}
	assert.Empty(t, iconSVG(models.IconNone, "w-4"))
}

func TestNewCardState(t *testing.T) {
	project := models.Item{ID: "3", Type: models.KindProject, Images: []string{"a", "b"}}
	card := NewCard(&project)
	require.NotNil(t, card.Carousel)
	assert.Equal(t, 2, card.Carousel.Len())
	assert.Nil(t, card.Form)

	form := models.Item{ID: "12", Type: models.KindContactForm, Email: "me@example.com"}
	card = NewCard(&form)
	require.NotNil(t, card.Form)
	assert.Equal(t, "me@example.com", card.Form.Recipient)
	assert.Nil(t, card.Carousel)

	social := models.Item{ID: "8", Type: models.KindContact, Theme: "github"}
	card = NewCard(&social)
	assert.Equal(t, ThemeFor("github"), card.Theme)
}

func sampleItems() []models.Item {
	return []models.Item{
		{ID: "1", Type: models.KindAvatar, Title: "Jane Doe", Role: "Engineer", Icon: models.IconLocation, Span: "col-span-2 row-span-2"},
		{ID: "3", Type: models.KindProject, Title: "Shop", Images: []string{"a.png", "b.png", "c.png"}, LiveURL: "https://shop.example.com"},
		{ID: "8", Type: models.KindContact, Theme: "github", Title: "GitHub", Icon: models.IconGitHub, Followers: "10+"},
		{ID: "9", Type: models.KindContact, Title: "Email", Email: "me@example.com", Link: "mailto:me@example.com"},
		{ID: "12", Type: models.KindContactForm, Title: "Get in touch", Email: "me@example.com"},
		{ID: "20", Type: models.KindMap, Title: "Where I am", EmbedURL: "https://maps.example.com/embed", Link: "https://maps.example.com"},
	}
}

func TestRenderPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	items := sampleItems()
	opts := layout.DefaultOptions()
	boxes := make([]layout.Box, 0, len(items))
	for _, it := range items {
		boxes = append(boxes, layout.Box{ID: it.ID, Span: layout.ParseSpan(it.Span)})
	}
	packing := layout.Pack(opts, 1280, boxes)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageData{
		Title:      "Portfolio",
		Cards:      BuildCards(items, &packing),
		GridHeight: packing.Height,
		Settings:   SettingsFrom(opts),
		CVPath:     "/cv.pdf",
	}))
	html := buf.String()

	assert.Equal(t, len(items), strings.Count(html, `class="item"`))
	for _, it := range items {
		assert.Contains(t, html, `data-id="`+it.ID+`"`)
	}
	for _, marker := range []string{"carousel-nav", "carousel-dots", "action-buttons", "drag-handle", "map-overlay", "no-drag", "1/3"} {
		assert.Contains(t, html, marker)
	}
	assert.Contains(t, html, `action="/contact"`)
	assert.Contains(t, html, `data-drag-release-ms="400"`)
	assert.Contains(t, html, "/static/js/grid.js")
}

func TestRenderUnknownCardIsEmptyShell(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	items := []models.Item{{ID: "99", Type: "hologram", Title: "Should not appear"}}
	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageData{Title: "Portfolio", Cards: BuildCards(items, nil)}))
	assert.Contains(t, buf.String(), `data-id="99"`)
	assert.NotContains(t, buf.String(), "Should not appear")
}

func TestRenderLinksAreNotDragSources(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	items := sampleItems()
	items[1].SourceURL = "https://github.com/example/shop"
	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageData{Title: "Portfolio", Cards: BuildCards(items, nil), CVPath: "/cv.pdf"}))
	html := buf.String()

	anchors := regexp.MustCompile(`<a [^>]*>`).FindAllString(html, -1)
	require.NotEmpty(t, anchors)
	for _, a := range anchors {
		if strings.Contains(a, "social-card") {
			continue
		}
		assert.Contains(t, a, "no-drag", a)
	}
	assert.Contains(t, html, "cv-download")
	assert.Contains(t, html, "https://github.com/example/shop")
}

func TestRenderLoading(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderLoading(&buf, LoadingData{Title: "Portfolio", RefreshSeconds: 2}))
	assert.Contains(t, buf.String(), `content="2"`)
	assert.Contains(t, buf.String(), "Loading portfolio")
}

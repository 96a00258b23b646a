// Package render turns portfolio items into the HTML cards of the grid.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"


	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names, one per card variant
const (
	TemplateAvatar         = "card-avatar"
	TemplateSkill          = "card-skill"
	TemplateSkills         = "card-skills"
	TemplateProject        = "card-project"
	TemplateSocial         = "card-social"
	TemplateEmail          = "card-email"
	TemplateContactForm    = "card-contact-form"
	TemplateCertifications = "card-certifications"
	TemplateTimeline       = "card-timeline"
	TemplateLocation       = "card-location"
	TemplateMap            = "card-map"
	TemplateUnknown        = "card-unknown"
)

// TemplateFor selects the card template for an item from its type. Contact
// items with a theme are social profile cards; without one they are plain
// email cards.
func TemplateFor(item *models.Item) string {
	switch item.Type {
	case models.KindAvatar:
		return TemplateAvatar
	case models.KindSkill:
		return TemplateSkill
	case models.KindSkills:
		return TemplateSkills
	case models.KindProject:
		return TemplateProject
	case models.KindContact:
		if item.Theme != "" {
			return TemplateSocial
		}
		return TemplateEmail
	case models.KindContactForm:
		return TemplateContactForm
	case models.KindCertifications:
		return TemplateCertifications
	case models.KindTimeline:
		return TemplateTimeline
	case models.KindLocation:
		return TemplateLocation
	case models.KindMap:
		return TemplateMap
	}
	return TemplateUnknown
}

// Card is one item prepared for rendering. Carousel and Form are only set
// for the variants that need them.
type Card struct {
	Item     *models.Item
	Template string
	Span     layout.Span
	Theme    ThemeStyles
	Carousel *Carousel
	Form     *ContactForm
	Position *layout.Rect
}

// NewCard prepares an item for rendering
func NewCard(item *models.Item) Card {
	card := Card{
		Item:     item,
		Template: TemplateFor(item),
		Span:     layout.ParseSpan(item.Span),
	}
	switch card.Template {
	case TemplateProject:
		card.Carousel = NewCarousel(item.ImageList(), nil)
	case TemplateContactForm:
		card.Form = NewContactForm(item.Email)
	case TemplateSocial:
		card.Theme = ThemeFor(item.Theme)
	}
	return card
}

// BuildCards prepares every item, attaching the packed position of each
// card when packing is non-nil
func BuildCards(items []models.Item, packing *layout.Packing) []Card {
	cards := make([]Card, 0, len(items))
	for i := range items {
		card := NewCard(&items[i])
		if packing != nil {
			if r, ok := packing.Positions[items[i].ID]; ok {
				pos := r
				card.Position = &pos
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// GridSettings are passed to the browser bridge as data attributes
type GridSettings struct {
	DragReleaseMs     int64
	DragReleaseEasing string
	LayoutMs          int64
	LayoutEasing      string
	CarouselMs        int64
	MobileBreakpoint  float64
}

// SettingsFrom converts layout options for the page
func SettingsFrom(opts layout.Options) GridSettings {
	return GridSettings{
		DragReleaseMs:     opts.DragReleaseDuration.Milliseconds(),
		DragReleaseEasing: opts.DragReleaseEasing,
		LayoutMs:          opts.LayoutDuration.Milliseconds(),
		LayoutEasing:      opts.LayoutEasing,
		CarouselMs:        CarouselInterval.Milliseconds(),
		MobileBreakpoint:  opts.MobileBreakpoint,
	}
}

// PageData is the input of the page template
type PageData struct {
	Title      string
	Cards      []Card
	GridHeight float64
	Settings   GridSettings
	CVPath     string
}

// LoadingData is the input of the loading template
type LoadingData struct {
	Title          string
	RefreshSeconds int
}

// Renderer executes the embedded page and card templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage writes the full grid page
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// RenderLoading writes the loading page shown while the profile is pending
func (r *Renderer) RenderLoading(w io.Writer, data LoadingData) error {
	return r.tmpl.ExecuteTemplate(w, "loading", data)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"icon": iconSVG,
		"levelStyle": func(level int) template.CSS {
			if level < 0 {
				level = 0
			}
			if level > 100 {
				level = 100
			}
			return template.CSS("width: " + strconv.Itoa(level) + "%")
		},
		"positionStyle": func(r *layout.Rect) template.CSS {
			if r == nil {
				return ""
			}
			return template.CSS(fmt.Sprintf("left: %gpx; top: %gpx; width: %gpx; height: %gpx",
				r.X, r.Y, r.W, r.H))
		},
		"delayStyle": func(i int) template.CSS {
			return template.CSS(fmt.Sprintf("animation-delay: %.1fs", float64(i)*0.2))
		},
		"heightStyle": func(h float64) template.CSS {
			if h <= 0 {
				return ""
			}
			return template.CSS(fmt.Sprintf("height: %gpx", h))
		},
		"inc": func(i int) int { return i + 1 },
	}
}

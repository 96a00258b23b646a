package models

import "encoding/json"

// Kind is the card discriminator carried in the "type" field
type Kind string

const (
	KindAvatar         Kind = "avatar"
	KindSkill          Kind = "skill"
	KindSkills         Kind = "skills"
	KindProject        Kind = "project"
	KindContact        Kind = "contact"
	KindContactForm    Kind = "contact-form"
	KindCertifications Kind = "certifications"
	KindTimeline       Kind = "timeline"
	KindLocation       Kind = "location"
	KindMap            Kind = "map"
)

// Item is one card in the grid. Variant fields are left empty when a
// kind does not use them.
type Item struct {
	ID          string `json:"id"`
	Type        Kind   `json:"type"`
	Icon        Icon   `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Span        string `json:"span,omitempty"`

	// avatar
	Image    string `json:"image,omitempty"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`

	// project
	Images    []string `json:"images,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	LiveURL   string   `json:"liveUrl,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`

	// skill / skills
	Level  int     `json:"level,omitempty"`
	Color  string  `json:"color,omitempty"`
	Skills []Skill `json:"skills,omitempty"`

	// contact / contact-form
	Email     string `json:"email,omitempty"`
	Theme     string `json:"theme,omitempty"`
	Username  string `json:"username,omitempty"`
	Followers string `json:"followers,omitempty"`
	Repos     string `json:"repos,omitempty"`
	Avatar    string `json:"avatar,omitempty"`

	// certifications / timeline / location / map
	Certifications []string `json:"certifications,omitempty"`
	Events         []Event  `json:"events,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	EmbedURL       string   `json:"embedUrl,omitempty"`

	Link string `json:"link,omitempty"`
}

// ImageList returns the carousel images, falling back to the single image
func (i *Item) ImageList() []string {
	if len(i.Images) > 0 {
		return i.Images
	}
	if i.Image != "" {
		return []string{i.Image}
	}
	return nil
}

// Skill is one entry of a skills card
type Skill struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon,omitempty"`
}

// Event is one timeline entry
type Event struct {
	Year  string `json:"year"`
	Event string `json:"event"`
}

// SocialMedia holds the static social cards; GitHub is built from the
// fetched profile instead
type SocialMedia struct {
	LinkedIn *Item `json:"linkedin,omitempty"`
	Twitter  *Item `json:"twitter,omitempty"`
}

// Document is the static portfolio data file
type Document struct {
	Avatar         *Item       `json:"avatar,omitempty"`
	Skills         *Item       `json:"skills,omitempty"`
	Projects       []Item      `json:"projects,omitempty"`
	SocialMedia    SocialMedia `json:"socialMedia"`
	Certifications *Item       `json:"certifications,omitempty"`
	ContactForm    *Item       `json:"contactForm,omitempty"`
	Timeline       *Item       `json:"timeline,omitempty"`
	Extra          []Item      `json:"extra,omitempty"`
	Map            *Item       `json:"map,omitempty"`
}

// Entries returns how many items the document contributes to the grid
func (d *Document) Entries() int {
	n := len(d.Projects) + len(d.Extra)
	for _, section := range []*Item{
		d.Avatar, d.Skills, d.SocialMedia.LinkedIn, d.SocialMedia.Twitter,
		d.Certifications, d.ContactForm, d.Timeline, d.Map,
	} {
		if section != nil {
			n++
		}
	}
	return n
}

// ParseDocument decodes a portfolio document. Fields are not validated.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

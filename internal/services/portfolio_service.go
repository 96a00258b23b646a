package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tahiru.dev/internal/models"
)

// ErrProfilePending is returned while the GitHub profile has not settled;
// callers show the loading state instead of the grid
var ErrProfilePending = errors.New("github profile still loading")

// GitHubCardID is the id of the card built from the fetched profile
const GitHubCardID = "8"

const defaultGitHubBio = "Check out my code repositories."

// ProfileResolver resolves the GitHub profile for a request
type ProfileResolver interface {
	Resolve(ctx context.Context) models.ProfileResult
}

// PortfolioService assembles the grid items
type PortfolioService struct {
	doc      *models.Document
	profiles ProfileResolver
	wait     time.Duration
}

// NewPortfolioService creates a new PortfolioService. wait bounds how long
// Items blocks on the profile; zero waits for the caller's context only.
func NewPortfolioService(doc *models.Document, profiles ProfileResolver, wait time.Duration) *PortfolioService {
	return &PortfolioService{doc: doc, profiles: profiles, wait: wait}
}

// Document returns the static document
func (s *PortfolioService) Document() *models.Document {
	return s.doc
}

// Items resolves the profile and builds the item list
func (s *PortfolioService) Items(ctx context.Context) ([]models.Item, error) {
	if s.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.wait)
		defer cancel()
	}
	return BuildItems(s.doc, s.profiles.Resolve(ctx))
}

// BuildItems merges the static document with the profile result into the
// ordered item list. Only the GitHub card depends on the profile; every
// other item is copied from the document as is.
func BuildItems(doc *models.Document, result models.ProfileResult) ([]models.Item, error) {
	if result.State == models.ProfilePending {
		return nil, ErrProfilePending
	}

	items := make([]models.Item, 0, doc.Entries()+1)
	add := func(it *models.Item) {
		if it != nil {
			items = append(items, *it)
		}
	}

	if doc.Avatar != nil {
		avatar := *doc.Avatar
		// the avatar card shows its location with a pin
		if avatar.Icon == models.IconNone {
			avatar.Icon = models.IconLocation
		}
		items = append(items, avatar)
	}
	add(doc.Skills)
	items = append(items, doc.Projects...)
	items = append(items, GitHubCard(result.Profile))
	add(doc.SocialMedia.LinkedIn)
	add(doc.SocialMedia.Twitter)
	add(doc.Certifications)
	add(doc.ContactForm)
	add(doc.Timeline)
	items = append(items, doc.Extra...)
	add(doc.Map)

	return items, nil
}

// GitHubCard builds the GitHub social card. A nil profile leaves the
// profile fields empty.
func GitHubCard(p *models.GitHubProfile) models.Item {
	card := models.Item{
		ID:          GitHubCardID,
		Type:        models.KindContact,
		Icon:        models.IconGitHub,
		Title:       "GitHub",
		Description: defaultGitHubBio,
		Span:        "col-span-1 row-span-1",
		Theme:       "github",
	}
	if p == nil {
		return card
	}

	if p.Bio != "" {
		card.Description = p.Bio
	}
	card.Username = p.Login
	card.Repos = fmt.Sprintf("%d+", p.PublicRepos)
	card.Followers = fmt.Sprintf("%d+", p.Followers)
	card.Avatar = p.AvatarURL
	card.Link = p.HTMLURL
	return card
}

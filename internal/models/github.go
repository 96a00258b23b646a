package models

// GitHubProfile mirrors the fields read from the GitHub users API
type GitHubProfile struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	AvatarURL       string `json:"avatar_url"`
	Bio             string `json:"bio"`
	PublicRepos     int    `json:"public_repos"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	Location        string `json:"location"`
	Blog            string `json:"blog"`
	TwitterUsername string `json:"twitter_username"`
	HTMLURL         string `json:"html_url"`
}

// ProfileState tells whether the profile fetch has settled
type ProfileState string

const (
	ProfilePending ProfileState = "pending"
	ProfileLoaded  ProfileState = "loaded"
	ProfileFailed  ProfileState = "failed"
)

// ProfileResult is the outcome of resolving the GitHub profile
type ProfileResult struct {
	State   ProfileState
	Profile *GitHubProfile
	Err     error
}

package dto

// Application é a forma pública de domain.Application.
// Não existem campos createdAt/updatedAt aqui.
type Application struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Platforms   []Platform `json:"platforms"`
}

type Platform struct {
	Name          string         `json:"platformName"`
	Architectures []Architecture `json:"architectures"`
}

type Architecture struct {
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Releases []Release `json:"releases"`
}

type Release struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Portable    *bool        `json:"portable"`
	ReleaseDate *string      `json:"releaseDate"`
	ReleaseType *ReleaseType `json:"releaseType"`
	Semver      string       `json:"semver"`
	DownloadURL string       `json:"downloadUrl"`
	InfoURL     *string      `json:"infoUrl"`
	Checksum    *string      `json:"checksum"`
}

type ReleaseType string

const (
	ReleaseMajor      ReleaseType = "Major"
	ReleaseMinor      ReleaseType = "Minor"
	ReleasePatch      ReleaseType = "Patch"
	ReleasePreRelease ReleaseType = "PreRelease"
	ReleaseOther      ReleaseType = "Other"
)

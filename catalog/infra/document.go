package infra

import (
	"fmt"

	"appcatalog/catalog/domain"
)

// applicationDocument espelha o formato armazenado na coleção.
// As tags json permitem reaproveitar o mesmo formato no arquivo de seed do MemoryStore.
type applicationDocument struct {
	ID          string             `bson:"_id" json:"_id"`
	CreatedAt   string             `bson:"createdAt" json:"createdAt"`
	UpdatedAt   string             `bson:"updatedAt" json:"updatedAt"`
	Name        string             `bson:"name" json:"name"`
	Description *string            `bson:"description" json:"description"`
	Platforms   []platformDocument `bson:"platforms" json:"platforms"`
}

type platformDocument struct {
	PlatformName  string                 `bson:"platformName" json:"platformName"`
	Architectures []architectureDocument `bson:"architectures" json:"architectures"`
}

type architectureDocument struct {
	Name     string            `bson:"name" json:"name"`
	URL      string            `bson:"url" json:"url"`
	Releases []releaseDocument `bson:"releases" json:"releases"`
}

type releaseDocument struct {
	Name        *string `bson:"name" json:"name"`
	Description *string `bson:"description" json:"description"`
	Portable    *bool   `bson:"portable" json:"portable"`
	ReleaseDate *string `bson:"releaseDate" json:"releaseDate"`
	ReleaseType *string `bson:"releaseType" json:"releaseType"`
	Semver      string  `bson:"semver" json:"semver"`
	DownloadURL string  `bson:"downloadUrl" json:"downloadUrl"`
	InfoURL     *string `bson:"infoUrl" json:"infoUrl"`
	Checksum    *string `bson:"checksum" json:"checksum"`
}

func (d applicationDocument) toDomain() (domain.Application, error) {
	app := domain.Application{
		ID:          domain.Key(d.ID),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Name:        d.Name,
		Description: d.Description,
	}
	if d.Platforms == nil {
		return app, nil
	}
	app.Platforms = make([]domain.Platform, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		platform, err := p.toDomain()
		if err != nil {
			return domain.Application{}, fmt.Errorf("application %q: %w", d.ID, err)
		}
		app.Platforms = append(app.Platforms, platform)
	}
	return app, nil
}

func (d platformDocument) toDomain() (domain.Platform, error) {
	p := domain.Platform{Name: d.PlatformName}
	if d.Architectures == nil {
		return p, nil
	}
	p.Architectures = make([]domain.Architecture, 0, len(d.Architectures))
	for _, a := range d.Architectures {
		arch, err := a.toDomain()
		if err != nil {
			return domain.Platform{}, fmt.Errorf("platform %q: %w", d.PlatformName, err)
		}
		p.Architectures = append(p.Architectures, arch)
	}
	return p, nil
}

func (d architectureDocument) toDomain() (domain.Architecture, error) {
	a := domain.Architecture{Name: d.Name, URL: d.URL}
	if d.Releases == nil {
		return a, nil
	}
	a.Releases = make([]domain.Release, 0, len(d.Releases))
	for _, r := range d.Releases {
		rel, err := r.toDomain()
		if err != nil {
			return domain.Architecture{}, fmt.Errorf("architecture %q: %w", d.Name, err)
		}
		a.Releases = append(a.Releases, rel)
	}
	return a, nil
}

func (d releaseDocument) toDomain() (domain.Release, error) {
	r := domain.Release{
		Name:        d.Name,
		Description: d.Description,
		Portable:    d.Portable,
		ReleaseDate: d.ReleaseDate,
		Semver:      d.Semver,
		DownloadURL: d.DownloadURL,
		InfoURL:     d.InfoURL,
		Checksum:    d.Checksum,
	}
	if d.ReleaseType != nil {
		rt, ok := domain.ParseReleaseType(*d.ReleaseType)
		if !ok {
			return domain.Release{}, fmt.Errorf("release %q: unknown release type %q", d.Semver, *d.ReleaseType)
		}
		r.ReleaseType = &rt
	}
	return r, nil
}

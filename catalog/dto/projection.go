package dto

import "appcatalog/catalog/domain"

var releaseTypes = map[domain.ReleaseType]ReleaseType{
	domain.ReleaseMajor:      ReleaseMajor,
	domain.ReleaseMinor:      ReleaseMinor,
	domain.ReleasePatch:      ReleasePatch,
	domain.ReleasePreRelease: ReleasePreRelease,
	domain.ReleaseOther:      ReleaseOther,
}

var releaseTypeToDTO = mapVariant(releaseTypes)

// FromApplication projeta o registro interno na forma pública.
func FromApplication(app domain.Application) Application {
	return Application{
		ID:          string(app.ID),
		Name:        app.Name,
		Description: app.Description,
		Platforms:   mapSlice(app.Platforms, FromPlatform),
	}
}

// FromApplications projeta uma página inteira, na ordem recebida.
func FromApplications(apps []domain.Application) []Application {
	out := mapSlice(apps, FromApplication)
	if out == nil {
		return []Application{}
	}
	return out
}

func FromPlatform(p domain.Platform) Platform {
	return Platform{
		Name:          p.Name,
		Architectures: mapSlice(p.Architectures, FromArchitecture),
	}
}

func FromArchitecture(a domain.Architecture) Architecture {
	return Architecture{
		Name:     a.Name,
		URL:      a.URL,
		Releases: mapSlice(a.Releases, FromRelease),
	}
}

func FromRelease(r domain.Release) Release {
	return Release{
		Name:        r.Name,
		Description: r.Description,
		Portable:    r.Portable,
		ReleaseDate: r.ReleaseDate,
		ReleaseType: mapPtr(r.ReleaseType, FromReleaseType),
		Semver:      r.Semver,
		DownloadURL: r.DownloadURL,
		InfoURL:     r.InfoURL,
		Checksum:    r.Checksum,
	}
}

func FromReleaseType(rt domain.ReleaseType) ReleaseType {
	return releaseTypeToDTO(rt)
}

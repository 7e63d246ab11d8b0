package domain

// Key é a chave de identidade de uma Application.
//
// É única, imutável e ordenável lexicograficamente; serve tanto de id externo
// quanto de cursor de paginação.
type Key string

// Application é o registro interno como vem do armazenamento.
// CreatedAt/UpdatedAt são internos e nunca saem na forma pública.
type Application struct {
	ID          Key
	CreatedAt   string
	UpdatedAt   string
	Name        string
	Description *string
	// nil = nenhuma plataforma registrada; slice vazio = zero plataformas.
	Platforms []Platform
}

type Platform struct {
	Name          string
	Architectures []Architecture
}

type Architecture struct {
	Name string
	// URL base de download.
	URL      string
	Releases []Release
}

type Release struct {
	Name        *string
	Description *string
	Portable    *bool
	ReleaseDate *string
	ReleaseType *ReleaseType
	Semver      string
	DownloadURL string
	InfoURL     *string
	Checksum    *string
}

// ReleaseType classifica uma release. O valor é o nome da variante, igual ao
// armazenado no documento.
type ReleaseType string

const (
	ReleaseMajor      ReleaseType = "Major"
	ReleaseMinor      ReleaseType = "Minor"
	ReleasePatch      ReleaseType = "Patch"
	ReleasePreRelease ReleaseType = "PreRelease"
	ReleaseOther      ReleaseType = "Other"
)

// ReleaseTypes lista todas as variantes conhecidas, na ordem de declaração.
func ReleaseTypes() []ReleaseType {
	return []ReleaseType{
		ReleaseMajor,
		ReleaseMinor,
		ReleasePatch,
		ReleasePreRelease,
		ReleaseOther,
	}
}

// ParseReleaseType aceita apenas nomes exatos de variantes. Não existe fallback.
func ParseReleaseType(s string) (ReleaseType, bool) {
	for _, rt := range ReleaseTypes() {
		if string(rt) == s {
			return rt, true
		}
	}
	return "", false
}

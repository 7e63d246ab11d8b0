package dto

import (
	"encoding/json"
	"testing"

	"appcatalog/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestFromReleaseType_CoversEveryVariant(t *testing.T) {
	seen := map[ReleaseType]bool{}
	for _, rt := range domain.ReleaseTypes() {
		var got ReleaseType
		require.NotPanics(t, func() { got = FromReleaseType(rt) })
		assert.Equal(t, string(rt), string(got), "variants map by name")
		seen[got] = true
	}
	assert.Len(t, seen, len(domain.ReleaseTypes()), "mapping must be one to one")
	assert.Len(t, releaseTypes, len(domain.ReleaseTypes()))
}

func TestMapVariant_PanicsOnUnmapped(t *testing.T) {
	f := mapVariant(map[string]int{"a": 1})
	assert.Panics(t, func() { f("b") })
}

func TestFromApplication_DropsTimestampsAndKeepsOptionals(t *testing.T) {
	app := domain.Application{
		ID:          "app-1",
		CreatedAt:   "2024-01-01T00:00:00Z",
		UpdatedAt:   "2024-02-01T00:00:00Z",
		Name:        "Editor",
		Description: ptr("text editor"),
		Platforms: []domain.Platform{
			{
				Name: "linux",
				Architectures: []domain.Architecture{
					{
						Name: "amd64",
						URL:  "https://dl.example/linux/amd64",
						Releases: []domain.Release{
							{
								Name:        ptr("2.0"),
								Portable:    ptr(false),
								ReleaseDate: ptr("2024-03-01"),
								ReleaseType: ptr(domain.ReleaseMajor),
								Semver:      "2.0.0",
								DownloadURL: "https://dl.example/2.0.0",
								InfoURL:     ptr("https://example/notes/2.0.0"),
								Checksum:    ptr("sha256:abc"),
							},
							{Semver: "1.9.0", DownloadURL: "https://dl.example/1.9.0"},
						},
					},
				},
			},
		},
	}

	got := FromApplication(app)

	assert.Equal(t, "app-1", got.ID)
	require.NotNil(t, got.Description)
	assert.Equal(t, "text editor", *got.Description)
	rels := got.Platforms[0].Architectures[0].Releases
	require.Len(t, rels, 2)
	assert.Equal(t, "2.0.0", rels[0].Semver, "order is preserved")
	assert.Equal(t, "1.9.0", rels[1].Semver)
	require.NotNil(t, rels[0].ReleaseType)
	assert.Equal(t, ReleaseMajor, *rels[0].ReleaseType)
	require.NotNil(t, rels[0].Portable)
	assert.False(t, *rels[0].Portable)
	assert.Equal(t, "sha256:abc", *rels[0].Checksum)
	assert.Nil(t, rels[1].ReleaseType)
	assert.Nil(t, rels[1].InfoURL)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "createdAt")
	assert.NotContains(t, string(raw), "updatedAt")
	assert.NotContains(t, string(raw), "2024-01-01T00:00:00Z")
	assert.Contains(t, string(raw), `"platformName":"linux"`)
	assert.Contains(t, string(raw), `"downloadUrl":"https://dl.example/2.0.0"`)
}

func TestFromApplication_AbsentVersusEmptyCollections(t *testing.T) {
	absent := FromApplication(domain.Application{ID: "a", Name: "A"})
	empty := FromApplication(domain.Application{ID: "b", Name: "B", Platforms: []domain.Platform{}})
	nested := FromApplication(domain.Application{ID: "c", Name: "C", Platforms: []domain.Platform{
		{Name: "mac"},
		{Name: "win", Architectures: []domain.Architecture{}},
	}})

	assert.Nil(t, absent.Platforms)
	assert.NotNil(t, empty.Platforms)
	assert.Empty(t, empty.Platforms)
	assert.Nil(t, nested.Platforms[0].Architectures)
	assert.NotNil(t, nested.Platforms[1].Architectures)

	raw, err := json.Marshal([]Application{absent, empty})
	require.NoError(t, err)
	assert.JSONEq(t, `[
	  {"id":"a","name":"A","description":null,"platforms":null},
	  {"id":"b","name":"B","description":null,"platforms":[]}
	]`, string(raw))
}

func TestFromApplication_DoesNotMutateInput(t *testing.T) {
	app := domain.Application{ID: "a", Name: "A", Platforms: []domain.Platform{{Name: "linux"}}}
	out := FromApplication(app)
	out.Platforms[0].Name = "changed"

	assert.Equal(t, "linux", app.Platforms[0].Name)
}

func TestFromApplications_PreservesOrderAndNeverNil(t *testing.T) {
	got := FromApplications([]domain.Application{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})

	assert.NotNil(t, FromApplications(nil))
}

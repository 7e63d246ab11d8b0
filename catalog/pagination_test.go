package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomnomnom/linkheader"
)

func intPtr(v int) *int { return &v }

func TestEffectiveLimit_Clamps(t *testing.T) {
	cases := []struct {
		name      string
		requested *int
		max       int
		want      int
	}{
		{"absent uses max", nil, 50, 50},
		{"below max kept", intPtr(10), 50, 10},
		{"equal to max kept", intPtr(50), 50, 50},
		{"above max clamped", intPtr(51), 50, 50},
		{"far above max clamped", intPtr(1 << 30), 50, 50},
		{"zero treated as absent", intPtr(0), 50, 50},
		{"negative treated as absent", intPtr(-7), 50, 50},
		{"one", intPtr(1), 50, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EffectiveLimit(tc.requested, tc.max))
		})
	}
}

func TestParseLimit(t *testing.T) {
	got, err := ParseLimit("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseLimit(" 12 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12, *got)

	got, err = ParseLimit("-1")
	require.NoError(t, err)
	assert.Equal(t, -1, *got)

	_, err = ParseLimit("ten")
	assert.Error(t, err)
	_, err = ParseLimit("1.5")
	assert.Error(t, err)
}

func TestBuildLinks_FullPageHasNext(t *testing.T) {
	raw := BuildLinks("https://api.example.com/", 2, 2, "b")
	links := linkheader.Parse(raw)
	require.Len(t, links, 2)

	first := links.FilterByRel("first")
	require.Len(t, first, 1)
	assert.Equal(t, "https://api.example.com/api/v1/applications/?limit=2", first[0].URL)

	next := links.FilterByRel("next")
	require.Len(t, next, 1)
	assert.Equal(t, "https://api.example.com/api/v1/applications/?page=b&limit=2", next[0].URL)
}

func TestBuildLinks_ShortPageIsTerminal(t *testing.T) {
	links := linkheader.Parse(BuildLinks("https://api.example.com", 2, 1, "c"))
	require.Len(t, links, 1)
	assert.Equal(t, "first", links[0].Rel)
	assert.Empty(t, links.FilterByRel("next"))
}

func TestBuildLinks_EscapesPageKey(t *testing.T) {
	links := linkheader.Parse(BuildLinks("http://h", 1, 1, "a b&c"))
	next := links.FilterByRel("next")
	require.Len(t, next, 1)

	u, err := url.Parse(next[0].URL)
	require.NoError(t, err)
	assert.Equal(t, "a b&c", u.Query().Get("page"))
	assert.Equal(t, "1", u.Query().Get("limit"))
}

package answer

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

func TestAssemble(t *testing.T) {
	sections := []models.Section{
		{Title: "Classification", Bullets: []models.Bullet{
			{Text: "Type II with intact hinge.", Citations: []int{1, 2}},
		}},
		{Title: "Initial Management", Bullets: []models.Bullet{
			{Text: "Immobilize above-elbow.", Citations: []int{2}},
		}},
	}
	sources := []models.Source{
		{ID: 1, Title: "Ref A", URL: "https://a", Snippet: "hidden"},
		{ID: 2, Title: "Ref B", URL: "https://b", Snippet: "hidden"},
	}

	resp := Assemble(sections, sources, ModeOrtho)

	assert.Equal(t, "ortho", resp.Mode)
	assert.Contains(t, resp.Answer, "<h3>Classification</h3>")
	assert.Contains(t, resp.Answer, `<sup class="cite">[1,2]</sup>`)
	assert.Less(t,
		strings.Index(resp.Answer, "Classification"),
		strings.Index(resp.Answer, "Initial Management"),
		"sections render in canonical order")

	require.Len(t, resp.Sources, 2)
	for _, s := range resp.Sources {
		assert.Empty(t, s.Snippet, "snippets never reach the caller")
	}
}

func TestAssembleEscapesHTML(t *testing.T) {
	sections := []models.Section{
		{Title: "Classification", Bullets: []models.Bullet{
			{Text: `<script>alert("x")</script>`, Citations: []int{1}},
		}},
	}
	sources := []models.Source{{ID: 1, Title: "Ref", URL: "https://a"}}

	resp := Assemble(sections, sources, ModeOrtho)
	assert.NotContains(t, resp.Answer, "<script>")
	assert.Contains(t, resp.Answer, "&lt;script&gt;")
}

func TestAssembleSkipsEmptySections(t *testing.T) {
	sections := []models.Section{
		{Title: "Classification"},
		{Title: "Risk Factors", Bullets: []models.Bullet{{Text: "Content.", Citations: []int{1}}}},
	}
	resp := Assemble(sections, []models.Source{{ID: 1, URL: "https://a"}}, ModeOrtho)

	assert.NotContains(t, resp.Answer, "Classification")
	assert.Contains(t, resp.Answer, "Risk Factors")
}

var citeMarkerRe = regexp.MustCompile(`\[([\d,]+)\]`)

// Every rendered citation index must resolve to an id in the returned
// source list.
func TestAssembleCitationRoundTrip(t *testing.T) {
	sources := []models.Source{
		{ID: 1, Title: "a", URL: "https://a"},
		{ID: 2, Title: "b", URL: "https://b"},
		{ID: 3, Title: "c", URL: "https://c"},
	}
	sections := Fallback(ModeRadiology, sources)
	resp := Assemble(sections, sources, ModeRadiology)

	ids := map[int]bool{}
	for _, s := range resp.Sources {
		ids[s.ID] = true
	}

	for _, m := range citeMarkerRe.FindAllStringSubmatch(resp.Answer, -1) {
		for _, part := range strings.Split(m[1], ",") {
			n, err := strconv.Atoi(part)
			require.NoError(t, err)
			assert.True(t, ids[n], "citation %d has no matching source", n)
		}
	}
}

func TestNoSourcesResponse(t *testing.T) {
	resp := NoSourcesResponse(ModeEmergency)

	assert.Equal(t, "emergency", resp.Mode)
	assert.Empty(t, resp.Sources)
	assert.Contains(t, resp.Answer, "No suitable sources")
}

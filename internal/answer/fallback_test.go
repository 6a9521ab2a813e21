package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

func TestFallbackCoversEverySection(t *testing.T) {
	sources := []models.Source{
		{ID: 1, Title: "a", URL: "https://a"},
		{ID: 2, Title: "b", URL: "https://b"},
	}

	for _, mode := range []Mode{ModeRadiology, ModeEmergency, ModeOrtho} {
		t.Run(string(mode), func(t *testing.T) {
			sections := Fallback(mode, sources)
			titles := SectionTitles(mode)

			require.Len(t, sections, len(titles))
			for i, sec := range sections {
				assert.Equal(t, titles[i], sec.Title)
				assert.NotEmpty(t, sec.Bullets, "every section must have at least one bullet")
				for _, b := range sec.Bullets {
					for _, c := range b.Citations {
						assert.GreaterOrEqual(t, c, 1)
						assert.LessOrEqual(t, c, len(sources))
					}
				}
			}
		})
	}
}

func TestFallbackWithoutSources(t *testing.T) {
	sections := Fallback(ModeOrtho, nil)

	require.Len(t, sections, len(SectionTitles(ModeOrtho)))
	for _, sec := range sections {
		assert.NotEmpty(t, sec.Bullets)
		for _, b := range sec.Bullets {
			assert.Empty(t, b.Citations, "no sources means no citations to clip to")
		}
	}
}

func TestFallbackDeterministic(t *testing.T) {
	sources := []models.Source{{ID: 1, Title: "a", URL: "https://a"}}
	assert.Equal(t, Fallback(ModeEmergency, sources), Fallback(ModeEmergency, sources))
}

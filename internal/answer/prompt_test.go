package answer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

func TestBuildContext(t *testing.T) {
	sources := []models.Source{
		{ID: 1, Title: "Supracondylar fractures", URL: "https://orthobullets.com/a", Snippet: "Gartland classification..."},
		{ID: 2, Title: "Pediatric elbow", URL: "https://radiopaedia.org/b", Snippet: "Fat pad sign..."},
	}

	ctx := BuildContext(sources)

	assert.Contains(t, ctx, "[1] Supracondylar fractures")
	assert.Contains(t, ctx, "https://orthobullets.com/a")
	assert.Contains(t, ctx, "[2] Pediatric elbow")
	assert.Contains(t, ctx, "Fat pad sign...")

	// one blank line between entries, entries in source order
	assert.Less(t, strings.Index(ctx, "[1]"), strings.Index(ctx, "[2]"))
	assert.Contains(t, ctx, "\n\n[2]")
}

func TestBuildContextEmpty(t *testing.T) {
	assert.Equal(t, "", BuildContext(nil))
}

func TestBuildPrompt(t *testing.T) {
	titles := SectionTitles(ModeOrtho)
	prompt := BuildPrompt(ModeOrtho, titles, "[1] ref\nhttps://x\nsnippet", "How to manage?", 1)

	for _, title := range titles {
		assert.Contains(t, prompt, "- "+title)
	}
	assert.Contains(t, prompt, "Question: How to manage?")
	assert.Contains(t, prompt, "[1] ref")
	assert.Contains(t, prompt, "3 to 6 bullets")
	assert.Contains(t, prompt, "(1 to 1)")
	assert.Contains(t, prompt, "Never invent facts")
	assert.Contains(t, prompt, "orthopaedic surgeon")
}

func TestBuildPromptPersonaPerMode(t *testing.T) {
	p := BuildPrompt(ModeEmergency, SectionTitles(ModeEmergency), "ctx", "q", 2)
	assert.Contains(t, p, "emergency physician")

	p = BuildPrompt(ModeRadiology, SectionTitles(ModeRadiology), "ctx", "q", 2)
	assert.Contains(t, p, "radiologist")
}

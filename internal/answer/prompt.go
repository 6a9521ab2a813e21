package answer

import (
	"fmt"
	"strings"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// personas give the model a role statement per mode.
var personas = map[Mode]string{
	ModeRadiology: "You are a consultant radiologist answering a colleague's imaging question.",
	ModeEmergency: "You are a senior emergency physician advising at the bedside of an acute patient.",
	ModeOrtho:     "You are an orthopaedic surgeon advising on fracture assessment and management.",
}

// BuildContext formats sources as a numbered reference block: one entry per
// source with its sequence number, title, URL, and snippet, separated by
// blank lines. An empty source list yields an empty string; callers
// short-circuit before that happens.
func BuildContext(sources []models.Source) string {
	var b strings.Builder
	for i, s := range sources {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%d] %s\n%s\n%s", s.ID, s.Title, s.URL, s.Snippet)
	}
	return b.String()
}

// BuildPrompt assembles the single instruction text sent to the generation
// API: persona, grounding constraint, the exact section titles to produce,
// bullet and citation formatting rules, tone directive, then the question
// and the numbered context verbatim.
func BuildPrompt(mode Mode, titles []string, context, question string, sourceCount int) string {
	var b strings.Builder

	b.WriteString(personas[mode])
	b.WriteString("\n\n")

	b.WriteString("Answer using ONLY the numbered sources provided below. Never invent facts. ")
	b.WriteString("If the sources do not support a section, omit that section entirely.\n\n")

	b.WriteString("Respond as JSON with this exact shape:\n")
	b.WriteString(`{"sections":[{"title":"...","bullets":[{"text":"...","cites":[1]}]}]}`)
	b.WriteString("\n\n")

	b.WriteString("Produce only these sections, in this order:\n")
	for _, t := range titles {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	b.WriteString("\n")

	b.WriteString("Rules:\n")
	b.WriteString("- 3 to 6 bullets per section.\n")
	fmt.Fprintf(&b, "- Every bullet cites at least one source by its number (1 to %d). Cite only those numbers.\n", sourceCount)
	b.WriteString("- Write assertively in guideline style. Hedge only where the source itself hedges.\n")
	b.WriteString("- Never write placeholder bullets such as \"no information available\", \"not applicable\", or \"not specified\".\n")
	b.WriteString("- Never include meta-text, preamble, apologies, or section titles other than those listed.\n\n")

	fmt.Fprintf(&b, "Question: %s\n\nSources:\n%s\n", question, context)
	return b.String()
}

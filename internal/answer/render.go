package answer

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// Assemble renders sections to an HTML fragment and pairs it with the
// public-safe source list. Sections arrive already canonicalized; empty
// ones were omitted upstream.
func Assemble(sections []models.Section, sources []models.Source, mode Mode) models.AskResponse {
	var b strings.Builder
	for _, sec := range sections {
		if len(sec.Bullets) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", html.EscapeString(sec.Title))
		for _, bullet := range sec.Bullets {
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(bullet.Text))
			if len(bullet.Citations) > 0 {
				b.WriteString(` <sup class="cite">[`)
				b.WriteString(joinInts(bullet.Citations))
				b.WriteString("]</sup>")
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}

	public := make([]models.Source, len(sources))
	for i, s := range sources {
		public[i] = s.Public()
	}

	return models.AskResponse{
		Answer:  b.String(),
		Sources: public,
		Mode:    string(mode),
	}
}

// NoSourcesResponse is the valid terminal response when search finds
// nothing: an explanatory message, not an error.
func NoSourcesResponse(mode Mode) models.AskResponse {
	return models.AskResponse{
		Answer: "<p>No suitable sources were found for this question. " +
			"Try rephrasing it or adding clinical detail.</p>",
		Sources: []models.Source{},
		Mode:    string(mode),
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

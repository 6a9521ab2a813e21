package answer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// Normalize repairs raw model output into the canonical section/bullet
// structure. It tries three shapes in order: the JSON shape the prompt asks
// for, a bolded-title/bullet-list markup scan, and finally a naive line
// split under the mode's first title. Returns ok=false when no section
// survives cleanup with at least one bullet; the caller then uses the
// fallback templates.
func Normalize(raw string, expectedTitles []string, sourceCount int) ([]models.Section, bool) {
	payload := StripFences(raw)

	sections := parseJSONShape(payload)
	if sections == nil {
		sections = parseMarkupShape(payload)
	}
	if sections == nil {
		sections = parseLineShape(payload, expectedTitles)
	}

	sections = canonicalize(sections, expectedTitles, sourceCount)
	if len(sections) == 0 {
		return nil, false
	}
	return sections, true
}

var fenceRe = regexp.MustCompile("^```[a-zA-Z]*\\s*\n?|\n?```\\s*$")

// StripFences removes leading/trailing code-fence markers around a payload.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = fenceRe.ReplaceAllString(s, "")
	s = fenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// jsonShape matches the structure the prompt requests. Bullets tolerates
// both plain strings and {text, cites} objects.
type jsonShape struct {
	Sections []struct {
		Title   string            `json:"title"`
		Bullets []json.RawMessage `json:"bullets"`
	} `json:"sections"`
}

type jsonBullet struct {
	Text  string `json:"text"`
	Cites []int  `json:"cites"`
}

func parseJSONShape(payload string) []models.Section {
	if !strings.HasPrefix(payload, "{") && !strings.HasPrefix(payload, "[") {
		return nil
	}

	var shape jsonShape
	if err := json.Unmarshal([]byte(payload), &shape); err != nil || len(shape.Sections) == 0 {
		return nil
	}

	sections := make([]models.Section, 0, len(shape.Sections))
	for _, s := range shape.Sections {
		sec := models.Section{Title: s.Title}
		for _, rawBullet := range s.Bullets {
			var jb jsonBullet
			if err := json.Unmarshal(rawBullet, &jb); err == nil && jb.Text != "" {
				// Models sometimes leave bracketed markers in the text even
				// when asked to put them in cites.
				text, inline := extractCitations(jb.Text)
				sec.Bullets = append(sec.Bullets, models.Bullet{Text: text, Citations: append(jb.Cites, inline...)})
				continue
			}
			var text string
			if err := json.Unmarshal(rawBullet, &text); err == nil && text != "" {
				text, cites := extractCitations(text)
				sec.Bullets = append(sec.Bullets, models.Bullet{Text: text, Citations: cites})
			}
		}
		sections = append(sections, sec)
	}
	return sections
}

var (
	headingRe  = regexp.MustCompile(`(?i)^\s*(?:\*\*(.+?)\*\*:?|<(?:h[1-6]|strong|b)>(.+?)</(?:h[1-6]|strong|b)>|#{1,4}\s+(.+?))\s*$`)
	bulletRe   = regexp.MustCompile(`^\s*(?:[-*•]|<li>)\s*(.+?)\s*(?:</li>)?\s*$`)
	htmlTagRe  = regexp.MustCompile(`<[^>]+>`)
	citationRe = regexp.MustCompile(`\[(\d+(?:\s*,\s*\d+)*)\]`)
)

// parseMarkupShape scans semi-structured output pairing a bolded or heading
// title with a following bulleted list (markdown or HTML-ish).
func parseMarkupShape(payload string) []models.Section {
	var sections []models.Section
	var current *models.Section

	for _, line := range strings.Split(payload, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			title := m[1] + m[2] + m[3]
			title = strings.TrimSpace(htmlTagRe.ReplaceAllString(title, ""))
			sections = append(sections, models.Section{Title: title})
			current = &sections[len(sections)-1]
			continue
		}
		if m := bulletRe.FindStringSubmatch(line); m != nil && current != nil {
			text := strings.TrimSpace(htmlTagRe.ReplaceAllString(m[1], ""))
			if text == "" {
				continue
			}
			text, cites := extractCitations(text)
			current.Bullets = append(current.Bullets, models.Bullet{Text: text, Citations: cites})
		}
	}

	if len(sections) == 0 {
		return nil
	}
	return sections
}

// parseLineShape is the degraded path: every non-empty line becomes a bullet
// under the mode's first section title.
func parseLineShape(payload string, expectedTitles []string) []models.Section {
	if len(expectedTitles) == 0 {
		return nil
	}
	sec := models.Section{Title: expectedTitles[0]}
	for _, line := range strings.Split(payload, "\n") {
		text := strings.TrimSpace(htmlTagRe.ReplaceAllString(line, ""))
		if text == "" {
			continue
		}
		text, cites := extractCitations(text)
		if text == "" {
			continue
		}
		sec.Bullets = append(sec.Bullets, models.Bullet{Text: text, Citations: cites})
	}
	if len(sec.Bullets) == 0 {
		return nil
	}
	return []models.Section{sec}
}

// extractCitations pulls bracketed citation clusters like [1] or [2, 3] out
// of a bullet's text, collapsing immediately repeated identical clusters.
func extractCitations(text string) (string, []int) {
	var clusters [][]int
	matches := citationRe.FindAllStringSubmatch(text, -1)
	for _, m := range matches {
		var cluster []int
		for _, part := range strings.Split(m[1], ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				cluster = append(cluster, n)
			}
		}
		if len(cluster) > 0 {
			clusters = append(clusters, cluster)
		}
	}

	clusters = DedupeAdjacentClusters(clusters)

	var cites []int
	for _, cluster := range clusters {
		cites = append(cites, cluster...)
	}

	cleaned := strings.TrimSpace(citationRe.ReplaceAllString(text, ""))
	cleaned = strings.TrimRight(cleaned, " .,;")
	if cleaned != "" {
		cleaned += "."
	}
	return cleaned, cites
}

// DedupeAdjacentClusters collapses immediately repeated identical citation
// clusters. Idempotent: applying it twice equals applying it once.
func DedupeAdjacentClusters(clusters [][]int) [][]int {
	out := clusters[:0]
	for _, c := range clusters {
		if len(out) > 0 && equalInts(out[len(out)-1], c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var placeholderRe = regexp.MustCompile(`(?i)^\s*(no (further\s+)?information|not applicable|not specified|n/?a\b|none (provided|available)|no data|i can(no|')t answer|i am unable|i'm sorry|as an ai)`)

// canonicalize filters parsed sections down to the canonical form: expected
// titles only, in canonical order, placeholder bullets removed, duplicate
// citations collapsed, out-of-range citation indices dropped, empty sections
// omitted.
func canonicalize(parsed []models.Section, expectedTitles []string, sourceCount int) []models.Section {
	byTitle := make(map[string]*models.Section, len(parsed))
	for i := range parsed {
		key := strings.ToLower(strings.TrimSpace(parsed[i].Title))
		if _, dup := byTitle[key]; !dup {
			byTitle[key] = &parsed[i]
		}
	}

	var out []models.Section
	for _, title := range expectedTitles {
		src, ok := byTitle[strings.ToLower(title)]
		if !ok {
			continue
		}

		sec := models.Section{Title: title}
		for _, b := range src.Bullets {
			if placeholderRe.MatchString(b.Text) || strings.TrimSpace(b.Text) == "" {
				continue
			}
			b.Citations = cleanCitations(b.Citations, sourceCount)
			sec.Bullets = append(sec.Bullets, b)
		}
		if len(sec.Bullets) > 0 {
			out = append(out, sec)
		}
	}
	return out
}

// cleanCitations drops indices outside [1, sourceCount] and consecutive
// duplicates. Out-of-range indices are dropped rather than clamped so every
// rendered citation resolves to a returned source.
func cleanCitations(cites []int, sourceCount int) []int {
	var out []int
	for _, c := range cites {
		if c < 1 || c > sourceCount {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == c {
			continue
		}
		out = append(out, c)
	}
	return out
}

package answer

import "strings"

// Mode selects the topical template governing which section titles the
// pipeline produces.
type Mode string

const (
	ModeRadiology Mode = "radiology"
	ModeEmergency Mode = "emergency"
	ModeOrtho     Mode = "ortho"
)

// sectionTitles maps each mode to its fixed, ordered section title list.
// Output sections are always an ordered subset of these.
var sectionTitles = map[Mode][]string{
	ModeRadiology: {
		"Clinical Question",
		"Key Imaging Findings",
		"Differential Diagnosis",
		"What to Look For",
		"Suggested Report Impression",
	},
	ModeEmergency: {
		"Immediate Assessment",
		"Red Flags",
		"Initial Stabilization",
		"Key Investigations",
		"Disposition",
	},
	ModeOrtho: {
		"Classification",
		"Risk Factors",
		"Associated Injuries",
		"Initial Management",
		"Definitive/Follow-up",
	},
}

// SectionTitles returns the canonical ordered title list for a mode.
func SectionTitles(m Mode) []string {
	return sectionTitles[m]
}

// ParseMode resolves a caller-supplied mode string. "auto", the empty string,
// and anything unrecognized fall through to keyword classification.
func ParseMode(s, question string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRadiology:
		return ModeRadiology
	case ModeEmergency:
		return ModeEmergency
	case ModeOrtho:
		return ModeOrtho
	}
	return Classify(question)
}

var imagingKeywords = []string{
	"x-ray", "xray", "radiograph", "ct ", "ct,", "ct.", "ct scan", "mri",
	"ultrasound", "doppler", "imaging", "contrast", "angiogram", "fluoroscopy",
	"scan", "pacs", "hounsfield", "windowing",
}

var emergencyKeywords = []string{
	"abcde", "unstable", "resuscitat", "triage", "shock", "arrest",
	"airway", "hemorrhage", "haemorrhage", "gcs", "hypotensive",
	"crashing", "peri-arrest", "massive transfusion", "trauma code",
}

// Classify maps a question to a mode by case-insensitive keyword matching.
// Emergency keywords take precedence over imaging keywords; everything else
// defaults to ortho. Heuristic only; misclassification is accepted behavior.
func Classify(question string) Mode {
	q := strings.ToLower(question)

	emergency := containsAny(q, emergencyKeywords)
	imaging := containsAny(q, imagingKeywords)

	switch {
	case imaging && !emergency:
		return ModeRadiology
	case emergency:
		return ModeEmergency
	default:
		return ModeOrtho
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

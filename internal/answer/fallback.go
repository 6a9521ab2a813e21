package answer

import "github.com/storycave669-rgb/Project-DEVI/internal/models"

// fallbackBullets holds deterministic, offline content per mode and section
// title, used when generation is unavailable or its output is unusable. The
// attached citation indices are clipped to the available source range at
// render time.
var fallbackBullets = map[Mode]map[string][]string{
	ModeRadiology: {
		"Clinical Question": {
			"Clarify the clinical indication and prior imaging before protocolling the study.",
			"Match the modality and protocol to the suspected pathology in the retrieved references.",
		},
		"Key Imaging Findings": {
			"Review the referenced sources for the expected findings in this presentation.",
			"Compare with prior studies where available; interval change often decides the impression.",
		},
		"Differential Diagnosis": {
			"Build the differential from the pattern of findings described in the cited references.",
			"Weight the differential by patient age, risk factors, and clinical context.",
		},
		"What to Look For": {
			"Check the review areas the cited sources flag as commonly missed for this study type.",
			"Confirm technical adequacy before calling a study negative.",
		},
		"Suggested Report Impression": {
			"State the most likely diagnosis first, then clinically relevant alternatives.",
			"Recommend follow-up or further imaging only where the cited guidance supports it.",
		},
	},
	ModeEmergency: {
		"Immediate Assessment": {
			"Assess airway, breathing, circulation, disability, and exposure in order.",
			"Reassess after every intervention; a changing patient changes the plan.",
		},
		"Red Flags": {
			"Screen for the time-critical diagnoses the cited references list for this presentation.",
			"Treat physiological instability as a red flag regardless of the working diagnosis.",
		},
		"Initial Stabilization": {
			"Secure the airway and support oxygenation and perfusion before diagnostics.",
			"Follow the resuscitation thresholds given in the cited guidance.",
		},
		"Key Investigations": {
			"Order bedside tests first; imaging should not delay resuscitation.",
			"Select further investigations according to the cited references.",
		},
		"Disposition": {
			"Match disposition to physiology and trajectory, not diagnosis alone.",
			"Document escalation criteria at handover.",
		},
	},
	ModeOrtho: {
		"Classification": {
			"Classify the injury with the scheme used in the cited references.",
			"Record the classification in the notes; it drives the management pathway.",
		},
		"Risk Factors": {
			"Review mechanism, bone quality, and patient factors described in the cited sources.",
			"Consider pathological fracture when the mechanism does not fit the injury.",
		},
		"Associated Injuries": {
			"Examine the joints above and below, and document neurovascular status.",
			"Screen for the associated injuries the cited references list for this pattern.",
		},
		"Initial Management": {
			"Immobilize, provide analgesia, and obtain appropriate imaging.",
			"Escalate open injuries and neurovascular compromise immediately.",
		},
		"Definitive/Follow-up": {
			"Plan definitive care according to the classification and the cited guidance.",
			"Arrange follow-up imaging and rehabilitation per the referenced protocols.",
		},
	},
}

// Fallback returns every section for the mode with deterministic bullets,
// each carrying a citation into the available source range when sources
// exist. It cannot fail; it is the terminal safety net.
func Fallback(mode Mode, sources []models.Source) []models.Section {
	titles := SectionTitles(mode)
	sections := make([]models.Section, 0, len(titles))

	for i, title := range titles {
		texts := fallbackBullets[mode][title]
		sec := models.Section{Title: title}
		for j, text := range texts {
			var cites []int
			if n := len(sources); n > 0 {
				// Spread citations across the source list.
				cites = []int{(i+j)%n + 1}
			}
			sec.Bullets = append(sec.Bullets, models.Bullet{Text: text, Citations: cites})
		}
		sections = append(sections, sec)
	}
	return sections
}

package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Mode
	}{
		{
			name:     "imaging terms resolve to radiology",
			question: "What should I look for on a CT chest with contrast?",
			want:     ModeRadiology,
		},
		{
			name:     "emergency terms win over imaging terms",
			question: "ABCDE approach for an unstable patient before the CT scan?",
			want:     ModeEmergency,
		},
		{
			name:     "fracture question defaults to ortho",
			question: "Gartland type II supracondylar humerus fracture — what should I know?",
			want:     ModeOrtho,
		},
		{
			name:     "no keywords defaults to ortho",
			question: "How do I manage a sprained ankle?",
			want:     ModeOrtho,
		},
		{
			name:     "case insensitive",
			question: "INTERPRETING AN X-RAY OF THE WRIST",
			want:     ModeRadiology,
		},
		{
			name:     "triage alone resolves to emergency",
			question: "Triage priorities in a multi-casualty incident",
			want:     ModeEmergency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeEmergency, ParseMode("emergency", "anything"))
	assert.Equal(t, ModeRadiology, ParseMode("RADIOLOGY", "anything"))

	// auto, empty, and junk all fall through to classification
	assert.Equal(t, ModeRadiology, ParseMode("auto", "CT scan of the abdomen"))
	assert.Equal(t, ModeOrtho, ParseMode("", "distal radius fracture"))
	assert.Equal(t, ModeOrtho, ParseMode("cardiology", "distal radius fracture"))
}

func TestSectionTitles(t *testing.T) {
	assert.Equal(t, []string{
		"Clinical Question",
		"Key Imaging Findings",
		"Differential Diagnosis",
		"What to Look For",
		"Suggested Report Impression",
	}, SectionTitles(ModeRadiology))

	assert.Equal(t, []string{
		"Classification",
		"Risk Factors",
		"Associated Injuries",
		"Initial Management",
		"Definitive/Follow-up",
	}, SectionTitles(ModeOrtho))

	assert.Len(t, SectionTitles(ModeEmergency), 5)
}

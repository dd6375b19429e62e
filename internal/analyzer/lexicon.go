package analyzer

import "github.com/MKhiriev/go-mood-journal/models"

// Category is one family of distortion trigger phrases together with the
// advice shown when any of them occurs. Phrases are matched lowercase.
type Category struct {
	Type    models.DistortionType
	Phrases []string
	Tip     string
	Reframe string
}

// DefaultLexicon returns the built-in categories in reporting order. Each
// call returns fresh slices.
func DefaultLexicon() []Category {
	return []Category{
		{
			Type: models.NegativeSelfTalk,
			Phrases: []string{
				"always fail", "never", "can't", "worthless", "hopeless", "pointless",
				"hate myself", "no one", "nobody", "stupid", "should have", "shouldn't",
				"my fault", "i must", "i have to", "i need to",
			},
			Tip:     "Speak to yourself as a friend: challenge absolute negatives.",
			Reframe: "Replace “I can’t do anything right” with “Today was tough; I can learn for next time.”",
		},
		{
			Type:    models.Catastrophizing,
			Phrases: []string{"disaster", "ruined", "terrible", "awful", "doomed"},
			Tip:     "Pause. What’s truly likely, and what’s a step you control?",
			Reframe: "“This is a setback; here’s a small next step.”",
		},
		{
			Type:    models.ExternalLocus,
			Phrases: []string{"they made me", "because of them", "not my choice"},
			Tip:     "See your choices – even small ones – in any situation.",
			Reframe: "“I felt X when Y happened. Next time, I’ll voice a need or boundary.”",
		},
		{
			Type:    models.AllOrNothing,
			Phrases: []string{"always", "never", "every time", "nothing works"},
			Tip:     "Look for the grey. Find a recent exception.",
			Reframe: "“I always mess up” → “But last week I finished A correctly.”",
		},
		{
			Type:    models.OverGeneralization,
			Phrases: []string{"everyone", "everything", "everybody", "no one"},
			Tip:     "Be specific: who, when, where exactly?",
			Reframe: "“I felt dismissed in that meeting,” not “Everyone ignores me.”",
		},
	}
}

package models

// DistortionType names a pattern of unhelpful thinking.
type DistortionType string

const (
	NegativeSelfTalk   DistortionType = "Negative Self-talk"
	Catastrophizing    DistortionType = "Catastrophizing"
	ExternalLocus      DistortionType = "External Locus"
	AllOrNothing       DistortionType = "All-or-Nothing"
	OverGeneralization DistortionType = "Over-generalization"
)

// Finding is one detected distortion along with its advice.
type Finding struct {
	Type    DistortionType `json:"type"`
	Tip     string         `json:"tip"`
	Reframe string         `json:"reframe"`
}

// Analysis is the analyzer output for a piece of text. Score is an unbounded
// severity used for presentation only.
type Analysis struct {
	Findings []Finding `json:"findings"`
	Score    int       `json:"score"`
}

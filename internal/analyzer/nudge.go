package analyzer

import "github.com/MKhiriev/go-mood-journal/models"

var moodNudges = map[models.Mood]string{
	models.MoodHappy:     "Savor it. Write down one thing that made today good so you can find it again.",
	models.MoodCalm:      "Notice what helped you feel settled and keep it within reach.",
	models.MoodMeh:       "Flat days count too. Name one small thing you could do for yourself next.",
	models.MoodSad:       "Be gentle with yourself. Reaching out to someone you trust is a strong move.",
	models.MoodAngry:     "Your anger points at something that matters. What boundary does it ask for?",
	models.MoodAnxious:   "Breathe in for four, out for six. Then pick the one step you can take now.",
	models.MoodConfident: "Ride the momentum: set one concrete goal while you feel capable.",
}

const findingsNudge = "Your words sound heavy. Try the reframe below and read it back out loud."

// Nudge returns a motivational line for mood. When analysis has findings the
// line invites the writer to try a reframe instead.
func Nudge(mood models.Mood, analysis models.Analysis) string {
	if len(analysis.Findings) > 0 {
		return findingsNudge
	}
	if n, ok := moodNudges[mood]; ok {
		return n
	}
	return moodNudges[models.DefaultMood]
}

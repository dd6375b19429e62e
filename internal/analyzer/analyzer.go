// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package analyzer scans journal text for patterns of unhelpful thinking.
//
// Analysis is lexicon driven: every [Category] whose phrases occur in the
// text contributes one finding, and the score adds weight for exclamation
// runs and absolute words. The analyzer is pure and never fails.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
)

// exclamationThreshold is the number of "!" above which the score gains a point.
const exclamationThreshold = 3

var absoluteWords = regexp.MustCompile(`\b(never|nothing|no one)\b`)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Analyzer holds an immutable lexicon. It is safe for concurrent use.
type Analyzer struct {
	categories []Category
}

// New returns an Analyzer over categories, or over [DefaultLexicon] when none
// are given.
func New(categories ...Category) *Analyzer {
	if len(categories) == 0 {
		categories = DefaultLexicon()
	}

	own := make([]Category, len(categories))
	for i, c := range categories {
		phrases := make([]string, 0, len(c.Phrases))
		for _, p := range c.Phrases {
			if p = normalize(p); p != "" {
				phrases = append(phrases, p)
			}
		}
		c.Phrases = phrases
		own[i] = c
	}

	return &Analyzer{categories: own}
}

// Analyze reports the categories found in plain text and its severity score:
//
//	2 × findings + 1 if the text has more than three "!" + whole-word
//	occurrences of "never", "nothing" and "no one"
func (a *Analyzer) Analyze(text string) models.Analysis {
	lc := normalize(text)

	findings := make([]models.Finding, 0)
	for _, c := range a.categories {
		if containsAny(lc, c.Phrases) {
			findings = append(findings, models.Finding{
				Type:    c.Type,
				Tip:     c.Tip,
				Reframe: c.Reframe,
			})
		}
	}

	score := 2 * len(findings)
	if strings.Count(lc, "!") > exclamationThreshold {
		score++
	}
	score += len(absoluteWords.FindAllStringIndex(lc, -1))

	return models.Analysis{Findings: findings, Score: score}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// normalize lowercases s and folds typographic apostrophes. No Unicode
// normalization is applied, so compatibility forms such as the fullwidth "！"
// neither count as "!" nor match lexicon phrases.
func normalize(s string) string {
	return strings.ToLower(apostrophes.Replace(s))
}

package usecase

import "strings"

// defaultCrisisKeywords are matched case-insensitively as substrings of the
// user's message. Deliberately broad: a false positive shows a help line, a
// false negative reaches the model's own safety behavior.
var defaultCrisisKeywords = []string{
	"zelfmoord",
	"suïcide",
	"suicide",
	"er niet meer zijn",
	"uit het leven stappen",
	"mezelf iets aandoen",
	"mijzelf iets aandoen",
	"niet meer verder willen leven",
}

const defaultCrisisReferral = "Het spijt me dat je je zo voelt. Ik ben een juridische assistent en kan je hier niet goed bij helpen, maar er zijn mensen die dat wel kunnen. Bel 113 of 0800-0113 (gratis), of chat via www.113.nl. Zij zijn dag en nacht bereikbaar."

// CrisisGuard is a deterministic pre-filter that runs before the first model
// call. On a match the turn short-circuits to a fixed referral message: no
// model call, no tool execution.
type CrisisGuard struct {
	keywords []string
	referral string
}

func NewCrisisGuard() *CrisisGuard {
	return &CrisisGuard{
		keywords: defaultCrisisKeywords,
		referral: defaultCrisisReferral,
	}
}

// WithKeywords replaces the keyword list. An empty list disables the guard.
func (g *CrisisGuard) WithKeywords(keywords []string) *CrisisGuard {
	g.keywords = keywords
	return g
}

// WithReferral replaces the referral message
func (g *CrisisGuard) WithReferral(referral string) *CrisisGuard {
	if referral != "" {
		g.referral = referral
	}
	return g
}

// Check reports whether the text triggers the guard, and the referral
// message to emit when it does.
func (g *CrisisGuard) Check(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, keyword := range g.keywords {
		if strings.Contains(lowered, keyword) {
			return g.referral, true
		}
	}
	return "", false
}

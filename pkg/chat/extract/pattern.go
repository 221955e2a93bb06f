package extract

import (
	"context"
	"regexp"
	"strings"

	"admissions-chat-be/pkg/chat"
)

var (
	phonePattern    = regexp.MustCompile(`\d{10,}`)
	digitRunPattern = regexp.MustCompile(`[\d\s\-()+]*\d[\d\s\-()+]*`)
	nonLetterSpace  = regexp.MustCompile(`[^\p{L} ]+`)
)

// Words that show up in greetings, refusals and filler and are never part
// of a person's name. Keeps "Hello there" from being captured as a name.
var nameStopwords = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "there": {}, "ok": {}, "okay": {},
	"yes": {}, "no": {}, "not": {}, "thanks": {}, "thank": {}, "you": {},
	"please": {}, "my": {}, "name": {}, "is": {}, "number": {}, "phone": {},
	"i": {}, "am": {}, "the": {}, "share": {}, "give": {}, "will": {},
	"wont": {}, "dont": {}, "cant": {}, "want": {}, "sure": {}, "and": {},
	"what": {}, "who": {}, "how": {}, "when": {}, "where": {}, "why": {},
	"which": {}, "can": {}, "could": {}, "would": {}, "do": {}, "does": {},
	"about": {}, "course": {}, "courses": {}, "admission": {}, "fees": {},
	"details": {}, "provide": {}, "contact": {}, "call": {}, "me": {},
	"here": {}, "this": {}, "that": {}, "it": {}, "a": {}, "an": {},
}

// PatternExtractor is the deterministic slot-filling strategy: the phone is
// the first run of 10+ consecutive digits, the name is whatever letters
// remain once digits, punctuation and filler words are stripped.
type PatternExtractor struct{}

func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

var _ Extractor = &PatternExtractor{}

func (e *PatternExtractor) Extract(_ context.Context, text string) Result {
	result := Result{Intent: IntentOther}

	if phone := phonePattern.FindString(text); phone != "" {
		result.PhoneNumber = phone
	}

	if name := extractName(text); name != "" {
		result.Name = name
	}

	if result.Name != "" || result.PhoneNumber != "" {
		result.Intent = IntentProvideData
	}

	return result
}

func extractName(text string) string {
	// Drop digit runs (with their separators) before looking at words, so
	// "John Doe, 98765-43210" reduces to "John Doe".
	cleaned := digitRunPattern.ReplaceAllString(text, " ")
	cleaned = nonLetterSpace.ReplaceAllString(cleaned, " ")

	words := strings.Fields(cleaned)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := nameStopwords[strings.ToLower(w)]; stop {
			continue
		}
		kept = append(kept, w)
	}

	// A real name fits in a few words; longer remains are a sentence, not
	// a name.
	if len(kept) == 0 || len(kept) > 4 {
		return ""
	}

	name := strings.Join(kept, " ")
	if !chat.ValidName(name) {
		return ""
	}
	return name
}

package engine

import "strings"

// Confirmation and cancellation lexicons. Matching is whole-utterance after
// lowercasing and punctuation trimming, never substring: "yes please" is an
// affirmation, "yesterday I sent money" is not.

type intent int

const (
	intentUnknown intent = iota
	intentAffirm
	intentNegative
)

var affirmWords = map[string]struct{}{
	"yes":          {},
	"y":            {},
	"yes please":   {},
	"yep":          {},
	"yeah":         {},
	"sure":         {},
	"ok":           {},
	"okay":         {},
	"confirm":      {},
	"confirmed":    {},
	"correct":      {},
	"proceed":      {},
	"go ahead":     {},
	"do it":        {},
	"send it":      {},
	"that's right": {},
	"looks good":   {},
	"si":           {},
	"sí":           {},
}

var negativeWords = map[string]struct{}{
	"no":         {},
	"n":          {},
	"nope":       {},
	"nah":        {},
	"no thanks":  {},
	"don't":      {},
	"dont":       {},
	"stop":       {},
	"wait":       {},
	"not yet":    {},
	"no gracias": {},
}

var cancelWords = map[string]struct{}{
	"cancel":              {},
	"cancel it":           {},
	"cancel the transfer": {},
	"abort":               {},
	"stop":                {},
	"never mind":          {},
	"nevermind":           {},
	"forget it":           {},
	"quit":                {},
	"exit":                {},
}

func normalizeUtterance(utterance string) string {
	trimmed := strings.ToLower(strings.TrimSpace(utterance))
	return strings.TrimRight(trimmed, ".!?")
}

// classifyConfirmation reads a yes/no answer to the confirmation question.
// Cancellation phrases count as negative here: the user is looking at the
// final summary and backing out.
func classifyConfirmation(utterance string) intent {
	normalized := normalizeUtterance(utterance)
	if _, ok := affirmWords[normalized]; ok {
		return intentAffirm
	}
	if _, ok := negativeWords[normalized]; ok {
		return intentNegative
	}
	if _, ok := cancelWords[normalized]; ok {
		return intentNegative
	}
	return intentUnknown
}

// isCancellation reports whether a mid-collection utterance abandons the
// transfer. It is stricter than the negative lexicon: a bare "no" during
// collection is treated as filler, not a cancellation.
func isCancellation(utterance string) bool {
	_, ok := cancelWords[normalizeUtterance(utterance)]
	return ok
}

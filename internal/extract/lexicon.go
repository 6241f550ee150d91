package extract

import "strings"

// fillerWords is the greeting/filler lexicon. An utterance made up entirely
// of these words carries no field information.
var fillerWords = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hola": true,
	"good": true, "morning": true, "afternoon": true, "evening": true, "night": true,
	"thanks": true, "thank": true, "you": true, "please": true,
	"ok": true, "okay": true, "sure": true, "alright": true,
	"help": true, "hmm": true, "um": true, "uh": true,
}

// excludedWords are tokens that can never be part of a beneficiary name:
// greetings, field vocabulary, currency codes, country and delivery words.
var excludedWords = map[string]bool{
	"the": true, "a": true, "an": true,
	"hello": true, "hi": true, "hey": true, "hola": true,
	"good": true, "morning": true, "afternoon": true, "evening": true, "night": true,
	"thanks": true, "thank": true, "please": true,
	"yes": true, "no": true, "ok": true, "okay": true, "sure": true, "alright": true,
	"send": true, "money": true, "transfer": true,
	"dollars": true, "pesos": true, "lempiras": true, "quetzales": true,
	"usd": true, "mxn": true, "cop": true, "hnl": true, "dop": true, "nio": true, "gtq": true,
	"bank": true, "card": true, "wallet": true, "pickup": true, "cash": true, "mobile": true, "wire": true,
	"mexico": true, "honduras": true, "colombia": true, "nicaragua": true, "guatemala": true,
	"salvador": true, "dominican": true, "dominicana": true, "republic": true, "republica": true,
	"change": true, "update": true, "set": true, "amount": true, "currency": true, "country": true,
	"account": true, "number": true, "name": true, "delivery": true, "method": true,
	"to": true, "for": true, "with": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "my": true, "me": true,
	"her": true, "his": true, "him": true, "she": true, "he": true, "they": true,
	"their": true, "this": true, "that": true, "it": true, "your": true, "i": true,
	"someone": true, "somebody": true, "person": true, "recipient": true, "beneficiary": true,
	"want": true, "need": true, "would": true, "like": true, "help": true,
}

// excludedPhrases are multi-word instruction fragments that the name
// matcher must never mistake for a beneficiary.
var excludedPhrases = map[string]bool{
	"send money": true, "send money to": true, "send to": true, "money to": true,
	"want to send": true, "help me send": true, "i want to": true,
	"would like to": true, "need to send": true, "to send": true,
}

// IsFiller reports whether the utterance is a greeting or otherwise carries
// no extractable information: too short to mean anything, or composed only
// of filler lexicon words.
func IsFiller(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	cleaned := strings.TrimFunc(trimmed, func(r rune) bool {
		return r == '!' || r == '.' || r == ',' || r == '?'
	})
	if len(cleaned) < 2 {
		return true
	}
	tokens := strings.Fields(strings.ToLower(cleaned))
	for _, token := range tokens {
		if !fillerWords[strings.Trim(token, "!.,?")] {
			return false
		}
	}
	return true
}

// Package extract scans free-form utterances for field candidates.
//
// One matcher exists per field, ported to plain pattern rules: a numeric
// matcher for amounts, attached or spoken codes for currency, a prefix
// pattern for account numbers, a capitalized-name heuristic for the
// beneficiary, and alias lookups for country and delivery method. Matchers
// only run for fields that are still missing, so an already-filled field is
// never re-extracted by a coincidental substring; corrections are the only
// path that overwrites a filled field.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/avelarq/remesa/pkg/catalog"
	"github.com/avelarq/remesa/pkg/domain"
)

var (
	amountDollar = regexp.MustCompile(`\$\s*([0-9]+(?:\.[0-9]{1,2})?)`)
	// Trailing letters absorb attached currency codes ("250.50usd") so the
	// fractional part stays inside the capture.
	amountBare = regexp.MustCompile(`\b([0-9]{1,6}(?:\.[0-9]{1,2})?)(?:[A-Za-z]{1,3})?\b`)
	// Letter-prefixed codes are account numbers, never amounts.
	amountMask = regexp.MustCompile(`(?i)\b[A-Z]{2,4}-?[0-9]{4,}\b`)

	currencyAttached = regexp.MustCompile(`[0-9]+(?:\.[0-9]{1,2})?([A-Z]{1,3})\b`)
	currencyCode     = regexp.MustCompile(`\b([A-Z]{3})\b`)

	accountKeyword = regexp.MustCompile(`(?i)(?:account number|account#|account|acc|cuenta número|cuenta)\s*(?:is\s+|:\s*)?([A-Za-z0-9-]+)`)
	accountAC      = regexp.MustCompile(`(?i)\b(AC[A-Z0-9]{6,})\b`)
	accountACC     = regexp.MustCompile(`(?i)\b(ACC-?[A-Z0-9]{6,})\b`)
	accountPrefix  = regexp.MustCompile(`(?i)\b([A-Z]{2,4}-?[0-9]{6,})\b`)
	accountDigits  = regexp.MustCompile(`\b([0-9]{8,})\b`)

	// Keyword-led names ("to Daniela Varela", "recipient is Ana Ruiz") are
	// preferred; bare title-case runs ("Maria Lopez") are the fallback.
	nameAfterKeyword = regexp.MustCompile(`\b(?:to|for|recipient is|recipient|beneficiary is|beneficiary|named|called|name is)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
	nameBare         = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)

	singleWord = regexp.MustCompile(`^[A-Za-zÀ-ÿ]+$`)
)

// Extract proposes zero or more candidates for the fields still missing.
// It never proposes a candidate for a filled field. A greeting or otherwise
// uninformative utterance short-circuits to no candidates at all, so the
// caller can respond conversationally without touching state.
func Extract(utterance string, missing []domain.Field) []domain.Candidate {
	if IsFiller(utterance) {
		return nil
	}

	want := make(map[domain.Field]bool, len(missing))
	for _, f := range missing {
		want[f] = true
	}

	var candidates []domain.Candidate
	add := func(f domain.Field, raw string) {
		candidates = append(candidates, domain.Candidate{Field: f, Raw: raw})
	}

	if want[domain.FieldAmount] {
		if raw, ok := matchAmount(utterance); ok {
			add(domain.FieldAmount, raw)
		}
	}
	if want[domain.FieldCurrency] {
		if code, ok := matchCurrency(utterance); ok {
			add(domain.FieldCurrency, code)
		}
	}
	if want[domain.FieldCountry] {
		if country, ok := matchCountry(utterance); ok {
			add(domain.FieldCountry, country)
		}
	}
	if want[domain.FieldAccountNumber] {
		if raw, ok := matchAccount(utterance); ok {
			add(domain.FieldAccountNumber, raw)
		}
	}
	if want[domain.FieldBeneficiaryName] {
		if name, ok := matchName(utterance); ok {
			add(domain.FieldBeneficiaryName, name)
		}
	}
	if want[domain.FieldDeliveryMethod] {
		if raw, ok := matchDelivery(utterance); ok {
			add(domain.FieldDeliveryMethod, raw)
		}
	}

	// A lone unrecognized word while the country is the open question is
	// almost always a country attempt ("PERU"). Propose it so validation can
	// answer with the supported list instead of a blank re-prompt. Skipped
	// while the name is still open, because then the word may be a name.
	if len(candidates) == 0 && want[domain.FieldCountry] && !want[domain.FieldBeneficiaryName] {
		if word, ok := loneWord(utterance); ok {
			add(domain.FieldCountry, word)
		}
	}

	return candidates
}

func matchAmount(utterance string) (string, bool) {
	masked := amountMask.ReplaceAllString(utterance, "")
	for _, re := range []*regexp.Regexp{amountDollar, amountBare} {
		for _, m := range re.FindAllStringSubmatch(masked, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if value >= 1 && value <= 1_000_000 {
				return m[1], true
			}
		}
	}
	return "", false
}

func matchCurrency(utterance string) (string, bool) {
	upper := strings.ToUpper(utterance)

	// "100usd" or the truncated "100U": resolve attached letters to a full
	// code, by exact match first, then by unique-enough prefix.
	if m := currencyAttached.FindStringSubmatch(upper); m != nil {
		letters := m[1]
		if _, ok := catalog.CurrencyAliases()[letters]; ok {
			return letters, true
		}
		for _, code := range catalog.SupportedCurrencies() {
			if strings.HasPrefix(code, letters) {
				return code, true
			}
		}
	}

	if m := currencyCode.FindStringSubmatch(upper); m != nil {
		if _, ok := catalog.CurrencyAliases()[m[1]]; ok {
			return m[1], true
		}
	}

	lower := strings.ToLower(utterance)
	for code, names := range catalog.CurrencyAliases() {
		for _, name := range names {
			if wordMatch(lower, name) {
				return code, true
			}
		}
	}
	return "", false
}

func matchCountry(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)
	for country, variants := range catalog.CountryVariants() {
		for _, variant := range variants {
			if wordMatch(lower, variant) {
				return country, true
			}
		}
	}
	return "", false
}

func matchAccount(utterance string) (string, bool) {
	// Mask country names first so "COLOMBIA" never reads as an account.
	masked := utterance
	for country := range catalog.CountryVariants() {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(country) + `\b`)
		masked = re.ReplaceAllString(masked, "")
	}

	for _, re := range []*regexp.Regexp{accountKeyword, accountAC, accountACC, accountPrefix, accountDigits} {
		for _, m := range re.FindAllStringSubmatch(masked, -1) {
			account := strings.ToUpper(strings.TrimSpace(m[1]))
			if account == "" {
				continue
			}
			// A capture with both letters and digits is an account form; a
			// pure number needs the minimum length to avoid swallowing
			// amounts, and a pure word ("account is pending") is noise.
			hasLetter := strings.IndexFunc(account, isLetter) >= 0
			hasDigit := strings.IndexAny(account, "0123456789") >= 0
			if hasLetter && hasDigit && len(account) >= 6 {
				return account, true
			}
			if !hasLetter && len(account) >= 8 {
				return account, true
			}
		}
	}
	return "", false
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func matchName(utterance string) (string, bool) {
	for _, re := range []*regexp.Regexp{nameAfterKeyword, nameBare} {
		for _, m := range re.FindAllStringSubmatch(utterance, -1) {
			// Trim greeting and noise words at the edges of the run
			// ("Hello Maria Lopez").
			tokens := strings.Fields(m[1])
			for len(tokens) > 0 && excludedWords[strings.ToLower(tokens[0])] {
				tokens = tokens[1:]
			}
			for len(tokens) > 0 && excludedWords[strings.ToLower(tokens[len(tokens)-1])] {
				tokens = tokens[:len(tokens)-1]
			}
			if len(tokens) == 0 {
				continue
			}
			name := strings.Join(tokens, " ")
			if looksLikeName(name) {
				return name, true
			}
		}
	}
	return "", false
}

// looksLikeName rejects title-case runs that are really field vocabulary:
// country names, currencies, delivery words, or instruction fragments.
func looksLikeName(name string) bool {
	lower := strings.ToLower(name)
	if excludedPhrases[lower] {
		return false
	}
	if _, ok := catalog.ResolveCountry(lower); ok {
		return false
	}
	if _, ok := catalog.ResolveCurrency(lower); ok {
		return false
	}
	if _, ok := catalog.ResolveDeliveryMethod(lower); ok {
		return false
	}
	for _, token := range strings.Fields(lower) {
		if excludedWords[token] {
			return false
		}
	}
	return true
}

// deliveryKeys holds delivery aliases longest first, so "cash pickup" wins
// over "cash" and the matched span is deterministic.
var deliveryKeys = func() []string {
	keys := make([]string, 0, len(catalog.DeliveryAliases()))
	for alias := range catalog.DeliveryAliases() {
		keys = append(keys, alias)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

func matchDelivery(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)
	for _, alias := range deliveryKeys {
		if strings.Contains(lower, alias) {
			return alias, true
		}
	}
	return "", false
}

func loneWord(utterance string) (string, bool) {
	trimmed := strings.TrimSpace(utterance)
	if !singleWord.MatchString(trimmed) {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	if fillerWords[lower] || excludedWords[lower] {
		return "", false
	}
	return trimmed, true
}

func wordMatch(haystack, needle string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	return re.MatchString(haystack)
}

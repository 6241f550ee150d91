package extract

import (
	"regexp"
	"strings"

	"github.com/avelarq/remesa/pkg/domain"
)

// correctionPattern recognizes the imperative "{change|update|set} {field}
// to {value}" form. The field words are resolved through fieldSynonyms; the
// remainder of the utterance is the proposed raw value.
var correctionPattern = regexp.MustCompile(`(?i)\b(?:change|update|set)\s+(?:the\s+|my\s+)?([a-zA-Z][a-zA-Z ]*?)\s+to\s+(.+)$`)

// fieldSynonyms maps user vocabulary to fields for targeted corrections.
var fieldSynonyms = map[string]domain.Field{
	"amount":              domain.FieldAmount,
	"how much":            domain.FieldAmount,
	"money":               domain.FieldAmount,
	"currency":            domain.FieldCurrency,
	"country":             domain.FieldCountry,
	"destination":         domain.FieldCountry,
	"destination country": domain.FieldCountry,
	"name":                domain.FieldBeneficiaryName,
	"beneficiary":         domain.FieldBeneficiaryName,
	"beneficiary name":    domain.FieldBeneficiaryName,
	"recipient":           domain.FieldBeneficiaryName,
	"account":             domain.FieldAccountNumber,
	"account number":      domain.FieldAccountNumber,
	"beneficiary account": domain.FieldAccountNumber,
	"delivery":            domain.FieldDeliveryMethod,
	"method":              domain.FieldDeliveryMethod,
	"delivery method":     domain.FieldDeliveryMethod,
}

// DetectCorrection recognizes a targeted "change X to Y" intent and returns
// the override candidate. Corrections bypass the missing-field gate: they
// apply to filled fields too. When the field words do not resolve to a known
// field the utterance is left for normal extraction.
func DetectCorrection(utterance string) (domain.Candidate, bool) {
	m := correctionPattern.FindStringSubmatch(utterance)
	if m == nil {
		return domain.Candidate{}, false
	}

	field, ok := fieldSynonyms[strings.ToLower(strings.TrimSpace(m[1]))]
	if !ok {
		return domain.Candidate{}, false
	}

	value := strings.TrimRight(strings.TrimSpace(m[2]), ".!?")
	if value == "" {
		return domain.Candidate{}, false
	}

	return domain.Candidate{Field: field, Raw: value}, true
}

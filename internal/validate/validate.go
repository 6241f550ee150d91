// Package validate maps raw candidate values to accepted typed values.
// Every function is pure: a raw string either becomes the canonical stored
// form for its field or a RejectionError carrying the expected-format hint.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avelarq/remesa/pkg/catalog"
	"github.com/avelarq/remesa/pkg/domain"
)

// RejectionError reports that a raw value did not pass validation for a
// field. Hint holds the human-readable expected format; the raw value is
// discarded by the caller and never stored.
type RejectionError struct {
	Field domain.Field
	Raw   string
	Hint  string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Field, e.Raw, e.Hint)
}

func reject(f domain.Field, raw string) error {
	return &RejectionError{Field: f, Raw: raw, Hint: catalog.Lookup(f).Hint}
}

// Amount parses a positive decimal amount. Currency symbols, thousands
// separators and surrounding whitespace are tolerated.
func Amount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, reject(domain.FieldAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, reject(domain.FieldAmount, raw)
	}
	return amount, nil
}

// Currency resolves a currency code or spoken name to its canonical code.
func Currency(raw string) (string, error) {
	code, ok := catalog.ResolveCurrency(raw)
	if !ok {
		return "", reject(domain.FieldCurrency, raw)
	}
	return code, nil
}

// accountPattern accepts an optional 1-4 letter prefix, an optional hyphen,
// and at least six alphanumerics: AC12629233, ACC-123456, AC9Q834982.
var accountPattern = regexp.MustCompile(`^(?:[A-Z]{1,4}-?)?[A-Z0-9]{6,}$`)

var pureDigits = regexp.MustCompile(`^[0-9]+$`)

// AccountNumber validates and canonicalizes a beneficiary account number.
// Pure numerics need at least eight digits and are stored with an ACC-
// prefix; embedded whitespace always rejects.
func AccountNumber(raw string) (string, error) {
	account := strings.ToUpper(strings.TrimSpace(raw))
	if account == "" || strings.ContainsAny(account, " \t") {
		return "", reject(domain.FieldAccountNumber, raw)
	}
	if pureDigits.MatchString(account) {
		if len(account) < 8 {
			return "", reject(domain.FieldAccountNumber, raw)
		}
		return "ACC-" + account, nil
	}
	if !accountPattern.MatchString(account) {
		return "", reject(domain.FieldAccountNumber, raw)
	}
	return account, nil
}

// BeneficiaryName accepts any non-empty trimmed name. The name is
// display-only and never blocks progress, so no further constraint applies.
func BeneficiaryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", reject(domain.FieldBeneficiaryName, raw)
	}
	return name, nil
}

// Country resolves a country spelling or alias to the canonical stored form.
func Country(raw string) (string, error) {
	country, ok := catalog.ResolveCountry(raw)
	if !ok {
		return "", reject(domain.FieldCountry, raw)
	}
	return country, nil
}

// DeliveryMethod resolves a delivery method, tolerating surrounding words
// ("by cash pickup please" still resolves to Cash Pickup).
func DeliveryMethod(raw string) (string, error) {
	if method, ok := catalog.ResolveDeliveryMethod(raw); ok {
		return method, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for alias, method := range catalog.DeliveryAliases() {
		if strings.Contains(normalized, alias) {
			return method, nil
		}
	}
	return "", reject(domain.FieldDeliveryMethod, raw)
}

// Apply validates a candidate and, on success, writes the typed value into
// the details. On rejection the details are untouched and the returned error
// is a *RejectionError.
func Apply(d *domain.Details, c domain.Candidate) error {
	switch c.Field {
	case domain.FieldAmount:
		amount, err := Amount(c.Raw)
		if err != nil {
			return err
		}
		d.Amount = &amount
	case domain.FieldCurrency:
		code, err := Currency(c.Raw)
		if err != nil {
			return err
		}
		d.Currency = code
	case domain.FieldAccountNumber:
		account, err := AccountNumber(c.Raw)
		if err != nil {
			return err
		}
		d.AccountNumber = account
	case domain.FieldBeneficiaryName:
		name, err := BeneficiaryName(c.Raw)
		if err != nil {
			return err
		}
		d.BeneficiaryName = name
	case domain.FieldCountry:
		country, err := Country(c.Raw)
		if err != nil {
			return err
		}
		d.Country = country
	case domain.FieldDeliveryMethod:
		method, err := DeliveryMethod(c.Raw)
		if err != nil {
			return err
		}
		d.DeliveryMethod = method
	default:
		return fmt.Errorf("unknown field %q", c.Field)
	}
	return nil
}

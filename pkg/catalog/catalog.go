// Package catalog holds the static definitions of the transfer fields: their
// display labels, expected-format hints, prompt priority groups, and the
// supported currency, country, and delivery method enumerations with their
// spoken aliases. It is data only; validation and extraction live elsewhere.
package catalog

import (
	"sort"
	"strings"

	"github.com/avelarq/remesa/pkg/domain"
)

// Spec describes one field of the transfer form.
type Spec struct {
	Field domain.Field
	// Label is the canonical display name used in summaries.
	Label string
	// Hint is the human-readable expected format, surfaced on rejection.
	Hint string
	// Group is the prompt priority group. Lower groups are asked first.
	Group int
}

var specs = map[domain.Field]Spec{
	domain.FieldBeneficiaryName: {
		Field: domain.FieldBeneficiaryName,
		Label: "Beneficiary Name",
		Hint:  `a person's name (e.g. "John Smith" or "Maria Garcia")`,
		Group: 0,
	},
	domain.FieldAccountNumber: {
		Field: domain.FieldAccountNumber,
		Label: "Beneficiary Account",
		Hint:  "account numbers look like AC12629233 or ACC-123456",
		Group: 0,
	},
	domain.FieldAmount: {
		Field: domain.FieldAmount,
		Label: "Amount",
		Hint:  `a positive number (e.g. "100", "$100" or "100.50")`,
		Group: 1,
	},
	domain.FieldCurrency: {
		Field: domain.FieldCurrency,
		Label: "Currency",
		Hint:  "a currency code or name, one of: " + strings.Join(SupportedCurrencies(), ", "),
		Group: 1,
	},
	domain.FieldCountry: {
		Field: domain.FieldCountry,
		Label: "Country",
		Hint:  "one of: " + strings.Join(SupportedCountries(), ", "),
		Group: 2,
	},
	domain.FieldDeliveryMethod: {
		Field: domain.FieldDeliveryMethod,
		Label: "Delivery Method",
		Hint:  "one of: " + strings.Join(DeliveryMethods(), ", "),
		Group: 3,
	},
}

// Lookup returns the spec for a field. It panics on an unknown field, which
// indicates a programming error rather than bad user input.
func Lookup(f domain.Field) Spec {
	spec, ok := specs[f]
	if !ok {
		panic("catalog: unknown field " + string(f))
	}
	return spec
}

// SupportedCurrencies returns the accepted currency codes, sorted.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencyAliases))
	for code := range currencyAliases {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SupportedCountries returns the canonical country spellings, sorted.
func SupportedCountries() []string {
	countries := make([]string, 0, len(countryVariants))
	for country := range countryVariants {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

// DeliveryMethods returns the canonical delivery methods in display order.
func DeliveryMethods() []string {
	return []string{"Bank Transfer", "Mobile Wallet", "Cash Pickup", "Card"}
}

// ResolveCurrency maps a code or spoken name ("usd", "dollars", "lempiras")
// to its canonical currency code.
func ResolveCurrency(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}
	upper := strings.ToUpper(normalized)
	if _, ok := currencyAliases[upper]; ok {
		return upper, true
	}
	for code, names := range currencyAliases {
		for _, name := range names {
			if normalized == name {
				return code, true
			}
		}
	}
	return "", false
}

// ResolveCountry maps a variant spelling ("méxico", "dominican republic",
// "guate") to the canonical stored form.
func ResolveCountry(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}
	for country, variants := range countryVariants {
		for _, variant := range variants {
			if normalized == variant {
				return country, true
			}
		}
	}
	return "", false
}

// ResolveDeliveryMethod maps an alias ("wire", "wallet", "pickup") to the
// canonical delivery method.
func ResolveDeliveryMethod(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}
	method, ok := deliveryAliases[normalized]
	return method, ok
}

// CurrencyFor returns the local currency of a canonical country. It is used
// for display only: the engine never auto-fills currency from country, both
// stay independent user-set fields.
func CurrencyFor(country string) (string, bool) {
	code, ok := countryCurrency[country]
	return code, ok
}

// CurrencyAliases exposes the code -> spoken names table for the extractor.
func CurrencyAliases() map[string][]string { return currencyAliases }

// CountryVariants exposes the canonical -> variant spellings table for the
// extractor.
func CountryVariants() map[string][]string { return countryVariants }

// DeliveryAliases exposes the alias -> canonical method table for the
// extractor.
func DeliveryAliases() map[string]string { return deliveryAliases }

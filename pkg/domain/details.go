package domain

import "github.com/shopspring/decimal"

// Details holds the validated values collected so far for one transfer.
// A zero value (nil Amount, empty string) means the field has not been
// collected yet. Values are only ever written after passing validation;
// Details never holds a raw, unvalidated string.
type Details struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	AccountNumber   string           `json:"accountNumber,omitempty"`
	BeneficiaryName string           `json:"beneficiaryName,omitempty"`
	Country         string           `json:"country,omitempty"`
	DeliveryMethod  string           `json:"deliveryMethod,omitempty"`
}

// IsSet reports whether the given field holds a collected value.
func (d *Details) IsSet(f Field) bool {
	switch f {
	case FieldAmount:
		return d.Amount != nil
	case FieldCurrency:
		return d.Currency != ""
	case FieldAccountNumber:
		return d.AccountNumber != ""
	case FieldBeneficiaryName:
		return d.BeneficiaryName != ""
	case FieldCountry:
		return d.Country != ""
	case FieldDeliveryMethod:
		return d.DeliveryMethod != ""
	}
	return false
}

// promptPriority is the fixed order used both for extraction context and for
// choosing the next field to ask about: the beneficiary group first, then the
// money group, then country, then delivery method.
var promptPriority = []Field{
	FieldBeneficiaryName,
	FieldAccountNumber,
	FieldAmount,
	FieldCurrency,
	FieldCountry,
	FieldDeliveryMethod,
}

// Missing returns every field not collected yet, in prompt priority order.
// The beneficiary name is included here so the extractor keeps looking for
// it, even though it never blocks completion.
func (d *Details) Missing() []Field {
	var missing []Field
	for _, f := range promptPriority {
		if !d.IsSet(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// MissingRequired is Missing without the optional beneficiary name.
func (d *Details) MissingRequired() []Field {
	var missing []Field
	for _, f := range d.Missing() {
		if f == FieldBeneficiaryName {
			continue
		}
		missing = append(missing, f)
	}
	return missing
}

// Complete reports whether every required field has been collected.
// The beneficiary name is display-only and does not gate completion.
func (d *Details) Complete() bool {
	return len(d.MissingRequired()) == 0
}

// Copy returns a deep copy, so a stored snapshot cannot alias the live state.
func (d *Details) Copy() Details {
	out := *d
	if d.Amount != nil {
		amount := *d.Amount
		out.Amount = &amount
	}
	return out
}

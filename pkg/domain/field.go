package domain

// Field identifies one of the structured data points collected for a transfer.
type Field string

const (
	FieldAmount          Field = "amount"
	FieldCurrency        Field = "currency"
	FieldAccountNumber   Field = "accountNumber"
	FieldBeneficiaryName Field = "beneficiaryName"
	FieldCountry         Field = "country"
	FieldDeliveryMethod  Field = "deliveryMethod"
)

// Fields returns every field in canonical display order.
// The summary composer and persistence layers rely on this order being stable.
func Fields() []Field {
	return []Field{
		FieldAmount,
		FieldCurrency,
		FieldBeneficiaryName,
		FieldAccountNumber,
		FieldCountry,
		FieldDeliveryMethod,
	}
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	switch f {
	case FieldAmount, FieldCurrency, FieldAccountNumber,
		FieldBeneficiaryName, FieldCountry, FieldDeliveryMethod:
		return true
	}
	return false
}

// Candidate is an unvalidated (Field, raw value) pair proposed by the
// extractor or the correction detector. Candidates are ephemeral: they are
// validated the same turn they are produced and never persisted.
type Candidate struct {
	Field Field
	Raw   string
}

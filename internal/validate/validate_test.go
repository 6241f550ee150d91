package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarq/remesa/pkg/domain"
)

func TestAmount(t *testing.T) {
	for raw, want := range map[string]string{
		"100":      "100",
		"$100":     "100",
		"2500.50":  "2500.5",
		"$ 1,250":  "1250",
		" 42.07 ":  "42.07",
		"0.01":     "0.01",
	} {
		got, err := Amount(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got.String(), "raw %q", raw)
	}

	for _, raw := range []string{"", "abc", "0", "-5", "12.3.4", "$"} {
		_, err := Amount(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestCurrency(t *testing.T) {
	for raw, want := range map[string]string{
		"USD":            "USD",
		"usd":            "USD",
		"dollars":        "USD",
		"lempiras":       "HNL",
		"mexican pesos":  "MXN",
	} {
		got, err := Currency(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Currency("EUR")
	require.Error(t, err)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, domain.FieldCurrency, rejection.Field)
	assert.Equal(t, "EUR", rejection.Raw)
	assert.NotEmpty(t, rejection.Hint)
}

func TestAccountNumber(t *testing.T) {
	for raw, want := range map[string]string{
		"AC12629233":  "AC12629233",
		"ac12629233":  "AC12629233",
		"ACC-445566":  "ACC-445566",
		"AC9Q834982":  "AC9Q834982",
		"29384230984": "ACC-29384230984", // pure digits get the ACC- prefix
	} {
		got, err := AccountNumber(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got, "raw %q", raw)
	}

	for _, raw := range []string{"", "AC12", "1234567", "AC 12629233", "!!!"} {
		_, err := AccountNumber(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestCountry(t *testing.T) {
	for raw, want := range map[string]string{
		"mexico":             "MEXICO",
		"México":             "MEXICO",
		"dominican republic": "REPUBLICA DOMINICANA",
		"rd":                 "REPUBLICA DOMINICANA",
		"el salvador":        "EL SALVADOR",
	} {
		got, err := Country(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	_, err := Country("Peru")
	assert.Error(t, err)
}

func TestDeliveryMethod(t *testing.T) {
	for raw, want := range map[string]string{
		"cash pickup":            "Cash Pickup",
		"Bank Transfer":          "Bank Transfer",
		"wire":                   "Bank Transfer",
		"by mobile wallet please": "Mobile Wallet",
		"debit card":             "Card",
	} {
		got, err := DeliveryMethod(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	_, err := DeliveryMethod("carrier pigeon")
	assert.Error(t, err)
}

// TestApplyLeavesDetailsUntouchedOnRejection pins the all-or-nothing write:
// a rejected candidate must not clobber a previously validated value.
func TestApplyLeavesDetailsUntouchedOnRejection(t *testing.T) {
	var d domain.Details
	require.NoError(t, Apply(&d, domain.Candidate{Field: domain.FieldCurrency, Raw: "USD"}))
	require.Equal(t, "USD", d.Currency)

	err := Apply(&d, domain.Candidate{Field: domain.FieldCurrency, Raw: "ZZZ"})
	require.Error(t, err)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "USD", d.Currency)
}

func TestApplyAllFields(t *testing.T) {
	var d domain.Details
	for _, c := range []domain.Candidate{
		{Field: domain.FieldAmount, Raw: "$100"},
		{Field: domain.FieldCurrency, Raw: "usd"},
		{Field: domain.FieldAccountNumber, Raw: "ac12629233"},
		{Field: domain.FieldBeneficiaryName, Raw: " Daniela Varela "},
		{Field: domain.FieldCountry, Raw: "mexico"},
		{Field: domain.FieldDeliveryMethod, Raw: "cash pickup"},
	} {
		require.NoError(t, Apply(&d, c))
	}

	assert.True(t, d.Complete())
	assert.Equal(t, "100", d.Amount.String())
	assert.Equal(t, "Daniela Varela", d.BeneficiaryName)
	assert.Equal(t, "AC12629233", d.AccountNumber)

	err := Apply(&d, domain.Candidate{Field: domain.Field("bogus"), Raw: "x"})
	assert.Error(t, err)
}

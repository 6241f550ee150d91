package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avelarq/remesa/internal/validate"
	"github.com/avelarq/remesa/pkg/catalog"
	"github.com/avelarq/remesa/pkg/domain"
)

// Response composition. The response shape is a contract with the host:
// whenever at least one field is set, the collected-so-far summary precedes
// any rejection hints, which precede the next prompt.

func compose(parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "\n\n")
}

// collectedSummary renders every collected field in canonical display order.
// Returns "" when nothing has been collected yet.
func collectedSummary(d *domain.Details) string {
	var lines []string

	switch {
	case d.Amount != nil && d.Currency != "":
		lines = append(lines, fmt.Sprintf("- **Amount:** %s %s", d.Amount.String(), d.Currency))
	case d.Amount != nil:
		lines = append(lines, fmt.Sprintf("- **Amount:** %s", d.Amount.String()))
	case d.Currency != "":
		lines = append(lines, fmt.Sprintf("- **Currency:** %s", d.Currency))
	}

	switch {
	case d.BeneficiaryName != "" && d.AccountNumber != "":
		lines = append(lines, fmt.Sprintf("- **Beneficiary:** %s (Account: %s)", d.BeneficiaryName, d.AccountNumber))
	case d.BeneficiaryName != "":
		lines = append(lines, fmt.Sprintf("- **Beneficiary Name:** %s", d.BeneficiaryName))
	case d.AccountNumber != "":
		lines = append(lines, fmt.Sprintf("- **Beneficiary Account:** %s", d.AccountNumber))
	}

	if d.Country != "" {
		lines = append(lines, fmt.Sprintf("- **Country:** %s", d.Country))
	}
	if d.DeliveryMethod != "" {
		lines = append(lines, fmt.Sprintf("- **Delivery Method:** %s", d.DeliveryMethod))
	}

	if len(lines) == 0 {
		return ""
	}
	return "Here's what I have so far:\n" + strings.Join(lines, "\n")
}

// confirmationPrompt renders the full summary plus the yes/no question asked
// while the session is (or just became) ReadyToConfirm.
func confirmationPrompt(state *domain.State) string {
	d := &state.Details

	beneficiary := d.AccountNumber
	if d.BeneficiaryName != "" {
		beneficiary = fmt.Sprintf("%s (Account: %s)", d.BeneficiaryName, d.AccountNumber)
	}

	country := d.Country
	if local, ok := catalog.CurrencyFor(d.Country); ok && local != d.Currency {
		country = fmt.Sprintf("%s (local currency: %s)", d.Country, local)
	}

	return fmt.Sprintf(
		"Great, I have everything!\n\n"+
			"**Amount:** %s %s\n"+
			"**Beneficiary:** %s\n"+
			"**Country:** %s\n"+
			"**Delivery Method:** %s\n\n"+
			"Would you like to proceed with the transfer?",
		d.Amount.String(), d.Currency, beneficiary, country, d.DeliveryMethod,
	)
}

// nextPrompt asks for the highest-priority missing required field.
func nextPrompt(state *domain.State) string {
	missing := state.Details.MissingRequired()
	if len(missing) == 0 {
		return confirmationPrompt(state)
	}
	return promptFor(missing[0], &state.Details)
}

func promptFor(f domain.Field, d *domain.Details) string {
	switch f {
	case domain.FieldAccountNumber:
		if d.BeneficiaryName != "" {
			return fmt.Sprintf("Please provide the account number for %s. Account numbers look like AC12629233 or ACC-123456.", d.BeneficiaryName)
		}
		return "Who is the recipient? You can give me the beneficiary's name or account number (account numbers look like AC12629233 or ACC-123456)."
	case domain.FieldAmount:
		return "How much would you like to send?"
	case domain.FieldCurrency:
		return "What currency would you like to use? Supported: " + strings.Join(catalog.SupportedCurrencies(), ", ") + "."
	case domain.FieldCountry:
		return "Which country should the money be sent to? Supported: " + strings.Join(catalog.SupportedCountries(), ", ") + "."
	case domain.FieldDeliveryMethod:
		return "How would you like the money to be delivered? (Bank Transfer, Mobile Wallet, Cash Pickup or Card)"
	default:
		return "What would you like to update?"
	}
}

// fillerResponse handles greetings and uninformative turns: greet, show
// progress if any, and re-ask for the next field. State is never mutated.
func fillerResponse(state *domain.State) string {
	return compose(
		"Hello! I can help you send money to family and friends abroad.",
		collectedSummary(&state.Details),
		nextPrompt(state),
	)
}

func updatedNote(f domain.Field, d *domain.Details) string {
	spec := catalog.Lookup(f)
	value := ""
	switch f {
	case domain.FieldAmount:
		value = d.Amount.String()
	case domain.FieldCurrency:
		value = d.Currency
	case domain.FieldAccountNumber:
		value = d.AccountNumber
	case domain.FieldBeneficiaryName:
		value = d.BeneficiaryName
	case domain.FieldCountry:
		value = d.Country
	case domain.FieldDeliveryMethod:
		value = d.DeliveryMethod
	}
	return fmt.Sprintf("Got it, I updated the %s to %s.", strings.ToLower(spec.Label), value)
}

// rejectionMessage surfaces both what was wrong and the accepted format.
func rejectionMessage(rejection *validate.RejectionError) string {
	spec := catalog.Lookup(rejection.Field)
	return fmt.Sprintf("Sorry, %q is not a valid %s. Expected: %s.",
		rejection.Raw, strings.ToLower(spec.Label), spec.Hint)
}

func rejectionMessages(rejections []*validate.RejectionError) string {
	if len(rejections) == 0 {
		return ""
	}
	messages := make([]string, len(rejections))
	for i, rejection := range rejections {
		messages[i] = rejectionMessage(rejection)
	}
	return strings.Join(messages, "\n")
}

// receipt renders the executed transfer confirmation.
func receipt(result *domain.TransferResult) string {
	d := result.Details
	beneficiary := d.AccountNumber
	if d.BeneficiaryName != "" {
		beneficiary = fmt.Sprintf("%s (%s)", d.BeneficiaryName, d.AccountNumber)
	}
	return fmt.Sprintf(
		"Transfer successful!\n\n"+
			"**Transaction ID:** %s\n"+
			"**Amount Sent:** %s %s\n"+
			"**Recipient:** %s\n"+
			"**Destination:** %s\n"+
			"**Delivery Method:** %s\n\n"+
			"Your money is on its way. Delivery time depends on the chosen method.",
		result.TransactionID, d.Amount.String(), d.Currency, beneficiary, d.Country, d.DeliveryMethod,
	)
}

func cancelledMessage() string {
	return "No problem, I've cancelled this transfer. Let me know if you'd like to start a new one."
}

func endedMessage(state *domain.State) string {
	if state.Phase == domain.PhaseCompleted && state.Result != nil {
		return fmt.Sprintf("This transfer is already completed (transaction %s). Start a new session to send another one.", state.Result.TransactionID)
	}
	return "This transfer session has ended. Start a new session to begin a new transfer."
}

func validationRejection(err error) (*validate.RejectionError, bool) {
	var rejection *validate.RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

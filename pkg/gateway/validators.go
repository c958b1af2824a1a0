package gateway

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// paymentIDPattern: "pay_" followed by at least 10 alphanumerics.
var paymentIDPattern = regexp.MustCompile(`^pay_[A-Za-z0-9]{10,}$`)

// ValidateAmount checks the smallest-unit minimum (₹1.00 = 100 paise).
func ValidateAmount(amount int64) error {
	if amount < MinAmount {
		return NewValidationError(MsgMinAmount)
	}

	return nil
}

// ValidateRefundAmount applies the refund rule: strictly positive, no
// currency-minimum floor.
func ValidateRefundAmount(amount int64) error {
	if amount <= 0 {
		return NewValidationError("Refund amount must be greater than 0")
	}

	return nil
}

// ValidateReceipt allows empty; otherwise at most 40 characters.
func ValidateReceipt(receipt string) error {
	if receipt != "" && len(receipt) > MaxReceiptLength {
		return NewValidationError(MsgMaxReceiptLength)
	}

	return nil
}

// ValidateReferenceID allows empty; otherwise at most 40 characters.
func ValidateReferenceID(referenceID string) error {
	if referenceID != "" && len(referenceID) > MaxReferenceIDLength {
		return NewValidationError(MsgMaxReferenceID)
	}

	return nil
}

// ValidateDescription allows empty; otherwise at most 2048 characters.
func ValidateDescription(description string) error {
	if description != "" && len(description) > MaxDescriptionLength {
		return NewValidationError(MsgMaxDescription)
	}

	return nil
}

// NotePair is one user-supplied notes entry before map assembly.
type NotePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BuildNotes assembles the notes map. Pairs with an empty key or value
// are dropped silently before the count check.
func BuildNotes(pairs []NotePair) (map[string]string, error) {
	notes := make(map[string]string)

	for _, pair := range pairs {
		if pair.Key == "" || pair.Value == "" {
			continue
		}

		if len(pair.Key) > MaxNoteKeyLength || len(pair.Value) > MaxNoteValueLength {
			return nil, NewValidationError(MsgMaxNoteLength)
		}

		notes[pair.Key] = pair.Value
	}

	if len(notes) > MaxNotesCount {
		return nil, NewValidationError(MsgMaxNotesCount)
	}

	return notes, nil
}

// ValidateURL checks for a syntactically valid absolute URL.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return NewValidationError(MsgInvalidCallbackURL)
	}

	return nil
}

// ValidatePaymentID enforces the strict payment id pattern.
func ValidatePaymentID(paymentID string) error {
	if paymentID == "" {
		return &ValidationError{Message: "Payment ID is required"}
	}

	if !paymentIDPattern.MatchString(paymentID) {
		return &ValidationError{
			Message: `Invalid payment ID format. Payment ID should start with "pay_" followed by alphanumeric characters`,
		}
	}

	return nil
}

// ValidatePaymentIDPrefix is the looser gate used by fetch operations.
func ValidatePaymentIDPrefix(paymentID string) error {
	return validatePrefix(paymentID, "pay_", "Payment ID")
}

// ValidatePaymentLinkID rejects ids not starting with "plink_".
func ValidatePaymentLinkID(paymentLinkID string) error {
	return validatePrefix(paymentLinkID, "plink_", "Payment Link ID")
}

// ValidateSettlementID rejects ids not starting with "setl_".
func ValidateSettlementID(settlementID string) error {
	return validatePrefix(settlementID, "setl_", "Settlement ID")
}

// ValidateSubscriptionID rejects ids not starting with "sub_".
func ValidateSubscriptionID(subscriptionID string) error {
	return validatePrefix(subscriptionID, "sub_", "Subscription ID")
}

func validatePrefix(id, prefix, label string) error {
	if id == "" || !strings.HasPrefix(id, prefix) {
		return &MalformedIDError{
			Message: fmt.Sprintf("Invalid %s format. %s should start with %q", label, label, prefix),
		}
	}

	return nil
}

// ValidateCount enforces the shared pagination window.
func ValidateCount(count int64) error {
	if count < MinCount || count > MaxCount {
		return NewValidationError("Count must be between 1 and 100")
	}

	return nil
}

// ValidateSettlementTimestamp bounds a from/to filter to the window the
// settlements endpoint accepts.
func ValidateSettlementTimestamp(name string, ts int64) error {
	if ts < MinSettlementTimestamp || ts > MaxSettlementTimestamp {
		return NewValidationError(fmt.Sprintf(
			"%s timestamp must be between %d and %d", name, MinSettlementTimestamp, MaxSettlementTimestamp,
		))
	}

	return nil
}

package gateway

import (
	"strings"
	"testing"
)

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(99); err == nil {
		t.Error("Expected error for amount below 100 paise")
	} else if err.Error() != MsgMinAmount {
		t.Errorf("Unexpected message: %s", err.Error())
	}

	if err := ValidateAmount(100); err != nil {
		t.Errorf("Expected 100 paise to be accepted, got: %v", err)
	}
}

func TestValidateRefundAmount(t *testing.T) {
	if err := ValidateRefundAmount(0); err == nil {
		t.Error("Expected error for zero refund amount")
	}

	// Refunds have no currency minimum, only positivity
	if err := ValidateRefundAmount(1); err != nil {
		t.Errorf("Expected 1 paise refund to be accepted, got: %v", err)
	}
}

func TestValidateReceipt(t *testing.T) {
	if err := ValidateReceipt(""); err != nil {
		t.Errorf("Expected empty receipt to be accepted, got: %v", err)
	}

	if err := ValidateReceipt(strings.Repeat("r", 40)); err != nil {
		t.Errorf("Expected 40-character receipt to be accepted, got: %v", err)
	}

	if err := ValidateReceipt(strings.Repeat("r", 41)); err == nil {
		t.Error("Expected error for 41-character receipt")
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(strings.Repeat("d", 2048)); err != nil {
		t.Errorf("Expected 2048-character description to be accepted, got: %v", err)
	}

	if err := ValidateDescription(strings.Repeat("d", 2049)); err == nil {
		t.Error("Expected error for 2049-character description")
	}
}

func TestBuildNotes(t *testing.T) {
	notes, err := BuildNotes([]NotePair{
		{Key: "order_ref", Value: "ref-1"},
		{Key: "", Value: "dropped"},
		{Key: "dropped", Value: ""},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(notes) != 1 || notes["order_ref"] != "ref-1" {
		t.Errorf("Expected only the complete pair to survive, got: %v", notes)
	}
}

func TestBuildNotes_CountLimit(t *testing.T) {
	pairs := make([]NotePair, 0, 16)
	for i := 0; i < 16; i++ {
		pairs = append(pairs, NotePair{Key: "k" + strings.Repeat("x", i), Value: "v"})
	}

	if _, err := BuildNotes(pairs[:15]); err != nil {
		t.Errorf("Expected 15 pairs to be accepted, got: %v", err)
	}

	if _, err := BuildNotes(pairs); err == nil {
		t.Error("Expected error for 16 pairs")
	} else if err.Error() != MsgMaxNotesCount {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestBuildNotes_EntryLength(t *testing.T) {
	if _, err := BuildNotes([]NotePair{{Key: strings.Repeat("k", 257), Value: "v"}}); err == nil {
		t.Error("Expected error for 257-character note key")
	}

	if _, err := BuildNotes([]NotePair{{Key: "k", Value: strings.Repeat("v", 257)}}); err == nil {
		t.Error("Expected error for 257-character note value")
	}
}

func TestValidatePaymentID(t *testing.T) {
	valid := []string{"pay_29QQoUBi66xm2f", "pay_1234567890"}
	for _, id := range valid {
		if err := ValidatePaymentID(id); err != nil {
			t.Errorf("Expected %q to be accepted, got: %v", id, err)
		}
	}

	invalid := []string{"", "pay_short", "order_29QQoUBi66xm2f", "pay_29QQoUBi66xm2f!"}
	for _, id := range invalid {
		if err := ValidatePaymentID(id); err == nil {
			t.Errorf("Expected %q to be rejected", id)
		}
	}
}

func TestValidatePrefixGates(t *testing.T) {
	if err := ValidatePaymentLinkID("plink_ExjpAUN3gVHrPJ"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	err := ValidatePaymentLinkID("link_ExjpAUN3gVHrPJ")
	if err == nil {
		t.Fatal("Expected error for wrong prefix")
	}

	if !IsMalformedIDError(err) {
		t.Errorf("Expected a malformed id error, got: %T", err)
	}

	if err := ValidateSettlementID("setl_DGlQ1Rj8os78Ec"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := ValidateSubscriptionID("plan_00000000000001"); err == nil {
		t.Error("Expected error for non-sub_ id")
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://example.com/callback"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	for _, raw := range []string{"not-a-url", "/relative/path", "https://"} {
		if err := ValidateURL(raw); err == nil {
			t.Errorf("Expected %q to be rejected", raw)
		}
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount(0); err == nil {
		t.Error("Expected error for count 0")
	}

	if err := ValidateCount(101); err == nil {
		t.Error("Expected error for count 101")
	}

	if err := ValidateCount(1); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := ValidateCount(100); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidateSettlementTimestamp(t *testing.T) {
	if err := ValidateSettlementTimestamp("From", 946684799); err == nil {
		t.Error("Expected error below the window")
	}

	err := ValidateSettlementTimestamp("To", 4765046401)
	if err == nil {
		t.Fatal("Expected error above the window")
	}

	want := "To timestamp must be between 946684800 and 4765046400"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	if err := ValidateSettlementTimestamp("From", 1700000000); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

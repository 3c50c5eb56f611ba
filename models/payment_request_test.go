package models

import "testing"

func TestCanTransition_FromPending(t *testing.T) {
	for _, to := range []PaymentStatus{PaymentProcessing, PaymentCompleted, PaymentRejected, PaymentCancelled} {
		if !CanTransition(PaymentPending, to) {
			t.Fatalf("expected PENDING -> %s to be allowed", to)
		}
	}
}

func TestCanTransition_ProcessingIsIntermediate(t *testing.T) {
	if !CanTransition(PaymentProcessing, PaymentCompleted) {
		t.Fatalf("expected PROCESSING -> COMPLETED to be allowed")
	}
	if !CanTransition(PaymentProcessing, PaymentRejected) {
		t.Fatalf("expected PROCESSING -> REJECTED to be allowed")
	}
	if CanTransition(PaymentProcessing, PaymentCancelled) {
		t.Fatalf("PROCESSING -> CANCELLED must not be allowed")
	}
	if CanTransition(PaymentProcessing, PaymentPending) {
		t.Fatalf("PROCESSING -> PENDING must not be allowed")
	}
}

func TestCanTransition_TerminalStatesAdmitNothing(t *testing.T) {
	terminals := []PaymentStatus{PaymentCompleted, PaymentRejected, PaymentCancelled}
	all := []PaymentStatus{PaymentPending, PaymentProcessing, PaymentCompleted, PaymentRejected, PaymentCancelled}
	for _, from := range terminals {
		if !from.IsTerminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range all {
			if CanTransition(from, to) {
				t.Fatalf("terminal status %s must not transition to %s", from, to)
			}
		}
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "PROCESSING", "COMPLETED", "REJECTED", "CANCELLED"} {
		if !ValidPaymentStatus(s) {
			t.Fatalf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "pending", "Success", "APPROVED"} {
		if ValidPaymentStatus(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

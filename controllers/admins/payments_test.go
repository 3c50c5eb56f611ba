package admins

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"

	"github.com/gorilla/mux"
)

// rejectRequest builds an authenticated reject call for payment id with the
// given JSON body, the way the router would hand it to the handler.
func rejectRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/payments/"+id+"/reject", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	return req.WithContext(context.WithValue(req.Context(), utils.AdminIDKey, int64(1)))
}

func TestRejectPayment_BlankReasonRejectedBeforeLookup(t *testing.T) {
	// the reason check must fire before the record is even fetched, so no
	// database is wired up here; reaching it would panic the test
	for _, body := range []string{`{"reason":""}`, `{"reason":"   "}`, `{}`} {
		rr := httptest.NewRecorder()
		RejectPayment(rr, rejectRequest("7", body))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rr.Code)
		}
		var resp utils.APIResponse
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("body %s: decoding response: %v", body, err)
		}
		if resp.Success || !strings.Contains(resp.Message, "reason") {
			t.Fatalf("body %s: expected reason-required message, got %+v", body, resp)
		}
	}
}

func TestRejectPayment_InvalidIDRejected(t *testing.T) {
	rr := httptest.NewRecorder()
	RejectPayment(rr, rejectRequest("not-a-number", `{"reason":"duplicate submission"}`))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRejectPayment_MissingAdminUnauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/payments/7/reject", strings.NewReader(`{"reason":"x"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	rr := httptest.NewRecorder()
	RejectPayment(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestApprovePaymentTx_RefusesFinishedPayment(t *testing.T) {
	// the transition guard returns before the transaction is touched, so a
	// nil tx proves nothing was written
	for _, status := range []models.PaymentStatus{models.PaymentCompleted, models.PaymentRejected, models.PaymentCancelled} {
		payment := models.PaymentRequest{Status: status}
		if err := approvePaymentTx(nil, &payment, 1, nil); !errors.Is(err, errConflict) {
			t.Fatalf("status %s: expected conflict, got %v", status, err)
		}
		if payment.Status != status {
			t.Fatalf("status %s: payment mutated to %s", status, payment.Status)
		}
	}
}

func TestRejectPaymentTx_RefusesFinishedPayment(t *testing.T) {
	for _, status := range []models.PaymentStatus{models.PaymentCompleted, models.PaymentRejected, models.PaymentCancelled} {
		payment := models.PaymentRequest{Status: status}
		if err := rejectPaymentTx(nil, &payment, 1, "late", nil); !errors.Is(err, errConflict) {
			t.Fatalf("status %s: expected conflict, got %v", status, err)
		}
		if payment.RejectionReason != nil {
			t.Fatalf("status %s: rejection reason set on refused transition", status)
		}
	}
}

func TestValidateBulkAction_RequiresKnownAction(t *testing.T) {
	req := BulkActionRequest{Action: "archive", PaymentIDs: []uint{1}}
	if err := validateBulkAction(&req); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestValidateBulkAction_NormalizesAction(t *testing.T) {
	req := BulkActionRequest{Action: "  APPROVE ", PaymentIDs: []uint{1, 2}}
	if err := validateBulkAction(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Action != "approve" {
		t.Fatalf("expected normalized action approve, got %q", req.Action)
	}
}

func TestValidateBulkAction_EmptyIDs(t *testing.T) {
	req := BulkActionRequest{Action: "approve"}
	if err := validateBulkAction(&req); err == nil {
		t.Fatal("expected error for empty payment_ids")
	}
}

func TestValidateBulkAction_RejectNeedsReason(t *testing.T) {
	req := BulkActionRequest{Action: "reject", PaymentIDs: []uint{7}, Reason: "   "}
	if err := validateBulkAction(&req); err == nil {
		t.Fatal("expected error for blank reason on reject")
	}

	req = BulkActionRequest{Action: "reject", PaymentIDs: []uint{7}, Reason: "screenshot does not match amount"}
	if err := validateBulkAction(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateBulkAction_ApproveIgnoresReason(t *testing.T) {
	req := BulkActionRequest{Action: "approve", PaymentIDs: []uint{1}}
	if err := validateBulkAction(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

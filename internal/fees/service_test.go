package fees

import (
	"context"
	"testing"
)

func TestPartitionSplitsPaidAndUnpaid(t *testing.T) {
	fees := []Fee{
		{ID: "1", Status: StatusUnpaid},
		{ID: "2", Status: StatusPaid},
		{ID: "3", Status: StatusUnpaid},
	}

	view := partition(fees)

	if len(view.Fees) != 3 {
		t.Errorf("expected 3 fees, got %d", len(view.Fees))
	}
	if len(view.Paid) != 1 || view.Paid[0].ID != "2" {
		t.Errorf("expected paid=[2], got %v", view.Paid)
	}
	if len(view.Unpaid) != 2 {
		t.Errorf("expected 2 unpaid, got %d", len(view.Unpaid))
	}
}

func TestPartitionEmptyList(t *testing.T) {
	view := partition(nil)

	if view.Fees == nil && len(view.Fees) != 0 {
		t.Error("expected non-nil empty fees slice")
	}
	if len(view.Paid) != 0 || len(view.Unpaid) != 0 {
		t.Error("expected empty sub-views")
	}
}

func TestCreateRejectsBadDueDate(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Create(context.Background(), CreateFeeRequest{
		StudentID: "student-1",
		Title:     "Tuition",
		Amount:    100,
		DueDate:   "09/01/2026",
	})
	if err == nil {
		t.Fatal("expected error for malformed due date")
	}
}

func TestUpdateRejectsBadDueDate(t *testing.T) {
	svc := NewService(nil)

	bad := "not-a-date"
	_, err := svc.Update(context.Background(), "fee-1", UpdateFeeRequest{DueDate: &bad})
	if err == nil {
		t.Fatal("expected error for malformed due date")
	}
}

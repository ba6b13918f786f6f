package services

import (
	"testing"
	"time"

	"costevida/internal/models"
	"costevida/internal/testutil"
)

func TestCreatePaymentMethod(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)

		method, err := svc.CreatePaymentMethod(testutil.NewTestUserID(), "Transferencia", false)
		testutil.AssertNoError(t, err)

		if method.Name != "Transferencia" {
			t.Errorf("expected name Transferencia, got %s", method.Name)
		}
		if method.AllowsInstallments {
			t.Error("method should not allow installments")
		}
	})

	t.Run("credit_card_method_forces_installments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)

		method, err := svc.CreatePaymentMethod(testutil.NewTestUserID(), models.CreditCardMethod, false)
		testutil.AssertNoError(t, err)

		if !method.AllowsInstallments {
			t.Error("the credit card method must always allow installments")
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)
		userID := testutil.NewTestUserID()

		_, err := svc.CreatePaymentMethod(userID, "Efectivo", false)
		testutil.AssertNoError(t, err)

		_, err = svc.CreatePaymentMethod(userID, "Efectivo", false)
		testutil.AssertAppError(t, err, "DUPLICATE_NAME")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)

		_, err := svc.CreatePaymentMethod(testutil.NewTestUserID(), "  ", false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdatePaymentMethod(t *testing.T) {
	t.Run("toggle_installments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)
		userID := testutil.NewTestUserID()

		method, err := svc.CreatePaymentMethod(userID, "Transferencia", false)
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdatePaymentMethod(userID, method.ID, true)
		testutil.AssertNoError(t, err)
		if !updated.AllowsInstallments {
			t.Error("expected installments to be enabled")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)

		_, err := svc.UpdatePaymentMethod(testutil.NewTestUserID(), "00000000-0000-0000-0000-000000000000", true)
		testutil.AssertAppError(t, err, "PAYMENT_METHOD_NOT_FOUND")
	})
}

func TestDeletePaymentMethod(t *testing.T) {
	t.Run("unreferenced", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)
		userID := testutil.NewTestUserID()

		method, err := svc.CreatePaymentMethod(userID, "Cripto", false)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeletePaymentMethod(userID, method.ID))
	})

	t.Run("referenced_by_active_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)
		userID := testutil.NewTestUserID()

		method, err := svc.CreatePaymentMethod(userID, "Débito automático", false)
		testutil.AssertNoError(t, err)

		testutil.CreateTestRecurringExpense(t, db, userID, time.Now().AddDate(0, -6, 0))

		err = svc.DeletePaymentMethod(userID, method.ID)
		testutil.AssertAppError(t, err, "PAYMENT_METHOD_IN_USE")
	})

	t.Run("referenced_only_in_the_past", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentMethodService(db)
		userID := testutil.NewTestUserID()

		method, err := svc.CreatePaymentMethod(userID, "Efectivo", false)
		testutil.AssertNoError(t, err)

		// One-off charge two months ago: its active span ended before the
		// current month, so it does not block deletion.
		testutil.CreateTestExpense(t, db, userID, time.Now().AddDate(0, -2, 0))

		testutil.AssertNoError(t, svc.DeletePaymentMethod(userID, method.ID))
	})
}

package services

import (
	"math"
	"testing"
	"time"

	"costevida/internal/pagination"
	"costevida/internal/projection"
	"costevida/internal/testutil"
)

func validExpenseInput() projection.ExpenseInput {
	return projection.ExpenseInput{
		Name:          "Netflix",
		Amount:        15.5,
		Category:      "Entretenimiento",
		PaymentMethod: "Débito automático",
		ExpenseDate:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		IsRecurring:   true,
	}
}

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		expense, err := svc.CreateExpense(userID, validExpenseInput())
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected a generated ID")
		}
		if expense.MonthlyAmount != 15.5 {
			t.Errorf("expected monthly amount 15.5, got %f", expense.MonthlyAmount)
		}
		if expense.StartDate != expense.ExpenseDate {
			t.Errorf("start date should default to the expense date")
		}
		if expense.Installments != 1 || expense.CurrentInstallment != 1 {
			t.Errorf("installment counts should default to 1, got %d/%d",
				expense.CurrentInstallment, expense.Installments)
		}
	})

	t.Run("total_amount_split_across_installments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		in := validExpenseInput()
		in.Name = "Notebook"
		in.Amount = 600
		in.AmountType = projection.AmountTotal
		in.PaymentMethod = "Tarjeta de crédito"
		in.CreditCard = "Visa"
		in.Installments = 3
		in.IsRecurring = false

		expense, err := svc.CreateExpense(userID, in)
		testutil.AssertNoError(t, err)

		if math.Abs(expense.MonthlyAmount-200) > 1e-9 {
			t.Errorf("expected monthly amount 200, got %f", expense.MonthlyAmount)
		}
		if expense.TotalAmount != 600 {
			t.Errorf("entered amount should be kept as total, got %f", expense.TotalAmount)
		}
	})

	t.Run("validation_failure_persists_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		in := validExpenseInput()
		in.Name = "   "
		in.Amount = 0

		_, err := svc.CreateExpense(userID, in)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")

		list, err := svc.ListExpenses(userID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if list.TotalItems != 0 {
			t.Errorf("expected no persisted records, got %d", list.TotalItems)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("full_replace_keeps_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		created, err := svc.CreateExpense(userID, validExpenseInput())
		testutil.AssertNoError(t, err)

		in := validExpenseInput()
		in.Name = "Netflix Premium"
		in.Amount = 20

		updated, err := svc.UpdateExpense(userID, created.ID, in)
		testutil.AssertNoError(t, err)

		if updated.ID != created.ID {
			t.Errorf("update should keep the record id")
		}
		if updated.Name != "Netflix Premium" {
			t.Errorf("expected updated name, got %s", updated.Name)
		}
		if updated.MonthlyAmount != 20 {
			t.Errorf("expected updated amount 20, got %f", updated.MonthlyAmount)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db, NewSettingsService(db))

		_, err := svc.UpdateExpense(testutil.NewTestUserID(), "00000000-0000-0000-0000-000000000000", validExpenseInput())
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db, NewSettingsService(db))

		created, err := svc.CreateExpense(testutil.NewTestUserID(), validExpenseInput())
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateExpense(testutil.NewTestUserID(), created.ID, validExpenseInput())
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestListExpenses(t *testing.T) {
	t.Run("insertion_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		names := []string{"Alquiler", "Netflix", "Gimnasio"}
		for _, name := range names {
			in := validExpenseInput()
			in.Name = name
			_, err := svc.CreateExpense(userID, in)
			testutil.AssertNoError(t, err)
		}

		list, err := svc.ListExpenses(userID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if list.TotalItems != 3 {
			t.Fatalf("expected 3 items, got %d", list.TotalItems)
		}
		for i, name := range names {
			if list.Data[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, list.Data[i].Name)
			}
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		for i := 0; i < 5; i++ {
			_, err := svc.CreateExpense(userID, validExpenseInput())
			testutil.AssertNoError(t, err)
		}

		list, err := svc.ListExpenses(userID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)

		if len(list.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(list.Data))
		}
		if list.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", list.TotalPages)
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	userID := testutil.NewTestUserID()
	svc := NewExpenseService(db, NewSettingsService(db))

	created, err := svc.CreateExpense(userID, validExpenseInput())
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteExpense(userID, created.ID))

	_, err = svc.GetExpenseByID(userID, created.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestQueryExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	userID := testutil.NewTestUserID()
	svc := NewExpenseService(db, NewSettingsService(db))

	start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestRecurringExpense(t, db, userID, start)
	testutil.CreateTestInstallmentExpense(t, db, userID, start, 3)

	t.Run("month_inside_span", func(t *testing.T) {
		got, err := svc.QueryExpenses(userID, projection.Query{Mode: projection.ModeMonth, Year: 2024, Month: 1})
		testutil.AssertNoError(t, err)
		if len(got) != 2 {
			t.Fatalf("expected 2 projected records, got %d", len(got))
		}
		// February 2024 is month index 1 of the span, so installment 2 of 3.
		if got[1].CurrentInstallment != 2 {
			t.Errorf("expected projected installment 2, got %d", got[1].CurrentInstallment)
		}
	})

	t.Run("month_after_installments_end", func(t *testing.T) {
		got, err := svc.QueryExpenses(userID, projection.Query{Mode: projection.ModeMonth, Year: 2024, Month: 6})
		testutil.AssertNoError(t, err)
		if len(got) != 1 {
			t.Fatalf("only the recurring record should survive, got %d", len(got))
		}
		if !got[0].IsRecurring {
			t.Errorf("expected the recurring record")
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("with_salary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))
		testutil.CreateTestSettings(t, db, userID, 1000)

		start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestRecurringExpense(t, db, userID, start) // 100/month
		testutil.CreateTestExpense(t, db, userID, start)          // 100 one-off

		summary, err := svc.Summarize(userID, projection.Query{Mode: projection.ModeMonth, Year: 2024, Month: 0})
		testutil.AssertNoError(t, err)

		if summary.Total != 200 {
			t.Errorf("expected total 200, got %f", summary.Total)
		}
		if summary.SalaryPercentage != 20 {
			t.Errorf("expected 20%% of salary, got %f", summary.SalaryPercentage)
		}
		if summary.StatusColor != "green" {
			t.Errorf("expected green status, got %s", summary.StatusColor)
		}
	})

	t.Run("without_settings_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewTestUserID()
		svc := NewExpenseService(db, NewSettingsService(db))

		start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpense(t, db, userID, start)

		summary, err := svc.Summarize(userID, projection.Query{Mode: projection.ModeMonth, Year: 2024, Month: 0})
		testutil.AssertNoError(t, err)

		if summary.SalaryPercentage != 0 {
			t.Errorf("salary share should be 0 when no salary is configured, got %f", summary.SalaryPercentage)
		}
	})
}

func TestMonthlyTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	userID := testutil.NewTestUserID()
	svc := NewExpenseService(db, NewSettingsService(db))

	start := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestInstallmentExpense(t, db, userID, start, 3) // 100 in Mar, Apr, May

	totals, err := svc.MonthlyTotals(userID, 2024)
	testutil.AssertNoError(t, err)

	want := [12]float64{0, 0, 100, 100, 100, 0, 0, 0, 0, 0, 0, 0}
	if totals != want {
		t.Errorf("expected %v, got %v", want, totals)
	}
}

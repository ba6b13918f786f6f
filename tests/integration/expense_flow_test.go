package integration

import (
	"fmt"
	"math"
	"net/http"
	"testing"
	"time"
)

func TestExpenseFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := newUserToken(t)

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/expenses", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("set salary before creating expenses", func(t *testing.T) {
		body := `{"salary": 1000, "currency": "ARS", "theme": "light"}`
		rec := app.request(http.MethodPut, "/api/v1/settings", body, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	var recurringID string
	t.Run("create recurring expense", func(t *testing.T) {
		body := `{
			"name": "Netflix",
			"amount": 250,
			"payment_method": "Débito automático",
			"category": "Servicios",
			"expense_date": "2023-06-10T00:00:00Z",
			"is_recurring": true
		}`
		rec := app.request(http.MethodPost, "/api/v1/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		recurringID = expense["id"].(string)
		if expense["monthly_amount"].(float64) != 250 {
			t.Errorf("expected monthly_amount 250, got %v", expense["monthly_amount"])
		}
	})

	t.Run("create installment expense from total", func(t *testing.T) {
		body := `{
			"name": "Notebook",
			"amount": 1200,
			"amount_type": "total",
			"payment_method": "Tarjeta de crédito",
			"credit_card": "Visa",
			"category": "Tecnología",
			"expense_date": "2024-01-05T00:00:00Z",
			"installments": 12
		}`
		rec := app.request(http.MethodPost, "/api/v1/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if got := expense["monthly_amount"].(float64); math.Abs(got-100) > 1e-9 {
			t.Errorf("expected monthly_amount 100, got %v", got)
		}
		if expense["total_amount"].(float64) != 1200 {
			t.Errorf("expected total_amount 1200, got %v", expense["total_amount"])
		}
	})

	t.Run("month query projects installment index", func(t *testing.T) {
		// March 2024 is the third month of the 12-installment plan.
		rec := app.request(http.MethodGet, "/api/v1/expenses/query?mode=month&year=2024&month=2", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		expenses := parseJSON(t, rec)["expenses"].([]interface{})
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		notebook := expenses[1].(map[string]interface{})
		if notebook["name"] != "Notebook" {
			t.Fatalf("expected Notebook second in insertion order, got %v", notebook["name"])
		}
		if got := notebook["current_installment"].(float64); got != 3 {
			t.Errorf("expected current_installment 3 for March 2024, got %v", got)
		}
	})

	t.Run("month query after the plan ends excludes it", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/expenses/query?mode=month&year=2025&month=5", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		expenses := parseJSON(t, rec)["expenses"].([]interface{})
		if len(expenses) != 1 {
			t.Fatalf("expected only the recurring expense, got %d records", len(expenses))
		}
		if name := expenses[0].(map[string]interface{})["name"]; name != "Netflix" {
			t.Errorf("expected Netflix, got %v", name)
		}
	})

	t.Run("summary reports salary share", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/expenses/summary?mode=month&year=2024&month=2", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		summary := parseJSON(t, rec)
		if got := summary["total"].(float64); math.Abs(got-350) > 1e-9 {
			t.Errorf("expected total 350, got %v", got)
		}
		if got := summary["salary_percentage"].(float64); math.Abs(got-35) > 1e-9 {
			t.Errorf("expected salary_percentage 35, got %v", got)
		}
		if summary["status_color"] != "yellow" {
			t.Errorf("expected status_color yellow, got %v", summary["status_color"])
		}
		byMethod := summary["by_payment_method"].([]interface{})
		if len(byMethod) != 2 {
			t.Errorf("expected 2 payment method groups, got %d", len(byMethod))
		}
	})

	t.Run("monthly totals cover the installment window", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/expenses/monthly-totals?year=2024", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		totals := parseJSON(t, rec)["totals"].([]interface{})
		if len(totals) != 12 {
			t.Fatalf("expected 12 months, got %d", len(totals))
		}
		// Every month of 2024 carries the recurring 250 plus one 100 installment.
		for m, v := range totals {
			if got := v.(float64); math.Abs(got-350) > 1e-9 {
				t.Errorf("month %d: expected 350, got %v", m, got)
			}
		}
	})

	t.Run("update keeps the record id", func(t *testing.T) {
		body := `{
			"name": "Netflix Premium",
			"amount": 300,
			"payment_method": "Débito automático",
			"category": "Servicios",
			"expense_date": "2023-06-10T00:00:00Z",
			"is_recurring": true
		}`
		rec := app.request(http.MethodPut, "/api/v1/expenses/"+recurringID, body, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if expense["id"] != recurringID {
			t.Errorf("expected id %s, got %v", recurringID, expense["id"])
		}
		if expense["name"] != "Netflix Premium" {
			t.Errorf("expected updated name, got %v", expense["name"])
		}
	})

	t.Run("users cannot read each other's records", func(t *testing.T) {
		otherToken, _ := newUserToken(t)
		rec := app.request(http.MethodGet, "/api/v1/expenses/"+recurringID, "", otherToken)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		rec := app.request(http.MethodDelete, "/api/v1/expenses/"+recurringID, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		rec = app.request(http.MethodGet, "/api/v1/expenses/"+recurringID, "", token)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404 after delete, got %d", rec.Code)
		}
	})
}

func TestCatalogGuardFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := newUserToken(t)

	rec := app.request(http.MethodPost, "/api/v1/categories", `{"name": "Streaming"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	categoryID := parseJSON(t, rec)["category"].(map[string]interface{})["id"].(string)

	start := time.Now().AddDate(-1, 0, 0).Format(time.RFC3339)
	body := fmt.Sprintf(`{
		"name": "Spotify",
		"amount": 120,
		"payment_method": "Débito automático",
		"category": "Streaming",
		"expense_date": %q,
		"is_recurring": true
	}`, start)
	rec = app.request(http.MethodPost, "/api/v1/expenses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expenseID := parseJSON(t, rec)["expense"].(map[string]interface{})["id"].(string)

	t.Run("category with active expenses cannot be deleted", func(t *testing.T) {
		rec := app.request(http.MethodDelete, "/api/v1/categories/"+categoryID, "", token)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d: %s", rec.Code, rec.Body.String())
		}
		errBody := parseJSON(t, rec)["error"].(map[string]interface{})
		if errBody["code"] != "CATEGORY_IN_USE" {
			t.Errorf("expected code CATEGORY_IN_USE, got %v", errBody["code"])
		}
	})

	t.Run("deletable once the expense is gone", func(t *testing.T) {
		rec := app.request(http.MethodDelete, "/api/v1/expenses/"+expenseID, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		rec = app.request(http.MethodDelete, "/api/v1/categories/"+categoryID, "", token)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

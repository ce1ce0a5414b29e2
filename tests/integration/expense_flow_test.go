package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestExpenseFlow_CRUD(t *testing.T) {
	app := setupApp(t)
	token := signInUser(t, "ext_expense_crud")
	catID := app.defaultCategoryID(t, "Food & Dining")

	// Create
	date := time.Now().Format(time.RFC3339)
	rec := app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"title":"Groceries","amount":52.5,"categoryId":%q,"date":%q,"description":"weekly shop"}`, catID, date), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating expense, got %d: %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	expenseID := created["id"].(string)
	if created["amount"].(float64) != 52.5 {
		t.Errorf("expected amount 52.5, got %v", created["amount"])
	}
	category := created["category"].(map[string]interface{})
	if category["name"] != "Food & Dining" {
		t.Errorf("expected joined category, got %v", category["name"])
	}

	// Read back
	rec = app.request("GET", "/api/v1/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := parseJSON(t, rec)
	if got["title"] != "Groceries" || got["description"] != "weekly shop" {
		t.Errorf("round-trip mismatch: %v", got)
	}

	// Update the amount only
	rec = app.request("PUT", "/api/v1/expenses/"+expenseID, `{"amount":60}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)
	if updated["amount"].(float64) != 60 {
		t.Errorf("expected amount 60 after update, got %v", updated["amount"])
	}
	if updated["title"] != "Groceries" {
		t.Errorf("expected title untouched, got %v", updated["title"])
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting, got %d: %s", rec.Code, rec.Body.String())
	}

	// Gone for good
	rec = app.request("GET", "/api/v1/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on double delete, got %d", rec.Code)
	}
}

func TestExpenseFlow_OwnershipIsolation(t *testing.T) {
	app := setupApp(t)
	alice := signInUser(t, "ext_alice")
	mallory := signInUser(t, "ext_mallory")
	catID := app.defaultCategoryID(t, "Other")

	rec := app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"title":"Private","amount":10,"categoryId":%q}`, catID), alice)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expenseID := parseJSON(t, rec)["id"].(string)

	// Another user cannot read, update, or delete it; all read as missing.
	rec = app.request("GET", "/api/v1/expenses/"+expenseID, "", mallory)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 reading foreign expense, got %d", rec.Code)
	}
	rec = app.request("PUT", "/api/v1/expenses/"+expenseID, `{"title":"Mine now"}`, mallory)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 updating foreign expense, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/expenses/"+expenseID, "", mallory)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting foreign expense, got %d", rec.Code)
	}

	// And it never shows up in their list.
	rec = app.request("GET", "/api/v1/expenses", "", mallory)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing, got %d", rec.Code)
	}
	if got := parseJSONArray(t, rec); len(got) != 0 {
		t.Errorf("expected empty list for the other user, got %d items", len(got))
	}

	// The owner still sees it untouched.
	rec = app.request("GET", "/api/v1/expenses/"+expenseID, "", alice)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected owner to still see the expense, got %d", rec.Code)
	}
	if got := parseJSON(t, rec); got["title"] != "Private" {
		t.Errorf("expected title unchanged, got %v", got["title"])
	}
}

func TestExpenseFlow_ListFilters(t *testing.T) {
	app := setupApp(t)
	token := signInUser(t, "ext_filters")
	foodID := app.defaultCategoryID(t, "Food & Dining")
	transportID := app.defaultCategoryID(t, "Transportation")

	now := time.Now()
	post := func(title, catID string, amount float64, date time.Time) {
		rec := app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"title":%q,"amount":%v,"categoryId":%q,"date":%q}`,
				title, amount, catID, date.Format(time.RFC3339)), token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 creating %s, got %d: %s", title, rec.Code, rec.Body.String())
		}
	}

	post("Weekly shop", foodID, 50, now)
	post("Airport taxi", transportID, 30, now)
	post("Old dinner", foodID, 20, now.AddDate(0, -2, 0))

	// Default monthly window excludes the two-month-old expense.
	rec := app.request("GET", "/api/v1/expenses", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := parseJSONArray(t, rec); len(got) != 2 {
		t.Errorf("expected 2 expenses this month, got %d", len(got))
	}

	// Yearly window includes all three.
	rec = app.request("GET", "/api/v1/expenses?period=yearly", "", token)
	if got := parseJSONArray(t, rec); len(got) != 3 {
		t.Errorf("expected 3 expenses this year, got %d", len(got))
	}

	// Search by category name.
	rec = app.request("GET", "/api/v1/expenses?search=transport", "", token)
	got := parseJSONArray(t, rec)
	if len(got) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(got))
	}
	if got[0].(map[string]interface{})["title"] != "Airport taxi" {
		t.Errorf("expected the taxi expense, got %v", got[0])
	}

	// Filter by category id.
	rec = app.request("GET", "/api/v1/expenses?categoryId="+foodID, "", token)
	if got := parseJSONArray(t, rec); len(got) != 1 {
		t.Errorf("expected 1 food expense this month, got %d", len(got))
	}

	// Invalid period label.
	rec = app.request("GET", "/api/v1/expenses?period=daily", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad period, got %d", rec.Code)
	}
}

func TestExpenseFlow_Validation(t *testing.T) {
	app := setupApp(t)
	token := signInUser(t, "ext_validation")
	catID := app.defaultCategoryID(t, "Other")

	// Unauthenticated request.
	rec := app.request("GET", "/api/v1/expenses", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	// Zero amount.
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"title":"Free lunch","amount":0,"categoryId":%q}`, catID), token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero amount, got %d", rec.Code)
	}

	// Unknown category.
	rec = app.request("POST", "/api/v1/expenses",
		`{"title":"Orphan","amount":10,"categoryId":"00000000-0000-0000-0000-000000000000"}`, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown category, got %d", rec.Code)
	}

	// Malformed expense id in the path.
	rec = app.request("GET", "/api/v1/expenses/not-a-uuid", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestCategoryFlow_DefaultsAndCustoms(t *testing.T) {
	app := setupApp(t)
	alice := signInUser(t, "ext_cat_alice")
	bob := signInUser(t, "ext_cat_bob")

	// Both users see the seeded defaults.
	rec := app.request("GET", "/api/v1/categories", "", alice)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	defaults := parseJSONArray(t, rec)
	if len(defaults) != 8 {
		t.Fatalf("expected the 8 seeded defaults, got %d", len(defaults))
	}

	// Alice adds a custom category.
	rec = app.request("POST", "/api/v1/categories",
		`{"name":"Pets","icon":"🐕","color":"#A16207"}`, alice)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	custom := parseJSON(t, rec)
	if custom["isDefault"] != false {
		t.Error("expected custom category to not be default")
	}
	customID := custom["id"].(string)

	// Alice sees nine categories, Bob still eight.
	rec = app.request("GET", "/api/v1/categories", "", alice)
	if got := parseJSONArray(t, rec); len(got) != 9 {
		t.Errorf("expected 9 categories for alice, got %d", len(got))
	}
	rec = app.request("GET", "/api/v1/categories", "", bob)
	if got := parseJSONArray(t, rec); len(got) != 8 {
		t.Errorf("expected 8 categories for bob, got %d", len(got))
	}

	// Bob cannot spend against Alice's custom category.
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"title":"Dog food","amount":15,"categoryId":%q}`, customID), bob)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 using a foreign custom category, got %d", rec.Code)
	}

	// Alice can.
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"title":"Dog food","amount":15,"categoryId":%q}`, customID), alice)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 for the owner, got %d: %s", rec.Code, rec.Body.String())
	}
}

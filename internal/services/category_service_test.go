package services

import (
	"testing"

	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestListForUser(t *testing.T) {
	t.Run("defaults_plus_own_customs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestDefaultCategory(t, db, "Other")
		mine := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestCategory(t, db, other.ID)

		categories, err := svc.ListForUser(user.ID)
		testutil.AssertNoError(t, err)

		if len(categories) != 2 {
			t.Fatalf("expected 2 categories (default + own), got %d", len(categories))
		}
		for _, c := range categories {
			if !c.IsDefault && c.ID != mine.ID {
				t.Errorf("expected only own custom categories, got %s", c.Name)
			}
		}
	})

	t.Run("sorted_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestDefaultCategory(t, db, "Transportation")
		testutil.CreateTestDefaultCategory(t, db, "Education")

		categories, err := svc.ListForUser(user.ID)
		testutil.AssertNoError(t, err)

		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].Name != "Education" || categories[1].Name != "Transportation" {
			t.Errorf("expected name order, got %s then %s", categories[0].Name, categories[1].Name)
		}
	})
}

func TestCreateCustom(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCustom(user.ID, "Pets", "🐕", "#A16207")
		testutil.AssertNoError(t, err)

		if category.ID == "" {
			t.Fatal("expected a generated category ID")
		}
		if category.UserID == nil || *category.UserID != user.ID {
			t.Error("expected the category to be owned by the user")
		}
		if category.IsDefault {
			t.Error("expected custom categories to never be default")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCustom(user.ID, "", "🐕", "#A16207")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetVisibleByID(t *testing.T) {
	t.Run("default_visible_to_everyone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		def := testutil.CreateTestDefaultCategory(t, db, "Other")

		got, err := svc.GetVisibleByID(user.ID, def.ID)
		testutil.AssertNoError(t, err)
		if got.ID != def.ID {
			t.Errorf("expected category %s, got %s", def.ID, got.ID)
		}
	})

	t.Run("own_custom_visible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.GetVisibleByID(user.ID, cat.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("foreign_custom_hidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		foreign := testutil.CreateTestCategory(t, db, other.ID)

		_, err := svc.GetVisibleByID(user.ID, foreign.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetVisibleByID(user.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestSeedDefaults(t *testing.T) {
	t.Run("creates_all_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		err := svc.SeedDefaults(models.DefaultCategories)
		testutil.AssertNoError(t, err)

		var count int64
		db.Table("categories").Where("is_default = ?", true).Count(&count)
		if count != int64(len(models.DefaultCategories)) {
			t.Errorf("expected %d defaults, got %d", len(models.DefaultCategories), count)
		}
	})

	t.Run("rerun_does_not_duplicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.AssertNoError(t, svc.SeedDefaults(models.DefaultCategories))
		testutil.AssertNoError(t, svc.SeedDefaults(models.DefaultCategories))

		var count int64
		db.Table("categories").Where("is_default = ?", true).Count(&count)
		if count != int64(len(models.DefaultCategories)) {
			t.Errorf("expected %d defaults after reseed, got %d", len(models.DefaultCategories), count)
		}
	})

	t.Run("rerun_refreshes_icon_and_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.AssertNoError(t, svc.SeedDefaults([]models.Category{
			{Name: "Other", Icon: "❓", Color: "#000000"},
		}))
		testutil.AssertNoError(t, svc.SeedDefaults([]models.Category{
			{Name: "Other", Icon: "📦", Color: "#6B7280"},
		}))

		var got models.Category
		testutil.AssertNoError(t, db.Where("name = ? AND is_default = ?", "Other", true).First(&got).Error)
		if got.Icon != "📦" || got.Color != "#6B7280" {
			t.Errorf("expected refreshed icon/color, got %s %s", got.Icon, got.Color)
		}
	})
}

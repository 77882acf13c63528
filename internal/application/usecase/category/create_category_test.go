package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// fakeCategoryRepository serves categories from memory.
type fakeCategoryRepository struct {
	categories []*entity.Category
	created    *entity.Category
	updated    *entity.Category
	deleted    int64
	err        error
}

func (f *fakeCategoryRepository) Create(_ context.Context, c *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	f.created = c
	return nil
}

func (f *fakeCategoryRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Category
	for _, c := range f.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepository) FindByUserAndType(_ context.Context, userID uuid.UUID, t entity.CategoryType) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Category
	for _, c := range f.categories {
		if c.UserID == userID && c.Type == t {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepository) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, c := range f.categories {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCategoryRepository) ExistsByNameAndUser(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, c := range f.categories {
		if c.UserID == userID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepository) Update(_ context.Context, c *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	f.updated = c
	return nil
}

func (f *fakeCategoryRepository) Delete(_ context.Context, _, _ uuid.UUID) (int64, error) {
	return f.deleted, f.err
}

func assertCategoryErrorCode(t *testing.T, err error, code domainerror.CategoryErrorCode) {
	t.Helper()
	var categoryErr *domainerror.CategoryError
	if !errors.As(err, &categoryErr) {
		t.Fatalf("expected CategoryError, got %v", err)
	}
	if categoryErr.Code != code {
		t.Errorf("expected code %s, got %s", code, categoryErr.Code)
	}
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("creates expense category", func(t *testing.T) {
		repo := &fakeCategoryRepository{}
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
			Color:  "#ef4444",
			Icon:   "🛒",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", output.Category.Name)
		}
		if output.Category.UserID != userID {
			t.Error("category should belong to the requesting user")
		}
		if repo.created == nil {
			t.Error("expected category to be persisted")
		}
	})

	t.Run("name at the limit is accepted", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   strings.Repeat("a", MaxCategoryNameLength),
			Type:   entity.CategoryTypeExpense,
			Color:  "#ef4444",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name over the limit is rejected", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   strings.Repeat("a", MaxCategoryNameLength+1),
			Type:   entity.CategoryTypeExpense,
			Color:  "#ef4444",
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameTooLong)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   entity.CategoryType("transfer"),
			Color:  "#ef4444",
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeInvalidCategoryType)
	})

	t.Run("color format", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		for _, color := range []string{"#ef4444", "#EF4444", "#abc"} {
			_, err := uc.Execute(context.Background(), CreateCategoryInput{
				UserID: userID,
				Name:   "Groceries",
				Type:   entity.CategoryTypeExpense,
				Color:  color,
			})
			if err != nil {
				t.Errorf("color %q should be valid: %v", color, err)
			}
		}

		for _, color := range []string{"ef4444", "#ef44", "#gggggg", "red", ""} {
			_, err := uc.Execute(context.Background(), CreateCategoryInput{
				UserID: userID,
				Name:   "Groceries",
				Type:   entity.CategoryTypeExpense,
				Color:  color,
			})
			assertCategoryErrorCode(t, err, domainerror.ErrCodeInvalidColorFormat)
		}
	})

	t.Run("duplicate name for the same user conflicts", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing}}

		uc := NewCreateCategoryUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
			Color:  "#22c55e",
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameExists)
	})

	t.Run("same name under another user is fine", func(t *testing.T) {
		existing := entity.NewCategory(uuid.New(), "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing}}

		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
			Color:  "#22c55e",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
	salary := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome, "#22c55e", "")

	t.Run("lists all of the user's categories", func(t *testing.T) {
		repo := &fakeCategoryRepository{categories: []*entity.Category{groceries, salary}}
		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(output.Categories))
		}
	})

	t.Run("type filter narrows the listing", func(t *testing.T) {
		repo := &fakeCategoryRepository{categories: []*entity.Category{groceries, salary}}
		uc := NewListCategoriesUseCase(repo)

		income := entity.CategoryTypeIncome
		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID, CategoryType: &income})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(output.Categories))
		}
		if output.Categories[0].Name != "Salary" {
			t.Errorf("expected Salary, got %s", output.Categories[0].Name)
		}
	})

	t.Run("store failure degrades to empty listing", func(t *testing.T) {
		repo := &fakeCategoryRepository{err: errors.New("connection refused")}
		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected degraded result, got error: %v", err)
		}
		if len(output.Categories) != 0 {
			t.Errorf("expected empty listing, got %d", len(output.Categories))
		}
	})
}

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	strPtr := func(s string) *string { return &s }

	t.Run("updates provided fields only", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "🛒")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing}}

		uc := NewUpdateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Color:      strPtr("#f97316"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Color != "#f97316" {
			t.Errorf("expected updated color, got %s", output.Category.Color)
		}
		if output.Category.Name != "Groceries" {
			t.Errorf("name should be untouched, got %s", output.Category.Name)
		}
		if output.Category.Icon != "🛒" {
			t.Errorf("icon should be untouched, got %s", output.Category.Icon)
		}
	})

	t.Run("renaming to an existing name conflicts", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
		other := entity.NewCategory(userID, "Dining Out", entity.CategoryTypeExpense, "#f97316", "")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing, other}}

		uc := NewUpdateCategoryUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       strPtr("Dining Out"),
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameExists)
	})

	t.Run("keeping the current name does not self-conflict", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing}}

		uc := NewUpdateCategoryUseCase(repo)

		if _, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       strPtr("Groceries"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("another user's category is not found", func(t *testing.T) {
		existing := entity.NewCategory(uuid.New(), "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing}}

		uc := NewUpdateCategoryUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       strPtr("Food"),
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})

	t.Run("invalid color is rejected", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "")
		repo := &fakeCategoryRepository{categories: []*entity.Category{existing}}

		uc := NewUpdateCategoryUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Color:      strPtr("blue"),
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeInvalidColorFormat)
	})
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes owned category", func(t *testing.T) {
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepository{deleted: 1})

		output, err := uc.Execute(context.Background(), DeleteCategoryInput{
			CategoryID: uuid.New(),
			UserID:     userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
	})

	t.Run("zero affected rows is not found", func(t *testing.T) {
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepository{deleted: 0})

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			CategoryID: uuid.New(),
			UserID:     userID,
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})
}

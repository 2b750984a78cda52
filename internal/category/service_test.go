package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpessoa/budgeter/internal/category"
)

// Mock Repository
type mockRepo struct {
	createCategoryFunc func(ctx context.Context, c *category.Category) error
	listCategoriesFunc func(ctx context.Context) ([]*category.Category, error)
	deleteCategoryFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepo) CreateCategory(ctx context.Context, c *category.Category) error {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(ctx, c)
	}

	return nil
}

func (m *mockRepo) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return nil, nil
}

func (m *mockRepo) ListCategories(ctx context.Context) ([]*category.Category, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx)
	}

	return nil, nil
}

func (m *mockRepo) UpdateCategory(ctx context.Context, c *category.Category) error { return nil }

func (m *mockRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if m.deleteCategoryFunc != nil {
		return m.deleteCategoryFunc(ctx, id)
	}

	return nil
}

func TestService_Create_DefaultColor(t *testing.T) {
	repo := &mockRepo{
		createCategoryFunc: func(ctx context.Context, c *category.Category) error {
			c.ID = uuid.New()
			return nil
		},
	}

	svc := category.NewService(repo)

	got, err := svc.Create(context.Background(), category.CreateParams{
		Name: "Groceries",
		Type: category.TypeExpense,
	})
	require.NoError(t, err)
	assert.Equal(t, category.DefaultColor, got.Color)
	assert.NotEmpty(t, got.ID)
}

func TestService_Create_KeepsColor(t *testing.T) {
	repo := &mockRepo{
		createCategoryFunc: func(ctx context.Context, c *category.Category) error {
			c.ID = uuid.New()
			return nil
		},
	}

	svc := category.NewService(repo)

	got, err := svc.Create(context.Background(), category.CreateParams{
		Name:  "Salary",
		Type:  category.TypeIncome,
		Color: "#00ff00",
	})
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", got.Color)
}

func TestService_List(t *testing.T) {
	repo := &mockRepo{
		listCategoriesFunc: func(ctx context.Context) ([]*category.Category, error) {
			return []*category.Category{
				{ID: uuid.New(), Name: "Groceries"},
				{ID: uuid.New(), Name: "Salary"},
			}, nil
		},
	}

	svc := category.NewService(repo)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &mockRepo{
		deleteCategoryFunc: func(ctx context.Context, id uuid.UUID) error {
			return category.ErrNotFound
		},
	}

	svc := category.NewService(repo)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, category.ErrNotFound)
}

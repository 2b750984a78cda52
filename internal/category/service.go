package category

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Type  Type
	Color string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.Color == "" {
		params.Color = DefaultColor
	}

	c := &Category{
		Name:  params.Name,
		Type:  params.Type,
		Color: params.Color,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Update(ctx context.Context, c *Category) error {
	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

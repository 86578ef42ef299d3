package usecase

import (
	"context"
	"strings"
	"testing"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newCatalogTestService() (CatalogService, *fakeCategoryRepo, *fakeServiceRepo) {
	categories := &fakeCategoryRepo{items: make(map[uuid.UUID]*entity.Category)}
	services := &fakeServiceRepo{items: make(map[uuid.UUID]*entity.Service)}

	repo := &repository.Repository{
		Category: categories,
		Service:  services,
	}
	return NewCatalogService(repo, zap.NewNop()), categories, services
}

func TestCreateService_RequiresExistingCategory(t *testing.T) {
	service, _, _ := newCatalogTestService()

	_, err := service.CreateService(context.Background(), &request.CreateServiceRequest{
		CategoryID:      uuid.NewString(),
		Name:            "Haircut",
		Price:           50,
		DurationMinutes: 40,
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected category not found, got %v", err)
	}
}

func TestCreateService_OK(t *testing.T) {
	service, categories, services := newCatalogTestService()

	category, err := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{
		Name: "Hair",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if len(categories.items) != 1 {
		t.Fatalf("category was not persisted")
	}

	created, err := service.CreateService(context.Background(), &request.CreateServiceRequest{
		CategoryID:      category.ID,
		Name:            "Haircut",
		Price:           50,
		DurationMinutes: 40,
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	if created.CategoryID != category.ID {
		t.Errorf("service category = %s, want %s", created.CategoryID, category.ID)
	}
	if len(services.items) != 1 {
		t.Error("service was not persisted")
	}
}

func TestDeleteCategory_BlockedByActiveServices(t *testing.T) {
	service, _, _ := newCatalogTestService()

	category, err := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{
		Name: "Hair",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := service.CreateService(context.Background(), &request.CreateServiceRequest{
		CategoryID:      category.ID,
		Name:            "Haircut",
		Price:           50,
		DurationMinutes: 40,
	}); err != nil {
		t.Fatalf("create service: %v", err)
	}

	err = service.DeleteCategory(context.Background(), category.ID)
	if err == nil || !strings.Contains(err.Error(), "cannot delete category") {
		t.Fatalf("expected deletion to be blocked, got %v", err)
	}
}

func TestDeleteCategory_EmptyCategory(t *testing.T) {
	service, categories, _ := newCatalogTestService()

	category, err := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{
		Name: "Hair",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	if err := service.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if len(categories.items) != 0 {
		t.Error("category should be gone")
	}
}

func TestListServices_FiltersByCategory(t *testing.T) {
	service, _, _ := newCatalogTestService()

	hair, _ := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{Name: "Hair"})
	nails, _ := service.CreateCategory(context.Background(), &request.CreateCategoryRequest{Name: "Nails"})

	for _, spec := range []struct{ category, name string }{
		{hair.ID, "Haircut"},
		{hair.ID, "Coloring"},
		{nails.ID, "Manicure"},
	} {
		if _, err := service.CreateService(context.Background(), &request.CreateServiceRequest{
			CategoryID:      spec.category,
			Name:            spec.name,
			Price:           50,
			DurationMinutes: 40,
		}); err != nil {
			t.Fatalf("create service %s: %v", spec.name, err)
		}
	}

	hairServices, err := service.ListServices(context.Background(), hair.ID)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(hairServices) != 2 {
		t.Errorf("hair category has %d services, want 2", len(hairServices))
	}

	all, err := service.ListServices(context.Background(), "")
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("catalog has %d services, want 3", len(all))
	}
}

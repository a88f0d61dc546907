package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewCategoryMemoryRepository(), NewProductMemoryRepository())
}

func createCategory(t *testing.T, s Service, name string) *Category {
	t.Helper()
	c, err := s.CreateCategory(context.Background(), CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return c
}

func createProduct(t *testing.T, s Service, name string, categoryID int, sku string) *Product {
	t.Helper()
	stock := 5
	p, err := s.CreateProduct(context.Background(), CreateProductRequest{
		Name:       name,
		Price:      "10.00",
		CategoryID: categoryID,
		Stock:      &stock,
		SKU:        sku,
	})
	require.NoError(t, err)
	return p
}

func TestCreateCategoryDefaults(t *testing.T) {
	s := newTestService()
	c := createCategory(t, s, "Pottery")

	require.Equal(t, 1, c.ID)
	require.True(t, c.IsActive)
	require.Nil(t, c.Description)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	s := newTestService()
	_, err := s.CreateCategory(context.Background(), CreateCategoryRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCategoryPatchesOnlyGivenFields(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	c := createCategory(t, s, "Pottery")

	desc := "clay things"
	updated, err := s.UpdateCategory(ctx, c.ID, UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "Pottery", updated.Name)
	require.NotNil(t, updated.Description)
	require.Equal(t, "clay things", *updated.Description)
	require.True(t, updated.IsActive)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	s := newTestService()
	name := "x"
	_, err := s.UpdateCategory(context.Background(), 99, UpdateCategoryRequest{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListCategoriesActiveOnly(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	createCategory(t, s, "Pottery")
	hidden := createCategory(t, s, "Hidden")

	inactive := false
	_, err := s.UpdateCategory(ctx, hidden.ID, UpdateCategoryRequest{IsActive: &inactive})
	require.NoError(t, err)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "Pottery", categories[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	s := newTestService()
	_, err := s.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsJoinsCategory(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")
	createProduct(t, s, "Bowl", pottery.ID, "B1")

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Bowl", products[0].Name)
	require.Equal(t, "Pottery", products[0].Category.Name)
	require.Equal(t, "10.00", products[0].Price)
	require.Equal(t, 5, products[0].Stock)
}

func TestDeleteCategoryLeavesDanglingProductsOutOfListings(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")
	textiles := createCategory(t, s, "Textiles")
	bowl := createProduct(t, s, "Bowl", pottery.ID, "B1")
	createProduct(t, s, "Blanket", textiles.ID, "T1")

	require.NoError(t, s.DeleteCategory(ctx, pottery.ID))

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Blanket", products[0].Name)

	// Direct reads of the dangling product report absence.
	_, err = s.GetProduct(ctx, bowl.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchProductsMatchesNameOrDescription(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")

	_, err := s.CreateProduct(ctx, CreateProductRequest{
		Name:        "Ceramic Bowl",
		Description: "glazed stoneware",
		Price:       "20.00",
		CategoryID:  pottery.ID,
		SKU:         "CB1",
	})
	require.NoError(t, err)
	_, err = s.CreateProduct(ctx, CreateProductRequest{
		Name:        "Vase",
		Description: "a BOWL-shaped vase",
		Price:       "30.00",
		CategoryID:  pottery.ID,
		SKU:         "V1",
	})
	require.NoError(t, err)
	_, err = s.CreateProduct(ctx, CreateProductRequest{
		Name:        "Blanket",
		Description: "wool",
		Price:       "40.00",
		CategoryID:  pottery.ID,
		SKU:         "BL1",
	})
	require.NoError(t, err)

	results, err := s.SearchProducts(ctx, "bowl")
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestSearchProductsSkipsInactive(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")
	bowl := createProduct(t, s, "Bowl", pottery.ID, "B1")

	inactive := false
	_, err := s.UpdateProduct(ctx, bowl.ID, UpdateProductRequest{IsActive: &inactive})
	require.NoError(t, err)

	results, err := s.SearchProducts(ctx, "bowl")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestListProductsByCategory(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")
	textiles := createCategory(t, s, "Textiles")
	createProduct(t, s, "Bowl", pottery.ID, "B1")
	createProduct(t, s, "Vase", pottery.ID, "V1")
	createProduct(t, s, "Blanket", textiles.ID, "T1")

	products, err := s.ListProductsByCategory(ctx, pottery.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.Equal(t, pottery.ID, p.CategoryID)
	}
}

func TestUpdateProductPatchesOnlyGivenFields(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")
	bowl := createProduct(t, s, "Bowl", pottery.ID, "B1")

	price := "12.50"
	updated, err := s.UpdateProduct(ctx, bowl.ID, UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	require.Equal(t, "12.50", updated.Price)
	require.Equal(t, "Bowl", updated.Name)
	require.Equal(t, "B1", updated.SKU)
	require.Equal(t, 5, updated.Stock)
}

func TestProductIDsAreNotReused(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	pottery := createCategory(t, s, "Pottery")
	first := createProduct(t, s, "Bowl", pottery.ID, "B1")
	require.NoError(t, s.DeleteProduct(ctx, first.ID))

	second := createProduct(t, s, "Vase", pottery.ID, "V1")
	require.Greater(t, second.ID, first.ID)
}

func TestDeleteProductNotFound(t *testing.T) {
	s := newTestService()
	err := s.DeleteProduct(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSeedDemo(t *testing.T) {
	categories := NewCategoryMemoryRepository()
	products := NewProductMemoryRepository()
	require.NoError(t, SeedDemo(context.Background(), categories, products))

	s := NewService(categories, products)
	list, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 8)
	require.Equal(t, "Knitting & Yarn", list[0].Category.Name)

	cats, err := s.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 5)
}

package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codefanw/mall-backend/application/product"
	"github.com/codefanw/mall-backend/constant"
	mockProductRepo "github.com/codefanw/mall-backend/mocks/repository/product"
	"github.com/codefanw/mall-backend/model"
	"github.com/codefanw/mall-backend/utils/errors"
)

func TestProductApp_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		productRepo := mockProductRepo.NewProductRepository(t)
		productRepo.On("List", ctx, 2, 5).Return([]model.ProductListItem{
			{ID: 1, Name: "keyboard", Price: 199},
		}, int64(6), nil)

		app := product.NewProductApp(productRepo)
		got, err := app.ListProducts(ctx, 2, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(6), got.TotalCount)
		assert.Equal(t, 2, got.Page)
		assert.Len(t, got.Items, 1)
	})

	t.Run("defaults page and per page", func(t *testing.T) {
		productRepo := mockProductRepo.NewProductRepository(t)
		productRepo.On("List", ctx, 1, 10).Return([]model.ProductListItem{}, int64(0), nil)

		app := product.NewProductApp(productRepo)
		got, err := app.ListProducts(ctx, 0, -3)

		assert.NoError(t, err)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 10, got.PerPage)
	})

	t.Run("repository failure", func(t *testing.T) {
		productRepo := mockProductRepo.NewProductRepository(t)
		productRepo.On("List", ctx, 1, 10).Return(nil, int64(0), assert.AnError)

		app := product.NewProductApp(productRepo)
		got, err := app.ListProducts(ctx, 1, 10)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInternal), err)
	})
}

func TestProductApp_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		productRepo := mockProductRepo.NewProductRepository(t)
		want := &model.ProductDetail{ID: 7, Name: "monitor", Price: 899}
		productRepo.On("GetByID", ctx, uint64(7)).Return(want, nil)

		app := product.NewProductApp(productRepo)
		got, err := app.GetProduct(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		productRepo := mockProductRepo.NewProductRepository(t)
		productRepo.On("GetByID", ctx, uint64(7)).Return(nil, nil)

		app := product.NewProductApp(productRepo)
		got, err := app.GetProduct(ctx, 7)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}

package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/codefanw/mall-backend/application/comment"
	"github.com/codefanw/mall-backend/constant"
	mockCommentRepo "github.com/codefanw/mall-backend/mocks/repository/comment"
	mockProductRepo "github.com/codefanw/mall-backend/mocks/repository/product"
	mockUserRepo "github.com/codefanw/mall-backend/mocks/repository/user"
	"github.com/codefanw/mall-backend/model"
	"github.com/codefanw/mall-backend/utils/errors"
)

func TestCommentApp_ListProductComments(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		commentRepo := mockCommentRepo.NewCommentRepository(t)
		content := "great keyboard"
		commentRepo.On("ListByProduct", ctx, uint64(7)).Return([]model.Comment{
			{ID: 2, UserID: 11, ProductID: 7, Score: 5, Content: &content},
			{ID: 1, UserID: 12, ProductID: 7, Score: 3},
		}, nil)

		app := comment.NewCommentApp(commentRepo, nil, nil)
		got, err := app.ListProductComments(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), got.TotalCount)
		assert.Equal(t, uint64(7), got.ProductID)
	})

	t.Run("repository failure", func(t *testing.T) {
		commentRepo := mockCommentRepo.NewCommentRepository(t)
		commentRepo.On("ListByProduct", ctx, uint64(7)).Return(nil, assert.AnError)

		app := comment.NewCommentApp(commentRepo, nil, nil)
		got, err := app.ListProductComments(ctx, 7)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInternal), err)
	})
}

func TestCommentApp_CreateComment(t *testing.T) {
	ctx := context.Background()
	content := "arrived fast"
	req := &model.CommentCreateRequest{UserID: 11, ProductID: 7, Score: 4, Content: &content}

	t.Run("success", func(t *testing.T) {
		commentRepo := mockCommentRepo.NewCommentRepository(t)
		userRepo := mockUserRepo.NewUserRepository(t)
		productRepo := mockProductRepo.NewProductRepository(t)

		userRepo.On("Get", ctx, &model.UserFilter{ID: 11}).Return(&model.UserEntity{ID: 11}, nil)
		productRepo.On("GetByID", ctx, uint64(7)).Return(&model.ProductDetail{ID: 7}, nil)
		commentRepo.On("Insert", ctx, mock.MatchedBy(func(c *model.Comment) bool {
			return c.UserID == 11 && c.ProductID == 7 && c.Score == 4
		})).Return(uint64(21), nil)

		app := comment.NewCommentApp(commentRepo, userRepo, productRepo)
		got, err := app.CreateComment(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint64(21), got.ID)
		assert.Equal(t, &content, got.Content)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{ID: 11}).Return(nil, nil)

		app := comment.NewCommentApp(nil, userRepo, nil)
		got, err := app.CreateComment(ctx, req)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})

	t.Run("unknown product", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		productRepo := mockProductRepo.NewProductRepository(t)

		userRepo.On("Get", ctx, &model.UserFilter{ID: 11}).Return(&model.UserEntity{ID: 11}, nil)
		productRepo.On("GetByID", ctx, uint64(7)).Return(nil, nil)

		app := comment.NewCommentApp(nil, userRepo, productRepo)
		got, err := app.CreateComment(ctx, req)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}

func TestCommentApp_DeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		commentRepo := mockCommentRepo.NewCommentRepository(t)
		commentRepo.On("GetByID", ctx, uint64(21)).Return(&model.Comment{ID: 21, UserID: 11}, nil)
		commentRepo.On("Delete", ctx, uint64(21)).Return(nil)

		app := comment.NewCommentApp(commentRepo, nil, nil)
		assert.NoError(t, app.DeleteComment(ctx, 21, 11))
	})

	t.Run("not the owner", func(t *testing.T) {
		commentRepo := mockCommentRepo.NewCommentRepository(t)
		commentRepo.On("GetByID", ctx, uint64(21)).Return(&model.Comment{ID: 21, UserID: 11}, nil)

		app := comment.NewCommentApp(commentRepo, nil, nil)
		err := app.DeleteComment(ctx, 21, 99)
		assert.Equal(t, errors.SetCustomError(constant.ErrForbidden), err)
	})

	t.Run("not found", func(t *testing.T) {
		commentRepo := mockCommentRepo.NewCommentRepository(t)
		commentRepo.On("GetByID", ctx, uint64(21)).Return(nil, nil)

		app := comment.NewCommentApp(commentRepo, nil, nil)
		err := app.DeleteComment(ctx, 21, 11)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}

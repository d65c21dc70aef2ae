package comment

import (
	"context"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	commentrepo "github.com/codefanw/mall-backend/repository/comment"
	productrepo "github.com/codefanw/mall-backend/repository/product"
	userrepo "github.com/codefanw/mall-backend/repository/user"
	"github.com/codefanw/mall-backend/utils/errors"
	"github.com/codefanw/mall-backend/utils/logger"
	"go.uber.org/zap"
)

type CommentApp interface {
	ListProductComments(ctx context.Context, productID uint64) (*model.CommentListResponse, error)
	CreateComment(ctx context.Context, req *model.CommentCreateRequest) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uint64) error
}

type commentAppImpl struct {
	commentRepo commentrepo.CommentRepository
	userRepo    userrepo.UserRepository
	productRepo productrepo.ProductRepository
}

func NewCommentApp(commentRepo commentrepo.CommentRepository, userRepo userrepo.UserRepository, productRepo productrepo.ProductRepository) CommentApp {
	return &commentAppImpl{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (s *commentAppImpl) ListProductComments(ctx context.Context, productID uint64) (*model.CommentListResponse, error) {
	comments, err := s.commentRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Error("[ListProductComments] error commentRepo.ListByProduct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CommentListResponse{
		Items:      comments,
		TotalCount: int64(len(comments)),
		ProductID:  productID,
	}, nil
}

func (s *commentAppImpl) CreateComment(ctx context.Context, req *model.CommentCreateRequest) (*model.Comment, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
	if err != nil {
		logger.Error("[CreateComment] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[CreateComment] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	comment := &model.Comment{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Score:     req.Score,
		Content:   req.Content,
	}

	id, err := s.commentRepo.Insert(ctx, comment)
	if err != nil {
		logger.Error("[CreateComment] error commentRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	comment.ID = id
	return comment, nil
}

// DeleteComment removes a comment; a user may only delete their own.
func (s *commentAppImpl) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		logger.Error("[DeleteComment] error commentRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if comment == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if comment.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		logger.Error("[DeleteComment] error commentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

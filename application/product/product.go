package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
	productrepo "github.com/hanifmaulana/quotedesk/repository/product"
	"github.com/hanifmaulana/quotedesk/utils/errors"
	"github.com/hanifmaulana/quotedesk/utils/logger"
)

type ProductApp interface {
	List(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) List(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[List] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	detail, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

package product

import (
	"context"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	productRepo "github.com/muhammadheryan/hub-fulfillment/repository/product"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, hubID uint64, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id, hubID uint64) (*model.ProductDetail, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

// ListProducts pages the catalog. Availability is summed over all hubs unless hubID is set.
func (s *productAppImpl) ListProducts(ctx context.Context, hubID uint64, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.productRepo.List(ctx, hubID, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		HubID:      hubID,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id, hubID uint64) (*model.ProductDetail, error) {
	result, err := s.productRepo.GetByID(ctx, id, hubID)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

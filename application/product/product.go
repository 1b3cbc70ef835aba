package product

import (
	"context"

	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
	ledgerrepo "github.com/muhammadheryan/inventory-tracker/repository/ledger"
	productrepo "github.com/muhammadheryan/inventory-tracker/repository/product"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) error
	Get(ctx context.Context, id uint64) (*model.Product, error)
	List(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	Delete(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
	ledgerRepo  ledgerrepo.LedgerRepository
}

func NewProductApp(productRepo productrepo.ProductRepository, ledgerRepo ledgerrepo.LedgerRepository) ProductApp {
	return &productAppImpl{
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *productAppImpl) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req.UnitPriceCents < 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	id, err := s.productRepo.Insert(ctx, req)
	if err != nil {
		if ce, ok := err.(errors.CustomError); ok {
			return nil, ce
		}
		logger.Error("[CreateProduct] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.Product{
		ID:             id,
		SKU:            req.SKU,
		Name:           req.Name,
		Category:       req.Category,
		UnitPriceCents: req.UnitPriceCents,
	}, nil
}

func (s *productAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) error {
	if req.UnitPriceCents < 0 {
		return errors.SetCustomError(constant.ErrValidation)
	}

	if err := s.productRepo.Update(ctx, id, req); err != nil {
		if ce, ok := err.(errors.CustomError); ok {
			return ce
		}
		logger.Error("[UpdateProduct] update", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *productAppImpl) Get(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] get", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

func (s *productAppImpl) List(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// Delete refuses while any batch still holds quantity for the product.
func (s *productAppImpl) Delete(ctx context.Context, id uint64) error {
	has, err := s.ledgerRepo.HasStock(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] check stock", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if has {
		return errors.SetCustomError(constant.ErrProductReferenced)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if ce, ok := err.(errors.CustomError); ok {
			return ce
		}
		logger.Error("[DeleteProduct] delete", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

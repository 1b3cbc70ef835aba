package sale

import (
	"context"
	"sort"

	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"

	ledgerrepo "github.com/muhammadheryan/inventory-tracker/repository/ledger"
	redisrepo "github.com/muhammadheryan/inventory-tracker/repository/redis"
	salerepo "github.com/muhammadheryan/inventory-tracker/repository/sale"
	txrepo "github.com/muhammadheryan/inventory-tracker/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

// SaleApp handles point-of-sale depletion against specific batches. A sale
// commits in a single transaction: every line's batch decrement applies or
// none does. Prices are integer cents throughout.
type SaleApp interface {
	Quote(ctx context.Context, req *model.QuoteRequest) (*model.QuoteResponse, error)
	Commit(ctx context.Context, req *model.RecordSaleRequest) (*model.Sale, []model.SaleLine, error)
	Refund(ctx context.Context, saleID uint64, locationScope *uint64) (*model.Sale, error)
	List(ctx context.Context, locationID *uint64) ([]model.Sale, error)
}

type saleAppImpl struct {
	txRepo     txrepo.TxRepository
	saleRepo   salerepo.SaleRepository
	ledgerRepo ledgerrepo.LedgerRepository
	cache      redisrepo.SnapshotCache
}

func NewSaleApp(txRepo txrepo.TxRepository, saleRepo salerepo.SaleRepository, ledgerRepo ledgerrepo.LedgerRepository, cache redisrepo.SnapshotCache) SaleApp {
	return &saleAppImpl{
		txRepo:     txRepo,
		saleRepo:   saleRepo,
		ledgerRepo: ledgerRepo,
		cache:      cache,
	}
}

// Quote prices the lines against current availability without touching the
// ledger. The caller re-validates at commit time, a quote holds nothing.
func (s *saleAppImpl) Quote(ctx context.Context, req *model.QuoteRequest) (*model.QuoteResponse, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	resp := &model.QuoteResponse{Lines: make([]model.QuoteLine, 0, len(req.Lines))}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}

		detail, err := s.ledgerRepo.GetBatchDetail(ctx, line.BatchID)
		if err != nil {
			logger.Error("[Quote] get batch", zap.Uint64("batch_id", line.BatchID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return nil, errors.SetCustomErrorf(constant.ErrNotFound, "batch %d", line.BatchID)
		}
		if req.LocationID != 0 && detail.LocationID != req.LocationID {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "batch %d does not belong to location %d", line.BatchID, req.LocationID)
		}
		if detail.Available() < line.Quantity {
			return nil, errors.SetCustomErrorf(constant.ErrInsufficientStock,
				"batch %d has %d available, short by %d", line.BatchID, detail.Available(), line.Quantity-detail.Available())
		}

		subtotal := detail.UnitPriceCents * line.Quantity
		resp.Lines = append(resp.Lines, model.QuoteLine{
			BatchID:        line.BatchID,
			ProductID:      detail.ProductID,
			ProductName:    detail.ProductName,
			Quantity:       line.Quantity,
			UnitPriceCents: detail.UnitPriceCents,
			SubtotalCents:  subtotal,
		})
		resp.TotalCents += subtotal
	}
	return resp, nil
}

// Commit re-validates every line against current ledger state, then deducts
// all batches inside one transaction. Batches are locked in id order so two
// overlapping sales cannot deadlock.
func (s *saleAppImpl) Commit(ctx context.Context, req *model.RecordSaleRequest) (*model.Sale, []model.SaleLine, error) {
	if len(req.Lines) == 0 || req.LocationID == 0 {
		return nil, nil, errors.SetCustomError(constant.ErrValidation)
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, nil, errors.SetCustomError(constant.ErrValidation)
		}
	}

	ordered := make([]model.SaleLineRequest, len(req.Lines))
	copy(ordered, req.Lines)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].BatchID < ordered[j].BatchID })

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CommitSale] begin tx", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	lines := make([]model.SaleLine, 0, len(ordered))
	var total int64
	for _, line := range ordered {
		detail, err := s.ledgerRepo.GetBatchDetailTx(ctx, tx, line.BatchID)
		if err != nil {
			logger.Error("[CommitSale] get batch", zap.Uint64("batch_id", line.BatchID), zap.String("error", err.Error()))
			return nil, nil, errors.SetCustomError(constant.ErrInternal)
		}
		if detail == nil {
			return nil, nil, errors.SetCustomErrorf(constant.ErrNotFound, "batch %d", line.BatchID)
		}
		if detail.LocationID != req.LocationID {
			return nil, nil, errors.SetCustomErrorf(constant.ErrValidation, "batch %d does not belong to location %d", line.BatchID, req.LocationID)
		}
		if detail.Available() < line.Quantity {
			return nil, nil, errors.SetCustomErrorf(constant.ErrInsufficientStock,
				"batch %d has %d available, short by %d", line.BatchID, detail.Available(), line.Quantity-detail.Available())
		}

		if err := s.ledgerRepo.DeductTx(ctx, tx, line.BatchID, line.Quantity); err != nil {
			if errors.IsType(err, constant.ErrConcurrentModification) {
				return nil, nil, errors.SetCustomError(constant.ErrConcurrentModification)
			}
			logger.Error("[CommitSale] deduct batch", zap.Uint64("batch_id", line.BatchID), zap.String("error", err.Error()))
			return nil, nil, errors.SetCustomError(constant.ErrInternal)
		}

		subtotal := detail.UnitPriceCents * line.Quantity
		lines = append(lines, model.SaleLine{
			ProductID:      detail.ProductID,
			BatchID:        line.BatchID,
			Quantity:       line.Quantity,
			UnitPriceCents: detail.UnitPriceCents,
			SubtotalCents:  subtotal,
		})
		total += subtotal
	}

	sale := &model.Sale{
		LocationID:    req.LocationID,
		TotalCents:    total,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Status:        constant.SaleStatusCompleted,
	}
	saleID, err := s.saleRepo.InsertSaleTx(ctx, tx, sale)
	if err != nil {
		logger.Error("[CommitSale] insert sale", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.saleRepo.InsertSaleLinesTx(ctx, tx, saleID, lines); err != nil {
		logger.Error("[CommitSale] insert lines", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CommitSale] commit tx", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	sale.ID = saleID
	for i := range lines {
		lines[i].SaleID = saleID
	}
	return sale, lines, nil
}

// Refund re-credits every line's originating batch and is only legal once:
// completed -> refunded. A non-nil locationScope pins the caller to sales at
// that location.
func (s *saleAppImpl) Refund(ctx context.Context, saleID uint64, locationScope *uint64) (*model.Sale, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RefundSale] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	sale, err := s.saleRepo.GetSaleTx(ctx, tx, saleID)
	if err != nil {
		logger.Error("[RefundSale] get sale", zap.Uint64("sale_id", saleID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sale == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if locationScope != nil && sale.LocationID != *locationScope {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if sale.Status != constant.SaleStatusCompleted {
		return nil, errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	moved, err := s.saleRepo.UpdateSaleStatusTx(ctx, tx, saleID, constant.SaleStatusCompleted, constant.SaleStatusRefunded)
	if err != nil {
		logger.Error("[RefundSale] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return nil, errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	lines, err := s.saleRepo.GetSaleLinesTx(ctx, tx, saleID)
	if err != nil {
		logger.Error("[RefundSale] get lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, line := range lines {
		if err := s.ledgerRepo.CreditTx(ctx, tx, line.BatchID, line.Quantity); err != nil {
			logger.Error("[RefundSale] credit batch", zap.Uint64("batch_id", line.BatchID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RefundSale] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	sale.Status = constant.SaleStatusRefunded
	return sale, nil
}

func (s *saleAppImpl) List(ctx context.Context, locationID *uint64) ([]model.Sale, error) {
	sales, err := s.saleRepo.List(ctx, locationID)
	if err != nil {
		logger.Error("[ListSales] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return sales, nil
}

func (s *saleAppImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("[Sale] cache invalidate", zap.String("error", err.Error()))
	}
}

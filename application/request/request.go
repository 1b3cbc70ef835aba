package request

import (
	"context"
	"strings"

	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
	productrepo "github.com/muhammadheryan/inventory-tracker/repository/product"
	requestrepo "github.com/muhammadheryan/inventory-tracker/repository/request"
	txrepo "github.com/muhammadheryan/inventory-tracker/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

// RequestApp drives the seller stock request state machine:
// pending -> {approved, rejected}, approved -> completed.
// Rejected and completed are terminal. A request never touches the ledger,
// it only authorizes a later transfer.
type RequestApp interface {
	Submit(ctx context.Context, input *model.SubmitRequestInput) (*model.StockRequest, error)
	Get(ctx context.Context, requestID uint64) (*model.StockRequest, error)
	Approve(ctx context.Context, requestID uint64, notes string) error
	Reject(ctx context.Context, requestID uint64, reason string) error
	List(ctx context.Context, sellerID *uint64, status *constant.RequestStatus) ([]model.StockRequest, error)
}

type requestAppImpl struct {
	txRepo      txrepo.TxRepository
	requestRepo requestrepo.RequestRepository
	productRepo productrepo.ProductRepository
}

func NewRequestApp(txRepo txrepo.TxRepository, requestRepo requestrepo.RequestRepository, productRepo productrepo.ProductRepository) RequestApp {
	return &requestAppImpl{
		txRepo:      txRepo,
		requestRepo: requestRepo,
		productRepo: productRepo,
	}
}

func (s *requestAppImpl) Submit(ctx context.Context, input *model.SubmitRequestInput) (*model.StockRequest, error) {
	if input.Quantity <= 0 || input.SellerID == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		logger.Error("[Submit] get product", zap.Uint64("product_id", input.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	id, err := s.requestRepo.Insert(ctx, input)
	if err != nil {
		logger.Error("[Submit] insert request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.StockRequest{
		ID:        id,
		SellerID:  input.SellerID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Status:    constant.RequestStatusPending,
	}, nil
}

func (s *requestAppImpl) Get(ctx context.Context, requestID uint64) (*model.StockRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("[GetRequest] get", zap.Uint64("request_id", requestID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return req, nil
}

func (s *requestAppImpl) Approve(ctx context.Context, requestID uint64, notes string) error {
	return s.resolve(ctx, "Approve", requestID, constant.RequestStatusApproved, notes)
}

func (s *requestAppImpl) Reject(ctx context.Context, requestID uint64, reason string) error {
	// A rejection without a reason is a validation error, never silently
	// accepted.
	if strings.TrimSpace(reason) == "" {
		return errors.SetCustomErrorf(constant.ErrValidation, "rejection reason is required")
	}
	return s.resolve(ctx, "Reject", requestID, constant.RequestStatusRejected, reason)
}

// resolve moves a pending request to approved or rejected. The conditional
// update enforces legality even when two admins race on the same request.
func (s *requestAppImpl) resolve(ctx context.Context, op string, requestID uint64, to constant.RequestStatus, notes string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	req, err := s.requestRepo.GetByIDTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("["+op+"] get request", zap.Uint64("request_id", requestID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if req == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if req.Status != constant.RequestStatusPending {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	moved, err := s.requestRepo.UpdateStatusTx(ctx, tx, requestID, constant.RequestStatusPending, to, notes)
	if err != nil {
		logger.Error("["+op+"] update status", zap.Uint64("request_id", requestID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *requestAppImpl) List(ctx context.Context, sellerID *uint64, status *constant.RequestStatus) ([]model.StockRequest, error) {
	requests, err := s.requestRepo.List(ctx, sellerID, status)
	if err != nil {
		logger.Error("[ListRequests] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

package transfer

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"

	ledgerapp "github.com/muhammadheryan/inventory-tracker/application/ledger"
	ledgerrepo "github.com/muhammadheryan/inventory-tracker/repository/ledger"
	locationrepo "github.com/muhammadheryan/inventory-tracker/repository/location"
	redisrepo "github.com/muhammadheryan/inventory-tracker/repository/redis"
	requestrepo "github.com/muhammadheryan/inventory-tracker/repository/request"
	transferrepo "github.com/muhammadheryan/inventory-tracker/repository/transfer"
	txrepo "github.com/muhammadheryan/inventory-tracker/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

// TransferApp moves warehouse stock to seller locations:
// pending -> in-transit -> completed, forward only. A pending transfer holds
// a ledger reservation on the source batch; completion commits the source
// debit and the destination credit in one transaction.
type TransferApp interface {
	Initiate(ctx context.Context, req *model.InitiateTransferRequest) (*model.StockTransfer, error)
	Advance(ctx context.Context, transferID uint64) error
	Complete(ctx context.Context, transferID uint64) (*model.StockTransfer, error)
	Cancel(ctx context.Context, transferID uint64) error
	List(ctx context.Context, destinationLocationID *uint64) ([]model.StockTransfer, error)
}

type transferAppImpl struct {
	txRepo       txrepo.TxRepository
	transferRepo transferrepo.TransferRepository
	requestRepo  requestrepo.RequestRepository
	locationRepo locationrepo.LocationRepository
	ledgerRepo   ledgerrepo.LedgerRepository
	ledgerApp    ledgerapp.LedgerApp
	cache        redisrepo.SnapshotCache
}

func NewTransferApp(txRepo txrepo.TxRepository, transferRepo transferrepo.TransferRepository, requestRepo requestrepo.RequestRepository,
	locationRepo locationrepo.LocationRepository, ledgerRepo ledgerrepo.LedgerRepository, ledgerApp ledgerapp.LedgerApp, cache redisrepo.SnapshotCache) TransferApp {
	return &transferAppImpl{
		txRepo:       txRepo,
		transferRepo: transferRepo,
		requestRepo:  requestRepo,
		locationRepo: locationRepo,
		ledgerRepo:   ledgerRepo,
		ledgerApp:    ledgerApp,
		cache:        cache,
	}
}

func (s *transferAppImpl) Initiate(ctx context.Context, req *model.InitiateTransferRequest) (*model.StockTransfer, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	batch, err := s.ledgerApp.GetBatch(ctx, req.SourceBatchID)
	if err != nil {
		return nil, err
	}
	if batch.ProductID != req.ProductID {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "batch %d does not hold product %d", req.SourceBatchID, req.ProductID)
	}

	source, err := s.locationRepo.GetByID(ctx, batch.LocationID)
	if err != nil {
		logger.Error("[InitiateTransfer] get source location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if source == nil || source.Type != constant.LocationTypeWarehouse {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "batch %d is not warehouse stock", req.SourceBatchID)
	}

	destination, err := s.locationRepo.GetByID(ctx, req.DestinationLocationID)
	if err != nil {
		logger.Error("[InitiateTransfer] get destination", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if destination == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if destination.Type != constant.LocationTypeStore {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "destination %d is not a seller location", req.DestinationLocationID)
	}

	if req.LinkedRequestID != nil {
		linked, err := s.requestRepo.GetByID(ctx, *req.LinkedRequestID)
		if err != nil {
			logger.Error("[InitiateTransfer] get linked request", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if linked == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if linked.Status != constant.RequestStatusApproved {
			return nil, errors.SetCustomError(constant.ErrInvalidStateTransition)
		}
		if linked.ProductID != req.ProductID {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "request %d is for a different product", linked.ID)
		}
	}

	// The reservation is the availability check: it fails with
	// InsufficientStock when the batch cannot cover the quantity, and
	// nothing else has been written yet.
	reservation, err := s.ledgerApp.Reserve(ctx, req.SourceBatchID, req.Quantity)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[InitiateTransfer] begin tx", zap.String("error", err.Error()))
		s.compensateReservation(ctx, reservation.Token)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer := &model.StockTransfer{
		ProductID:             req.ProductID,
		SourceBatchID:         req.SourceBatchID,
		DestinationLocationID: req.DestinationLocationID,
		Quantity:              req.Quantity,
		LinkedRequestID:       req.LinkedRequestID,
		ReservationToken:      reservation.Token,
		BatchNumber:           req.BatchNumber,
		Status:                constant.TransferStatusPending,
	}
	id, err := s.transferRepo.InsertTx(ctx, tx, transfer)
	if err != nil {
		logger.Error("[InitiateTransfer] insert transfer", zap.String("error", err.Error()))
		s.compensateReservation(ctx, reservation.Token)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[InitiateTransfer] commit tx", zap.String("error", err.Error()))
		s.compensateReservation(ctx, reservation.Token)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	transfer.ID = id
	return transfer, nil
}

// compensateReservation releases a hold when transfer creation fails after
// the reserve succeeded. A leaked hold would block the batch forever.
func (s *transferAppImpl) compensateReservation(ctx context.Context, token string) {
	if err := s.ledgerApp.Release(ctx, token); err != nil {
		logger.Error("[InitiateTransfer] release reservation", zap.String("token", token), zap.String("error", err.Error()))
	}
}

func (s *transferAppImpl) Advance(ctx context.Context, transferID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AdvanceTransfer] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.transferRepo.GetByIDTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[AdvanceTransfer] get transfer", zap.Uint64("transfer_id", transferID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if transfer.Status != constant.TransferStatusPending {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	moved, err := s.transferRepo.UpdateStatusTx(ctx, tx, transferID, constant.TransferStatusPending, constant.TransferStatusInTransit)
	if err != nil {
		logger.Error("[AdvanceTransfer] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AdvanceTransfer] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// Complete is the only operation that durably moves quantity between
// locations. Source debit, destination credit, request completion and the
// status change commit together or not at all; the receive idempotency token
// is derived from the transfer so a retry after a failed commit cannot
// double-credit the destination.
func (s *transferAppImpl) Complete(ctx context.Context, transferID uint64) (*model.StockTransfer, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CompleteTransfer] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.transferRepo.GetByIDTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[CompleteTransfer] get transfer", zap.Uint64("transfer_id", transferID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if transfer.Status != constant.TransferStatusInTransit {
		return nil, errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	sourceBatch, err := s.ledgerRepo.GetBatchTx(ctx, tx, transfer.SourceBatchID)
	if err != nil {
		logger.Error("[CompleteTransfer] get source batch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sourceBatch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	reservation, err := s.ledgerRepo.GetReservationTx(ctx, tx, transfer.ReservationToken)
	if err != nil {
		logger.Error("[CompleteTransfer] get reservation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		logger.Error("[CompleteTransfer] reservation missing", zap.Uint64("transfer_id", transferID), zap.String("token", transfer.ReservationToken))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.ledgerRepo.CommitReservationTx(ctx, tx, reservation); err != nil {
		logger.Error("[CompleteTransfer] commit reservation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	batchNumber := transfer.BatchNumber
	if batchNumber == "" {
		batchNumber = fmt.Sprintf("BATCH-TRF-%d", transfer.ID)
	}
	_, _, err = s.ledgerRepo.ReceiveTx(ctx, tx, &model.ReceiveRequest{
		ProductID:        transfer.ProductID,
		LocationID:       transfer.DestinationLocationID,
		BatchNumber:      batchNumber,
		Quantity:         transfer.Quantity,
		Expiry:           sourceBatch.Expiry,
		IdempotencyToken: fmt.Sprintf("transfer-%d", transfer.ID),
	})
	if err != nil {
		logger.Error("[CompleteTransfer] receive at destination", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if transfer.LinkedRequestID != nil {
		// Status-only move: the approval notes on the request must survive.
		moved, err := s.requestRepo.MarkCompletedTx(ctx, tx, *transfer.LinkedRequestID)
		if err != nil {
			logger.Error("[CompleteTransfer] complete linked request", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !moved {
			return nil, errors.SetCustomError(constant.ErrInvalidStateTransition)
		}
	}

	moved, err := s.transferRepo.UpdateStatusTx(ctx, tx, transferID, constant.TransferStatusInTransit, constant.TransferStatusCompleted)
	if err != nil {
		logger.Error("[CompleteTransfer] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return nil, errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CompleteTransfer] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	transfer.Status = constant.TransferStatusCompleted
	transfer.BatchNumber = batchNumber
	return transfer, nil
}

// Cancel abandons a transfer that never left pending. The reservation goes
// back to the source batch before the row is discarded.
func (s *transferAppImpl) Cancel(ctx context.Context, transferID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelTransfer] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.transferRepo.GetByIDTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[CancelTransfer] get transfer", zap.Uint64("transfer_id", transferID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if transfer.Status != constant.TransferStatusPending {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	reservation, err := s.ledgerRepo.GetReservationTx(ctx, tx, transfer.ReservationToken)
	if err != nil {
		logger.Error("[CancelTransfer] get reservation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if reservation != nil {
		if err := s.ledgerRepo.ReleaseReservationTx(ctx, tx, reservation); err != nil {
			logger.Error("[CancelTransfer] release reservation", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.transferRepo.DeleteTx(ctx, tx, transferID); err != nil {
		logger.Error("[CancelTransfer] delete transfer", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelTransfer] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)
	return nil
}

func (s *transferAppImpl) List(ctx context.Context, destinationLocationID *uint64) ([]model.StockTransfer, error) {
	transfers, err := s.transferRepo.List(ctx, destinationLocationID)
	if err != nil {
		logger.Error("[ListTransfers] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transfers, nil
}

func (s *transferAppImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("[Transfer] cache invalidate", zap.String("error", err.Error()))
	}
}

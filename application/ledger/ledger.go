package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory-tracker/cmd/config"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
	ledgerrepo "github.com/muhammadheryan/inventory-tracker/repository/ledger"
	redisrepo "github.com/muhammadheryan/inventory-tracker/repository/redis"
	txrepo "github.com/muhammadheryan/inventory-tracker/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

// LedgerApp is the single owner of batch quantity state. Workflows either go
// through these operations or compose the ledger repository inside their own
// transaction; nothing else writes to the batch table.
type LedgerApp interface {
	Reserve(ctx context.Context, batchID uint64, qty int64) (*model.Reservation, error)
	Release(ctx context.Context, token string) error
	Receive(ctx context.Context, req *model.ReceiveRequest) (*model.Batch, error)
	Snapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, error)
	GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error)
}

type ledgerAppImpl struct {
	config     *config.Config
	txRepo     txrepo.TxRepository
	ledgerRepo ledgerrepo.LedgerRepository
	cache      redisrepo.SnapshotCache

	// batchLocks serializes same-batch mutations in-process. Distinct
	// batches proceed independently; the conditional SQL update remains
	// the hard guarantee underneath.
	batchLocks sync.Map
}

func NewLedgerApp(config *config.Config, txRepo txrepo.TxRepository, ledgerRepo ledgerrepo.LedgerRepository, cache redisrepo.SnapshotCache) LedgerApp {
	return &ledgerAppImpl{
		config:     config,
		txRepo:     txRepo,
		ledgerRepo: ledgerRepo,
		cache:      cache,
	}
}

func (s *ledgerAppImpl) lockBatch(batchID uint64) func() {
	v, _ := s.batchLocks.LoadOrStore(batchID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *ledgerAppImpl) Reserve(ctx context.Context, batchID uint64, qty int64) (*model.Reservation, error) {
	if qty <= 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	unlock := s.lockBatch(batchID)
	defer unlock()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	token := uuid.NewString()
	if err := s.ledgerRepo.ReserveTx(ctx, tx, batchID, qty, token); err != nil {
		if !errors.IsType(err, constant.ErrConcurrentModification) {
			logger.Error("[Reserve] reserve stock", zap.Uint64("batch_id", batchID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		// Lost the conditional update. Re-read once to classify, then
		// retry a single time before surfacing the conflict.
		batch, rerr := s.ledgerRepo.GetBatchTx(ctx, tx, batchID)
		if rerr != nil {
			logger.Error("[Reserve] re-read batch", zap.Uint64("batch_id", batchID), zap.String("error", rerr.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if batch == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if batch.Available() < qty {
			return nil, errors.SetCustomErrorf(constant.ErrInsufficientStock,
				"batch %d has %d available, short by %d", batchID, batch.Available(), qty-batch.Available())
		}
		if err := s.ledgerRepo.ReserveTx(ctx, tx, batchID, qty, token); err != nil {
			if errors.IsType(err, constant.ErrConcurrentModification) {
				return nil, errors.SetCustomError(constant.ErrConcurrentModification)
			}
			logger.Error("[Reserve] reserve retry", zap.Uint64("batch_id", batchID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)

	return &model.Reservation{Token: token, BatchID: batchID, Quantity: qty}, nil
}

func (s *ledgerAppImpl) Release(ctx context.Context, token string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Release] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	res, err := s.ledgerRepo.GetReservationTx(ctx, tx, token)
	if err != nil {
		logger.Error("[Release] get reservation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if res == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	unlock := s.lockBatch(res.BatchID)
	defer unlock()

	if err := s.ledgerRepo.ReleaseReservationTx(ctx, tx, res); err != nil {
		logger.Error("[Release] release reservation", zap.String("token", token), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Release] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateCache(ctx)
	return nil
}

func (s *ledgerAppImpl) Receive(ctx context.Context, req *model.ReceiveRequest) (*model.Batch, error) {
	if req.Quantity <= 0 || req.BatchNumber == "" || req.IdempotencyToken == "" {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Receive] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	batchID, applied, err := s.ledgerRepo.ReceiveTx(ctx, tx, req)
	if err != nil {
		logger.Error("[Receive] receive stock", zap.String("token", req.IdempotencyToken), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Receive] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if !applied {
		logger.Info("[Receive] duplicate idempotency token, no-op", zap.String("token", req.IdempotencyToken))
	} else {
		s.invalidateCache(ctx)
	}

	batch, err := s.ledgerRepo.GetBatch(ctx, batchID)
	if err != nil {
		logger.Error("[Receive] load batch", zap.Uint64("batch_id", batchID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if batch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return batch, nil
}

func (s *ledgerAppImpl) Snapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, error) {
	if s.cache != nil {
		entries, hit, err := s.cache.GetSnapshot(ctx, filter)
		if err != nil {
			logger.Warn("[Snapshot] cache read", zap.String("error", err.Error()))
		}
		if hit {
			return entries, nil
		}
	}

	entries, err := s.ledgerRepo.Snapshot(ctx, filter)
	if err != nil {
		logger.Error("[Snapshot] read ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, filter, entries, s.config.Inventory.SnapshotCacheTTL); err != nil {
			logger.Warn("[Snapshot] cache write", zap.String("error", err.Error()))
		}
	}
	return entries, nil
}

func (s *ledgerAppImpl) GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error) {
	batch, err := s.ledgerRepo.GetBatch(ctx, batchID)
	if err != nil {
		logger.Error("[GetBatch] load batch", zap.Uint64("batch_id", batchID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if batch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return batch, nil
}

func (s *ledgerAppImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("[Ledger] cache invalidate", zap.String("error", err.Error()))
	}
}

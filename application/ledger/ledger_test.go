package ledger_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	appledger "github.com/muhammadheryan/inventory-tracker/application/ledger"
	"github.com/muhammadheryan/inventory-tracker/cmd/config"
	"github.com/muhammadheryan/inventory-tracker/constant"
	ledgermocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/ledger"
	redismocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/model"
	ledgerrepo "github.com/muhammadheryan/inventory-tracker/repository/ledger"
	cerr "github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestLedgerApp_Reserve(t *testing.T) {
	t.Run("success: reserve holds quantity and returns a token", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()
		repo.On("ReserveTx", mock.Anything, tx, uint64(10), int64(5), mock.AnythingOfType("string")).Return(nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		res, err := app.Reserve(context.Background(), 10, 5)
		if err != nil {
			t.Fatalf("Reserve() error = %v", err)
		}
		if res.Token == "" || res.BatchID != 10 || res.Quantity != 5 {
			t.Fatalf("Reserve() = %+v", res)
		}
	})

	t.Run("error: conflict classified as insufficient stock with detail", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()
		repo.On("ReserveTx", mock.Anything, tx, uint64(10), int64(8), mock.AnythingOfType("string")).
			Return(cerr.SetCustomError(constant.ErrConcurrentModification)).Once()
		// 20 on hand, 15 already reserved: only 5 available
		repo.On("GetBatchTx", mock.Anything, tx, uint64(10)).Return(&model.Batch{
			ID: 10, Quantity: 20, Reserved: 15,
		}, nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		_, err := app.Reserve(context.Background(), 10, 8)
		if err == nil {
			t.Fatal("Reserve() expected error")
		}
		assertErrCode(t, err, constant.ErrInsufficientStock)
		if !strings.Contains(err.Error(), "batch 10") || !strings.Contains(err.Error(), "short by 3") {
			t.Fatalf("Reserve() error should name batch and shortfall, got %q", err.Error())
		}
	})

	t.Run("success: conflict retried once when stock still covers", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()
		repo.On("ReserveTx", mock.Anything, tx, uint64(10), int64(5), mock.AnythingOfType("string")).
			Return(cerr.SetCustomError(constant.ErrConcurrentModification)).Once()
		repo.On("GetBatchTx", mock.Anything, tx, uint64(10)).Return(&model.Batch{
			ID: 10, Quantity: 20, Reserved: 5,
		}, nil).Once()
		repo.On("ReserveTx", mock.Anything, tx, uint64(10), int64(5), mock.AnythingOfType("string")).
			Return(nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		res, err := app.Reserve(context.Background(), 10, 5)
		if err != nil {
			t.Fatalf("Reserve() error = %v", err)
		}
		if res.Quantity != 5 {
			t.Fatalf("Reserve() = %+v", res)
		}
	})

	t.Run("error: second conflict surfaces to the caller", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()
		repo.On("ReserveTx", mock.Anything, tx, uint64(10), int64(5), mock.AnythingOfType("string")).
			Return(cerr.SetCustomError(constant.ErrConcurrentModification)).Twice()
		repo.On("GetBatchTx", mock.Anything, tx, uint64(10)).Return(&model.Batch{
			ID: 10, Quantity: 20, Reserved: 5,
		}, nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		_, err := app.Reserve(context.Background(), 10, 5)
		if err == nil {
			t.Fatal("Reserve() expected error")
		}
		assertErrCode(t, err, constant.ErrConcurrentModification)
	})

	t.Run("error: zero quantity", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		_, err := app.Reserve(context.Background(), 10, 0)
		if err == nil {
			t.Fatal("Reserve() expected error")
		}
		assertErrCode(t, err, constant.ErrValidation)
	})
}

func TestLedgerApp_Receive(t *testing.T) {
	req := &model.ReceiveRequest{
		ProductID:        1,
		LocationID:       1,
		BatchNumber:      "BATCH-2026-03",
		Quantity:         50,
		IdempotencyToken: "delivery-551",
	}

	t.Run("success: first delivery credits the batch", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()
		repo.On("ReceiveTx", mock.Anything, tx, req).Return(uint64(10), true, nil).Once()
		repo.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
			ID: 10, ProductID: 1, LocationID: 1, Quantity: 50,
		}, nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		batch, err := app.Receive(context.Background(), req)
		if err != nil {
			t.Fatalf("Receive() error = %v", err)
		}
		if batch.Quantity != 50 {
			t.Fatalf("Receive() quantity = %d, want 50", batch.Quantity)
		}
	})

	t.Run("success: replayed token is a no-op", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()
		repo.On("ReceiveTx", mock.Anything, tx, req).Return(uint64(10), false, nil).Once()
		repo.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
			ID: 10, ProductID: 1, LocationID: 1, Quantity: 50,
		}, nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		batch, err := app.Receive(context.Background(), req)
		if err != nil {
			t.Fatalf("Receive() error = %v", err)
		}
		// Same quantity as the first delivery, not doubled.
		if batch.Quantity != 50 {
			t.Fatalf("Receive() quantity = %d, want 50", batch.Quantity)
		}
	})

	t.Run("error: missing idempotency token", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, nil)
		_, err := app.Receive(context.Background(), &model.ReceiveRequest{
			ProductID: 1, LocationID: 1, BatchNumber: "B", Quantity: 5,
		})
		if err == nil {
			t.Fatal("Receive() expected error")
		}
		assertErrCode(t, err, constant.ErrValidation)
	})
}

// fakeLedgerStore emulates the conditional-update semantics of the SQL
// repository in memory so concurrent reserves can be exercised for real.
type fakeLedgerStore struct {
	mu           sync.Mutex
	quantity     int64
	reserved     int64
	reservations map[string]int64
}

type fakeTxRepo struct{}

func (f *fakeTxRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) { return &sqlx.Tx{}, nil }
func (f *fakeTxRepo) CommitTx(tx *sqlx.Tx) error                    { return nil }
func (f *fakeTxRepo) RollbackTx(tx *sqlx.Tx) error                  { return nil }

func (f *fakeLedgerStore) snapshotBatch() *model.Batch {
	return &model.Batch{ID: 1, ProductID: 1, LocationID: 1, Quantity: f.quantity, Reserved: f.reserved}
}

func (f *fakeLedgerStore) GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotBatch(), nil
}

func (f *fakeLedgerStore) GetBatchTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.Batch, error) {
	return f.GetBatch(ctx, batchID)
}

func (f *fakeLedgerStore) GetBatchDetail(ctx context.Context, batchID uint64) (*model.BatchDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &model.BatchDetail{Batch: *f.snapshotBatch()}, nil
}

func (f *fakeLedgerStore) GetBatchDetailTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.BatchDetail, error) {
	return f.GetBatchDetail(ctx, batchID)
}

func (f *fakeLedgerStore) ReserveTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.quantity-f.reserved < qty {
		// Matches the zero-rows outcome of the conditional SQL update.
		return cerr.SetCustomError(constant.ErrConcurrentModification)
	}
	f.reserved += qty
	f.reservations[token] = qty
	return nil
}

func (f *fakeLedgerStore) GetReservationTx(ctx context.Context, tx *sqlx.Tx, token string) (*model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	qty, ok := f.reservations[token]
	if !ok {
		return nil, nil
	}
	return &model.Reservation{Token: token, BatchID: 1, Quantity: qty}, nil
}

func (f *fakeLedgerStore) CommitReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quantity -= res.Quantity
	f.reserved -= res.Quantity
	delete(f.reservations, res.Token)
	return nil
}

func (f *fakeLedgerStore) ReleaseReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reserved -= res.Quantity
	delete(f.reservations, res.Token)
	return nil
}

func (f *fakeLedgerStore) ReceiveTx(ctx context.Context, tx *sqlx.Tx, req *model.ReceiveRequest) (uint64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quantity += req.Quantity
	return 1, true, nil
}

func (f *fakeLedgerStore) DeductTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.quantity-f.reserved < qty {
		return cerr.SetCustomError(constant.ErrConcurrentModification)
	}
	f.quantity -= qty
	return nil
}

func (f *fakeLedgerStore) CreditTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quantity += qty
	return nil
}

func (f *fakeLedgerStore) Snapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, error) {
	return nil, nil
}

func (f *fakeLedgerStore) HasStock(ctx context.Context, productID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quantity > 0, nil
}

var _ ledgerrepo.LedgerRepository = (*fakeLedgerStore)(nil)

// Concurrent reserves against one batch must never oversell: with 10 on hand
// and 20 callers wanting 1 each, exactly 10 succeed and the rest get an
// insufficient stock failure.
func TestLedgerApp_Reserve_Concurrent(t *testing.T) {
	store := &fakeLedgerStore{quantity: 10, reservations: make(map[string]int64)}
	app := appledger.NewLedgerApp(testConfig(), &fakeTxRepo{}, store, nil)

	const callers = 20
	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.Reserve(context.Background(), 1, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, insufficient int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("unexpected error type %T: %v", err, err)
		}
		switch ce.ErrorType() {
		case constant.ErrInsufficientStock, constant.ErrConcurrentModification:
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 10 {
		t.Fatalf("succeeded = %d, want 10", succeeded)
	}
	if insufficient != 10 {
		t.Fatalf("failed = %d, want 10", insufficient)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.reserved != 10 || store.reserved > store.quantity {
		t.Fatalf("reserved = %d, quantity = %d: ledger oversold", store.reserved, store.quantity)
	}
}

func TestLedgerApp_Snapshot(t *testing.T) {
	entries := []model.SnapshotEntry{
		{ProductID: 1, LocationID: 2, BatchID: 10, BatchNumber: "BATCH-001", Available: 7, Reserved: 3},
	}

	t.Run("success: cache hit skips the ledger read", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		cache := redismocks.NewSnapshotCache(t)
		cache.On("GetSnapshot", mock.Anything, mock.Anything).Return(entries, true, nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, cache)
		got, err := app.Snapshot(context.Background(), &model.SnapshotFilter{})
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if len(got) != 1 || got[0].BatchID != 10 {
			t.Fatalf("Snapshot() = %+v", got)
		}
	})

	t.Run("success: cache miss reads the ledger and backfills", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		cache := redismocks.NewSnapshotCache(t)
		cache.On("GetSnapshot", mock.Anything, mock.Anything).Return(nil, false, nil).Once()
		repo.On("Snapshot", mock.Anything, mock.Anything).Return(entries, nil).Once()
		cache.On("SetSnapshot", mock.Anything, mock.Anything, entries, mock.Anything).Return(nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, cache)
		got, err := app.Snapshot(context.Background(), &model.SnapshotFilter{})
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if len(got) != 1 || got[0].Available != 7 {
			t.Fatalf("Snapshot() = %+v", got)
		}
	})

	t.Run("success: cache read failure falls through to the ledger", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		repo := ledgermocks.NewLedgerRepository(t)
		cache := redismocks.NewSnapshotCache(t)
		cache.On("GetSnapshot", mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down")).Once()
		repo.On("Snapshot", mock.Anything, mock.Anything).Return(entries, nil).Once()
		cache.On("SetSnapshot", mock.Anything, mock.Anything, entries, mock.Anything).Return(nil).Once()

		app := appledger.NewLedgerApp(testConfig(), txRepo, repo, cache)
		got, err := app.Snapshot(context.Background(), &model.SnapshotFilter{})
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("Snapshot() = %+v", got)
		}
	})
}

package transfer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	apptransfer "github.com/muhammadheryan/inventory-tracker/application/transfer"
	"github.com/muhammadheryan/inventory-tracker/constant"
	ledgerappmocks "github.com/muhammadheryan/inventory-tracker/mocks/application/ledger"
	ledgermocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/ledger"
	locationmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/location"
	requestmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/request"
	transfermocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/transfer"
	txmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/model"
	cerr "github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

type transferFields struct {
	txRepo       *txmocks.TxRepository
	transferRepo *transfermocks.TransferRepository
	requestRepo  *requestmocks.RequestRepository
	locationRepo *locationmocks.LocationRepository
	ledgerRepo   *ledgermocks.LedgerRepository
	ledgerApp    *ledgerappmocks.LedgerApp
}

func newTransferFields(t *testing.T) transferFields {
	return transferFields{
		txRepo:       txmocks.NewTxRepository(t),
		transferRepo: transfermocks.NewTransferRepository(t),
		requestRepo:  requestmocks.NewRequestRepository(t),
		locationRepo: locationmocks.NewLocationRepository(t),
		ledgerRepo:   ledgermocks.NewLedgerRepository(t),
		ledgerApp:    ledgerappmocks.NewLedgerApp(t),
	}
}

func newTransferApp(f transferFields) apptransfer.TransferApp {
	return apptransfer.NewTransferApp(f.txRepo, f.transferRepo, f.requestRepo, f.locationRepo, f.ledgerRepo, f.ledgerApp, nil)
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

func TestTransferApp_Initiate(t *testing.T) {
	linkedID := uint64(9)

	tests := []struct {
		name     string
		req      *model.InitiateTransferRequest
		mockCall func(f transferFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: initiate linked to approved request",
			req: &model.InitiateTransferRequest{
				ProductID:             1,
				SourceBatchID:         10,
				DestinationLocationID: 2,
				Quantity:              5,
				LinkedRequestID:       &linkedID,
			},
			mockCall: func(f transferFields) {
				f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1, Quantity: 20, Reserved: 0,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.Location{
					ID: 1, Type: constant.LocationTypeWarehouse,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.Location{
					ID: 2, Type: constant.LocationTypeStore,
				}, nil).Once()
				f.requestRepo.On("GetByID", mock.Anything, uint64(9)).Return(&model.StockRequest{
					ID: 9, ProductID: 1, Status: constant.RequestStatusApproved,
				}, nil).Once()
				f.ledgerApp.On("Reserve", mock.Anything, uint64(10), int64(5)).Return(&model.Reservation{
					Token: "tok-1", BatchID: 10, Quantity: 5,
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.transferRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.StockTransfer) bool {
					return tr.SourceBatchID == 10 && tr.ReservationToken == "tok-1" && tr.Status == constant.TransferStatusPending
				})).Return(uint64(3), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: insufficient stock surfaces from the reserve",
			req: &model.InitiateTransferRequest{
				ProductID:             1,
				SourceBatchID:         10,
				DestinationLocationID: 2,
				Quantity:              50,
			},
			mockCall: func(f transferFields) {
				f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1, Quantity: 20,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.Location{
					ID: 1, Type: constant.LocationTypeWarehouse,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.Location{
					ID: 2, Type: constant.LocationTypeStore,
				}, nil).Once()
				f.ledgerApp.On("Reserve", mock.Anything, uint64(10), int64(50)).
					Return(nil, cerr.SetCustomError(constant.ErrInsufficientStock)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: batch holds a different product",
			req: &model.InitiateTransferRequest{
				ProductID:             2,
				SourceBatchID:         10,
				DestinationLocationID: 2,
				Quantity:              5,
			},
			mockCall: func(f transferFields) {
				f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: destination is a warehouse",
			req: &model.InitiateTransferRequest{
				ProductID:             1,
				SourceBatchID:         10,
				DestinationLocationID: 3,
				Quantity:              5,
			},
			mockCall: func(f transferFields) {
				f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.Location{
					ID: 1, Type: constant.LocationTypeWarehouse,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Location{
					ID: 3, Type: constant.LocationTypeWarehouse,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: linked request still pending",
			req: &model.InitiateTransferRequest{
				ProductID:             1,
				SourceBatchID:         10,
				DestinationLocationID: 2,
				Quantity:              5,
				LinkedRequestID:       &linkedID,
			},
			mockCall: func(f transferFields) {
				f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.Location{
					ID: 1, Type: constant.LocationTypeWarehouse,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.Location{
					ID: 2, Type: constant.LocationTypeStore,
				}, nil).Once()
				f.requestRepo.On("GetByID", mock.Anything, uint64(9)).Return(&model.StockRequest{
					ID: 9, ProductID: 1, Status: constant.RequestStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name: "error: insert fails, reservation released",
			req: &model.InitiateTransferRequest{
				ProductID:             1,
				SourceBatchID:         10,
				DestinationLocationID: 2,
				Quantity:              5,
			},
			mockCall: func(f transferFields) {
				f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.Location{
					ID: 1, Type: constant.LocationTypeWarehouse,
				}, nil).Once()
				f.locationRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.Location{
					ID: 2, Type: constant.LocationTypeStore,
				}, nil).Once()
				f.ledgerApp.On("Reserve", mock.Anything, uint64(10), int64(5)).Return(&model.Reservation{
					Token: "tok-2", BatchID: 10, Quantity: 5,
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.transferRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("db error")).Once()

				f.ledgerApp.On("Release", mock.Anything, "tok-2").Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferFields(t)
			tt.mockCall(f)
			app := newTransferApp(f)

			got, err := app.Initiate(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Initiate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID == 0 || got.Status != constant.TransferStatusPending {
				t.Fatalf("Initiate() = %+v, want pending transfer with id", got)
			}
		})
	}
}

func TestTransferApp_Complete(t *testing.T) {
	linkedID := uint64(9)

	tests := []struct {
		name       string
		transferID uint64
		mockCall   func(f transferFields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: complete in-transit transfer with linked request",
			transferID: 3,
			mockCall: func(f transferFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
					ID:                    3,
					ProductID:             1,
					SourceBatchID:         10,
					DestinationLocationID: 2,
					Quantity:              5,
					LinkedRequestID:       &linkedID,
					ReservationToken:      "tok-1",
					Status:                constant.TransferStatusInTransit,
				}, nil).Once()
				f.ledgerRepo.On("GetBatchTx", mock.Anything, tx, uint64(10)).Return(&model.Batch{
					ID: 10, ProductID: 1, LocationID: 1, Quantity: 20, Reserved: 5,
				}, nil).Once()
				f.ledgerRepo.On("GetReservationTx", mock.Anything, tx, "tok-1").Return(&model.Reservation{
					Token: "tok-1", BatchID: 10, Quantity: 5,
				}, nil).Once()
				f.ledgerRepo.On("CommitReservationTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.ledgerRepo.On("ReceiveTx", mock.Anything, tx, mock.MatchedBy(func(req *model.ReceiveRequest) bool {
					return req.LocationID == 2 && req.Quantity == 5 && req.IdempotencyToken == "transfer-3"
				})).Return(uint64(33), true, nil).Once()
				f.requestRepo.On("MarkCompletedTx", mock.Anything, tx, uint64(9)).Return(true, nil).Once()
				f.transferRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(3),
					constant.TransferStatusInTransit, constant.TransferStatusCompleted).Return(true, nil).Once()
			},
			wantErr: false,
		},
		{
			name:       "error: transfer still pending",
			transferID: 3,
			mockCall: func(f transferFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
					ID:     3,
					Status: constant.TransferStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name:       "error: transfer already completed",
			transferID: 3,
			mockCall: func(f transferFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
					ID:     3,
					Status: constant.TransferStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name:       "error: transfer not found",
			transferID: 404,
			mockCall: func(f transferFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferFields(t)
			tt.mockCall(f)
			app := newTransferApp(f)

			got, err := app.Complete(context.Background(), tt.transferID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Complete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.TransferStatusCompleted {
				t.Fatalf("Complete() status = %v, want completed", got.Status)
			}
			if got.BatchNumber == "" {
				t.Fatalf("Complete() should backfill a destination batch number")
			}
		})
	}

	t.Run("success: completion keeps the approval notes on the linked request", func(t *testing.T) {
		f := newTransferFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
			ID:                    3,
			ProductID:             1,
			SourceBatchID:         10,
			DestinationLocationID: 2,
			Quantity:              5,
			LinkedRequestID:       &linkedID,
			ReservationToken:      "tok-1",
			Status:                constant.TransferStatusInTransit,
		}, nil).Once()
		f.ledgerRepo.On("GetBatchTx", mock.Anything, tx, uint64(10)).Return(&model.Batch{
			ID: 10, ProductID: 1, LocationID: 1, Quantity: 20, Reserved: 5,
		}, nil).Once()
		f.ledgerRepo.On("GetReservationTx", mock.Anything, tx, "tok-1").Return(&model.Reservation{
			Token: "tok-1", BatchID: 10, Quantity: 5,
		}, nil).Once()
		f.ledgerRepo.On("CommitReservationTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		f.ledgerRepo.On("ReceiveTx", mock.Anything, tx, mock.Anything).Return(uint64(33), true, nil).Once()
		f.requestRepo.On("MarkCompletedTx", mock.Anything, tx, uint64(9)).Return(true, nil).Once()
		f.transferRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(3),
			constant.TransferStatusInTransit, constant.TransferStatusCompleted).Return(true, nil).Once()

		app := newTransferApp(f)
		if _, err := app.Complete(context.Background(), 3); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}

		// The linked request moves status-only; the notes-writing update must
		// never run here or the notes recorded at approval time are lost.
		f.requestRepo.AssertNotCalled(t, "UpdateStatusTx",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransferApp_Advance(t *testing.T) {
	t.Run("success: pending to in-transit", func(t *testing.T) {
		f := newTransferFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
			ID: 3, Status: constant.TransferStatusPending,
		}, nil).Once()
		f.transferRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(3),
			constant.TransferStatusPending, constant.TransferStatusInTransit).Return(true, nil).Once()

		if err := newTransferApp(f).Advance(context.Background(), 3); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	})

	t.Run("error: cannot advance a completed transfer", func(t *testing.T) {
		f := newTransferFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()
		f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
			ID: 3, Status: constant.TransferStatusCompleted,
		}, nil).Once()

		err := newTransferApp(f).Advance(context.Background(), 3)
		if err == nil {
			t.Fatal("Advance() expected error")
		}
		assertErrCode(t, err, constant.ErrInvalidStateTransition)
	})
}

func TestTransferApp_Cancel(t *testing.T) {
	t.Run("success: cancel pending transfer releases the hold", func(t *testing.T) {
		f := newTransferFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
			ID: 3, ReservationToken: "tok-1", Status: constant.TransferStatusPending,
		}, nil).Once()
		f.ledgerRepo.On("GetReservationTx", mock.Anything, tx, "tok-1").Return(&model.Reservation{
			Token: "tok-1", BatchID: 10, Quantity: 5,
		}, nil).Once()
		f.ledgerRepo.On("ReleaseReservationTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		f.transferRepo.On("DeleteTx", mock.Anything, tx, uint64(3)).Return(nil).Once()

		if err := newTransferApp(f).Cancel(context.Background(), 3); err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
	})

	t.Run("error: cannot cancel once in transit", func(t *testing.T) {
		f := newTransferFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()
		f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.StockTransfer{
			ID: 3, Status: constant.TransferStatusInTransit,
		}, nil).Once()

		err := newTransferApp(f).Cancel(context.Background(), 3)
		if err == nil {
			t.Fatal("Cancel() expected error")
		}
		assertErrCode(t, err, constant.ErrInvalidStateTransition)
	})
}

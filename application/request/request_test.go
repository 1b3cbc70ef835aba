package request_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	apprequest "github.com/muhammadheryan/inventory-tracker/application/request"
	"github.com/muhammadheryan/inventory-tracker/constant"
	productmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/product"
	requestmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/request"
	txmocks "github.com/muhammadheryan/inventory-tracker/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/model"
	cerr "github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestRequestApp_Submit(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		requestRepo *requestmocks.RequestRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx   context.Context
		input *model.SubmitRequestInput
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.StockRequest
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: submit request",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				input: &model.SubmitRequestInput{
					SellerID:  2,
					ProductID: 1,
					Quantity:  10,
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.Product{ID: 1, SKU: "SKU-1"}, nil).Once()
				f.requestRepo.On("Insert", mock.Anything, mock.MatchedBy(func(in *model.SubmitRequestInput) bool {
					return in.SellerID == 2 && in.ProductID == 1 && in.Quantity == 10
				})).Return(uint64(7), nil).Once()
			},
			want: &model.StockRequest{
				ID:       7,
				SellerID: 2,
				Status:   constant.RequestStatusPending,
			},
			wantErr: false,
		},
		{
			name: "error: non-positive quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				input: &model.SubmitRequestInput{
					SellerID:  2,
					ProductID: 1,
					Quantity:  0,
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: unknown product",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				input: &model.SubmitRequestInput{
					SellerID:  2,
					ProductID: 99,
					Quantity:  10,
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apprequest.NewRequestApp(tt.fields.txRepo, tt.fields.requestRepo, tt.fields.productRepo)

			got, err := app.Submit(tt.args.ctx, tt.args.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != tt.want.ID || got.SellerID != tt.want.SellerID || got.Status != tt.want.Status {
				t.Fatalf("Submit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRequestApp_Approve(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		requestRepo *requestmocks.RequestRepository
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name      string
		fields    fields
		requestID uint64
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: approve pending request",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.StockRequest{
					ID:     5,
					Status: constant.RequestStatusPending,
				}, nil).Once()
				f.requestRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(5),
					constant.RequestStatusPending, constant.RequestStatusApproved, "restock approved").Return(true, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: request already rejected",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.StockRequest{
					ID:     5,
					Status: constant.RequestStatusRejected,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name: "error: lost the race on the status update",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.StockRequest{
					ID:     5,
					Status: constant.RequestStatusPending,
				}, nil).Once()
				f.requestRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(5),
					constant.RequestStatusPending, constant.RequestStatusApproved, "restock approved").Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name: "error: request not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 404,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetByIDTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apprequest.NewRequestApp(tt.fields.txRepo, tt.fields.requestRepo, tt.fields.productRepo)

			err := app.Approve(context.Background(), tt.requestID, "restock approved")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Approve() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestRequestApp_Reject(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		requestRepo *requestmocks.RequestRepository
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name      string
		fields    fields
		requestID uint64
		reason    string
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: reject with reason",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			reason:    "no warehouse stock this month",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.StockRequest{
					ID:     5,
					Status: constant.RequestStatusPending,
				}, nil).Once()
				f.requestRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(5),
					constant.RequestStatusPending, constant.RequestStatusRejected, "no warehouse stock this month").Return(true, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: empty reason",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			reason:    "",
			mockCall:  nil,
			wantErr:   true,
			errCode:   constant.ErrValidation,
		},
		{
			name: "error: whitespace-only reason",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			reason:    "   ",
			mockCall:  nil,
			wantErr:   true,
			errCode:   constant.ErrValidation,
		},
		{
			name: "error: reject an approved request",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			requestID: 5,
			reason:    "changed my mind",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.StockRequest{
					ID:     5,
					Status: constant.RequestStatusApproved,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apprequest.NewRequestApp(tt.fields.txRepo, tt.fields.requestRepo, tt.fields.productRepo)

			err := app.Reject(context.Background(), tt.requestID, tt.reason)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reject() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

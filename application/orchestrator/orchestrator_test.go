package orchestrator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/inventory-tracker/application/orchestrator"
	"github.com/muhammadheryan/inventory-tracker/cmd/config"
	"github.com/muhammadheryan/inventory-tracker/constant"
	appledgermocks "github.com/muhammadheryan/inventory-tracker/mocks/application/ledger"
	apprequestmocks "github.com/muhammadheryan/inventory-tracker/mocks/application/request"
	appsalemocks "github.com/muhammadheryan/inventory-tracker/mocks/application/sale"
	apptransfermocks "github.com/muhammadheryan/inventory-tracker/mocks/application/transfer"
	"github.com/muhammadheryan/inventory-tracker/model"
	cerr "github.com/muhammadheryan/inventory-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

// capturingPublisher records emitted events in order.
type capturingPublisher struct {
	events []*model.Event
	err    error
}

func (p *capturingPublisher) PublishEvent(event *model.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type orchestratorFields struct {
	ledgerApp   *appledgermocks.LedgerApp
	requestApp  *apprequestmocks.RequestApp
	transferApp *apptransfermocks.TransferApp
	saleApp     *appsalemocks.SaleApp
}

func newOrchestratorFields(t *testing.T) orchestratorFields {
	return orchestratorFields{
		ledgerApp:   appledgermocks.NewLedgerApp(t),
		requestApp:  apprequestmocks.NewRequestApp(t),
		transferApp: apptransfermocks.NewTransferApp(t),
		saleApp:     appsalemocks.NewSaleApp(t),
	}
}

func newOrchestrator(f orchestratorFields, publisher orchestrator.EventPublisher) *orchestrator.Orchestrator {
	cfg := &config.Config{}
	cfg.Inventory.LowStockThreshold = 5
	return orchestrator.New(cfg, f.ledgerApp, f.requestApp, f.transferApp, f.saleApp, publisher)
}

func TestOrchestrator_ApproveRequest(t *testing.T) {
	t.Run("success: emits request_approved enriched with request fields", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{}
		f.requestApp.On("Approve", mock.Anything, uint64(7), "restock ok").Return(nil).Once()
		f.requestApp.On("Get", mock.Anything, uint64(7)).Return(&model.StockRequest{
			ID:        7,
			SellerID:  3,
			ProductID: 21,
			Quantity:  40,
			Status:    constant.RequestStatusApproved,
		}, nil).Once()

		orch := newOrchestrator(f, pub)
		if err := orch.ApproveRequest(context.Background(), 7, "restock ok"); err != nil {
			t.Fatalf("ApproveRequest() error = %v", err)
		}
		if len(pub.events) != 1 {
			t.Fatalf("events = %d, want 1", len(pub.events))
		}
		ev := pub.events[0]
		if ev.Type != constant.EventRequestApproved || ev.RequestID != 7 || ev.LocationID != 3 || ev.ProductID != 21 || ev.Quantity != 40 {
			t.Fatalf("event = %+v", ev)
		}
		if ev.OccurredAt.IsZero() {
			t.Fatal("event timestamp not set")
		}
	})

	t.Run("error: approval failure emits nothing", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{}
		f.requestApp.On("Approve", mock.Anything, uint64(7), "").
			Return(cerr.SetCustomError(constant.ErrInvalidStateTransition)).Once()

		orch := newOrchestrator(f, pub)
		if err := orch.ApproveRequest(context.Background(), 7, ""); err == nil {
			t.Fatal("ApproveRequest() error = nil, want error")
		}
		if len(pub.events) != 0 {
			t.Fatalf("events = %d, want 0", len(pub.events))
		}
	})

	t.Run("success: nil publisher still approves", func(t *testing.T) {
		f := newOrchestratorFields(t)
		f.requestApp.On("Approve", mock.Anything, uint64(7), "").Return(nil).Once()
		f.requestApp.On("Get", mock.Anything, uint64(7)).Return(&model.StockRequest{ID: 7}, nil).Once()

		orch := newOrchestrator(f, nil)
		if err := orch.ApproveRequest(context.Background(), 7, ""); err != nil {
			t.Fatalf("ApproveRequest() error = %v", err)
		}
	})
}

func TestOrchestrator_CompleteTransfer(t *testing.T) {
	transfer := &model.StockTransfer{
		ID:                    9,
		ProductID:             21,
		SourceBatchID:         10,
		DestinationLocationID: 4,
		Quantity:              12,
		Status:                constant.TransferStatusCompleted,
	}

	t.Run("success: emits transfer_completed and low_stock when source drained", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{}
		f.transferApp.On("Complete", mock.Anything, uint64(9)).Return(transfer, nil).Once()
		f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
			ID:         10,
			ProductID:  21,
			LocationID: 1,
			Quantity:   3,
			Reserved:   0,
		}, nil).Once()

		orch := newOrchestrator(f, pub)
		got, err := orch.CompleteTransfer(context.Background(), 9)
		if err != nil {
			t.Fatalf("CompleteTransfer() error = %v", err)
		}
		if got.ID != 9 {
			t.Fatalf("CompleteTransfer() = %+v", got)
		}
		if len(pub.events) != 2 {
			t.Fatalf("events = %d, want 2", len(pub.events))
		}
		if pub.events[0].Type != constant.EventTransferCompleted || pub.events[0].LocationID != 4 || pub.events[0].TransferID != 9 {
			t.Fatalf("first event = %+v", pub.events[0])
		}
		if pub.events[1].Type != constant.EventLowStock || pub.events[1].BatchID != 10 || pub.events[1].Available != 3 {
			t.Fatalf("second event = %+v", pub.events[1])
		}
	})

	t.Run("success: no low_stock above the threshold", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{}
		f.transferApp.On("Complete", mock.Anything, uint64(9)).Return(transfer, nil).Once()
		f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{
			ID:       10,
			Quantity: 50,
			Reserved: 2,
		}, nil).Once()

		orch := newOrchestrator(f, pub)
		if _, err := orch.CompleteTransfer(context.Background(), 9); err != nil {
			t.Fatalf("CompleteTransfer() error = %v", err)
		}
		if len(pub.events) != 1 || pub.events[0].Type != constant.EventTransferCompleted {
			t.Fatalf("events = %+v", pub.events)
		}
	})

	t.Run("success: publish failure never fails the transfer", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{err: errors.New("broker gone")}
		f.transferApp.On("Complete", mock.Anything, uint64(9)).Return(transfer, nil).Once()
		f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{ID: 10, Quantity: 50}, nil).Once()

		orch := newOrchestrator(f, pub)
		if _, err := orch.CompleteTransfer(context.Background(), 9); err != nil {
			t.Fatalf("CompleteTransfer() error = %v", err)
		}
	})
}

func TestOrchestrator_RecordSale(t *testing.T) {
	t.Run("success: emits sale_recorded and checks every depleted batch", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{}
		sale := &model.Sale{ID: 31, LocationID: 4, TotalCents: 3000, Status: constant.SaleStatusCompleted}
		lines := []model.SaleLine{
			{SaleID: 31, BatchID: 10, Quantity: 4},
			{SaleID: 31, BatchID: 11, Quantity: 2},
		}
		req := &model.RecordSaleRequest{LocationID: 4}
		f.saleApp.On("Commit", mock.Anything, req).Return(sale, lines, nil).Once()
		f.ledgerApp.On("GetBatch", mock.Anything, uint64(10)).Return(&model.Batch{ID: 10, LocationID: 4, Quantity: 2}, nil).Once()
		f.ledgerApp.On("GetBatch", mock.Anything, uint64(11)).Return(&model.Batch{ID: 11, LocationID: 4, Quantity: 40}, nil).Once()

		orch := newOrchestrator(f, pub)
		got, err := orch.RecordSale(context.Background(), req)
		if err != nil {
			t.Fatalf("RecordSale() error = %v", err)
		}
		if got.ID != 31 {
			t.Fatalf("RecordSale() = %+v", got)
		}
		if len(pub.events) != 2 {
			t.Fatalf("events = %d, want 2", len(pub.events))
		}
		if pub.events[0].Type != constant.EventSaleRecorded || pub.events[0].SaleID != 31 {
			t.Fatalf("first event = %+v", pub.events[0])
		}
		if pub.events[1].Type != constant.EventLowStock || pub.events[1].BatchID != 10 {
			t.Fatalf("second event = %+v", pub.events[1])
		}
	})

	t.Run("error: commit failure emits nothing", func(t *testing.T) {
		f := newOrchestratorFields(t)
		pub := &capturingPublisher{}
		req := &model.RecordSaleRequest{LocationID: 4}
		f.saleApp.On("Commit", mock.Anything, req).
			Return(nil, nil, cerr.SetCustomError(constant.ErrInsufficientStock)).Once()

		orch := newOrchestrator(f, pub)
		if _, err := orch.RecordSale(context.Background(), req); err == nil {
			t.Fatal("RecordSale() error = nil, want error")
		}
		if len(pub.events) != 0 {
			t.Fatalf("events = %d, want 0", len(pub.events))
		}
	})
}

package orchestrator

import (
	"context"
	"time"

	"github.com/muhammadheryan/inventory-tracker/cmd/config"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"

	ledgerapp "github.com/muhammadheryan/inventory-tracker/application/ledger"
	requestapp "github.com/muhammadheryan/inventory-tracker/application/request"
	saleapp "github.com/muhammadheryan/inventory-tracker/application/sale"
	transferapp "github.com/muhammadheryan/inventory-tracker/application/transfer"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

// EventPublisher delivers domain events to the notification stream.
// Implemented by thirdparty/rabbitmq.Publisher.
type EventPublisher interface {
	PublishEvent(event *model.Event) error
}

// Orchestrator is the unified surface the transport layer talks to. It
// composes the workflow apps, passes their errors through untouched, and
// emits domain events after the underlying state change committed. Event
// emission is best-effort: a publish failure is logged, never rolled back
// into the workflow result.
type Orchestrator struct {
	config      *config.Config
	ledgerApp   ledgerapp.LedgerApp
	requestApp  requestapp.RequestApp
	transferApp transferapp.TransferApp
	saleApp     saleapp.SaleApp
	publisher   EventPublisher
}

func New(config *config.Config, ledgerApp ledgerapp.LedgerApp, requestApp requestapp.RequestApp,
	transferApp transferapp.TransferApp, saleApp saleapp.SaleApp, publisher EventPublisher) *Orchestrator {
	return &Orchestrator{
		config:      config,
		ledgerApp:   ledgerApp,
		requestApp:  requestApp,
		transferApp: transferApp,
		saleApp:     saleApp,
		publisher:   publisher,
	}
}

func (o *Orchestrator) SubmitRequest(ctx context.Context, input *model.SubmitRequestInput) (*model.StockRequest, error) {
	return o.requestApp.Submit(ctx, input)
}

func (o *Orchestrator) ApproveRequest(ctx context.Context, requestID uint64, notes string) error {
	if err := o.requestApp.Approve(ctx, requestID, notes); err != nil {
		return err
	}

	event := &model.Event{
		Type:      constant.EventRequestApproved,
		RequestID: requestID,
	}
	if req, err := o.requestApp.Get(ctx, requestID); err == nil {
		event.LocationID = req.SellerID
		event.ProductID = req.ProductID
		event.Quantity = req.Quantity
	}
	o.emit(event)
	return nil
}

func (o *Orchestrator) RejectRequest(ctx context.Context, requestID uint64, reason string) error {
	return o.requestApp.Reject(ctx, requestID, reason)
}

func (o *Orchestrator) ListRequests(ctx context.Context, sellerID *uint64, status *constant.RequestStatus) ([]model.StockRequest, error) {
	return o.requestApp.List(ctx, sellerID, status)
}

func (o *Orchestrator) InitiateTransfer(ctx context.Context, req *model.InitiateTransferRequest) (*model.StockTransfer, error) {
	return o.transferApp.Initiate(ctx, req)
}

func (o *Orchestrator) AdvanceTransfer(ctx context.Context, transferID uint64) error {
	return o.transferApp.Advance(ctx, transferID)
}

func (o *Orchestrator) CompleteTransfer(ctx context.Context, transferID uint64) (*model.StockTransfer, error) {
	transfer, err := o.transferApp.Complete(ctx, transferID)
	if err != nil {
		return nil, err
	}

	o.emit(&model.Event{
		Type:       constant.EventTransferCompleted,
		LocationID: transfer.DestinationLocationID,
		ProductID:  transfer.ProductID,
		TransferID: transfer.ID,
		Quantity:   transfer.Quantity,
	})
	o.checkLowStock(ctx, transfer.SourceBatchID)
	return transfer, nil
}

func (o *Orchestrator) CancelTransfer(ctx context.Context, transferID uint64) error {
	return o.transferApp.Cancel(ctx, transferID)
}

func (o *Orchestrator) ListTransfers(ctx context.Context, destinationLocationID *uint64) ([]model.StockTransfer, error) {
	return o.transferApp.List(ctx, destinationLocationID)
}

func (o *Orchestrator) QuoteSale(ctx context.Context, req *model.QuoteRequest) (*model.QuoteResponse, error) {
	return o.saleApp.Quote(ctx, req)
}

func (o *Orchestrator) RecordSale(ctx context.Context, req *model.RecordSaleRequest) (*model.Sale, error) {
	sale, lines, err := o.saleApp.Commit(ctx, req)
	if err != nil {
		return nil, err
	}

	o.emit(&model.Event{
		Type:       constant.EventSaleRecorded,
		LocationID: sale.LocationID,
		SaleID:     sale.ID,
	})
	for _, line := range lines {
		o.checkLowStock(ctx, line.BatchID)
	}
	return sale, nil
}

func (o *Orchestrator) RefundSale(ctx context.Context, saleID uint64, locationScope *uint64) (*model.Sale, error) {
	return o.saleApp.Refund(ctx, saleID, locationScope)
}

func (o *Orchestrator) ListSales(ctx context.Context, locationID *uint64) ([]model.Sale, error) {
	return o.saleApp.List(ctx, locationID)
}

func (o *Orchestrator) ReceiveStock(ctx context.Context, req *model.ReceiveRequest) (*model.Batch, error) {
	return o.ledgerApp.Receive(ctx, req)
}

func (o *Orchestrator) GetLedgerSnapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, error) {
	return o.ledgerApp.Snapshot(ctx, filter)
}

// checkLowStock inspects a batch after a depletion and emits a low_stock
// event when its available quantity crossed the configured threshold.
func (o *Orchestrator) checkLowStock(ctx context.Context, batchID uint64) {
	if o.publisher == nil {
		return
	}
	batch, err := o.ledgerApp.GetBatch(ctx, batchID)
	if err != nil {
		logger.Warn("[LowStock] read batch", zap.Uint64("batch_id", batchID), zap.String("error", err.Error()))
		return
	}
	if batch.Available() > o.config.Inventory.LowStockThreshold {
		return
	}
	o.emit(&model.Event{
		Type:       constant.EventLowStock,
		LocationID: batch.LocationID,
		ProductID:  batch.ProductID,
		BatchID:    batch.ID,
		Available:  batch.Available(),
	})
}

func (o *Orchestrator) emit(event *model.Event) {
	if o.publisher == nil {
		return
	}
	event.OccurredAt = time.Now()
	if err := o.publisher.PublishEvent(event); err != nil {
		logger.Error("[Event] publish", zap.String("type", string(event.Type)), zap.String("error", err.Error()))
	}
}

package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hanifmaulana/quotedesk/cmd/config"
	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
	orderrepo "github.com/hanifmaulana/quotedesk/repository/order"
	quoterepo "github.com/hanifmaulana/quotedesk/repository/quote"
	stockrepo "github.com/hanifmaulana/quotedesk/repository/stock"
	txrepo "github.com/hanifmaulana/quotedesk/repository/tx"
	"github.com/hanifmaulana/quotedesk/thirdparty/rabbitmq"
	"github.com/hanifmaulana/quotedesk/utils/errors"
	"github.com/hanifmaulana/quotedesk/utils/logger"
)

type OrderApp interface {
	CreateFromQuote(ctx context.Context, quoteID, userID uint64) (*model.OrderFromQuoteResponse, error)
	ExpireOrder(ctx context.Context, orderID uint64) error
	PayOrder(ctx context.Context, orderID uint64) error
}

type orderAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	quoteRepo quoterepo.QuoteRepository
	orderRepo orderrepo.OrderRepository
	stockRepo stockrepo.StockRepository
	publisher *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, quoteRepo quoterepo.QuoteRepository, orderRepo orderrepo.OrderRepository, stockRepo stockrepo.StockRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		config:    config,
		txRepo:    txRepo,
		quoteRepo: quoteRepo,
		orderRepo: orderRepo,
		stockRepo: stockRepo,
		publisher: publisher,
	}
}

// CreateFromQuote converts a confirmed quote into a pending order,
// reserving stock for every line. The quote gets linked to the order in
// the same transaction, which freezes it for good.
func (s *orderAppImpl) CreateFromQuote(ctx context.Context, quoteID, userID uint64) (*model.OrderFromQuoteResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateFromQuote] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	q, err := s.quoteRepo.GetByIDTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[CreateFromQuote] get quote", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if userID != 0 && q.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if q.Locked() {
		return nil, errors.SetCustomError(constant.ErrQuoteLocked)
	}
	if q.Status != constant.QuoteStatusConfirmed {
		return nil, errors.SetCustomError(constant.ErrQuoteNotConfirmed)
	}

	items, err := s.quoteRepo.GetItemsTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[CreateFromQuote] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	expiresAt := time.Now().Add(s.config.Order.ReservationExpiration)
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		QuoteID:   quoteID,
		UserID:    q.UserID,
		Status:    constant.OrderStatusPending,
		ExpiresAT: expiresAt,
	})
	if err != nil {
		logger.Error("[CreateFromQuote] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for _, it := range items {
		if it.ProductID == nil || it.Qty == 0 {
			continue
		}
		err := s.stockRepo.ReserveStockTx(ctx, tx, &model.ReserveRequest{
			OrderID:   orderID,
			ProductID: *it.ProductID,
			Quantity:  it.Qty,
			ExpiresAt: expiresAt,
		})
		if err != nil {
			if ce, ok := err.(errors.CustomError); ok {
				return nil, ce
			}
			logger.Error("[CreateFromQuote] reserve stock", zap.Uint64("product_id", *it.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateFromQuote] insert order items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.quoteRepo.LinkOrderTx(ctx, tx, quoteID, orderID); err != nil {
		logger.Error("[CreateFromQuote] link order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateFromQuote] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			QuoteID:   quoteID,
			UserID:    q.UserID,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishOrderExpiration(msg); err != nil {
			logger.Error("[CreateFromQuote] publish expiration", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		}
		event := rabbitmq.QuoteEventMessage{QuoteID: quoteID, Event: rabbitmq.EventOrderCreated, Status: q.Status}
		if err := s.publisher.PublishQuoteEvent(event); err != nil {
			logger.Error("[CreateFromQuote] publish event", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		}
	}

	return &model.OrderFromQuoteResponse{OrderID: orderID, QuoteID: quoteID, ExpiresAt: expiresAt}, nil
}

// ExpireOrder releases reservations for an order that was never paid.
// Paid or already-cancelled orders are left alone, so replayed
// expiration messages are harmless.
func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ExpireOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ExpireOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if detail.Status != constant.OrderStatusPending {
		return nil
	}

	if err := s.stockRepo.ReleaseReservationsTx(ctx, tx, orderID); err != nil {
		logger.Error("[ExpireOrder] release reservations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusCanceled); err != nil {
		logger.Error("[ExpireOrder] cancel order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ExpireOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[ExpireOrder] order expired", zap.Uint64("order_id", orderID))
	return nil
}

// PayOrder settles a pending order: reservations are committed to real
// stock decrements and the order completes.
func (s *orderAppImpl) PayOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PayOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[PayOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if detail.Status != constant.OrderStatusPending {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.stockRepo.CommitReservationsTx(ctx, tx, orderID); err != nil {
		logger.Error("[PayOrder] commit reservations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusCompleted); err != nil {
		logger.Error("[PayOrder] complete order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PayOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

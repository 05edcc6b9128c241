package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	apporder "github.com/hanifmaulana/quotedesk/application/order"
	"github.com/hanifmaulana/quotedesk/cmd/config"
	"github.com/hanifmaulana/quotedesk/constant"
	ordermocks "github.com/hanifmaulana/quotedesk/mocks/repository/order"
	quotemocks "github.com/hanifmaulana/quotedesk/mocks/repository/quote"
	stockmocks "github.com/hanifmaulana/quotedesk/mocks/repository/stock"
	txmocks "github.com/hanifmaulana/quotedesk/mocks/repository/tx"
	"github.com/hanifmaulana/quotedesk/model"
	cerr "github.com/hanifmaulana/quotedesk/utils/errors"
)

// Note: order.go checks if publisher is nil before publishing, so tests
// run with a nil publisher.

func u64(v uint64) *uint64 { return &v }

func i64(v int64) *int64 { return &v }

type orderFields struct {
	config    *config.Config
	txRepo    *txmocks.TxRepository
	quoteRepo *quotemocks.QuoteRepository
	orderRepo *ordermocks.OrderRepository
	stockRepo *stockmocks.StockRepository
}

func newOrderFields(t *testing.T) orderFields {
	return orderFields{
		config: &config.Config{
			Order: config.OrderConfig{ReservationExpiration: 30 * time.Minute},
		},
		txRepo:    txmocks.NewTxRepository(t),
		quoteRepo: quotemocks.NewQuoteRepository(t),
		orderRepo: ordermocks.NewOrderRepository(t),
		stockRepo: stockmocks.NewStockRepository(t),
	}
}

func newOrderApp(f orderFields) apporder.OrderApp {
	return apporder.NewOrderApp(f.config, f.txRepo, f.quoteRepo, f.orderRepo, f.stockRepo, nil)
}

func assertErrCode(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestOrderApp_CreateFromQuote(t *testing.T) {
	type args struct {
		ctx     context.Context
		quoteID uint64
		userID  uint64
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f orderFields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: confirmed quote becomes pending order",
			args: args{ctx: context.Background(), quoteID: 10},
			mockCall: func(f orderFields) {
				tx := &sqlx.Tx{}
				items := []model.QuoteItemEntity{
					{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
				}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, UserID: 7, Status: constant.QuoteStatusConfirmed}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return(items, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
					return req.QuoteID == 10 && req.UserID == 7 && req.Status == constant.OrderStatusPending
				})).Return(uint64(55), nil).Once()
				f.stockRepo.On("ReserveStockTx", mock.Anything, tx, mock.MatchedBy(func(req *model.ReserveRequest) bool {
					return req.OrderID == 55 && req.ProductID == 1 && req.Quantity == 4
				})).Return(nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(55), items).Return(nil).Once()
				f.quoteRepo.On("LinkOrderTx", mock.Anything, tx, uint64(10), uint64(55)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantID:  55,
			wantErr: false,
		},
		{
			name: "error: quote not confirmed",
			args: args{ctx: context.Background(), quoteID: 10},
			mockCall: func(f orderFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusQuoted}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrQuoteNotConfirmed,
		},
		{
			name: "error: quote already linked to an order",
			args: args{ctx: context.Background(), quoteID: 10},
			mockCall: func(f orderFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusConfirmed, OrderID: u64(54)}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrQuoteLocked,
		},
		{
			name: "error: insufficient stock during reservation",
			args: args{ctx: context.Background(), quoteID: 10},
			mockCall: func(f orderFields) {
				tx := &sqlx.Tx{}
				items := []model.QuoteItemEntity{
					{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
				}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, UserID: 7, Status: constant.QuoteStatusConfirmed}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return(items, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.AnythingOfType("*model.InsertOrderTxItem")).
					Return(uint64(55), nil).Once()
				f.stockRepo.On("ReserveStockTx", mock.Anything, tx, mock.AnythingOfType("*model.ReserveRequest")).
					Return(cerr.SetCustomError(constant.ErrInsufficientStock)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: another user's quote",
			args: args{ctx: context.Background(), quoteID: 10, userID: 8},
			mockCall: func(f orderFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, UserID: 7, Status: constant.QuoteStatusConfirmed}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newOrderApp(f)

			got, err := app.CreateFromQuote(tt.args.ctx, tt.args.quoteID, tt.args.userID)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
			if tt.wantErr {
				return
			}
			if got.OrderID != tt.wantID {
				t.Fatalf("OrderID = %d, want %d", got.OrderID, tt.wantID)
			}
		})
	}
}

func TestOrderApp_ExpireOrder(t *testing.T) {
	t.Run("success: pending order released and cancelled", func(t *testing.T) {
		f := newOrderFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(55)).
			Return(&model.OrderDetail{ID: 55, QuoteID: 10, Status: constant.OrderStatusPending}, nil).Once()
		f.stockRepo.On("ReleaseReservationsTx", mock.Anything, tx, uint64(55)).Return(nil).Once()
		f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(55), constant.OrderStatusCanceled).
			Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		app := newOrderApp(f)
		if err := app.ExpireOrder(context.Background(), 55); err != nil {
			t.Fatalf("ExpireOrder() error = %v", err)
		}
	})

	t.Run("success: replayed expiration on paid order is a no-op", func(t *testing.T) {
		f := newOrderFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(55)).
			Return(&model.OrderDetail{ID: 55, QuoteID: 10, Status: constant.OrderStatusCompleted}, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := newOrderApp(f)
		if err := app.ExpireOrder(context.Background(), 55); err != nil {
			t.Fatalf("ExpireOrder() error = %v", err)
		}
	})
}

func TestOrderApp_PayOrder(t *testing.T) {
	t.Run("success: reservations committed and order completed", func(t *testing.T) {
		f := newOrderFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(55)).
			Return(&model.OrderDetail{ID: 55, QuoteID: 10, Status: constant.OrderStatusPending}, nil).Once()
		f.stockRepo.On("CommitReservationsTx", mock.Anything, tx, uint64(55)).Return(nil).Once()
		f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(55), constant.OrderStatusCompleted).
			Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		app := newOrderApp(f)
		if err := app.PayOrder(context.Background(), 55); err != nil {
			t.Fatalf("PayOrder() error = %v", err)
		}
	})

	t.Run("error: cancelled order cannot be paid", func(t *testing.T) {
		f := newOrderFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(55)).
			Return(&model.OrderDetail{ID: 55, QuoteID: 10, Status: constant.OrderStatusCanceled}, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := newOrderApp(f)
		err := app.PayOrder(context.Background(), 55)
		assertErrCode(t, err, true, constant.ErrInvalidOrderStatus)
	})
}

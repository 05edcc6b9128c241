package quote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appquote "github.com/hanifmaulana/quotedesk/application/quote"
	"github.com/hanifmaulana/quotedesk/cmd/config"
	"github.com/hanifmaulana/quotedesk/constant"
	productmocks "github.com/hanifmaulana/quotedesk/mocks/repository/product"
	quotemocks "github.com/hanifmaulana/quotedesk/mocks/repository/quote"
	redismocks "github.com/hanifmaulana/quotedesk/mocks/repository/redis"
	stockmocks "github.com/hanifmaulana/quotedesk/mocks/repository/stock"
	txmocks "github.com/hanifmaulana/quotedesk/mocks/repository/tx"
	"github.com/hanifmaulana/quotedesk/model"
	cerr "github.com/hanifmaulana/quotedesk/utils/errors"
)

// Note: quote.go checks if publisher is nil before publishing events, so
// tests run with a nil publisher.

func i64(v int64) *int64 { return &v }

func u64(v uint64) *uint64 { return &v }

func f64(v float64) *float64 { return &v }

type quoteFields struct {
	config      *config.Config
	txRepo      *txmocks.TxRepository
	quoteRepo   *quotemocks.QuoteRepository
	productRepo *productmocks.ProductRepository
	stockRepo   *stockmocks.StockRepository
	redisRepo   *redismocks.RedisRepository
}

func newQuoteFields(t *testing.T) quoteFields {
	return quoteFields{
		config: &config.Config{
			Quote: config.QuoteConfig{SummaryCacheTTL: 15 * time.Minute},
		},
		txRepo:      txmocks.NewTxRepository(t),
		quoteRepo:   quotemocks.NewQuoteRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		stockRepo:   stockmocks.NewStockRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
	}
}

func newQuoteApp(f quoteFields) appquote.QuoteApp {
	return appquote.NewQuoteApp(f.config, f.txRepo, f.quoteRepo, f.productRepo, f.stockRepo, f.redisRepo, nil)
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

func TestQuoteApp_UpdateQuantities(t *testing.T) {
	type args struct {
		ctx     context.Context
		quoteID uint64
		role    constant.UserRole
		req     *model.UpdateQuantitiesRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f quoteFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: admin updates within availability",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleAdmin,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 4}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, UserID: 7, Status: constant.QuoteStatusProcessing}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 6, AvailableNow: i64(4)},
					}, nil).Once()
				f.quoteRepo.On("UpdateItemQtyTx", mock.Anything, tx, uint64(10), uint64(1), int64(4)).
					Return(nil).Once()
				f.quoteRepo.On("UpdateItemAvailabilityTx", mock.Anything, tx, uint64(10), mock.MatchedBy(func(upd *model.ItemAvailabilityUpdate) bool {
					return upd.ProductID == 1 && upd.AvailableNow == 4 && upd.Shortage == 0 &&
						upd.AvailabilityStatus == constant.AvailabilityAvailable
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.redisRepo.On("DeleteAvailabilitySummary", mock.Anything, uint64(10)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: client confirm locks further edits",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleClient,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 3}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, UserID: 7, Status: constant.QuoteStatusQuoted}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 5, AvailableNow: i64(3)},
					}, nil).Once()
				f.quoteRepo.On("UpdateItemQtyTx", mock.Anything, tx, uint64(10), uint64(1), int64(3)).
					Return(nil).Once()
				f.quoteRepo.On("UpdateItemAvailabilityTx", mock.Anything, tx, uint64(10), mock.MatchedBy(func(upd *model.ItemAvailabilityUpdate) bool {
					return upd.ProductID == 1 && upd.Shortage == 0
				})).Return(nil).Once()
				f.quoteRepo.On("SetClientQtyEditLockedTx", mock.Anything, tx, uint64(10)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.redisRepo.On("DeleteAvailabilitySummary", mock.Anything, uint64(10)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: empty items",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleAdmin,
				req:     &model.UpdateQuantitiesRequest{},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: quote not found",
			args: args{
				ctx:     context.Background(),
				quoteID: 99,
				role:    constant.RoleAdmin,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 4}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(99)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: quote locked by order",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleAdmin,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 4}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusConfirmed, OrderID: u64(5)}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrQuoteLocked,
		},
		{
			name: "error: client already confirmed quantities",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleClient,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 4}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusQuoted, ClientQtyEditLocked: true}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrQtyEditLocked,
		},
		{
			name: "error: item references deleted product",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleAdmin,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 4}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusProcessing}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
						{QuoteID: 10, ProductID: nil, Qty: 2},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrMissingProduct,
		},
		{
			name: "error: availability never checked",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleAdmin,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 4}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusProcessing}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 4},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAvailabilityNotChecked,
		},
		{
			name: "error: quantity above available stock",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				role:    constant.RoleAdmin,
				req: &model.UpdateQuantitiesRequest{
					Items: []model.ItemQtyRequest{{ProductID: 1, Qty: 9}},
				},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusProcessing}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 6, AvailableNow: i64(4)},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newQuoteFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newQuoteApp(f)

			err := app.UpdateQuantities(tt.args.ctx, tt.args.quoteID, tt.args.role, tt.args.req)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestQuoteApp_UpdateStatus(t *testing.T) {
	type args struct {
		ctx     context.Context
		quoteID uint64
		req     *model.UpdateStatusRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f quoteFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: processing to quoted with available item",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				req:     &model.UpdateStatusRequest{Status: constant.QuoteStatusQuoted},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusProcessing}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
					}, nil).Once()
				f.quoteRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(10), constant.QuoteStatusQuoted).
					Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: confirm blocked by unresolved shortage",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				req:     &model.UpdateStatusRequest{Status: constant.QuoteStatusConfirmed},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusQuoted}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 6, AvailableNow: i64(4)},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrShortageUnresolved,
		},
		{
			name: "error: locked quote never transitions",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				req:     &model.UpdateStatusRequest{Status: constant.QuoteStatusCancelled},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusConfirmed, ManualInvoiceID: u64(3)}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrQuoteLocked,
		},
		{
			name: "error: terminal status is final",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				req:     &model.UpdateStatusRequest{Status: constant.QuoteStatusQuoted},
			},
			mockCall: func(f quoteFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusCancelled}, nil).Once()
				f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
					Return([]model.QuoteItemEntity{
						{QuoteID: 10, ProductID: u64(1), Qty: 4, AvailableNow: i64(4)},
					}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: unknown target status",
			args: args{
				ctx:     context.Background(),
				quoteID: 10,
				req:     &model.UpdateStatusRequest{Status: "SHIPPED"},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newQuoteFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newQuoteApp(f)

			err := app.UpdateStatus(tt.args.ctx, tt.args.quoteID, tt.args.req)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestQuoteApp_RecheckAvailability(t *testing.T) {
	t.Run("success: snapshot written back per item", func(t *testing.T) {
		f := newQuoteFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
			Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusProcessing}, nil).Once()
		f.quoteRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).
			Return([]model.QuoteItemEntity{
				{QuoteID: 10, ProductID: u64(1), Qty: 5},
				{QuoteID: 10, ProductID: u64(2), Qty: 3},
			}, nil).Once()
		f.stockRepo.On("SnapshotAvailabilityTx", mock.Anything, tx, []uint64{1, 2}).
			Return(map[uint64]int64{1: 5, 2: 1}, nil).Once()
		f.quoteRepo.On("UpdateItemAvailabilityTx", mock.Anything, tx, uint64(10), mock.MatchedBy(func(upd *model.ItemAvailabilityUpdate) bool {
			return upd.ProductID == 1 && upd.AvailableNow == 5 && upd.Shortage == 0 &&
				upd.AvailabilityStatus == constant.AvailabilityAvailable
		})).Return(nil).Once()
		f.quoteRepo.On("UpdateItemAvailabilityTx", mock.Anything, tx, uint64(10), mock.MatchedBy(func(upd *model.ItemAvailabilityUpdate) bool {
			return upd.ProductID == 2 && upd.AvailableNow == 1 && upd.Shortage == 2 &&
				upd.AvailabilityStatus == constant.AvailabilityShortage
		})).Return(nil).Once()
		f.quoteRepo.On("SetAvailabilityCheckedAtTx", mock.Anything, tx, uint64(10), mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.redisRepo.On("SetAvailabilitySummary", mock.Anything, uint64(10), constant.AvailabilityShortage, 15*time.Minute).
			Return(nil).Once()

		app := newQuoteApp(f)
		if err := app.RecheckAvailability(context.Background(), 10); err != nil {
			t.Fatalf("RecheckAvailability() error = %v", err)
		}
	})

	t.Run("error: locked quote cannot be rechecked", func(t *testing.T) {
		f := newQuoteFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.quoteRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).
			Return(&model.QuoteEntity{ID: 10, Status: constant.QuoteStatusConfirmed, OrderID: u64(9)}, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := newQuoteApp(f)
		err := app.RecheckAvailability(context.Background(), 10)
		assertErrCode(t, err, true, constant.ErrQuoteLocked)
	})
}

func TestQuoteApp_GetQuote(t *testing.T) {
	t.Run("success: owner sees derived availability and actions", func(t *testing.T) {
		f := newQuoteFields(t)
		f.quoteRepo.On("GetByID", mock.Anything, uint64(10)).
			Return(&model.QuoteEntity{
				ID:         10,
				UserID:     7,
				Status:     constant.QuoteStatusQuoted,
				TotalPrice: f64(120),
			}, nil).Once()
		f.quoteRepo.On("GetItems", mock.Anything, uint64(10)).
			Return([]model.QuoteItemEntity{
				{QuoteID: 10, ProductID: u64(1), Qty: 6, UnitPrice: f64(10), AvailableNow: i64(4)},
			}, nil).Once()

		app := newQuoteApp(f)
		view, err := app.GetQuote(context.Background(), 10, 7, constant.RoleClient)
		if err != nil {
			t.Fatalf("GetQuote() error = %v", err)
		}
		if !view.PricingShown {
			t.Fatalf("pricing should be shown on a quoted quote")
		}
		if view.AvailabilitySummary != constant.AvailabilityShortage {
			t.Fatalf("summary = %s, want %s", view.AvailabilitySummary, constant.AvailabilityShortage)
		}
		if got := view.Items[0]; got.Shortage == nil || *got.Shortage != 2 {
			t.Fatalf("item shortage = %v, want 2", got.Shortage)
		}
		// shortage forces the recomputed total: 4*10 + 0 + 0
		if view.TotalPrice == nil || *view.TotalPrice != 40 {
			t.Fatalf("total = %v, want 40", view.TotalPrice)
		}
	})

	t.Run("error: another client may not view the quote", func(t *testing.T) {
		f := newQuoteFields(t)
		f.quoteRepo.On("GetByID", mock.Anything, uint64(10)).
			Return(&model.QuoteEntity{ID: 10, UserID: 7, Status: constant.QuoteStatusProcessing}, nil).Once()

		app := newQuoteApp(f)
		_, err := app.GetQuote(context.Background(), 10, 8, constant.RoleClient)
		assertErrCode(t, err, true, constant.ErrForbidden)
	})
}

func TestQuoteApp_CreateQuote(t *testing.T) {
	t.Run("success: items denormalized from product refs", func(t *testing.T) {
		f := newQuoteFields(t)
		f.productRepo.On("GetRefs", mock.Anything, []uint64{1}).
			Return(map[uint64]model.ProductRef{
				1: {ID: 1, Name: "Rebar 10mm", SKU: "RB-10"},
			}, nil).Once()
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.quoteRepo.On("InsertQuoteTx", mock.Anything, tx, uint64(7)).Return(uint64(10), nil).Once()
		f.quoteRepo.On("InsertQuoteItemsTx", mock.Anything, tx, uint64(10), mock.MatchedBy(func(items []model.QuoteItemEntity) bool {
			return len(items) == 1 && items[0].ProductName == "Rebar 10mm" && items[0].Qty == 6
		})).Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		app := newQuoteApp(f)
		res, err := app.CreateQuote(context.Background(), &model.CreateQuoteRequest{
			UserID: 7,
			Items:  []model.QuoteItemRequest{{ProductID: 1, Qty: 6}},
		})
		if err != nil {
			t.Fatalf("CreateQuote() error = %v", err)
		}
		if res.QuoteID != 10 || res.Status != constant.QuoteStatusProcessing {
			t.Fatalf("CreateQuote() = %+v", res)
		}
	})

	t.Run("error: unknown product", func(t *testing.T) {
		f := newQuoteFields(t)
		f.productRepo.On("GetRefs", mock.Anything, []uint64{42}).
			Return(map[uint64]model.ProductRef{}, nil).Once()

		app := newQuoteApp(f)
		_, err := app.CreateQuote(context.Background(), &model.CreateQuoteRequest{
			UserID: 7,
			Items:  []model.QuoteItemRequest{{ProductID: 42, Qty: 1}},
		})
		assertErrCode(t, err, true, constant.ErrNotFound)
	})
}

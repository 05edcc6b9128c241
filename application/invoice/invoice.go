package invoice

import (
	"context"

	"go.uber.org/zap"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
	invoicerepo "github.com/hanifmaulana/quotedesk/repository/invoice"
	quoterepo "github.com/hanifmaulana/quotedesk/repository/quote"
	txrepo "github.com/hanifmaulana/quotedesk/repository/tx"
	"github.com/hanifmaulana/quotedesk/thirdparty/rabbitmq"
	"github.com/hanifmaulana/quotedesk/utils/errors"
	"github.com/hanifmaulana/quotedesk/utils/logger"
)

type InvoiceApp interface {
	AttachManual(ctx context.Context, quoteID uint64, req *model.AttachInvoiceRequest) (*model.AttachInvoiceResponse, error)
}

type invoiceAppImpl struct {
	txRepo      txrepo.TxRepository
	quoteRepo   quoterepo.QuoteRepository
	invoiceRepo invoicerepo.InvoiceRepository
	publisher   *rabbitmq.Publisher
}

func NewInvoiceApp(txRepo txrepo.TxRepository, quoteRepo quoterepo.QuoteRepository, invoiceRepo invoicerepo.InvoiceRepository, publisher *rabbitmq.Publisher) InvoiceApp {
	return &invoiceAppImpl{
		txRepo:      txRepo,
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		publisher:   publisher,
	}
}

// AttachManual records an invoice issued outside the system against a
// confirmed quote. Attaching locks the quote the same way an order
// does.
func (s *invoiceAppImpl) AttachManual(ctx context.Context, quoteID uint64, req *model.AttachInvoiceRequest) (*model.AttachInvoiceResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AttachManual] begin tx", zap.String("error", err.Error()))
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
		logger.Error("[AttachManual] get quote", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if q.Locked() {
		return nil, errors.SetCustomError(constant.ErrQuoteLocked)
	}
	if q.Status != constant.QuoteStatusConfirmed {
		return nil, errors.SetCustomError(constant.ErrQuoteNotConfirmed)
	}

	invoiceID, err := s.invoiceRepo.InsertManualInvoiceTx(ctx, tx, quoteID, req.InvoiceNo)
	if err != nil {
		logger.Error("[AttachManual] insert invoice", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.quoteRepo.LinkManualInvoiceTx(ctx, tx, quoteID, invoiceID); err != nil {
		logger.Error("[AttachManual] link invoice", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AttachManual] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		event := rabbitmq.QuoteEventMessage{QuoteID: quoteID, Event: rabbitmq.EventInvoiceAttached, Status: q.Status}
		if err := s.publisher.PublishQuoteEvent(event); err != nil {
			logger.Error("[AttachManual] publish event", zap.Uint64("quote_id", quoteID), zap.String("error", err.Error()))
		}
	}

	return &model.AttachInvoiceResponse{InvoiceID: invoiceID, QuoteID: quoteID}, nil
}

package quote

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hanifmaulana/quotedesk/cmd/config"
	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
	"github.com/hanifmaulana/quotedesk/quoteflow"
	productrepo "github.com/hanifmaulana/quotedesk/repository/product"
	quoterepo "github.com/hanifmaulana/quotedesk/repository/quote"
	redisrepo "github.com/hanifmaulana/quotedesk/repository/redis"
	stockrepo "github.com/hanifmaulana/quotedesk/repository/stock"
	txrepo "github.com/hanifmaulana/quotedesk/repository/tx"
	"github.com/hanifmaulana/quotedesk/thirdparty/rabbitmq"
	"github.com/hanifmaulana/quotedesk/utils/errors"
	"github.com/hanifmaulana/quotedesk/utils/logger"
)

type QuoteApp interface {
	CreateQuote(ctx context.Context, req *model.CreateQuoteRequest) (*model.CreateQuoteResponse, error)
	GetQuote(ctx context.Context, quoteID, viewerID uint64, viewerRole constant.UserRole) (*model.QuoteView, error)
	ListQuotes(ctx context.Context, userID uint64, page, perPage int) (*model.QuoteListResponse, error)
	RecheckAvailability(ctx context.Context, quoteID uint64) error
	UpdateQuantities(ctx context.Context, quoteID uint64, actorRole constant.UserRole, req *model.UpdateQuantitiesRequest) error
	UpdatePricing(ctx context.Context, quoteID uint64, req *model.UpdatePricingRequest) error
	UpdateStatus(ctx context.Context, quoteID uint64, req *model.UpdateStatusRequest) error
	CancelQuote(ctx context.Context, quoteID, userID uint64) error
}

type quoteAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	quoteRepo   quoterepo.QuoteRepository
	productRepo productrepo.ProductRepository
	stockRepo   stockrepo.StockRepository
	redisRepo   redisrepo.Repository
	publisher   *rabbitmq.Publisher
}

func NewQuoteApp(config *config.Config, txRepo txrepo.TxRepository, quoteRepo quoterepo.QuoteRepository, productRepo productrepo.ProductRepository, stockRepo stockrepo.StockRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) QuoteApp {
	return &quoteAppImpl{
		config:      config,
		txRepo:      txRepo,
		quoteRepo:   quoteRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

// resolveItems runs every persisted item through the shared availability
// resolver. Both GetQuote and the mutation guards go through this, so
// the admin and account surfaces always agree.
func resolveItems(items []model.QuoteItemEntity, editingEnabled bool) []quoteflow.Resolution {
	out := make([]quoteflow.Resolution, len(items))
	for i, it := range items {
		out[i] = quoteflow.Resolve(it.Qty, it.AvailableNow, it.Shortage, editingEnabled)
	}
	return out
}

func gateState(q *model.QuoteEntity, items []model.QuoteItemEntity) quoteflow.State {
	return quoteflow.State{
		Status:              q.Status,
		Locked:              q.Locked(),
		ClientQtyEditLocked: q.ClientQtyEditLocked,
		Items:               resolveItems(items, true),
	}
}

func hasMissingProduct(items []model.QuoteItemEntity) bool {
	for _, it := range items {
		if it.ProductID == nil {
			return true
		}
	}
	return false
}

func (s *quoteAppImpl) CreateQuote(ctx context.Context, req *model.CreateQuoteRequest) (*model.CreateQuoteResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	ids := make([]uint64, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ProductID)
	}
	refs, err := s.productRepo.GetRefs(ctx, ids)
	if err != nil {
		logger.Error("[CreateQuote] get product refs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entities := make([]model.QuoteItemEntity, 0, len(req.Items))
	for _, it := range req.Items {
		ref, ok := refs[it.ProductID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		pid := it.ProductID
		entities = append(entities, model.QuoteItemEntity{
			ProductID:   &pid,
			ProductName: ref.Name,
			ProductSKU:  ref.SKU,
			Qty:         it.Qty,
		})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateQuote] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	quoteID, err := s.quoteRepo.InsertQuoteTx(ctx, tx, req.UserID)
	if err != nil {
		logger.Error("[CreateQuote] insert quote", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.quoteRepo.InsertQuoteItemsTx(ctx, tx, quoteID, entities); err != nil {
		logger.Error("[CreateQuote] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateQuote] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CreateQuoteResponse{QuoteID: quoteID, Status: constant.QuoteStatusProcessing}, nil
}

func (s *quoteAppImpl) GetQuote(ctx context.Context, quoteID, viewerID uint64, viewerRole constant.UserRole) (*model.QuoteView, error) {
	q, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		logger.Error("[GetQuote] get quote", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if viewerRole != constant.RoleAdmin && q.UserID != viewerID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	items, err := s.quoteRepo.GetItems(ctx, quoteID)
	if err != nil {
		logger.Error("[GetQuote] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	state := gateState(q, items)
	canEdit := state.CanEditQty()
	resolutions := resolveItems(items, canEdit)

	priceItems := make([]quoteflow.PriceItem, len(items))
	for i, it := range items {
		priceItems[i] = quoteflow.PriceItem{
			RequestedQty: it.Qty,
			UnitPrice:    it.UnitPrice,
			Res:          resolutions[i],
		}
	}
	pricing := quoteflow.Aggregate(q.Status, priceItems, q.DeliveryCharge, q.ExtraFee, q.TotalPrice)

	views := make([]model.QuoteItemView, len(items))
	for i, it := range items {
		res := resolutions[i]
		view := model.QuoteItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			FallbackQty: res.FallbackQty,
			CanEdit:     res.CanEdit,
			LineTotal:   pricing.Lines[i],
		}
		if res.Checked {
			avail := res.AvailableNow
			shortage := res.Shortage
			view.AvailableNow = &avail
			view.Shortage = &shortage
			view.AvailabilityStatus = res.Status
		}
		views[i] = view
	}

	summary, _ := quoteflow.Summarize(resolutions)

	return &model.QuoteView{
		ID:                    q.ID,
		UserID:                q.UserID,
		Status:                q.Status,
		Items:                 views,
		DeliveryCharge:        q.DeliveryCharge,
		ExtraFee:              q.ExtraFee,
		TotalPrice:            pricing.Total,
		PricingShown:          pricing.PricingShown,
		AvailabilitySummary:   summary,
		AvailabilityCheckedAt: q.AvailabilityCheckedAt,
		ClientQtyEditLocked:   q.ClientQtyEditLocked,
		Locked:                q.Locked(),
		OrderID:               q.OrderID,
		ManualInvoiceID:       q.ManualInvoiceID,
		AllowedActions:        state.AllowedActions(),
		AllowedStatuses:       state.AllowedTransitions(),
	}, nil
}

func (s *quoteAppImpl) ListQuotes(ctx context.Context, userID uint64, page, perPage int) (*model.QuoteListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.quoteRepo.List(ctx, userID, page, perPage)
	if err != nil {
		logger.Error("[ListQuotes] error quoteRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// availability badge comes from cache, best effort
	for i := range items {
		summary, ok, err := s.redisRepo.GetAvailabilitySummary(ctx, items[i].ID)
		if err != nil {
			logger.Warn("[ListQuotes] summary cache read", zap.Uint64("quote_id", items[i].ID), zap.String("error", err.Error()))
			continue
		}
		if ok {
			items[i].AvailabilitySummary = summary
		}
	}

	return &model.QuoteListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *quoteAppImpl) RecheckAvailability(ctx context.Context, quoteID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RecheckAvailability] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	q, err := s.quoteRepo.GetByIDTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[RecheckAvailability] get quote", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if q.Locked() {
		return errors.SetCustomError(constant.ErrQuoteLocked)
	}
	if q.Status.Terminal() {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	items, err := s.quoteRepo.GetItemsTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[RecheckAvailability] get items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	productIDs := make([]uint64, 0, len(items))
	for _, it := range items {
		if it.ProductID != nil {
			productIDs = append(productIDs, *it.ProductID)
		}
	}

	snapshot, err := s.stockRepo.SnapshotAvailabilityTx(ctx, tx, productIDs)
	if err != nil {
		logger.Error("[RecheckAvailability] snapshot stock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	resolutions := make([]quoteflow.Resolution, 0, len(items))
	for _, it := range items {
		if it.ProductID == nil {
			resolutions = append(resolutions, quoteflow.Resolve(it.Qty, nil, nil, false))
			continue
		}
		avail := snapshot[*it.ProductID]
		res := quoteflow.Resolve(it.Qty, &avail, nil, false)
		resolutions = append(resolutions, res)

		upd := &model.ItemAvailabilityUpdate{
			ProductID:          *it.ProductID,
			AvailableNow:       res.AvailableNow,
			Shortage:           res.Shortage,
			AvailabilityStatus: res.Status,
		}
		if err := s.quoteRepo.UpdateItemAvailabilityTx(ctx, tx, quoteID, upd); err != nil {
			logger.Error("[RecheckAvailability] update item", zap.Uint64("product_id", *it.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.quoteRepo.SetAvailabilityCheckedAtTx(ctx, tx, quoteID, time.Now()); err != nil {
		logger.Error("[RecheckAvailability] set checked at", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RecheckAvailability] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.cacheSummary(ctx, quoteID, resolutions)
	s.publishEvent(rabbitmq.QuoteEventMessage{QuoteID: quoteID, Event: rabbitmq.EventAvailabilityRechecked, Status: q.Status})
	return nil
}

func (s *quoteAppImpl) UpdateQuantities(ctx context.Context, quoteID uint64, actorRole constant.UserRole, req *model.UpdateQuantitiesRequest) error {
	if len(req.Items) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateQuantities] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	q, err := s.quoteRepo.GetByIDTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[UpdateQuantities] get quote", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.quoteRepo.GetItemsTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[UpdateQuantities] get items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// a deleted product reference would fail validation halfway through,
	// so block the whole update up front
	if hasMissingProduct(items) {
		return errors.SetCustomError(constant.ErrMissingProduct)
	}

	if q.Locked() {
		return errors.SetCustomError(constant.ErrQuoteLocked)
	}
	if actorRole != constant.RoleAdmin && q.ClientQtyEditLocked {
		return errors.SetCustomError(constant.ErrQtyEditLocked)
	}
	state := gateState(q, items)
	if actorRole != constant.RoleAdmin && !state.CanEditQty() {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if q.Status.Terminal() {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	byProduct := make(map[uint64]model.QuoteItemEntity, len(items))
	for _, it := range items {
		byProduct[*it.ProductID] = it
	}

	for _, upd := range req.Items {
		it, ok := byProduct[upd.ProductID]
		if !ok {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if it.AvailableNow == nil {
			return errors.SetCustomError(constant.ErrAvailabilityNotChecked)
		}
		if upd.Qty < 0 || upd.Qty > *it.AvailableNow {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}

		if err := s.quoteRepo.UpdateItemQtyTx(ctx, tx, quoteID, upd.ProductID, upd.Qty); err != nil {
			logger.Error("[UpdateQuantities] update qty", zap.Uint64("product_id", upd.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		// re-derive shortage and classification from the new quantity
		res := quoteflow.Resolve(upd.Qty, it.AvailableNow, nil, false)
		if err := s.quoteRepo.UpdateItemAvailabilityTx(ctx, tx, quoteID, &model.ItemAvailabilityUpdate{
			ProductID:          upd.ProductID,
			AvailableNow:       res.AvailableNow,
			Shortage:           res.Shortage,
			AvailabilityStatus: res.Status,
		}); err != nil {
			logger.Error("[UpdateQuantities] update availability", zap.Uint64("product_id", upd.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	// confirming quantities is one-way for clients
	if actorRole != constant.RoleAdmin {
		if err := s.quoteRepo.SetClientQtyEditLockedTx(ctx, tx, quoteID); err != nil {
			logger.Error("[UpdateQuantities] set qty edit locked", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateQuantities] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateSummary(ctx, quoteID)
	s.publishEvent(rabbitmq.QuoteEventMessage{QuoteID: quoteID, Event: rabbitmq.EventQuantitiesUpdated, Status: q.Status})
	return nil
}

func (s *quoteAppImpl) UpdatePricing(ctx context.Context, quoteID uint64, req *model.UpdatePricingRequest) error {
	if len(req.RequestedItems) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdatePricing] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	q, err := s.quoteRepo.GetByIDTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[UpdatePricing] get quote", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if q.Locked() {
		return errors.SetCustomError(constant.ErrQuoteLocked)
	}
	if q.Status.Terminal() {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	items, err := s.quoteRepo.GetItemsTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[UpdatePricing] get items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if hasMissingProduct(items) {
		return errors.SetCustomError(constant.ErrMissingProduct)
	}

	prices := make(map[uint64]float64, len(req.RequestedItems))
	for _, p := range req.RequestedItems {
		prices[p.ProductID] = p.UnitPrice
	}

	priceItems := make([]quoteflow.PriceItem, 0, len(items))
	for _, it := range items {
		if price, ok := prices[*it.ProductID]; ok {
			if err := s.quoteRepo.UpdateItemPriceTx(ctx, tx, quoteID, *it.ProductID, price); err != nil {
				logger.Error("[UpdatePricing] update price", zap.Uint64("product_id", *it.ProductID), zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
			p := price
			it.UnitPrice = &p
		}
		priceItems = append(priceItems, quoteflow.PriceItem{
			RequestedQty: it.Qty,
			UnitPrice:    it.UnitPrice,
			Res:          quoteflow.Resolve(it.Qty, it.AvailableNow, it.Shortage, false),
		})
	}

	total := quoteflow.GrandTotal(priceItems, req.DeliveryCharge, req.ExtraFee)
	if err := s.quoteRepo.UpdateChargesTx(ctx, tx, quoteID, req.DeliveryCharge, req.ExtraFee, total); err != nil {
		logger.Error("[UpdatePricing] update charges", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdatePricing] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(rabbitmq.QuoteEventMessage{QuoteID: quoteID, Event: rabbitmq.EventPricingUpdated, Status: q.Status})
	return nil
}

func (s *quoteAppImpl) UpdateStatus(ctx context.Context, quoteID uint64, req *model.UpdateStatusRequest) error {
	if !req.Status.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.transition(ctx, quoteID, 0, req.Status)
}

// CancelQuote is the account-side cancel: the caller must own the quote.
func (s *quoteAppImpl) CancelQuote(ctx context.Context, quoteID, userID uint64) error {
	return s.transition(ctx, quoteID, userID, constant.QuoteStatusCancelled)
}

func (s *quoteAppImpl) transition(ctx context.Context, quoteID, requireOwner uint64, to constant.QuoteStatus) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	q, err := s.quoteRepo.GetByIDTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[UpdateStatus] get quote", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if q == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if requireOwner != 0 && q.UserID != requireOwner {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	if q.Locked() {
		return errors.SetCustomError(constant.ErrQuoteLocked)
	}

	items, err := s.quoteRepo.GetItemsTx(ctx, tx, quoteID)
	if err != nil {
		logger.Error("[UpdateStatus] get items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	state := gateState(q, items)
	if !state.CanTransition(to) {
		if to == constant.QuoteStatusConfirmed && !q.Status.Terminal() {
			return errors.SetCustomError(constant.ErrShortageUnresolved)
		}
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.quoteRepo.UpdateStatusTx(ctx, tx, quoteID, to); err != nil {
		logger.Error("[UpdateStatus] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(rabbitmq.QuoteEventMessage{QuoteID: quoteID, Event: rabbitmq.EventStatusChanged, Status: to})
	return nil
}

func (s *quoteAppImpl) cacheSummary(ctx context.Context, quoteID uint64, resolutions []quoteflow.Resolution) {
	summary, ok := quoteflow.Summarize(resolutions)
	if !ok {
		return
	}
	if err := s.redisRepo.SetAvailabilitySummary(ctx, quoteID, summary, s.config.Quote.SummaryCacheTTL); err != nil {
		logger.Warn("[cacheSummary] summary cache write", zap.Uint64("quote_id", quoteID), zap.String("error", err.Error()))
	}
}

func (s *quoteAppImpl) invalidateSummary(ctx context.Context, quoteID uint64) {
	if err := s.redisRepo.DeleteAvailabilitySummary(ctx, quoteID); err != nil {
		logger.Warn("[invalidateSummary] summary cache delete", zap.Uint64("quote_id", quoteID), zap.String("error", err.Error()))
	}
}

func (s *quoteAppImpl) publishEvent(msg rabbitmq.QuoteEventMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishQuoteEvent(msg); err != nil {
		logger.Error("[publishEvent] publish quote event", zap.Uint64("quote_id", msg.QuoteID), zap.String("error", err.Error()))
	}
}

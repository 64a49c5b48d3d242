// Package storefront is the shopping session service. It owns the seeded
// catalog and seller orders, the promo table and pricing policy, and one cart
// per session.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
	"storefront/commerce"
	"storefront/config"
	orders "storefront/orders/logic"
	"storefront/seed"
)

// Lookup failure messages.
const (
	ErrMsgProductNotFound = "Product not found"
	ErrMsgOrderNotFound   = "Order not found"
)

// Options configures a Service. Zero values get defaults.
type Options struct {
	Products             []catalog.Product
	Orders               []orders.Order
	DemoCart             []cart.Event
	Promos               cart.PromoTable
	Pricing              *cart.PricingPolicy
	DefaultMaxPriceCents int64
	Logger               *zap.Logger
	Metrics              *Metrics
	Tracer               trace.Tracer
	// EventLog, when set, receives a pretty-printed line for every applied
	// cart and order event.
	EventLog io.Writer
}

// Service implements the storefront operations. It is safe for concurrent
// use; operations on one session are serialised.
type Service struct {
	logic    cart.CartLogic
	products []catalog.Product
	demoCart []cart.Event
	promos   cart.PromoTable
	pricing  cart.PricingPolicy
	maxPrice int64

	ordersMu sync.RWMutex
	orders   []orders.Order

	sessions *SessionStore
	logger   *zap.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	eventLog io.Writer
	eventMu  sync.Mutex
	eventSeq int
}

// New builds a Service from opts.
func New(opts Options) *Service {
	s := &Service{
		logic:    cart.NewCartLogic(),
		products: opts.Products,
		demoCart: opts.DemoCart,
		promos:   opts.Promos,
		maxPrice: opts.DefaultMaxPriceCents,
		orders:   append([]orders.Order(nil), opts.Orders...),
		sessions: NewSessionStore(),
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		tracer:   opts.Tracer,
		eventLog: opts.EventLog,
	}
	if s.products == nil {
		s.products = []catalog.Product{}
	}
	if s.promos == nil {
		s.promos = cart.DefaultPromoTable()
	}
	if opts.Pricing != nil {
		s.pricing = *opts.Pricing
	} else {
		s.pricing = cart.DefaultPricingPolicy()
	}
	if s.maxPrice <= 0 {
		s.maxPrice = config.DefaultConfig().Catalog.DefaultMaxPriceCents
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("storefront")
	}
	return s
}

// NewFromConfig builds a Service over the embedded seed data using the
// pricing, promo and catalog sections of cfg.
func NewFromConfig(cfg *config.Config, logger *zap.Logger, metrics *Metrics) (*Service, error) {
	products, err := seed.Products()
	if err != nil {
		return nil, err
	}
	sellerOrders, err := seed.Orders()
	if err != nil {
		return nil, err
	}
	demo, err := seed.DemoCart()
	if err != nil {
		return nil, err
	}
	promos, err := PromoTableFromConfig(cfg.Promos)
	if err != nil {
		return nil, fmt.Errorf("building promo table: %w", err)
	}
	pricing := PricingFromConfig(cfg.Pricing)

	return New(Options{
		Products:             products,
		Orders:               sellerOrders,
		DemoCart:             demo,
		Promos:               promos,
		Pricing:              &pricing,
		DefaultMaxPriceCents: cfg.Catalog.DefaultMaxPriceCents,
		Logger:               logger,
		Metrics:              metrics,
	}), nil
}

// PromoTableFromConfig converts configured promos. An empty list yields the
// default table.
func PromoTableFromConfig(promos []config.PromoConfig) (cart.PromoTable, error) {
	if len(promos) == 0 {
		return cart.DefaultPromoTable(), nil
	}
	rules := make([]cart.Promo, 0, len(promos))
	for _, p := range promos {
		switch cart.PromoKind(p.Kind) {
		case cart.PromoPercentage:
			rules = append(rules, cart.NewPercentagePromo(p.Code, p.Value))
		default:
			rules = append(rules, cart.Promo{Code: p.Code, Kind: cart.PromoKind(p.Kind), AmountCents: p.Value})
		}
	}
	return cart.NewPromoTable(rules...)
}

// PricingFromConfig converts the pricing section.
func PricingFromConfig(p config.PricingConfig) cart.PricingPolicy {
	return cart.PricingPolicy{
		FreeShippingThresholdCents: p.FreeShippingThresholdCents,
		FlatShippingCents:          p.FlatShippingCents,
		TaxRateBasisPoints:         p.TaxRateBasisPoints,
	}
}

// DefaultMaxPriceCents is the top of the default price range.
func (s *Service) DefaultMaxPriceCents() int64 { return s.maxPrice }

// SetEventLog directs pretty-printed events to w. Call before serving.
func (s *Service) SetEventLog(w io.Writer) {
	s.eventMu.Lock()
	s.eventLog = w
	s.eventMu.Unlock()
}

// Sessions exposes the session store.
func (s *Service) Sessions() *SessionStore { return s.sessions }

// observe wraps an operation with a span, metrics and failure logging.
func (s *Service) observe(ctx context.Context, op string, attrs []attribute.KeyValue, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "storefront."+op, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	s.metrics.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if cmdErr, ok := commerce.AsCommandError(err); ok {
			result = cmdErr.Code.String()
			s.logger.Warn("operation rejected",
				zap.String("operation", op),
				zap.String("code", cmdErr.Code.String()),
				zap.String("message", cmdErr.Message))
		} else {
			result = "INTERNAL"
			s.logger.Error("operation failed", zap.String("operation", op), zap.Error(err))
		}
	}
	s.metrics.Operations.WithLabelValues(op, result).Inc()
	return err
}

// withSession runs fn under the session's mutex.
func (s *Service) withSession(ctx context.Context, op, sessionID string, attrs []attribute.KeyValue, fn func(sess *session) error) error {
	attrs = append(attrs, attribute.String("session.id", sessionID))
	return s.observe(ctx, op, attrs, func(ctx context.Context) error {
		sess, err := s.sessions.get(sessionID)
		if err != nil {
			return err
		}
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return fn(sess)
	})
}

func (s *Service) logEvent(domain, rootID string, event commerce.LoggableEvent) {
	s.eventMu.Lock()
	defer s.eventMu.Unlock()
	if s.eventLog == nil || event == nil {
		return
	}
	s.eventSeq++
	commerce.LogEvent(s.eventLog, domain, rootID, s.eventSeq, event)
}

// CreateSession opens a session with an empty cart, or the demo cart when
// demo is set.
func (s *Service) CreateSession(ctx context.Context, demo bool) (CartView, error) {
	var view CartView
	err := s.observe(ctx, "CreateSession", []attribute.KeyValue{attribute.Bool("demo", demo)}, func(ctx context.Context) error {
		sess := s.sessions.create(s.logic)
		sess.mu.Lock()
		defer sess.mu.Unlock()
		if demo {
			for _, e := range s.demoCart {
				sess.ledger.State().Apply(e)
			}
		}
		s.metrics.Sessions.Inc()
		s.logger.Info("session created", zap.String("session_id", sess.id), zap.Bool("demo", demo))
		view = s.cartView(sess)
		return nil
	})
	return view, err
}

// EndSession discards a session and its cart.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	return s.observe(ctx, "EndSession", []attribute.KeyValue{attribute.String("session.id", sessionID)}, func(ctx context.Context) error {
		if !s.sessions.delete(sessionID) {
			return commerce.NewNotFound(ErrMsgSessionNotFound)
		}
		s.metrics.Sessions.Dec()
		s.logger.Info("session ended", zap.String("session_id", sessionID))
		return nil
	})
}

// Browse filters the catalog. When sessionID is set the criteria are kept
// on that session.
func (s *Service) Browse(ctx context.Context, sessionID string, criteria catalog.Criteria) (BrowseResult, error) {
	var result BrowseResult
	err := s.observe(ctx, "Browse", []attribute.KeyValue{
		attribute.String("category", criteria.Category.String()),
		attribute.String("search", criteria.SearchText),
	}, func(ctx context.Context) error {
		if sessionID != "" {
			sess, err := s.sessions.get(sessionID)
			if err != nil {
				return err
			}
			sess.mu.Lock()
			sess.criteria = criteria
			sess.mu.Unlock()
		}
		found := catalog.Filter(s.products, criteria)
		result = BrowseResult{
			Products: found,
			Total:    len(s.products),
			Refined:  criteria.Refined(s.maxPrice),
		}
		s.logger.Debug("browsed catalog", zap.Int("matches", len(found)), zap.Bool("refined", result.Refined))
		return nil
	})
	return result, err
}

// LastCriteria returns the criteria most recently browsed in a session.
func (s *Service) LastCriteria(ctx context.Context, sessionID string) (catalog.Criteria, error) {
	var c catalog.Criteria
	err := s.withSession(ctx, "LastCriteria", sessionID, nil, func(sess *session) error {
		c = sess.criteria
		return nil
	})
	return c, err
}

// Facets summarises the whole catalog.
func (s *Service) Facets(ctx context.Context) (catalog.FacetSummary, error) {
	var facets catalog.FacetSummary
	err := s.observe(ctx, "Facets", nil, func(ctx context.Context) error {
		facets = catalog.Facets(s.products)
		return nil
	})
	return facets, err
}

// Product returns one catalog entry.
func (s *Service) Product(ctx context.Context, productID string) (catalog.Product, error) {
	var product catalog.Product
	err := s.observe(ctx, "Product", []attribute.KeyValue{attribute.String("product.id", productID)}, func(ctx context.Context) error {
		p, err := s.lookupProduct(productID)
		product = p
		return err
	})
	return product, err
}

func (s *Service) lookupProduct(productID string) (catalog.Product, error) {
	if err := commerce.RequireExists(productID, ErrMsgProductNotFound); err != nil {
		return catalog.Product{}, err
	}
	p, ok := catalog.Lookup(s.products, productID)
	if !ok {
		return catalog.Product{}, commerce.NewNotFound(ErrMsgProductNotFound)
	}
	return p, nil
}

// SearchInventory is the seller-side product search.
func (s *Service) SearchInventory(ctx context.Context, text string) ([]catalog.Product, error) {
	var found []catalog.Product
	err := s.observe(ctx, "SearchInventory", []attribute.KeyValue{attribute.String("search", text)}, func(ctx context.Context) error {
		found = catalog.SearchInventory(s.products, text)
		return nil
	})
	return found, err
}

func (s *Service) mutate(ctx context.Context, op, sessionID, productID string, apply func(l *cart.Ledger) (cart.Event, error)) (CartView, error) {
	var view CartView
	attrs := []attribute.KeyValue{attribute.String("product.id", productID)}
	err := s.withSession(ctx, op, sessionID, attrs, func(sess *session) error {
		event, err := apply(sess.ledger)
		if err != nil {
			return err
		}
		if event != nil {
			s.logEvent("cart", sess.id, event)
		}
		view = s.cartView(sess)
		return nil
	})
	return view, err
}

// AddItem adds one unit of a catalog product to the session's cart.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string) (CartView, error) {
	s.logger.Info("adding item", zap.String("session_id", sessionID), zap.String("product_id", productID))
	return s.mutate(ctx, "AddItem", sessionID, productID, func(l *cart.Ledger) (cart.Event, error) {
		p, err := s.lookupProduct(productID)
		if err != nil {
			return nil, err
		}
		return l.AddItem(SnapshotOf(p))
	})
}

// SetQuantity replaces a line's quantity; n <= 0 removes it.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, n int32) (CartView, error) {
	s.logger.Info("setting quantity", zap.String("session_id", sessionID), zap.String("product_id", productID), zap.Int32("quantity", n))
	return s.mutate(ctx, "SetQuantity", sessionID, productID, func(l *cart.Ledger) (cart.Event, error) {
		return l.SetQuantity(productID, n)
	})
}

// RemoveItem deletes a line; absent lines are ignored.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (CartView, error) {
	s.logger.Info("removing item", zap.String("session_id", sessionID), zap.String("product_id", productID))
	return s.mutate(ctx, "RemoveItem", sessionID, productID, func(l *cart.Ledger) (cart.Event, error) {
		return l.RemoveItem(productID)
	})
}

// DecrementItem takes one unit off a line.
func (s *Service) DecrementItem(ctx context.Context, sessionID, productID string) (CartView, error) {
	s.logger.Info("decrementing item", zap.String("session_id", sessionID), zap.String("product_id", productID))
	return s.mutate(ctx, "DecrementItem", sessionID, productID, func(l *cart.Ledger) (cart.Event, error) {
		return l.DecrementItem(productID)
	})
}

// ClearCart empties the session's cart. The active promo stays.
func (s *Service) ClearCart(ctx context.Context, sessionID string) (CartView, error) {
	s.logger.Info("clearing cart", zap.String("session_id", sessionID))
	return s.mutate(ctx, "ClearCart", sessionID, "", func(l *cart.Ledger) (cart.Event, error) {
		return l.Clear()
	})
}

// ApplyPromo tries a promo code. A rejected code keeps the previous promo.
func (s *Service) ApplyPromo(ctx context.Context, sessionID, code string) (PromoView, error) {
	var view PromoView
	err := s.withSession(ctx, "ApplyPromo", sessionID, []attribute.KeyValue{attribute.String("promo.code", code)}, func(sess *session) error {
		result := s.logic.HandleApplyPromo(s.promos, code)
		if result.Applied {
			sess.promo = result.Promo
		}
		s.logger.Info("promo attempted",
			zap.String("session_id", sess.id),
			zap.String("code", code),
			zap.Bool("applied", result.Applied))
		view = PromoView{Result: result, Cart: s.cartView(sess)}
		return nil
	})
	return view, err
}

// ClearPromo drops the active promo.
func (s *Service) ClearPromo(ctx context.Context, sessionID string) (CartView, error) {
	var view CartView
	err := s.withSession(ctx, "ClearPromo", sessionID, nil, func(sess *session) error {
		sess.promo = nil
		view = s.cartView(sess)
		return nil
	})
	return view, err
}

// Cart returns the session's items and summary.
func (s *Service) Cart(ctx context.Context, sessionID string) (CartView, error) {
	var view CartView
	err := s.withSession(ctx, "Cart", sessionID, nil, func(sess *session) error {
		view = s.cartView(sess)
		return nil
	})
	return view, err
}

// Checkout evaluates the checkout gate. A denial is a normal result, not an
// error. The cart is left unchanged either way.
func (s *Service) Checkout(ctx context.Context, sessionID string) (CheckoutView, error) {
	var view CheckoutView
	err := s.withSession(ctx, "Checkout", sessionID, nil, func(sess *session) error {
		state := sess.ledger.State()
		summary := cart.ComputeSummary(state.Items, sess.promo, s.pricing)
		view = CheckoutView{
			Gate:    cart.CheckoutGate(state.Items),
			Summary: summary,
			Display: summary.Display(),
		}

		approved, err := s.logic.HandleCheckout(state, sess.promo, s.pricing)
		if err != nil {
			var cmdErr *commerce.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Code == commerce.StatusFailedPrecondition {
				s.logger.Info("checkout denied", zap.String("session_id", sess.id), zap.String("reason", view.Gate.Reason))
				return nil
			}
			return err
		}
		view.Approved = approved
		s.metrics.CartItems.Observe(float64(summary.ItemCount))
		s.logger.Info("checkout approved",
			zap.String("session_id", sess.id),
			zap.Int64("total_cents", summary.TotalCents))
		return nil
	})
	return view, err
}

// ListOrders filters the seller's orders.
func (s *Service) ListOrders(ctx context.Context, search, status string) (OrdersView, error) {
	var view OrdersView
	err := s.observe(ctx, "ListOrders", []attribute.KeyValue{attribute.String("status", status)}, func(ctx context.Context) error {
		s.ordersMu.RLock()
		defer s.ordersMu.RUnlock()
		view = OrdersView{
			Orders: orders.Filter(s.orders, search, status),
			Counts: orders.CountByStatus(s.orders),
		}
		return nil
	})
	return view, err
}

// UpdateOrderStatus moves an order to the status named by next.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, next string) (orders.Order, error) {
	var updated orders.Order
	err := s.observe(ctx, "UpdateOrderStatus", []attribute.KeyValue{
		attribute.String("order.id", orderID),
		attribute.String("status", next),
	}, func(ctx context.Context) error {
		s.ordersMu.Lock()
		defer s.ordersMu.Unlock()

		idx := -1
		for i, o := range s.orders {
			if o.ID == orderID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return commerce.NewNotFound(ErrMsgOrderNotFound)
		}

		changed, err := orders.HandleUpdateStatus(s.orders[idx], next)
		if err != nil {
			return err
		}
		s.orders[idx] = changed.Apply(s.orders[idx])
		updated = s.orders[idx]
		s.logEvent("orders", orderID, changed)
		s.logger.Info("order status updated",
			zap.String("order_id", orderID),
			zap.String("from", string(changed.From)),
			zap.String("to", string(changed.To)))
		return nil
	})
	return updated, err
}

// SnapshotOf captures the price and stock of p for a cart line.
func SnapshotOf(p catalog.Product) cart.ProductSnapshot {
	return cart.ProductSnapshot{
		ProductID:          p.ID,
		Name:               p.Name,
		UnitPriceCents:     p.PriceCents,
		OriginalPriceCents: p.ListPriceCents(),
		InStock:            p.InStock,
	}
}

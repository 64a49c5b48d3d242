// Package grpcapi exposes the storefront service over gRPC using the json
// codec and hand-written service descriptors.
package grpcapi

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	catalog "storefront/catalog/logic"
	"storefront/commerce"
	orders "storefront/orders/logic"
	"storefront/storefront"
)

type server struct {
	svc    *storefront.Service
	logger *zap.Logger
}

// NewServer adapts svc to StorefrontServer.
func NewServer(svc *storefront.Service, logger *zap.Logger) StorefrontServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &server{svc: svc, logger: logger}
}

// Register returns a commerce.RegisterFunc that installs the service.
func Register(svc *storefront.Service, logger *zap.Logger) commerce.RegisterFunc {
	srv := NewServer(svc, logger)
	return func(s *grpc.Server) {
		RegisterStorefrontServer(s, srv)
	}
}

func (s *server) CreateSession(ctx context.Context, req *CreateSessionRequest) (*storefront.CartView, error) {
	view, err := s.svc.CreateSession(ctx, req.Demo)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &view, nil
}

func (s *server) EndSession(ctx context.Context, req *SessionRequest) (*Empty, error) {
	if err := s.svc.EndSession(ctx, req.SessionID); err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &Empty{}, nil
}

func (s *server) Browse(ctx context.Context, req *BrowseRequest) (*storefront.BrowseResult, error) {
	result, err := s.svc.Browse(ctx, req.SessionID, req.Criteria())
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &result, nil
}

func (s *server) Facets(ctx context.Context, _ *Empty) (*catalog.FacetSummary, error) {
	facets, err := s.svc.Facets(ctx)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &facets, nil
}

func (s *server) GetProduct(ctx context.Context, req *ProductRequest) (*catalog.Product, error) {
	p, err := s.svc.Product(ctx, req.ProductID)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &p, nil
}

func (s *server) SearchInventory(ctx context.Context, req *SearchInventoryRequest) (*ProductList, error) {
	found, err := s.svc.SearchInventory(ctx, req.Search)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &ProductList{Products: found}, nil
}

func (s *server) cart(view storefront.CartView, err error) (*storefront.CartView, error) {
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &view, nil
}

func (s *server) AddItem(ctx context.Context, req *ItemRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.AddItem(ctx, req.SessionID, req.ProductID))
}

func (s *server) SetQuantity(ctx context.Context, req *SetQuantityRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.SetQuantity(ctx, req.SessionID, req.ProductID, req.Quantity))
}

func (s *server) RemoveItem(ctx context.Context, req *ItemRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.RemoveItem(ctx, req.SessionID, req.ProductID))
}

func (s *server) DecrementItem(ctx context.Context, req *ItemRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.DecrementItem(ctx, req.SessionID, req.ProductID))
}

func (s *server) ClearCart(ctx context.Context, req *SessionRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.ClearCart(ctx, req.SessionID))
}

func (s *server) ApplyPromo(ctx context.Context, req *PromoRequest) (*storefront.PromoView, error) {
	view, err := s.svc.ApplyPromo(ctx, req.SessionID, req.Code)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &view, nil
}

func (s *server) ClearPromo(ctx context.Context, req *SessionRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.ClearPromo(ctx, req.SessionID))
}

func (s *server) GetCart(ctx context.Context, req *SessionRequest) (*storefront.CartView, error) {
	return s.cart(s.svc.Cart(ctx, req.SessionID))
}

func (s *server) Checkout(ctx context.Context, req *SessionRequest) (*storefront.CheckoutView, error) {
	view, err := s.svc.Checkout(ctx, req.SessionID)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &view, nil
}

func (s *server) ListOrders(ctx context.Context, req *ListOrdersRequest) (*storefront.OrdersView, error) {
	view, err := s.svc.ListOrders(ctx, req.Search, req.Status)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &view, nil
}

func (s *server) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusRequest) (*orders.Order, error) {
	s.logger.Info("updating order status", zap.String("order_id", req.OrderID), zap.String("status", req.Status))
	order, err := s.svc.UpdateOrderStatus(ctx, req.OrderID, req.Status)
	if err != nil {
		return nil, commerce.MapCommandError(err)
	}
	return &order, nil
}

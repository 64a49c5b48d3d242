package grpcapi

import (
	"context"

	"google.golang.org/grpc"

	catalog "storefront/catalog/logic"
	orders "storefront/orders/logic"
	"storefront/storefront"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.Storefront"

// StorefrontServer is the server API for the Storefront service.
type StorefrontServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*storefront.CartView, error)
	EndSession(context.Context, *SessionRequest) (*Empty, error)
	Browse(context.Context, *BrowseRequest) (*storefront.BrowseResult, error)
	Facets(context.Context, *Empty) (*catalog.FacetSummary, error)
	GetProduct(context.Context, *ProductRequest) (*catalog.Product, error)
	SearchInventory(context.Context, *SearchInventoryRequest) (*ProductList, error)
	AddItem(context.Context, *ItemRequest) (*storefront.CartView, error)
	SetQuantity(context.Context, *SetQuantityRequest) (*storefront.CartView, error)
	RemoveItem(context.Context, *ItemRequest) (*storefront.CartView, error)
	DecrementItem(context.Context, *ItemRequest) (*storefront.CartView, error)
	ClearCart(context.Context, *SessionRequest) (*storefront.CartView, error)
	ApplyPromo(context.Context, *PromoRequest) (*storefront.PromoView, error)
	ClearPromo(context.Context, *SessionRequest) (*storefront.CartView, error)
	GetCart(context.Context, *SessionRequest) (*storefront.CartView, error)
	Checkout(context.Context, *SessionRequest) (*storefront.CheckoutView, error)
	ListOrders(context.Context, *ListOrdersRequest) (*storefront.OrdersView, error)
	UpdateOrderStatus(context.Context, *UpdateOrderStatusRequest) (*orders.Order, error)
}

// RegisterStorefrontServer registers srv on s.
func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req, Resp any](name string, call func(StorefrontServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				out, err := call(srv.(StorefrontServer), ctx, req.(*Req))
				if err != nil {
					return nil, err
				}
				return out, nil
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the Storefront service. Messages are plain structs
// carried by the json codec.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateSession", StorefrontServer.CreateSession),
		unary("EndSession", StorefrontServer.EndSession),
		unary("Browse", StorefrontServer.Browse),
		unary("Facets", StorefrontServer.Facets),
		unary("GetProduct", StorefrontServer.GetProduct),
		unary("SearchInventory", StorefrontServer.SearchInventory),
		unary("AddItem", StorefrontServer.AddItem),
		unary("SetQuantity", StorefrontServer.SetQuantity),
		unary("RemoveItem", StorefrontServer.RemoveItem),
		unary("DecrementItem", StorefrontServer.DecrementItem),
		unary("ClearCart", StorefrontServer.ClearCart),
		unary("ApplyPromo", StorefrontServer.ApplyPromo),
		unary("ClearPromo", StorefrontServer.ClearPromo),
		unary("GetCart", StorefrontServer.GetCart),
		unary("Checkout", StorefrontServer.Checkout),
		unary("ListOrders", StorefrontServer.ListOrders),
		unary("UpdateOrderStatus", StorefrontServer.UpdateOrderStatus),
	},
	Streams: []grpc.StreamDesc{},
}

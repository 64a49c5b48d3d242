package grpcapi

import (
	"context"

	"google.golang.org/grpc"

	catalog "storefront/catalog/logic"
	"storefront/commerce"
	orders "storefront/orders/logic"
	"storefront/storefront"
)

// Client calls a remote Storefront service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a connection. Calls are sent with the json content-subtype.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out interface{}, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(commerce.CodecName)}, opts...)
	return c.cc.Invoke(ctx, fullMethod(method), in, out, opts...)
}

func (c *Client) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	out := new(storefront.CartView)
	if err := c.invoke(ctx, "CreateSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EndSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "EndSession", in, new(Empty), opts...)
}

func (c *Client) Browse(ctx context.Context, in *BrowseRequest, opts ...grpc.CallOption) (*storefront.BrowseResult, error) {
	out := new(storefront.BrowseResult)
	if err := c.invoke(ctx, "Browse", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Facets(ctx context.Context, opts ...grpc.CallOption) (*catalog.FacetSummary, error) {
	out := new(catalog.FacetSummary)
	if err := c.invoke(ctx, "Facets", &Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, in *ProductRequest, opts ...grpc.CallOption) (*catalog.Product, error) {
	out := new(catalog.Product)
	if err := c.invoke(ctx, "GetProduct", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchInventory(ctx context.Context, in *SearchInventoryRequest, opts ...grpc.CallOption) (*ProductList, error) {
	out := new(ProductList)
	if err := c.invoke(ctx, "SearchInventory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) cartCall(ctx context.Context, method string, in interface{}, opts []grpc.CallOption) (*storefront.CartView, error) {
	out := new(storefront.CartView)
	if err := c.invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "AddItem", in, opts)
}

func (c *Client) SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "SetQuantity", in, opts)
}

func (c *Client) RemoveItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "RemoveItem", in, opts)
}

func (c *Client) DecrementItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "DecrementItem", in, opts)
}

func (c *Client) ClearCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "ClearCart", in, opts)
}

func (c *Client) ClearPromo(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "ClearPromo", in, opts)
}

func (c *Client) GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*storefront.CartView, error) {
	return c.cartCall(ctx, "GetCart", in, opts)
}

func (c *Client) ApplyPromo(ctx context.Context, in *PromoRequest, opts ...grpc.CallOption) (*storefront.PromoView, error) {
	out := new(storefront.PromoView)
	if err := c.invoke(ctx, "ApplyPromo", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Checkout(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*storefront.CheckoutView, error) {
	out := new(storefront.CheckoutView)
	if err := c.invoke(ctx, "Checkout", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*storefront.OrdersView, error) {
	out := new(storefront.OrdersView)
	if err := c.invoke(ctx, "ListOrders", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, in *UpdateOrderStatusRequest, opts ...grpc.CallOption) (*orders.Order, error) {
	out := new(orders.Order)
	if err := c.invoke(ctx, "UpdateOrderStatus", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

package httpapi

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	catalog "storefront/catalog/logic"
	"storefront/commerce"
	"storefront/storefront"
)

type handlers struct {
	svc    *storefront.Service
	logger *zap.Logger
}

type createSessionPayload struct {
	Demo bool `json:"demo"`
}

type addItemPayload struct {
	ProductID string `json:"product_id"`
}

type quantityPayload struct {
	Quantity interface{} `json:"quantity"`
}

type promoPayload struct {
	Code string `json:"code"`
}

type statusPayload struct {
	Status string `json:"status"`
}

func param(c echo.Context, name string) string {
	raw := c.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *handlers) createSession(c echo.Context) error {
	var payload createSessionPayload
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&payload); err != nil {
			return fromError(c, err)
		}
	}
	view, err := h.svc.CreateSession(c.Request().Context(), payload.Demo)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) endSession(c echo.Context) error {
	if err := h.svc.EndSession(c.Request().Context(), param(c, "id")); err != nil {
		return fromError(c, err)
	}
	return ok(c, map[string]string{"session_id": param(c, "id")})
}

func (h *handlers) browse(c echo.Context) error {
	criteria, err := catalog.ParseCriteria(c.QueryParams())
	if err != nil {
		return fromError(c, err)
	}
	result, err := h.svc.Browse(c.Request().Context(), c.QueryParam("session"), criteria)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, result)
}

func (h *handlers) facets(c echo.Context) error {
	facets, err := h.svc.Facets(c.Request().Context())
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, facets)
}

func (h *handlers) product(c echo.Context) error {
	p, err := h.svc.Product(c.Request().Context(), param(c, "pid"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, p)
}

func (h *handlers) inventory(c echo.Context) error {
	found, err := h.svc.SearchInventory(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, found)
}

func (h *handlers) addItem(c echo.Context) error {
	var payload addItemPayload
	if err := c.Bind(&payload); err != nil {
		return fromError(c, err)
	}
	view, err := h.svc.AddItem(c.Request().Context(), param(c, "id"), payload.ProductID)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) setQuantity(c echo.Context) error {
	var payload quantityPayload
	if err := c.Bind(&payload); err != nil {
		return fromError(c, err)
	}
	if payload.Quantity == nil {
		return fromError(c, commerce.NewInvalidArgument("quantity is required"))
	}
	n, err := parseQuantity(payload.Quantity)
	if err != nil {
		return fromError(c, err)
	}
	view, err := h.svc.SetQuantity(c.Request().Context(), param(c, "id"), param(c, "pid"), n)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

// parseQuantity accepts a JSON number or a base-10 string that fits in int32.
func parseQuantity(raw interface{}) (int32, error) {
	switch v := raw.(type) {
	case bool:
		return 0, commerce.NewInvalidArgumentf("quantity must be an integer, got %v", v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, commerce.NewInvalidArgumentf("quantity must be an integer between %d and %d, got %q", math.MinInt32, math.MaxInt32, v)
		}
		return int32(n), nil
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, commerce.NewInvalidArgumentf("quantity must be an integer, got %v", raw)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, commerce.NewInvalidArgumentf("quantity must be between %d and %d, got %v", math.MinInt32, math.MaxInt32, raw)
	}
	return int32(f), nil
}

func (h *handlers) removeItem(c echo.Context) error {
	view, err := h.svc.RemoveItem(c.Request().Context(), param(c, "id"), param(c, "pid"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) decrementItem(c echo.Context) error {
	view, err := h.svc.DecrementItem(c.Request().Context(), param(c, "id"), param(c, "pid"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) clearCart(c echo.Context) error {
	view, err := h.svc.ClearCart(c.Request().Context(), param(c, "id"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) applyPromo(c echo.Context) error {
	var payload promoPayload
	if err := c.Bind(&payload); err != nil {
		return fromError(c, err)
	}
	view, err := h.svc.ApplyPromo(c.Request().Context(), param(c, "id"), payload.Code)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) clearPromo(c echo.Context) error {
	view, err := h.svc.ClearPromo(c.Request().Context(), param(c, "id"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) cart(c echo.Context) error {
	view, err := h.svc.Cart(c.Request().Context(), param(c, "id"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) checkout(c echo.Context) error {
	view, err := h.svc.Checkout(c.Request().Context(), param(c, "id"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) listOrders(c echo.Context) error {
	view, err := h.svc.ListOrders(c.Request().Context(), c.QueryParam("q"), c.QueryParam("status"))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, view)
}

func (h *handlers) updateOrderStatus(c echo.Context) error {
	var payload statusPayload
	if err := c.Bind(&payload); err != nil {
		return fromError(c, err)
	}
	order, err := h.svc.UpdateOrderStatus(c.Request().Context(), param(c, "id"), payload.Status)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, order)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/model"
	"github.com/glasscard/storefront-api/internal/repository"
)

type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	log         *slog.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, log *slog.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo, log: log}
}

// Create inserts the order as submitted. Totals stay client-supplied; the
// catalog recomputation below only logs a mismatch, it never rejects. The
// originating cart rows are left untouched.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (string, error) {
	lines := make([]model.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Qty
		if qty == 0 {
			qty = 1
		}
		lines = append(lines, model.OrderLine{
			ClientID:  it.ClientID,
			ProductID: it.ProductID,
			Qty:       qty,
		})
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.Order{
		ClientID:       req.ClientID,
		Items:          lines,
		Address:        req.Address,
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		PromoCode:      req.PromoCode,
		Subtotal:       *req.Subtotal,
		Shipping:       *req.Shipping,
		Total:          *req.Total,
		Status:         status,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	s.auditSubtotal(ctx, order)
	return order.ID.Hex(), nil
}

// auditSubtotal recomputes the subtotal from catalog prices and logs when the
// client-supplied figure disagrees by more than a cent. Lines whose product
// does not resolve are skipped, matching the loose references elsewhere.
func (s *OrderService) auditSubtotal(ctx context.Context, order *model.Order) {
	if s.log == nil {
		return
	}
	computed := decimal.Zero
	resolved := 0
	for _, line := range order.Items {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil || product == nil {
			continue
		}
		resolved++
		price := decimal.NewFromFloat(product.Price)
		computed = computed.Add(price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	if resolved == 0 {
		return
	}
	claimed := decimal.NewFromFloat(order.Subtotal)
	if computed.Sub(claimed).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		s.log.Warn("order subtotal differs from catalog prices",
			"order_id", order.ID.Hex(),
			"client_id", order.ClientID,
			"claimed", claimed.String(),
			"computed", computed.String(),
		)
	}
}

func (s *OrderService) List(ctx context.Context, clientID string) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	return items, nil
}

func toOrderResponse(o *model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, dto.OrderLineResponse{
			ClientID:  l.ClientID,
			ProductID: l.ProductID,
			Qty:       l.Qty,
		})
	}
	return dto.OrderResponse{
		ID:             o.ID.Hex(),
		ClientID:       o.ClientID,
		Items:          lines,
		Address:        o.Address,
		ShippingMethod: o.ShippingMethod,
		PaymentMethod:  o.PaymentMethod,
		PromoCode:      o.PromoCode,
		Subtotal:       o.Subtotal,
		Shipping:       o.Shipping,
		Total:          o.Total,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/model"
	"github.com/glasscard/storefront-api/internal/repository"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart resolves each row's product with an explicit per-row lookup.
// The item's product_id is a string while product _id is an ObjectID, so the
// store's native $lookup cannot join them; a row whose product_id fails to
// parse or resolve is returned with a null product instead of failing the
// whole cart.
func (s *CartService) GetCart(ctx context.Context, clientID string) ([]dto.CartItemResponse, error) {
	items, err := s.cartRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	result := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		row := dto.CartItemResponse{
			ID:        item.ID.Hex(),
			ClientID:  item.ClientID,
			ProductID: item.ProductID,
			Qty:       item.Qty,
		}
		if !item.UpdatedAt.IsZero() {
			t := item.UpdatedAt
			row.UpdatedAt = &t
		}
		if product, err := s.productRepo.GetByID(ctx, item.ProductID); err == nil && product != nil {
			resp := toProductResponse(product)
			row.Product = &resp
		}
		result = append(result, row)
	}
	return result, nil
}

// AddItem inserts a new row every time; the same product added twice for one
// client yields two rows rather than an incremented quantity.
func (s *CartService) AddItem(ctx context.Context, req dto.AddCartItemRequest) (string, error) {
	item := &model.CartItem{
		ClientID:  req.ClientID,
		ProductID: req.ProductID,
		Qty:       req.Qty,
	}
	if item.Qty == 0 {
		item.Qty = 1
	}
	if err := s.cartRepo.Add(ctx, item); err != nil {
		return "", fmt.Errorf("add cart item: %w", err)
	}
	return item.ID.Hex(), nil
}

func (s *CartService) UpdateItem(ctx context.Context, itemID string, qty int) error {
	err := s.cartRepo.UpdateQty(ctx, itemID, qty)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	if err := s.cartRepo.Remove(ctx, itemID); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

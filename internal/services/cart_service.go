package services

import (
	"github.com/google/uuid"

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/repos"
)

type CartService struct {
	Carts    *repos.CartRepo
	Products *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, products *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Products: products}
}

// Add puts one unit of the product in the user's cart; adding the same
// product again bumps the quantity.
func (s *CartService) Add(userID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	p, err := s.Products.Get(productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.Carts.Upsert(domain.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	})
}

type CartView struct {
	Items []repos.CartItemRow
	Total float64
}

func (s *CartService) View(userID string) (CartView, error) {
	items, err := s.Carts.ItemsForUser(userID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, it := range items {
		total += it.Subtotal
	}
	return CartView{Items: items, Total: total}, nil
}

func (s *CartService) Remove(userID, itemID string) error {
	return s.Carts.Remove(userID, itemID)
}

func (s *CartService) Clear(userID string) error {
	return s.Carts.Clear(userID)
}

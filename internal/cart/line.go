package cart

import (
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
	"github.com/shopspring/decimal"
)

// Line is one distinct purchasable selection in the cart. Display fields are
// snapshotted from the product at add time so the cart renders without a
// catalog round trip.
type Line struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Size      *string         `json:"size"`
	Color     *string         `json:"color"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category,omitempty"`
}

// newLine snapshots the product's display fields.
func newLine(product shopapi.Product, quantity int, size, color *string) Line {
	return Line{
		ProductID: product.ID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Category:  product.Category,
	}
}

// Subtotal is price times quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// matches reports whether the line has the given identity key. Absent size
// and color both count as equal.
func (l Line) matches(productID string, size, color *string) bool {
	return l.ProductID == productID && equalOption(l.Size, size) && equalOption(l.Color, color)
}

func equalOption(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

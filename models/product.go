package models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// ProductSize represents one size variant of a product with its own stock count
type ProductSize struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	ProductID uint   `json:"-" gorm:"uniqueIndex:idx_product_size"`
	Size      string `json:"size" gorm:"uniqueIndex:idx_product_size"`
	Stock     int    `json:"stock"`
}

// Product represents product data in the system
type Product struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`

	Price     float64 `json:"price"`
	Sale      bool    `json:"sale"`
	SalePrice float64 `json:"sale_price"`

	Category     string `json:"category"`
	ClothingType string `json:"clothing_type"`
	Brand        string `json:"brand,omitempty"`
	Image        string `json:"image,omitempty"`

	SKU     string `json:"sku" gorm:"uniqueIndex"`
	InStock bool   `json:"in_stock"`

	Sizes []ProductSize `json:"sizes,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	IsActive      bool `json:"is_active" gorm:"default:true"`
	Views         int  `json:"views"`
	PurchaseCount int  `json:"purchase_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductInput holds data for creating/updating a product
type ProductInput struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Price        float64            `json:"price" binding:"required"`
	Sale         bool               `json:"sale"`
	SalePrice    float64            `json:"sale_price"`
	Category     string             `json:"category"`
	ClothingType string             `json:"clothing_type"`
	Brand        string             `json:"brand"`
	Image        string             `json:"image"`
	InStock      *bool              `json:"in_stock"`
	Sizes        []ProductSizeInput `json:"sizes"`
}

// ProductSizeInput is used for adding/updating product sizes
type ProductSizeInput struct {
	Size  string `json:"size" binding:"required"`
	Stock int    `json:"stock"`
}

// CurrentPrice returns the sale price when the product is on sale,
// the regular price otherwise.
func (p *Product) CurrentPrice() float64 {
	if p.Sale {
		return p.SalePrice
	}
	return p.Price
}

// TotalStock sums the stock across all size variants. Products without
// sizes count as 1 while marked in stock.
func (p *Product) TotalStock() int {
	if len(p.Sizes) == 0 {
		if p.InStock {
			return 1
		}
		return 0
	}
	total := 0
	for _, s := range p.Sizes {
		total += s.Stock
	}
	return total
}

// SizeEntry returns the size variant matching the given label, or nil.
func (p *Product) SizeEntry(size string) *ProductSize {
	for i := range p.Sizes {
		if p.Sizes[i].Size == size {
			return &p.Sizes[i]
		}
	}
	return nil
}

// RefreshInStock re-derives InStock from the size variants. Products
// without sizes keep their manually managed flag.
func (p *Product) RefreshInStock() {
	if len(p.Sizes) == 0 {
		return
	}
	p.InStock = false
	for _, s := range p.Sizes {
		if s.Stock > 0 {
			p.InStock = true
			return
		}
	}
}

// BeforeSave keeps InStock consistent with the size stocks and assigns a
// SKU to new products on every persist.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.RefreshInStock()
	if p.SKU == "" {
		p.SKU = fmt.Sprintf("SD-%d-%05d", time.Now().Unix()%1000000, rand.Intn(100000))
	}
	return nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo (camiseta, uniforme, etc.) com
// três faixas de preço por volume.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	Description string
	Notes       string
	PriceTier1  decimal.Decimal // varejo / pequenas quantidades
	PriceTier2  decimal.Decimal // atacado
	PriceTier3  decimal.Decimal // grandes lotes
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

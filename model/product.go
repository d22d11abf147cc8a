package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          uint64          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description,omitempty"`
	Price       decimal.Decimal `db:"price" json:"price"`
}

type ProductListItem struct {
	ID             uint64          `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	AvailableStock int64           `db:"available_stock" json:"available_stock"`
	Price          decimal.Decimal `db:"price" json:"price"`
}

type ProductDetail struct {
	ID             uint64          `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	Description    string          `db:"description" json:"description,omitempty"`
	AvailableStock int64           `db:"available_stock" json:"available_stock"`
	Price          decimal.Decimal `db:"price" json:"price"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	HubID      uint64            `json:"hub_id,omitempty"`
}

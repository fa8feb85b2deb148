package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockCategory struct {
	ID    uint        `json:"id" gorm:"primaryKey"`
	Name  string      `json:"name" gorm:"size:100;not null"`
	Items []StockItem `json:"items,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type StockItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	CategoryID uint            `json:"category_id" gorm:"not null;index"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Quantity   decimal.Decimal `json:"quantity" gorm:"type:decimal(10,2);not null"`
	Unit       string          `json:"unit" gorm:"size:50"`
	Threshold  int             `json:"threshold"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

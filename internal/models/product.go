// Package models содержит доменные структуры товаров и пользователей,
// а также типы для приёма данных из JSON-запросов.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Product представляет товар каталога.
type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductInput содержит проверенные данные для создания или обновления товара.
// Availability == nil означает, что поле не передано.
type ProductInput struct {
	Name         string
	Price        float64
	Availability *bool
}

// ProductRequest используется для приёма данных из JSON-запроса.
// Цена может прийти как числом, так и строкой с числом.
type ProductRequest struct {
	Name         string      `json:"name"`
	Price        json.Number `json:"price"`
	Availability *bool       `json:"availability,omitempty"`
}

// Input конвертирует запрос в ProductInput, обрезая пробелы в названии.
func (r ProductRequest) Input() (ProductInput, error) {
	price, err := r.Price.Float64()
	if err != nil {
		return ProductInput{}, fmt.Errorf("invalid price %q: %w", r.Price, err)
	}
	return ProductInput{
		Name:         strings.TrimSpace(r.Name),
		Price:        price,
		Availability: r.Availability,
	}, nil
}

package entity

import "github.com/google/uuid"

type Product struct {
	Base
	UmkmID      uuid.UUID `db:"umkm_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Images      []string  `db:"images"`
}

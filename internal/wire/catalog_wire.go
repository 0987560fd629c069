package wire

import (
	"umkm-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog: halaman publik, tanpa auth
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/umkms", catalogHandler.GetUmkms)
	r.Get("/umkms/{username}", catalogHandler.GetStore)

	r.Get("/products", catalogHandler.GetProducts)
	r.Get("/products/{id}", catalogHandler.GetProductDetail)
}

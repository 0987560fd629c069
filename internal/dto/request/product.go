package request

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitnil,max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=999999999999.99"`
	Images      []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitnil,min=3,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitnil,max=2000"`
	Price       *float64 `json:"price,omitempty" validate:"omitnil,gte=0,lte=999999999999.99"`
	Images      []string `json:"images,omitempty" validate:"omitnil,max=10,dive,url"`
}

package handler

type categoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"required,min=6"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Discount    float64 `json:"discount"    validate:"gte=0,lte=100"`
}

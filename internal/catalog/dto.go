package catalog

type ProductDTO struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Edition     string `json:"edition"`
	Description string `json:"description"`
	Price       string `json:"price"`
	OfferPrice  string `json:"offerPrice"`
	Color       string `json:"color"`
	Year        string `json:"year"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

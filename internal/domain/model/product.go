package model

// ProductInfo is the result of the external marketplace lookup for a
// product link.
type ProductInfo struct {
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

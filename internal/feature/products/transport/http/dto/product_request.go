// Package dto defines data transfer objects for the products feature's HTTP transport layer.
package dto

// ProductReq represents the request body for creating or updating a product.
// Price must decode as a non-negative number; any other JSON value is
// rejected at binding time.
type ProductReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// ProductItem is one product row as returned by the list endpoint.
type ProductItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreatedResp is the success body for a create, carrying the new id.
type CreatedResp struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

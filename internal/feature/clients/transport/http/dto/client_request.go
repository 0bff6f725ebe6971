// Package dto defines data transfer objects for the clients feature's HTTP transport layer.
package dto

// ClientReq represents the request body for creating or updating a client.
// All fields are optional free text, matching the store schema.
type ClientReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ClientItem is one client row as returned by the list endpoint.
type ClientItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CreatedResp is the success body for a create, carrying the new id.
type CreatedResp struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

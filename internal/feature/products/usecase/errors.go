// Package usecase implements the business logic for the products feature.
package usecase

import "errors"

// ErrProductNotFound is returned when an update or delete targets a product
// id that does not exist.
var ErrProductNotFound = errors.New("product not found")

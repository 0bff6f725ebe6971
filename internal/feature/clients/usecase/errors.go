// Package usecase implements the business logic for the clients feature.
package usecase

import "errors"

// ErrClientNotFound is returned when an update or delete targets a client
// id that does not exist.
var ErrClientNotFound = errors.New("client not found")

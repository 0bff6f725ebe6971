// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register endpoint.
// Email gets no format validation here: normalization and the empty check
// happen in the usecase, matching the lookup key used at login.
type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResp is the success body for /api/auth/register.
type RegisterResp struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

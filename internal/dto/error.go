package dto

// StandardError is the JSON body for every failed request.
type StandardError struct {
	Status  int    `json:"status" example:"404"`
	Error   string `json:"error" example:"not found"`
	Message string `json:"message" example:"user not found with id 7"`
}

package dto

// CreateUserRequest is the JSON body for POST /users.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
}

// UpdateUserRequest is the JSON body for PATCH /users/{id}.
// Omitted or blank fields are left untouched.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ListUsersResponse wraps the user collection.
type ListUsersResponse struct {
	Items []UserResponse `json:"items"`
}

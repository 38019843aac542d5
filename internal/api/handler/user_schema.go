package handler

// --- Request / Response types ---

type registerUserRequest struct {
	Name          string `json:"name"           validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Role          string `json:"role"           validate:"required"`
	PostalAddress string `json:"postal_address"`
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

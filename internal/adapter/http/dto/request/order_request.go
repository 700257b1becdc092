package request

// UpdateWorkStatusRequest is the body of PUT /api/admin/orders/{id}.
type UpdateWorkStatusRequest struct {
	WorkStatus string `json:"workStatus" binding:"required"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

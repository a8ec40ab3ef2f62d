package domain

// Roles, from least to most privileged. Each inherits the one before it.
const (
	RoleViewer = "viewer"
	RoleHR     = "hr"
	RoleAdmin  = "admin"
)

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	Name        string   `json:"name"`
	Inherits    []string `json:"inherits"`
	Permissions []string `json:"permissions"`
}

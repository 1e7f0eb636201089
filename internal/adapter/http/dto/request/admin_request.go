package request

// UpsertAreaRequest is the payload of PUT /areas/:area. TotalBudget is in USD.
type UpsertAreaRequest struct {
	TotalBudget *float64 `json:"total_budget" binding:"required,gte=0"`
}

type SaveRateConfigRequest struct {
	APIURL string `json:"api_url" binding:"required,url"`
}

type RegisterUserRequest struct {
	ID       string `json:"id" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"omitempty,oneof=requester approver admin"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=requester approver admin"`
}

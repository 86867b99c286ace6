package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type userRequest struct {
	Name         string     `json:"name"          validate:"required"`
	LastName     string     `json:"last_name"     validate:"required"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Address      string     `json:"address,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	EmailAddress string     `json:"email_address" validate:"required,email"`
	BaseSalary   float64    `json:"base_salary"   validate:"required,gt=0,lte=15000000"`
	RoleID       string     `json:"role_id"       validate:"required"`
	Password     string     `json:"password"      validate:"required,min=3"`
}

type userResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	LastName     string     `json:"last_name"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Address      string     `json:"address,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	EmailAddress string     `json:"email_address"`
	BaseSalary   float64    `json:"base_salary"`
	RoleID       string     `json:"role_id"`
}

type userListResponse struct {
	Items []userResponse `json:"items"`
	Total int            `json:"total"`
}

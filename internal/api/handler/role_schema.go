package handler

type roleRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

type roleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type roleListResponse struct {
	Items []roleResponse `json:"items"`
	Total int            `json:"total"`
}

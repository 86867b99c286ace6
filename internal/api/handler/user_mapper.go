package handler

import (
	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

// --- Request → Service input ---

func toUserInput(req userRequest, passwordHash string) ports.UserInput {
	return ports.UserInput{
		Name:         req.Name,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		Address:      req.Address,
		Phone:        req.Phone,
		EmailAddress: req.EmailAddress,
		BaseSalary:   req.BaseSalary,
		RoleID:       req.RoleID,
		PasswordHash: passwordHash,
	}
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		LastName:     u.LastName,
		BirthDate:    u.BirthDate,
		Address:      u.Address,
		Phone:        u.Phone,
		EmailAddress: u.EmailAddress,
		BaseSalary:   u.BaseSalary,
		RoleID:       u.RoleID,
	}
}

func toUserListResponse(users []*domain.User) userListResponse {
	items := make([]userResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return userListResponse{Items: items, Total: len(items)}
}

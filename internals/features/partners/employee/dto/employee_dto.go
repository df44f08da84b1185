package dto

import (
	userDto "backoffice_backend/internals/features/users/user/dto"

	"backoffice_backend/internals/features/partners/employee/model"
	"backoffice_backend/internals/helpers/i18n"
)

type EmployeeCreateRequest struct {
	User userDto.UserCreateRequest `json:"user" validate:"required"`

	BankAccountNumber *string `json:"bank_account_number"`
	Status            *string `json:"status" validate:"omitempty,oneof=active inactive left fired"`
	Partner           int64   `json:"partner" validate:"required,gt=0"`
	Branches          []int64 `json:"branches"`
	Courses           []int64 `json:"courses"`
}

type EmployeeUpdateRequest struct {
	User *userDto.UserUpdateRequest `json:"user"`

	BankAccountNumber *string  `json:"bank_account_number"`
	Status            *string  `json:"status" validate:"omitempty,oneof=active inactive left fired"`
	Partner           *int64   `json:"partner" validate:"omitempty,gt=0"`
	Branches          *[]int64 `json:"branches"`
	Courses           *[]int64 `json:"courses"`
}

type EmployeeResponse struct {
	User userDto.UserResponse `json:"user"`

	BankAccountNumber *string `json:"bank_account_number"`
	Status            string  `json:"status"`
	Partner           int64   `json:"partner"`
	Branches          []int64 `json:"branches"`
	Courses           []int64 `json:"courses"`
}

func NewEmployeeResponse(e *model.EmployeeModel, user userDto.UserResponse,
	branches, courses []int64, lang string) EmployeeResponse {
	if branches == nil {
		branches = []int64{}
	}
	if courses == nil {
		courses = []int64{}
	}
	return EmployeeResponse{
		User:              user,
		BankAccountNumber: e.EmployeeBankAccountNumber,
		Status:            i18n.Label(lang, e.EmployeeStatus),
		Partner:           e.EmployeePartnerID,
		Branches:          branches,
		Courses:           courses,
	}
}

package model

import (
	courseModel "backoffice_backend/internals/features/catalog/course/model"
	branchModel "backoffice_backend/internals/features/partners/branch/model"
	partnerModel "backoffice_backend/internals/features/partners/partner/model"
	userModel "backoffice_backend/internals/features/users/user/model"
)

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusLeft     = "left"
	EmployeeStatusFired    = "fired"
)

// EmployeeModel extends a user with partner attachment. The primary key is
// the user id; deleting the user removes the employee row by cascade.
type EmployeeModel struct {
	EmployeeUserID            int64   `gorm:"column:employee_user_id;primaryKey" json:"employee_user_id"`
	EmployeeBankAccountNumber *string `gorm:"column:employee_bank_account_number;size:64" json:"employee_bank_account_number,omitempty"`
	EmployeeStatus            string  `gorm:"column:employee_status;size:16;default:active" json:"employee_status"`
	EmployeePartnerID         int64   `gorm:"column:employee_partner_id;index;not null" json:"employee_partner_id"`

	User    *userModel.UserModel       `gorm:"foreignKey:EmployeeUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Partner *partnerModel.PartnerModel `gorm:"foreignKey:EmployeePartnerID;references:PartnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

type EmployeeBranchModel struct {
	EmployeeUserID int64 `gorm:"column:employee_user_id;primaryKey" json:"employee_user_id"`
	BranchID       int64 `gorm:"column:branch_id;primaryKey" json:"branch_id"`

	Employee *EmployeeModel           `gorm:"foreignKey:EmployeeUserID;references:EmployeeUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Branch   *branchModel.BranchModel `gorm:"foreignKey:BranchID;references:BranchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (EmployeeBranchModel) TableName() string {
	return "employee_branches"
}

// EmployeeCourseModel marks an employee as a teacher of a course.
type EmployeeCourseModel struct {
	EmployeeUserID int64 `gorm:"column:employee_user_id;primaryKey" json:"employee_user_id"`
	CourseID       int64 `gorm:"column:course_id;primaryKey" json:"course_id"`

	Employee *EmployeeModel           `gorm:"foreignKey:EmployeeUserID;references:EmployeeUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Course   *courseModel.CourseModel `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (EmployeeCourseModel) TableName() string {
	return "employee_courses"
}

package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest provisions a managed employee together with their
// initial login credential.
type CreateEmployeeRequest struct {
	Email       string           `json:"email" binding:"required,email"`
	Password    string           `json:"password" binding:"required,min=8"`
	Role        string           `json:"role" binding:"required,oneof=staff secondary_admin primary_admin"`
	FullName    string           `json:"fullName"`
	JobRole     string           `json:"jobRole"`
	PayRate     *decimal.Decimal `json:"payRate"`
	PhoneNumber string           `json:"phoneNumber"`
}

// UpdateEmployeeRequest replaces an employee's profile, role, and status.
type UpdateEmployeeRequest struct {
	FullName    string           `json:"fullName"`
	PhoneNumber string           `json:"phoneNumber"`
	JobRole     string           `json:"jobRole"`
	PayRate     *decimal.Decimal `json:"payRate"`
	Role        string           `json:"role" binding:"required,oneof=staff secondary_admin primary_admin"`
	Status      string           `json:"status" binding:"required,oneof=active inactive"`
}

package onboardingerrors

import (
	"net/http"

	"foome-hcm/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"onboarding task not found",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"onboarding assignment not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeConflict,
		"onboarding assignment is already completed",
		http.StatusConflict,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"only the assignee or an admin can complete this assignment",
		http.StatusForbidden,
	)
)

package employeeerrors

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
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee status",
		http.StatusBadRequest,
	)
	ErrInvalidContractType = apperror.New(
		apperror.CodeInvalidInput,
		"contract_type must be CLT or PJ",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrStatusChangeForbidden = apperror.New(
		apperror.CodeForbidden,
		"only the employee or an admin can change this status",
		http.StatusForbidden,
	)
	ErrRoleNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"role does not belong to this company",
		http.StatusBadRequest,
	)
	ErrTeamNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"team does not belong to this company",
		http.StatusBadRequest,
	)
	ErrSubteamNotInTeam = apperror.New(
		apperror.CodeInvalidInput,
		"subteam does not belong to the selected team",
		http.StatusBadRequest,
	)
	ErrSubteamWithoutTeam = apperror.New(
		apperror.CodeInvalidInput,
		"a subteam cannot be assigned without a team",
		http.StatusBadRequest,
	)
)

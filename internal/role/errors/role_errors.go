package roleerrors

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
	ErrInvalidTeamID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid team id",
		http.StatusBadRequest,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeConflict,
		"role has employees currently assigned and cannot be deleted",
		http.StatusConflict,
	)
	ErrTeamNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"team does not belong to this company",
		http.StatusBadRequest,
	)
)

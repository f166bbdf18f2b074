package teamerrors

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
	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"team not found",
		http.StatusNotFound,
	)
	ErrSubteamNotFound = apperror.New(
		apperror.CodeNotFound,
		"subteam not found",
		http.StatusNotFound,
	)
)

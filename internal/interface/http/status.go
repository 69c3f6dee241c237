package handlers

import (
	"errors"
	"net/http"

	app "github.com/anujyadav2244/cricriser/internal/application"
)

// statusFor maps application errors onto HTTP statuses. Anything unmapped is
// treated as a bad request so the message still reaches the client verbatim.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrNoAccount),
		errors.Is(err, app.ErrEmailNotVerified),
		errors.Is(err, app.ErrIncorrectPassword):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrNotLeagueOwner):
		return http.StatusForbidden
	case errors.Is(err, app.ErrAdminNotFound),
		errors.Is(err, app.ErrLeagueNotFound),
		errors.Is(err, app.ErrTeamNotFound),
		errors.Is(err, app.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrEmailRegistered),
		errors.Is(err, app.ErrLeagueNameExists),
		errors.Is(err, app.ErrTeamExists):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

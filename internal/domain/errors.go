package domain

import "github.com/homelib/server/pkg/apperr"

var (
	ErrInvalidID     = apperr.ErrInvalidArgument.WithMessage("Invalid UUID")
	ErrMissingFields = apperr.ErrInvalidArgument.WithMessage("Missing required fields")

	ErrUserNotFound   = apperr.ErrNotFound.WithMessage("User not found")
	ErrArtistNotFound = apperr.ErrNotFound.WithMessage("Artist not found")
	ErrAlbumNotFound  = apperr.ErrNotFound.WithMessage("Album not found")
	ErrTrackNotFound  = apperr.ErrNotFound.WithMessage("Track not found")

	ErrLoginTaken       = apperr.ErrConflict.WithMessage("User with this login already exists")
	ErrWrongOldPassword = apperr.ErrForbidden.WithMessage("Old password is wrong")
	ErrAuthFailed       = apperr.ErrForbidden.WithMessage("Authentication failed")
	ErrBadRefreshToken  = apperr.ErrForbidden.WithMessage("Invalid or expired refresh token")

	ErrFavoriteNotFound = apperr.ErrNotFound.WithMessage("Entity is not favorite")
	ErrFavoriteTarget   = apperr.ErrUnprocessableEntity.WithMessage("Referenced entity does not exist")
)

package service

import "github.com/homelib/server/internal/domain"

// Create inputs use pointer fields where the zero value is meaningful
// (false, 0) so absence can be told apart and rejected.
// Update inputs use domain.Optional so absent fields are left untouched
// while an explicit null clears a nullable reference.

// CreateUserInput carries a new account's credentials.
type CreateUserInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UpdatePasswordInput carries a password change request.
type UpdatePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateArtistInput carries a new artist.
type CreateArtistInput struct {
	Name   string `json:"name"`
	Grammy *bool  `json:"grammy"`
}

// UpdateArtistInput carries a partial artist update.
type UpdateArtistInput struct {
	Name   domain.Optional[string] `json:"name"`
	Grammy domain.Optional[bool]   `json:"grammy"`
}

// CreateAlbumInput carries a new album.
type CreateAlbumInput struct {
	Name     string  `json:"name"`
	Year     *int    `json:"year"`
	ArtistID *string `json:"artistId"`
}

// UpdateAlbumInput carries a partial album update.
type UpdateAlbumInput struct {
	Name     domain.Optional[string] `json:"name"`
	Year     domain.Optional[int]    `json:"year"`
	ArtistID domain.Optional[string] `json:"artistId"`
}

// CreateTrackInput carries a new track.
type CreateTrackInput struct {
	Name     string  `json:"name"`
	ArtistID *string `json:"artistId"`
	AlbumID  *string `json:"albumId"`
	Duration *int    `json:"duration"`
}

// UpdateTrackInput carries a partial track update.
type UpdateTrackInput struct {
	Name     domain.Optional[string] `json:"name"`
	ArtistID domain.Optional[string] `json:"artistId"`
	AlbumID  domain.Optional[string] `json:"albumId"`
	Duration domain.Optional[int]    `json:"duration"`
}

// SignUpInput carries registration credentials.
type SignUpInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RefreshInput carries a refresh token for rotation.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// Package domain defines the library entities and their business errors.
package domain

import "time"

// User is an account holder. The password hash never appears in JSON output.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Artist is a music artist.
type Artist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Grammy bool   `json:"grammy"`
}

// Album references its artist by id; the reference is cleared when the
// artist is deleted.
type Album struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	ArtistID *string `json:"artistId"`
}

// Track references its artist and album by id; both references are cleared
// when the parent is deleted.
type Track struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ArtistID *string `json:"artistId"`
	AlbumID  *string `json:"albumId"`
	Duration int     `json:"duration"`
}

// FavoriteKind is the category a favorited id belongs to.
type FavoriteKind string

const (
	FavoriteArtist FavoriteKind = "artist"
	FavoriteAlbum  FavoriteKind = "album"
	FavoriteTrack  FavoriteKind = "track"
)

// Favorites is the expanded singleton favorites collection. Ids whose target
// no longer exists are omitted during expansion.
type Favorites struct {
	Artists []Artist `json:"artists"`
	Albums  []Album  `json:"albums"`
	Tracks  []Track  `json:"tracks"`
}

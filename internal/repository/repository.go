// Package repository defines persistence interfaces for the library entities
// and their PostgreSQL implementations.
package repository

import (
	"context"

	"github.com/homelib/server/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// ArtistRepository persists artists.
type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) error
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
	List(ctx context.Context) ([]domain.Artist, error)
	Update(ctx context.Context, artist *domain.Artist) error
	Delete(ctx context.Context, id string) error
}

// AlbumRepository persists albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	List(ctx context.Context) ([]domain.Album, error)
	Update(ctx context.Context, album *domain.Album) error
	Delete(ctx context.Context, id string) error
	// ClearArtist nulls artist_id on every album referencing artistID.
	ClearArtist(ctx context.Context, artistID string) error
}

// TrackRepository persists tracks.
type TrackRepository interface {
	Create(ctx context.Context, track *domain.Track) error
	GetByID(ctx context.Context, id string) (*domain.Track, error)
	List(ctx context.Context) ([]domain.Track, error)
	Update(ctx context.Context, track *domain.Track) error
	Delete(ctx context.Context, id string) error
	// ClearArtist nulls artist_id on every track referencing artistID.
	ClearArtist(ctx context.Context, artistID string) error
	// ClearAlbum nulls album_id on every track referencing albumID.
	ClearAlbum(ctx context.Context, albumID string) error
}

// FavoritesRepository persists the singleton favorites id sets.
type FavoritesRepository interface {
	// Add inserts the id into the kind's set. Adding a member twice is a no-op.
	Add(ctx context.Context, kind domain.FavoriteKind, id string) error
	// Remove deletes the id from the kind's set and reports whether it was a
	// member.
	Remove(ctx context.Context, kind domain.FavoriteKind, id string) (bool, error)
	// ListIDs returns all ids stored under the kind.
	ListIDs(ctx context.Context, kind domain.FavoriteKind) ([]string, error)
}

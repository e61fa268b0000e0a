// Package memory provides in-memory repository implementations.
//
// They satisfy the same interfaces as the PostgreSQL repositories and back
// the service tests; they are also usable as a storage backend for local
// runs without a database.
package memory

import (
	"context"
	"sync"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
)

// UserRepository is an in-memory repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == user.Login {
			return domain.ErrLoginTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Login == login {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ArtistRepository is an in-memory repository.ArtistRepository.
type ArtistRepository struct {
	mu      sync.RWMutex
	artists map[string]domain.Artist
}

// NewArtistRepository creates an empty in-memory artist repository.
func NewArtistRepository() *ArtistRepository {
	return &ArtistRepository{artists: make(map[string]domain.Artist)}
}

func (r *ArtistRepository) Create(_ context.Context, artist *domain.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artists[artist.ID] = *artist
	return nil
}

func (r *ArtistRepository) GetByID(_ context.Context, id string) (*domain.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	artist, ok := r.artists[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	return &artist, nil
}

func (r *ArtistRepository) List(_ context.Context) ([]domain.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	artists := make([]domain.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		artists = append(artists, a)
	}
	return artists, nil
}

func (r *ArtistRepository) Update(_ context.Context, artist *domain.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.artists[artist.ID]; !ok {
		return domain.ErrArtistNotFound
	}
	r.artists[artist.ID] = *artist
	return nil
}

func (r *ArtistRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.artists[id]; !ok {
		return domain.ErrArtistNotFound
	}
	delete(r.artists, id)
	return nil
}

// AlbumRepository is an in-memory repository.AlbumRepository.
type AlbumRepository struct {
	mu     sync.RWMutex
	albums map[string]domain.Album
}

// NewAlbumRepository creates an empty in-memory album repository.
func NewAlbumRepository() *AlbumRepository {
	return &AlbumRepository{albums: make(map[string]domain.Album)}
}

func (r *AlbumRepository) Create(_ context.Context, album *domain.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.albums[album.ID] = *album
	return nil
}

func (r *AlbumRepository) GetByID(_ context.Context, id string) (*domain.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	album, ok := r.albums[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	return &album, nil
}

func (r *AlbumRepository) List(_ context.Context) ([]domain.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	albums := make([]domain.Album, 0, len(r.albums))
	for _, a := range r.albums {
		albums = append(albums, a)
	}
	return albums, nil
}

func (r *AlbumRepository) Update(_ context.Context, album *domain.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.albums[album.ID]; !ok {
		return domain.ErrAlbumNotFound
	}
	r.albums[album.ID] = *album
	return nil
}

func (r *AlbumRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.albums[id]; !ok {
		return domain.ErrAlbumNotFound
	}
	delete(r.albums, id)
	return nil
}

func (r *AlbumRepository) ClearArtist(_ context.Context, artistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, album := range r.albums {
		if album.ArtistID != nil && *album.ArtistID == artistID {
			album.ArtistID = nil
			r.albums[id] = album
		}
	}
	return nil
}

// TrackRepository is an in-memory repository.TrackRepository.
type TrackRepository struct {
	mu     sync.RWMutex
	tracks map[string]domain.Track
}

// NewTrackRepository creates an empty in-memory track repository.
func NewTrackRepository() *TrackRepository {
	return &TrackRepository{tracks: make(map[string]domain.Track)}
}

func (r *TrackRepository) Create(_ context.Context, track *domain.Track) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracks[track.ID] = *track
	return nil
}

func (r *TrackRepository) GetByID(_ context.Context, id string) (*domain.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	track, ok := r.tracks[id]
	if !ok {
		return nil, domain.ErrTrackNotFound
	}
	return &track, nil
}

func (r *TrackRepository) List(_ context.Context) ([]domain.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tracks := make([]domain.Track, 0, len(r.tracks))
	for _, tr := range r.tracks {
		tracks = append(tracks, tr)
	}
	return tracks, nil
}

func (r *TrackRepository) Update(_ context.Context, track *domain.Track) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tracks[track.ID]; !ok {
		return domain.ErrTrackNotFound
	}
	r.tracks[track.ID] = *track
	return nil
}

func (r *TrackRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tracks[id]; !ok {
		return domain.ErrTrackNotFound
	}
	delete(r.tracks, id)
	return nil
}

func (r *TrackRepository) ClearArtist(_ context.Context, artistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, track := range r.tracks {
		if track.ArtistID != nil && *track.ArtistID == artistID {
			track.ArtistID = nil
			r.tracks[id] = track
		}
	}
	return nil
}

func (r *TrackRepository) ClearAlbum(_ context.Context, albumID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, track := range r.tracks {
		if track.AlbumID != nil && *track.AlbumID == albumID {
			track.AlbumID = nil
			r.tracks[id] = track
		}
	}
	return nil
}

// FavoritesRepository is an in-memory repository.FavoritesRepository.
type FavoritesRepository struct {
	mu   sync.RWMutex
	sets map[domain.FavoriteKind][]string
}

// NewFavoritesRepository creates an empty in-memory favorites repository.
func NewFavoritesRepository() *FavoritesRepository {
	return &FavoritesRepository{sets: make(map[domain.FavoriteKind][]string)}
}

func (r *FavoritesRepository) Add(_ context.Context, kind domain.FavoriteKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, member := range r.sets[kind] {
		if member == id {
			return nil
		}
	}
	r.sets[kind] = append(r.sets[kind], id)
	return nil
}

func (r *FavoritesRepository) Remove(_ context.Context, kind domain.FavoriteKind, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, member := range r.sets[kind] {
		if member == id {
			r.sets[kind] = append(r.sets[kind][:i], r.sets[kind][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *FavoritesRepository) ListIDs(_ context.Context, kind domain.FavoriteKind) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, len(r.sets[kind]))
	copy(ids, r.sets[kind])
	return ids, nil
}

// Interface conformance checks.
var (
	_ repository.UserRepository      = (*UserRepository)(nil)
	_ repository.ArtistRepository    = (*ArtistRepository)(nil)
	_ repository.AlbumRepository     = (*AlbumRepository)(nil)
	_ repository.TrackRepository     = (*TrackRepository)(nil)
	_ repository.FavoritesRepository = (*FavoritesRepository)(nil)
)

package service

import (
	"context"
	"errors"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/pkg/apperr"
)

// MissingPolicy controls how favorites removal treats a non-member id.
type MissingPolicy int

const (
	// FailIfMissing makes removal of a non-member id a NotFound error.
	FailIfMissing MissingPolicy = iota
	// IgnoreMissing makes removal of a non-member id a no-op. Cascade
	// deletes use this so cleaning up an unfavorited entity is not an error.
	IgnoreMissing
)

// FavoritesService manages the singleton favorites collection.
type FavoritesService struct {
	favorites repository.FavoritesRepository
	artists   repository.ArtistRepository
	albums    repository.AlbumRepository
	tracks    repository.TrackRepository
}

// NewFavoritesService creates a favorites service.
func NewFavoritesService(
	favorites repository.FavoritesRepository,
	artists repository.ArtistRepository,
	albums repository.AlbumRepository,
	tracks repository.TrackRepository,
) *FavoritesService {
	return &FavoritesService{
		favorites: favorites,
		artists:   artists,
		albums:    albums,
		tracks:    tracks,
	}
}

// GetAll expands every favorited id into its full record. Ids whose target
// no longer exists are silently omitted; they can be left behind by
// out-of-band deletions and are purged later by the integrity sweeper.
func (s *FavoritesService) GetAll(ctx context.Context) (*domain.Favorites, error) {
	result := &domain.Favorites{
		Artists: make([]domain.Artist, 0),
		Albums:  make([]domain.Album, 0),
		Tracks:  make([]domain.Track, 0),
	}

	artistIDs, err := s.favorites.ListIDs(ctx, domain.FavoriteArtist)
	if err != nil {
		return nil, err
	}
	for _, id := range artistIDs {
		artist, err := s.artists.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				continue
			}
			return nil, err
		}
		result.Artists = append(result.Artists, *artist)
	}

	albumIDs, err := s.favorites.ListIDs(ctx, domain.FavoriteAlbum)
	if err != nil {
		return nil, err
	}
	for _, id := range albumIDs {
		album, err := s.albums.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				continue
			}
			return nil, err
		}
		result.Albums = append(result.Albums, *album)
	}

	trackIDs, err := s.favorites.ListIDs(ctx, domain.FavoriteTrack)
	if err != nil {
		return nil, err
	}
	for _, id := range trackIDs {
		track, err := s.tracks.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				continue
			}
			return nil, err
		}
		result.Tracks = append(result.Tracks, *track)
	}

	return result, nil
}

// AddArtist favorites an artist. Adding a member twice is a no-op.
func (s *FavoritesService) AddArtist(ctx context.Context, id string) error {
	return s.add(ctx, domain.FavoriteArtist, id, func(ctx context.Context, id string) error {
		_, err := s.artists.GetByID(ctx, id)
		return err
	})
}

// AddAlbum favorites an album.
func (s *FavoritesService) AddAlbum(ctx context.Context, id string) error {
	return s.add(ctx, domain.FavoriteAlbum, id, func(ctx context.Context, id string) error {
		_, err := s.albums.GetByID(ctx, id)
		return err
	})
}

// AddTrack favorites a track.
func (s *FavoritesService) AddTrack(ctx context.Context, id string) error {
	return s.add(ctx, domain.FavoriteTrack, id, func(ctx context.Context, id string) error {
		_, err := s.tracks.GetByID(ctx, id)
		return err
	})
}

// RemoveArtist unfavorites an artist under the given missing policy.
func (s *FavoritesService) RemoveArtist(ctx context.Context, id string, policy MissingPolicy) error {
	return s.remove(ctx, domain.FavoriteArtist, id, policy)
}

// RemoveAlbum unfavorites an album under the given missing policy.
func (s *FavoritesService) RemoveAlbum(ctx context.Context, id string, policy MissingPolicy) error {
	return s.remove(ctx, domain.FavoriteAlbum, id, policy)
}

// RemoveTrack unfavorites a track under the given missing policy.
func (s *FavoritesService) RemoveTrack(ctx context.Context, id string, policy MissingPolicy) error {
	return s.remove(ctx, domain.FavoriteTrack, id, policy)
}

func (s *FavoritesService) add(ctx context.Context, kind domain.FavoriteKind, id string, exists func(context.Context, string) error) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if err := exists(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return domain.ErrFavoriteTarget
		}
		return err
	}
	return s.favorites.Add(ctx, kind, id)
}

func (s *FavoritesService) remove(ctx context.Context, kind domain.FavoriteKind, id string, policy MissingPolicy) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	removed, err := s.favorites.Remove(ctx, kind, id)
	if err != nil {
		return err
	}
	if !removed && policy == FailIfMissing {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

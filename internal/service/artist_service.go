package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
)

// ArtistService manages artists and the cascade triggered by their deletion.
type ArtistService struct {
	artists   repository.ArtistRepository
	albums    repository.AlbumRepository
	tracks    repository.TrackRepository
	favorites *FavoritesService
	log       zerolog.Logger
}

// NewArtistService creates an artist service.
func NewArtistService(
	artists repository.ArtistRepository,
	albums repository.AlbumRepository,
	tracks repository.TrackRepository,
	favorites *FavoritesService,
	log zerolog.Logger,
) *ArtistService {
	return &ArtistService{
		artists:   artists,
		albums:    albums,
		tracks:    tracks,
		favorites: favorites,
		log:       log,
	}
}

// List returns all artists.
func (s *ArtistService) List(ctx context.Context) ([]domain.Artist, error) {
	return s.artists.List(ctx)
}

// Get returns the artist with the given id.
func (s *ArtistService) Get(ctx context.Context, id string) (*domain.Artist, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.artists.GetByID(ctx, id)
}

// Create validates and persists a new artist.
func (s *ArtistService) Create(ctx context.Context, in *CreateArtistInput) (*domain.Artist, error) {
	if in.Name == "" || in.Grammy == nil {
		return nil, domain.ErrMissingFields
	}

	artist := &domain.Artist{
		ID:     domain.NewID(),
		Name:   in.Name,
		Grammy: *in.Grammy,
	}
	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Update applies the present fields of in to the artist.
func (s *ArtistService) Update(ctx context.Context, id string, in *UpdateArtistInput) (*domain.Artist, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}

	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Null || in.Name.Value == "" {
			return nil, domain.ErrMissingFields
		}
		artist.Name = in.Name.Value
	}
	if in.Grammy.Set {
		if in.Grammy.Null {
			return nil, domain.ErrMissingFields
		}
		artist.Grammy = in.Grammy.Value
	}

	if err := s.artists.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Delete removes the artist after clearing every reference to it: albums and
// tracks lose their artistId, and the id leaves the favorites artist set.
// The steps are not transactional; a failure partway is logged and surfaced,
// never retried.
func (s *ArtistService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if _, err := s.artists.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.albums.ClearArtist(ctx, id); err != nil {
		s.log.Error().Err(err).Str("artist_id", id).Msg("cascade: clear albums failed")
		return err
	}
	if err := s.tracks.ClearArtist(ctx, id); err != nil {
		s.log.Error().Err(err).Str("artist_id", id).Msg("cascade: clear tracks failed")
		return err
	}
	if err := s.favorites.RemoveArtist(ctx, id, IgnoreMissing); err != nil {
		s.log.Error().Err(err).Str("artist_id", id).Msg("cascade: unfavorite failed")
		return err
	}

	return s.artists.Delete(ctx, id)
}

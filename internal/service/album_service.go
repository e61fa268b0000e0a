package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/pkg/apperr"
)

// AlbumService manages albums and the cascade triggered by their deletion.
type AlbumService struct {
	albums    repository.AlbumRepository
	artists   repository.ArtistRepository
	tracks    repository.TrackRepository
	favorites *FavoritesService
	log       zerolog.Logger
}

// NewAlbumService creates an album service.
func NewAlbumService(
	albums repository.AlbumRepository,
	artists repository.ArtistRepository,
	tracks repository.TrackRepository,
	favorites *FavoritesService,
	log zerolog.Logger,
) *AlbumService {
	return &AlbumService{
		albums:    albums,
		artists:   artists,
		tracks:    tracks,
		favorites: favorites,
		log:       log,
	}
}

// List returns all albums.
func (s *AlbumService) List(ctx context.Context) ([]domain.Album, error) {
	return s.albums.List(ctx)
}

// Get returns the album with the given id.
func (s *AlbumService) Get(ctx context.Context, id string) (*domain.Album, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.albums.GetByID(ctx, id)
}

// Create validates and persists a new album. A non-null artistId must
// reference an existing artist.
func (s *AlbumService) Create(ctx context.Context, in *CreateAlbumInput) (*domain.Album, error) {
	if in.Name == "" || in.Year == nil {
		return nil, domain.ErrMissingFields
	}
	if err := s.checkArtistRef(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	album := &domain.Album{
		ID:       domain.NewID(),
		Name:     in.Name,
		Year:     *in.Year,
		ArtistID: in.ArtistID,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Update applies the present fields of in to the album. An explicit null
// artistId clears the reference.
func (s *AlbumService) Update(ctx context.Context, id string, in *UpdateAlbumInput) (*domain.Album, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}

	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Null || in.Name.Value == "" {
			return nil, domain.ErrMissingFields
		}
		album.Name = in.Name.Value
	}
	if in.Year.Set {
		if in.Year.Null {
			return nil, domain.ErrMissingFields
		}
		album.Year = in.Year.Value
	}
	if in.ArtistID.Set {
		if in.ArtistID.Null {
			album.ArtistID = nil
		} else {
			ref := in.ArtistID.Value
			if err := s.checkArtistRef(ctx, &ref); err != nil {
				return nil, err
			}
			album.ArtistID = &ref
		}
	}

	if err := s.albums.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Delete removes the album after clearing every reference to it: tracks lose
// their albumId and the id leaves the favorites album set. Steps are not
// transactional; a failure partway is logged and surfaced.
func (s *AlbumService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if _, err := s.albums.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.tracks.ClearAlbum(ctx, id); err != nil {
		s.log.Error().Err(err).Str("album_id", id).Msg("cascade: clear tracks failed")
		return err
	}
	if err := s.favorites.RemoveAlbum(ctx, id, IgnoreMissing); err != nil {
		s.log.Error().Err(err).Str("album_id", id).Msg("cascade: unfavorite failed")
		return err
	}

	return s.albums.Delete(ctx, id)
}

// checkArtistRef ensures a non-null artist reference resolves at write time.
func (s *AlbumService) checkArtistRef(ctx context.Context, artistID *string) error {
	if artistID == nil {
		return nil
	}
	if err := domain.ValidateID(*artistID); err != nil {
		return err
	}
	if _, err := s.artists.GetByID(ctx, *artistID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrInvalidArgument.WithMessage("Referenced artist does not exist")
		}
		return err
	}
	return nil
}

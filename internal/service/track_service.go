package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/pkg/apperr"
)

// TrackService manages tracks. Tracks are leaves: deleting one only removes
// it from the favorites track set.
type TrackService struct {
	tracks    repository.TrackRepository
	artists   repository.ArtistRepository
	albums    repository.AlbumRepository
	favorites *FavoritesService
	log       zerolog.Logger
}

// NewTrackService creates a track service.
func NewTrackService(
	tracks repository.TrackRepository,
	artists repository.ArtistRepository,
	albums repository.AlbumRepository,
	favorites *FavoritesService,
	log zerolog.Logger,
) *TrackService {
	return &TrackService{
		tracks:    tracks,
		artists:   artists,
		albums:    albums,
		favorites: favorites,
		log:       log,
	}
}

// List returns all tracks.
func (s *TrackService) List(ctx context.Context) ([]domain.Track, error) {
	return s.tracks.List(ctx)
}

// Get returns the track with the given id.
func (s *TrackService) Get(ctx context.Context, id string) (*domain.Track, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.tracks.GetByID(ctx, id)
}

// Create validates and persists a new track. Duration must be present and
// non-negative; zero is a valid duration. Non-null references must resolve.
func (s *TrackService) Create(ctx context.Context, in *CreateTrackInput) (*domain.Track, error) {
	if in.Name == "" || in.Duration == nil {
		return nil, domain.ErrMissingFields
	}
	if *in.Duration < 0 {
		return nil, apperr.ErrInvalidArgument.WithMessage("Duration must be non-negative")
	}
	if err := s.checkRefs(ctx, in.ArtistID, in.AlbumID); err != nil {
		return nil, err
	}

	track := &domain.Track{
		ID:       domain.NewID(),
		Name:     in.Name,
		ArtistID: in.ArtistID,
		AlbumID:  in.AlbumID,
		Duration: *in.Duration,
	}
	if err := s.tracks.Create(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}

// Update applies the present fields of in to the track. Explicit null
// references are cleared.
func (s *TrackService) Update(ctx context.Context, id string, in *UpdateTrackInput) (*domain.Track, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}

	track, err := s.tracks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Null || in.Name.Value == "" {
			return nil, domain.ErrMissingFields
		}
		track.Name = in.Name.Value
	}
	if in.Duration.Set {
		if in.Duration.Null || in.Duration.Value < 0 {
			return nil, apperr.ErrInvalidArgument.WithMessage("Duration must be non-negative")
		}
		track.Duration = in.Duration.Value
	}
	if in.ArtistID.Set {
		if in.ArtistID.Null {
			track.ArtistID = nil
		} else {
			ref := in.ArtistID.Value
			if err := s.checkRefs(ctx, &ref, nil); err != nil {
				return nil, err
			}
			track.ArtistID = &ref
		}
	}
	if in.AlbumID.Set {
		if in.AlbumID.Null {
			track.AlbumID = nil
		} else {
			ref := in.AlbumID.Value
			if err := s.checkRefs(ctx, nil, &ref); err != nil {
				return nil, err
			}
			track.AlbumID = &ref
		}
	}

	if err := s.tracks.Update(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}

// Delete removes the track and drops it from the favorites track set.
func (s *TrackService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if _, err := s.tracks.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.favorites.RemoveTrack(ctx, id, IgnoreMissing); err != nil {
		s.log.Error().Err(err).Str("track_id", id).Msg("cascade: unfavorite failed")
		return err
	}

	return s.tracks.Delete(ctx, id)
}

// checkRefs ensures non-null artist/album references resolve at write time.
func (s *TrackService) checkRefs(ctx context.Context, artistID, albumID *string) error {
	if artistID != nil {
		if err := domain.ValidateID(*artistID); err != nil {
			return err
		}
		if _, err := s.artists.GetByID(ctx, *artistID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.ErrInvalidArgument.WithMessage("Referenced artist does not exist")
			}
			return err
		}
	}
	if albumID != nil {
		if err := domain.ValidateID(*albumID); err != nil {
			return err
		}
		if _, err := s.albums.GetByID(ctx, *albumID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.ErrInvalidArgument.WithMessage("Referenced album does not exist")
			}
			return err
		}
	}
	return nil
}

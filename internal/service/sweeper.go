package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/pkg/apperr"
)

// IntegritySweeper periodically removes favorite ids whose target record no
// longer exists. Reads already tolerate dangling ids by omitting them; the
// sweeper is the compacting counterpart that keeps the sets from growing
// stale after out-of-band deletions.
type IntegritySweeper struct {
	favorites repository.FavoritesRepository
	artists   repository.ArtistRepository
	albums    repository.AlbumRepository
	tracks    repository.TrackRepository
	log       zerolog.Logger
}

// NewIntegritySweeper creates a sweeper.
func NewIntegritySweeper(
	favorites repository.FavoritesRepository,
	artists repository.ArtistRepository,
	albums repository.AlbumRepository,
	tracks repository.TrackRepository,
	log zerolog.Logger,
) *IntegritySweeper {
	return &IntegritySweeper{
		favorites: favorites,
		artists:   artists,
		albums:    albums,
		tracks:    tracks,
		log:       log,
	}
}

// Sweep scans all three favorite sets and removes dangling ids. It returns
// the number of ids removed.
func (s *IntegritySweeper) Sweep(ctx context.Context) (int, error) {
	removed := 0

	kinds := []struct {
		kind   domain.FavoriteKind
		exists func(context.Context, string) error
	}{
		{domain.FavoriteArtist, func(ctx context.Context, id string) error {
			_, err := s.artists.GetByID(ctx, id)
			return err
		}},
		{domain.FavoriteAlbum, func(ctx context.Context, id string) error {
			_, err := s.albums.GetByID(ctx, id)
			return err
		}},
		{domain.FavoriteTrack, func(ctx context.Context, id string) error {
			_, err := s.tracks.GetByID(ctx, id)
			return err
		}},
	}

	for _, k := range kinds {
		ids, err := s.favorites.ListIDs(ctx, k.kind)
		if err != nil {
			return removed, err
		}
		for _, id := range ids {
			err := k.exists(ctx, id)
			if err == nil {
				continue
			}
			if !errors.Is(err, apperr.ErrNotFound) {
				return removed, err
			}
			if _, err := s.favorites.Remove(ctx, k.kind, id); err != nil {
				return removed, err
			}
			s.log.Debug().Str("kind", string(k.kind)).Str("entity_id", id).Msg("removed dangling favorite")
			removed++
		}
	}

	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("favorites sweep completed")
	}
	return removed, nil
}

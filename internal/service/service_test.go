package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository/memory"
	"github.com/homelib/server/pkg/hash"
	"github.com/homelib/server/pkg/token"
)

// fixture wires every service over in-memory repositories.
type fixture struct {
	users     *memory.UserRepository
	artists   *memory.ArtistRepository
	albums    *memory.AlbumRepository
	tracks    *memory.TrackRepository
	favorites *memory.FavoritesRepository

	userService      *UserService
	artistService    *ArtistService
	albumService     *AlbumService
	trackService     *TrackService
	favoritesService *FavoritesService
	authService      *AuthService
	sweeper          *IntegritySweeper
}

func newFixture() *fixture {
	f := &fixture{
		users:     memory.NewUserRepository(),
		artists:   memory.NewArtistRepository(),
		albums:    memory.NewAlbumRepository(),
		tracks:    memory.NewTrackRepository(),
		favorites: memory.NewFavoritesRepository(),
	}

	log := zerolog.Nop()
	hasher := hash.NewHasher(bcrypt.MinCost)
	tokens := token.NewManager(&token.Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		Issuer:        "homelib-test",
	})

	f.favoritesService = NewFavoritesService(f.favorites, f.artists, f.albums, f.tracks)
	f.userService = NewUserService(f.users, hasher)
	f.artistService = NewArtistService(f.artists, f.albums, f.tracks, f.favoritesService, log)
	f.albumService = NewAlbumService(f.albums, f.artists, f.tracks, f.favoritesService, log)
	f.trackService = NewTrackService(f.tracks, f.artists, f.albums, f.favoritesService, log)
	f.authService = NewAuthService(f.users, f.userService, hasher, tokens)
	f.sweeper = NewIntegritySweeper(f.favorites, f.artists, f.albums, f.tracks, log)
	return f
}

func (f *fixture) mustCreateArtist(t *testing.T, name string, grammy bool) *domain.Artist {
	t.Helper()
	artist, err := f.artistService.Create(context.Background(), &CreateArtistInput{Name: name, Grammy: &grammy})
	require.NoError(t, err)
	return artist
}

func (f *fixture) mustCreateAlbum(t *testing.T, name string, year int, artistID *string) *domain.Album {
	t.Helper()
	album, err := f.albumService.Create(context.Background(), &CreateAlbumInput{Name: name, Year: &year, ArtistID: artistID})
	require.NoError(t, err)
	return album
}

func (f *fixture) mustCreateTrack(t *testing.T, name string, duration int, artistID, albumID *string) *domain.Track {
	t.Helper()
	track, err := f.trackService.Create(context.Background(), &CreateTrackInput{
		Name:     name,
		Duration: &duration,
		ArtistID: artistID,
		AlbumID:  albumID,
	})
	require.NoError(t, err)
	return track
}

func optValue[T any](v T) domain.Optional[T] {
	return domain.Optional[T]{Set: true, Value: v}
}

func optNull[T any]() domain.Optional[T] {
	return domain.Optional[T]{Set: true, Null: true}
}

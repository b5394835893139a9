package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/model"
)

var errBackend = errors.New("backend down")

// fakeCatalog 内存里的后端，记录每次调用
type fakeCatalog struct {
	mu    sync.Mutex
	calls []string

	movies   []model.Movie
	featured []model.Movie
	popular  []model.Movie
	recent   []model.Movie
	genres   []model.Genre
	settings *model.Settings

	// fail 中的调用名返回 errBackend
	fail map[string]bool

	tokens   []string
	uploaded []byte
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		movies: []model.Movie{
			{ID: "1", Title: "The Matrix", Genre: "Sci-Fi"},
			{ID: "2", Title: "Heat", Genre: "Crime"},
			{ID: "3", Title: "Matrix Reloaded", Genre: "Sci-Fi"},
		},
		featured: []model.Movie{{ID: "1", Title: "The Matrix", Featured: true}},
		popular:  []model.Movie{{ID: "2", Title: "Heat"}},
		recent:   []model.Movie{{ID: "3", Title: "Matrix Reloaded"}},
		genres:   []model.Genre{{Name: "Sci-Fi", Count: 2}, {Name: "Crime", Count: 1}},
		settings: &model.Settings{SiteName: "Ultra Cinema", ThemeColor: "#000000", AccentColor: "#ff0000", FeaturedMoviesCount: 6},
		fail:     map[string]bool{},
	}
}

func (f *fakeCatalog) record(name, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if token != "" {
		f.tokens = append(f.tokens, token)
	}
	if f.fail[name] {
		return errBackend
	}
	return nil
}

func (f *fakeCatalog) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeCatalog) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCatalog) ListMovies(ctx context.Context, q catalog.ListQuery) ([]model.Movie, error) {
	name := "list"
	if q.FeaturedOnly && q.Search == "" && q.Genre == "" {
		name = "featured"
	}
	if err := f.record(name, ""); err != nil {
		return nil, err
	}
	if name == "featured" {
		return append([]model.Movie(nil), f.featured...), nil
	}

	out := []model.Movie{}
	for _, m := range f.movies {
		switch {
		case q.Search != "":
			if len(FilterLocal([]model.Movie{m}, q.Search)) == 1 {
				out = append(out, m)
			}
		case q.Genre != "" && q.Genre != model.GenreAll:
			if m.Genre == q.Genre {
				out = append(out, m)
			}
		default:
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCatalog) PopularMovies(ctx context.Context) ([]model.Movie, error) {
	if err := f.record("popular", ""); err != nil {
		return nil, err
	}
	return append([]model.Movie(nil), f.popular...), nil
}

func (f *fakeCatalog) RecentMovies(ctx context.Context) ([]model.Movie, error) {
	if err := f.record("recent", ""); err != nil {
		return nil, err
	}
	return append([]model.Movie(nil), f.recent...), nil
}

func (f *fakeCatalog) Genres(ctx context.Context) ([]model.Genre, error) {
	if err := f.record("genres", ""); err != nil {
		return nil, err
	}
	return append([]model.Genre(nil), f.genres...), nil
}

func (f *fakeCatalog) Settings(ctx context.Context) (*model.Settings, error) {
	if err := f.record("settings", ""); err != nil {
		return nil, err
	}
	s := *f.settings
	return &s, nil
}

func (f *fakeCatalog) UpdateSettings(ctx context.Context, token string, s model.Settings) (*model.Settings, error) {
	if err := f.record("update_settings", token); err != nil {
		return nil, err
	}
	f.settings = &s
	out := s
	return &out, nil
}

func (f *fakeCatalog) CreateMovie(ctx context.Context, token string, m model.Movie) (*model.Movie, error) {
	if err := f.record("create", token); err != nil {
		return nil, err
	}
	m.ID = "new"
	f.movies = append(f.movies, m)
	return &m, nil
}

func (f *fakeCatalog) UpdateMovie(ctx context.Context, token, id string, m model.Movie) (*model.Movie, error) {
	if err := f.record("update", token); err != nil {
		return nil, err
	}
	m.ID = id
	return &m, nil
}

func (f *fakeCatalog) DeleteMovie(ctx context.Context, token, id string) error {
	return f.record("delete", token)
}

func (f *fakeCatalog) Upload(ctx context.Context, token, id string, slot catalog.Slot, filename string, content io.Reader) (*model.Movie, error) {
	if err := f.record("upload", token); err != nil {
		return nil, err
	}
	b, _ := io.ReadAll(content)
	f.uploaded = b
	m := model.Movie{ID: id}
	switch slot {
	case catalog.SlotVideo:
		m.VideoFile = filename
	case catalog.SlotCover:
		m.CoverFile = filename
	case catalog.SlotBackground:
		m.BackgroundFile = filename
	}
	return &m, nil
}

var _ Catalog = (*fakeCatalog)(nil)

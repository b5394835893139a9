package service

import (
	"context"
	"io"

	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/model"
)

// Catalog 控制器依赖的后端能力，由 *catalog.Client 实现
type Catalog interface {
	ListMovies(ctx context.Context, q catalog.ListQuery) ([]model.Movie, error)
	PopularMovies(ctx context.Context) ([]model.Movie, error)
	RecentMovies(ctx context.Context) ([]model.Movie, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Settings(ctx context.Context) (*model.Settings, error)

	UpdateSettings(ctx context.Context, token string, s model.Settings) (*model.Settings, error)
	CreateMovie(ctx context.Context, token string, m model.Movie) (*model.Movie, error)
	UpdateMovie(ctx context.Context, token, id string, m model.Movie) (*model.Movie, error)
	DeleteMovie(ctx context.Context, token, id string) error
	Upload(ctx context.Context, token, id string, slot catalog.Slot, filename string, content io.Reader) (*model.Movie, error)
}

var _ Catalog = (*catalog.Client)(nil)

// RefreshFunc 写操作成功后的整表重新拉取
type RefreshFunc func(ctx context.Context)

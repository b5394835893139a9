package service

import (
	"context"
	"strings"

	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Listing 列表页的视图状态：持有拉取到的各个列表和当前的搜索/类型筛选。
//
// 读取失败只记日志，对应的槽位保持原值（旧数据但自洽），从不向用户报错。
type Listing struct {
	catalog     Catalog
	logger      *zap.Logger
	localFilter bool

	Movies   []model.Movie
	Featured []model.Movie
	Popular  []model.Movie
	Recent   []model.Movie
	Genres   []model.Genre
	Settings *model.Settings

	// Query 与 Genre 互斥
	Query string
	Genre string
}

// NewListing 创建视图状态。localFilter 打开时搜索结果再做一次本地子串过滤。
func NewListing(cat Catalog, logger *zap.Logger, localFilter bool) *Listing {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listing{
		catalog:     cat,
		logger:      logger.Named("listing"),
		localFilter: localFilter,
		Movies:      []model.Movie{},
		Featured:    []model.Movie{},
		Popular:     []model.Movie{},
		Recent:      []model.Movie{},
		Genres:      []model.Genre{},
	}
}

// Apply 设置页面进入时的搜索词/类型；有搜索词时忽略类型
func (l *Listing) Apply(query, genre string) {
	l.Query = strings.TrimSpace(query)
	l.Genre = ""
	if l.Query == "" && genre != model.GenreAll {
		l.Genre = strings.TrimSpace(genre)
	}
}

// Load 并发拉取全部列表：影片、推荐、热门、最新、类型、站点设置。
// 各请求互不依赖，谁先返回都可以，每个只写自己的槽位。
func (l *Listing) Load(ctx context.Context) {
	var (
		movies, featured, popular, recent []model.Movie
		genres                            []model.Genre
		settings                          *model.Settings
		g                                 errgroup.Group
	)

	g.Go(func() error {
		movies = l.fetch("movies", func() ([]model.Movie, error) {
			return l.catalog.ListMovies(ctx, l.query())
		})
		return nil
	})
	g.Go(func() error {
		featured = l.fetch("featured", func() ([]model.Movie, error) {
			return l.catalog.ListMovies(ctx, catalog.ListQuery{FeaturedOnly: true})
		})
		return nil
	})
	g.Go(func() error {
		popular = l.fetch("popular", func() ([]model.Movie, error) {
			return l.catalog.PopularMovies(ctx)
		})
		return nil
	})
	g.Go(func() error {
		recent = l.fetch("recent", func() ([]model.Movie, error) {
			return l.catalog.RecentMovies(ctx)
		})
		return nil
	})
	g.Go(func() error {
		res, err := l.catalog.Genres(ctx)
		if err != nil {
			l.logger.Warn("拉取类型失败", zap.Error(err))
			return nil
		}
		genres = res
		return nil
	})
	g.Go(func() error {
		res, err := l.catalog.Settings(ctx)
		if err != nil {
			l.logger.Warn("拉取站点设置失败", zap.Error(err))
			return nil
		}
		settings = res
		return nil
	})
	_ = g.Wait()

	if movies != nil {
		l.Movies = movies
	}
	if featured != nil {
		l.Featured = featured
	}
	if popular != nil {
		l.Popular = popular
	}
	if recent != nil {
		l.Recent = recent
	}
	if genres != nil {
		l.Genres = genres
	}
	if settings != nil {
		l.Settings = settings
	}
}

// Reload 只重新拉取主列表（按当前搜索/类型）
func (l *Listing) Reload(ctx context.Context) {
	if movies := l.fetch("movies", func() ([]model.Movie, error) {
		return l.catalog.ListMovies(ctx, l.query())
	}); movies != nil {
		l.Movies = movies
	}
}

// Search 搜索；空搜索词回到未筛选的完整列表。会清除类型筛选。
func (l *Listing) Search(ctx context.Context, query string) {
	l.Query = strings.TrimSpace(query)
	l.Genre = ""
	l.Reload(ctx)
}

// FilterGenre 按类型筛选；"all" 或空值回到完整列表。会清除搜索词。
func (l *Listing) FilterGenre(ctx context.Context, genre string) {
	l.Query = ""
	l.Genre = strings.TrimSpace(genre)
	if l.Genre == model.GenreAll {
		l.Genre = ""
	}
	l.Reload(ctx)
}

// Visible 页面上实际展示的列表
func (l *Listing) Visible() []model.Movie {
	if !l.localFilter || l.Query == "" {
		return l.Movies
	}
	return FilterLocal(l.Movies, l.Query)
}

// Hero 横幅影片（第一部推荐）
func (l *Listing) Hero() *model.Movie {
	if len(l.Featured) == 0 {
		return nil
	}
	return &l.Featured[0]
}

// FeaturedRest 横幅之外的推荐影片，数量受站点设置限制
func (l *Listing) FeaturedRest() []model.Movie {
	if len(l.Featured) <= 1 {
		return nil
	}
	rest := l.Featured[1:]
	if l.Settings != nil && l.Settings.FeaturedMoviesCount > 0 && len(rest) > l.Settings.FeaturedMoviesCount {
		rest = rest[:l.Settings.FeaturedMoviesCount]
	}
	return rest
}

// Find 在已拉取的列表里按 ID 找影片
func (l *Listing) Find(id string) *model.Movie {
	if id == "" {
		return nil
	}
	for _, list := range [][]model.Movie{l.Movies, l.Featured, l.Popular, l.Recent} {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
	}
	return nil
}

// Filtered 是否处于搜索或类型筛选状态
func (l *Listing) Filtered() bool {
	return l.Query != "" || l.Genre != ""
}

func (l *Listing) query() catalog.ListQuery {
	return catalog.ListQuery{Search: l.Query, Genre: l.Genre}
}

func (l *Listing) fetch(slot string, fn func() ([]model.Movie, error)) []model.Movie {
	movies, err := fn()
	if err != nil {
		l.logger.Warn("拉取列表失败", zap.String("slot", slot), zap.Error(err))
		return nil
	}
	if movies == nil {
		movies = []model.Movie{}
	}
	return movies
}

// FilterLocal 标题或类型包含关键词（不区分大小写）
func FilterLocal(movies []model.Movie, query string) []model.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return movies
	}
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) || strings.Contains(strings.ToLower(m.Genre), q) {
			out = append(out, m)
		}
	}
	return out
}

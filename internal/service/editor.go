package service

import (
	"context"
	"strings"
	"time"

	"github.com/user/sinema/internal/model"
	"go.uber.org/zap"
)

// MovieForm 影片编辑表单。校验只限于页面输入约束：必填项和年份/评分范围。
type MovieForm struct {
	ID            string  `form:"id"`
	Title         string  `form:"title" binding:"required"`
	Description   string  `form:"description" binding:"required"`
	Genre         string  `form:"genre" binding:"required"`
	ReleaseYear   int     `form:"release_year" binding:"gte=1888,lte=2100"`
	Rating        float64 `form:"rating" binding:"gte=0,lte=10"`
	Duration      int     `form:"duration" binding:"gte=0,lte=1440"`
	Director      string  `form:"director"`
	Cast          string  `form:"cast"`
	Country       string  `form:"country"`
	Language      string  `form:"language"`
	AgeRating     string  `form:"age_rating"`
	Featured      bool    `form:"featured"`
	Premium       bool    `form:"premium"`
	VideoURL      string  `form:"video_url"`
	CoverURL      string  `form:"cover_url"`
	BackgroundURL string  `form:"background_url"`
	TrailerURL    string  `form:"trailer_url"`
	IMDbURL       string  `form:"imdb_url"`
}

// DefaultMovieForm 新建影片时的表单初值
func DefaultMovieForm(now time.Time) MovieForm {
	return MovieForm{
		ReleaseYear: now.Year(),
		Rating:      5.0,
		AgeRating:   model.DefaultAgeRating,
	}
}

// MovieFormFrom 用已有记录填表，空的可选字段替换为缺省值
func MovieFormFrom(m model.Movie, now time.Time) MovieForm {
	def := DefaultMovieForm(now)
	f := MovieForm{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Genre:         m.Genre,
		ReleaseYear:   m.ReleaseYear,
		Rating:        m.Rating,
		Duration:      m.DurationMinutes(),
		Director:      m.Director,
		Cast:          m.Cast,
		Country:       m.Country,
		Language:      m.Language,
		AgeRating:     m.AgeRating,
		Featured:      m.Featured,
		Premium:       m.Premium,
		VideoURL:      m.VideoURL,
		CoverURL:      m.CoverURL,
		BackgroundURL: m.BackgroundURL,
		TrailerURL:    m.TrailerURL,
		IMDbURL:       m.IMDbURL,
	}
	if f.ReleaseYear == 0 {
		f.ReleaseYear = def.ReleaseYear
	}
	if f.AgeRating == "" {
		f.AgeRating = def.AgeRating
	}
	return f
}

// Movie 表单转为提交给后端的记录
func (f MovieForm) Movie() model.Movie {
	m := model.Movie{
		ID:            strings.TrimSpace(f.ID),
		Title:         f.Title,
		Description:   f.Description,
		Genre:         f.Genre,
		ReleaseYear:   f.ReleaseYear,
		Rating:        f.Rating,
		Director:      f.Director,
		Cast:          f.Cast,
		Country:       f.Country,
		Language:      f.Language,
		AgeRating:     f.AgeRating,
		Featured:      f.Featured,
		Premium:       f.Premium,
		VideoURL:      f.VideoURL,
		CoverURL:      f.CoverURL,
		BackgroundURL: f.BackgroundURL,
		TrailerURL:    f.TrailerURL,
		IMDbURL:       f.IMDbURL,
	}
	if f.Duration > 0 {
		d := f.Duration
		m.Duration = &d
	}
	model.NormalizeMovie(&m)
	return m
}

// MovieEditor 新建/编辑对话框的状态
type MovieEditor struct {
	catalog Catalog
	logger  *zap.Logger
	now     func() time.Time

	// Refresh 保存成功后调用，用于整表重新拉取
	Refresh RefreshFunc

	Open      bool
	EditingID string
	Form      MovieForm
	Notice    string
}

// NewMovieEditor 创建对话框状态（关闭，表单为缺省值）
func NewMovieEditor(cat Catalog, logger *zap.Logger) *MovieEditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &MovieEditor{
		catalog: cat,
		logger:  logger.Named("editor"),
		now:     time.Now,
	}
	e.reset()
	return e
}

// New 打开空白表单
func (e *MovieEditor) New() {
	e.reset()
	e.Open = true
}

// Edit 用已有记录打开表单
func (e *MovieEditor) Edit(m model.Movie) {
	e.Notice = ""
	e.EditingID = m.ID
	e.Form = MovieFormFrom(m, e.now())
	e.Open = true
}

// Cancel 关闭并丢弃编辑中的内容
func (e *MovieEditor) Cancel() {
	e.reset()
}

// Reject 本地校验失败：保持打开，保留用户输入
func (e *MovieEditor) Reject(form MovieForm, notice string) {
	e.Open = true
	e.Form = form
	e.EditingID = strings.TrimSpace(form.ID)
	e.Notice = notice
}

// Submit 有编辑目标时更新，否则新建。
// 成功：关闭对话框、表单恢复缺省值、触发整表刷新；
// 失败：对话框保持打开，表单原样保留，错误原样返回供页面提示。
func (e *MovieEditor) Submit(ctx context.Context, token string, form MovieForm) (*model.Movie, error) {
	e.Open = true
	e.Form = form
	e.EditingID = strings.TrimSpace(form.ID)

	var (
		saved *model.Movie
		err   error
	)
	if e.EditingID != "" {
		saved, err = e.catalog.UpdateMovie(ctx, token, e.EditingID, form.Movie())
	} else {
		saved, err = e.catalog.CreateMovie(ctx, token, form.Movie())
	}
	if err != nil {
		e.logger.Warn("保存影片失败", zap.String("id", e.EditingID), zap.Error(err))
		e.Notice = err.Error()
		return nil, err
	}

	e.reset()
	if e.Refresh != nil {
		e.Refresh(ctx)
	}
	return saved, nil
}

func (e *MovieEditor) reset() {
	e.Open = false
	e.EditingID = ""
	e.Form = DefaultMovieForm(e.now())
	e.Notice = ""
}

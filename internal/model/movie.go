package model

import (
	"strings"
	"time"
)

// Movie 影片记录
//
// 媒体字段互相独立：每个槽位（正片/封面/背景）可以有上传文件引用，也可以有外部 URL。
type Movie struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
	Duration    *int    `json:"duration,omitempty"` // 分钟
	Director    string  `json:"director,omitempty"`
	Cast        string  `json:"cast,omitempty"`
	Country     string  `json:"country,omitempty"`
	Language    string  `json:"language,omitempty"`
	Featured    bool    `json:"featured"`
	Premium     bool    `json:"premium"`
	AgeRating   string  `json:"age_rating,omitempty"`

	VideoFile      string `json:"video_file,omitempty"`
	VideoURL       string `json:"video_url,omitempty"`
	CoverFile      string `json:"cover_file,omitempty"`
	CoverURL       string `json:"cover_url,omitempty"`
	BackgroundFile string `json:"background_file,omitempty"`
	BackgroundURL  string `json:"background_url,omitempty"`
	TrailerURL     string `json:"trailer_url,omitempty"`
	IMDbURL        string `json:"imdb_url,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Genre 类型聚合（只读，服务端统计）
type Genre struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// 评分范围
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// DefaultAgeRating 缺省分级
const DefaultAgeRating = "G"

// DurationMinutes 时长（未知时为 0）
func (m *Movie) DurationMinutes() int {
	if m.Duration == nil {
		return 0
	}
	return *m.Duration
}

// NormalizeMovie 在接口边界统一整理记录：去空白、补缺省值、评分夹到合法区间。
// 所有从后端解码出来的记录都必须经过这里。
func NormalizeMovie(m *Movie) {
	if m == nil {
		return
	}
	for _, s := range []*string{
		&m.ID, &m.Title, &m.Description, &m.Genre, &m.Director, &m.Cast,
		&m.Country, &m.Language, &m.AgeRating,
		&m.VideoFile, &m.VideoURL, &m.CoverFile, &m.CoverURL,
		&m.BackgroundFile, &m.BackgroundURL, &m.TrailerURL, &m.IMDbURL,
	} {
		*s = strings.TrimSpace(*s)
	}

	if m.Rating < MinRating {
		m.Rating = MinRating
	}
	if m.Rating > MaxRating {
		m.Rating = MaxRating
	}
	if m.AgeRating == "" {
		m.AgeRating = DefaultAgeRating
	}
	if m.Duration != nil && *m.Duration <= 0 {
		m.Duration = nil
	}
}

// NormalizeMovies 批量整理，nil 切片返回空切片
func NormalizeMovies(movies []Movie) []Movie {
	if movies == nil {
		return []Movie{}
	}
	for i := range movies {
		NormalizeMovie(&movies[i])
	}
	return movies
}

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/user/sinema/internal/model"
	"github.com/user/sinema/internal/utils"
	"go.uber.org/zap"
)

// ListQuery 影片列表查询，三个条件互斥，按 Search > Genre > FeaturedOnly 取第一个
type ListQuery struct {
	Search       string
	Genre        string
	FeaturedOnly bool
}

// FileStream 上传文件的原始字节流，调用方负责关闭 Body
type FileStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// moviePayload 新建/更新影片的请求体。
// 可编辑字段不带 omitempty：后端更新时会忽略缺失的键，清空字段必须显式发送 ""。
// 上传文件引用由上传接口维护，不随表单提交。
type moviePayload struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Genre         string  `json:"genre"`
	ReleaseYear   int     `json:"release_year"`
	Rating        float64 `json:"rating"`
	Duration      *int    `json:"duration"`
	Director      string  `json:"director"`
	Cast          string  `json:"cast"`
	Country       string  `json:"country"`
	Language      string  `json:"language"`
	Featured      bool    `json:"featured"`
	Premium       bool    `json:"premium"`
	AgeRating     string  `json:"age_rating"`
	VideoURL      string  `json:"video_url"`
	CoverURL      string  `json:"cover_url"`
	BackgroundURL string  `json:"background_url"`
	TrailerURL    string  `json:"trailer_url"`
	IMDbURL       string  `json:"imdb_url"`
}

func newMoviePayload(m model.Movie) moviePayload {
	return moviePayload{
		Title:         m.Title,
		Description:   m.Description,
		Genre:         m.Genre,
		ReleaseYear:   m.ReleaseYear,
		Rating:        m.Rating,
		Duration:      m.Duration,
		Director:      m.Director,
		Cast:          m.Cast,
		Country:       m.Country,
		Language:      m.Language,
		Featured:      m.Featured,
		Premium:       m.Premium,
		AgeRating:     m.AgeRating,
		VideoURL:      m.VideoURL,
		CoverURL:      m.CoverURL,
		BackgroundURL: m.BackgroundURL,
		TrailerURL:    m.TrailerURL,
		IMDbURL:       m.IMDbURL,
	}
}

// Client 目录后端客户端：每个接口一个方法，直接透传，不重试、不去重。
// 令牌由调用方逐次传入并只挂在当次请求上，客户端本身不保存任何凭据。
type Client struct {
	baseURL    string
	surface    *Surface
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient 创建客户端。timeout 为 0 表示不设超时。
func NewClient(baseURL string, surface *Surface, timeout time.Duration, logger *zap.Logger) *Client {
	if surface == nil {
		surface = English
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		surface:    surface,
		httpClient: utils.NewHTTPClient(timeout),
		logger:     logger.Named("catalog"),
	}
}

// Surface 当前使用的接口命名
func (c *Client) Surface() *Surface {
	return c.surface
}

// ListMovies GET /movies[?search=|genre=|featuredOnly=true]
func (c *Client) ListMovies(ctx context.Context, q ListQuery) ([]model.Movie, error) {
	params := url.Values{}
	switch {
	case strings.TrimSpace(q.Search) != "":
		params.Set(c.surface.SearchParam, strings.TrimSpace(q.Search))
	case q.Genre != "" && q.Genre != model.GenreAll:
		params.Set(c.surface.GenreParam, q.Genre)
	case q.FeaturedOnly:
		params.Set(c.surface.FeaturedParam, "true")
	}

	path := c.surface.Movies
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return c.listMovies(ctx, path)
}

// PopularMovies GET /popular-movies
func (c *Client) PopularMovies(ctx context.Context) ([]model.Movie, error) {
	return c.listMovies(ctx, c.surface.PopularMovies)
}

// RecentMovies GET /recent-movies
func (c *Client) RecentMovies(ctx context.Context) ([]model.Movie, error) {
	return c.listMovies(ctx, c.surface.RecentMovies)
}

func (c *Client) listMovies(ctx context.Context, path string) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &movies); err != nil {
		return nil, err
	}
	return model.NormalizeMovies(movies), nil
}

// Genres GET /genres
func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := c.doJSON(ctx, http.MethodGet, c.surface.Genres, "", nil, &genres); err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []model.Genre{}
	}
	return genres, nil
}

// Settings GET /settings
func (c *Client) Settings(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	if err := c.doJSON(ctx, http.MethodGet, c.surface.Settings, "", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSettings PUT /admin/settings
func (c *Client) UpdateSettings(ctx context.Context, token string, s model.Settings) (*model.Settings, error) {
	var updated model.Settings
	if err := c.doJSON(ctx, http.MethodPut, c.surface.AdminSettings, token, s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CreateMovie POST /admin/movies
func (c *Client) CreateMovie(ctx context.Context, token string, m model.Movie) (*model.Movie, error) {
	var created model.Movie
	if err := c.doJSON(ctx, http.MethodPost, c.surface.AdminMovies, token, newMoviePayload(m), &created); err != nil {
		return nil, err
	}
	model.NormalizeMovie(&created)
	return &created, nil
}

// UpdateMovie PUT /admin/movies/{id}
func (c *Client) UpdateMovie(ctx context.Context, token, id string, m model.Movie) (*model.Movie, error) {
	var updated model.Movie
	path := c.surface.AdminMovies + "/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, newMoviePayload(m), &updated); err != nil {
		return nil, err
	}
	model.NormalizeMovie(&updated)
	return &updated, nil
}

// DeleteMovie DELETE /admin/movies/{id}
func (c *Client) DeleteMovie(ctx context.Context, token, id string) error {
	path := c.surface.AdminMovies + "/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

// Upload POST /admin/movies/{id}/upload-{slot}（multipart），返回更新后的记录。
// 后端只回执消息时返回的记录 ID 为空。
func (c *Client) Upload(ctx context.Context, token, id string, slot Slot, filename string, content io.Reader) (*model.Movie, error) {
	field, ok := c.surface.UploadFields[slot]
	if !ok {
		return nil, fmt.Errorf("未知的媒体槽位: %q", slot)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	writeErr := make(chan error, 1)
	go func() {
		err := writeMultipart(mw, field, filename, content)
		pw.CloseWithError(err)
		writeErr <- err
	}()

	path := c.surface.UploadPath(url.PathEscape(id), slot)
	req, err := c.newRequest(ctx, http.MethodPost, path, token, pr, mw.FormDataContentType())
	if err != nil {
		pr.CloseWithError(err)
		<-writeErr
		return nil, err
	}

	var updated model.Movie
	err = c.do(req, path, &updated)
	// 请求提前结束时解除写端阻塞
	pr.CloseWithError(io.ErrClosedPipe)
	if werr := <-writeErr; werr != nil && err != nil && !errors.Is(werr, io.ErrClosedPipe) {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	model.NormalizeMovie(&updated)
	return &updated, nil
}

// writeMultipart 把文件写成单个 multipart 字段，边读边写
func writeMultipart(mw *multipart.Writer, field, filename string, content io.Reader) error {
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("创建表单字段失败: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("写入上传内容失败: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("关闭表单失败: %w", err)
	}
	return nil
}

// OpenFile GET /files/{reference}，返回原始字节流
func (c *Client) OpenFile(ctx context.Context, ref string) (*FileStream, error) {
	path := c.surface.Files + "/" + url.PathEscape(ref)
	req, err := c.newRequest(ctx, http.MethodGet, path, "", nil, "")
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 %s 失败: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, newAPIError(http.MethodGet, path, resp.StatusCode, body)
	}
	return &FileStream{
		Body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

// Login POST /admin/login，用密码换取 bearer 令牌
func (c *Client) Login(ctx context.Context, password string) (*model.LoginToken, error) {
	payload := map[string]string{"password": password}
	var tok model.LoginToken
	if err := c.doJSON(ctx, http.MethodPost, c.surface.Login, "", payload, &tok); err != nil {
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("登录响应缺少令牌")
	}
	return &tok, nil
}

// newRequest 构造请求；token 非空时只给这一次请求加 Authorization 头
func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, payload, target interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := c.surface.encode(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, token, body, contentType)
	if err != nil {
		return err
	}
	return c.do(req, path, target)
}

func (c *Client) do(req *http.Request, path string, target interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求 %s %s 失败: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	c.logger.Debug("catalog request",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(req.Method, path, resp.StatusCode, body)
	}
	if target == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return c.surface.decode(body, target)
}

package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/config"
	"github.com/user/sinema/internal/handler"
	"github.com/user/sinema/internal/model"
	"github.com/user/sinema/internal/session"
	"github.com/user/sinema/internal/utils"
)

const (
	adminPassword = "secret"
	adminToken    = "tok-123"
)

// backend 内存版目录后端，按英文接口实现
type backend struct {
	mu       sync.Mutex
	movies   []model.Movie
	settings model.Settings
	writes   []string
	uploads  int

	failWrites bool
}

func newBackend() *backend {
	return &backend{
		movies: []model.Movie{
			{ID: "1", Title: "The Matrix", Description: "Neo", Genre: "Sci-Fi", ReleaseYear: 1999, Rating: 8.7, Featured: true, VideoURL: "https://www.youtube.com/watch?v=m8e-FF8MsqU"},
			{ID: "2", Title: "Heat", Description: "LA", Genre: "Crime", ReleaseYear: 1995, Rating: 8.3, VideoFile: "heat.mp4"},
			{ID: "3", Title: "Amélie", Description: "Paris", Genre: "Romance", ReleaseYear: 2001, Rating: 8.3},
		},
		settings: model.Settings{ID: "s1", SiteName: "Ultra Cinema", ThemeColor: "#1a1a1a", AccentColor: "#e50914", FeaturedMoviesCount: 6},
	}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api")
	if r.Method != http.MethodGet && path != "/admin/login" {
		if r.Header.Get("Authorization") != "Bearer "+adminToken {
			respond(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
			return
		}
		b.writes = append(b.writes, r.Method+" "+path)
		if b.failWrites {
			respond(w, http.StatusInternalServerError, map[string]string{"detail": "database unavailable"})
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && path == "/movies":
		q := r.URL.Query()
		out := []model.Movie{}
		for _, m := range b.movies {
			switch {
			case q.Get("search") != "":
				if strings.Contains(strings.ToLower(m.Title), strings.ToLower(q.Get("search"))) {
					out = append(out, m)
				}
			case q.Get("genre") != "":
				if m.Genre == q.Get("genre") {
					out = append(out, m)
				}
			case q.Get("featuredOnly") == "true":
				if m.Featured {
					out = append(out, m)
				}
			default:
				out = append(out, m)
			}
		}
		respond(w, http.StatusOK, out)
	case r.Method == http.MethodGet && (path == "/popular-movies" || path == "/recent-movies"):
		respond(w, http.StatusOK, b.movies[:1])
	case r.Method == http.MethodGet && path == "/genres":
		respond(w, http.StatusOK, []model.Genre{{Name: "Sci-Fi", Count: 1}, {Name: "Crime", Count: 1}, {Name: "Romance", Count: 1}})
	case r.Method == http.MethodGet && path == "/settings":
		respond(w, http.StatusOK, b.settings)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/files/"):
		if path != "/files/heat.mp4" {
			respond(w, http.StatusNotFound, map[string]string{"detail": "File not found"})
			return
		}
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("mp4-bytes"))
	case r.Method == http.MethodPost && path == "/admin/login":
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != adminPassword {
			respond(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid password"})
			return
		}
		respond(w, http.StatusOK, model.LoginToken{AccessToken: adminToken, TokenType: "bearer"})
	case r.Method == http.MethodPost && path == "/admin/movies":
		var m model.Movie
		_ = json.NewDecoder(r.Body).Decode(&m)
		m.ID = "4"
		b.movies = append(b.movies, m)
		respond(w, http.StatusOK, m)
	case r.Method == http.MethodPut && path == "/admin/settings":
		var s model.Settings
		_ = json.NewDecoder(r.Body).Decode(&s)
		b.settings = s
		respond(w, http.StatusOK, s)
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/movies/"):
		id := strings.TrimPrefix(path, "/admin/movies/")
		for i, m := range b.movies {
			if m.ID == id {
				b.movies = append(b.movies[:i], b.movies[i+1:]...)
				respond(w, http.StatusOK, map[string]string{"message": "deleted"})
				return
			}
		}
		respond(w, http.StatusNotFound, map[string]string{"detail": "Movie not found"})
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/upload-cover"):
		b.uploads++
		respond(w, http.StatusOK, model.Movie{ID: "2", Title: "Heat", CoverFile: "cover.jpg"})
	default:
		respond(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
	}
}

func (b *backend) writeLog() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.writes...)
}

func respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// console 启动一个完整的控制台，返回不自动跟随重定向、带 cookie 的客户端
func console(t *testing.T) (*backend, *httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	be := newBackend()
	api := httptest.NewServer(be)
	t.Cleanup(api.Close)

	cfg := &config.Config{
		Env:         "test",
		AppSecret:   "test-secret",
		SiteName:    "Ultra Cinema",
		CatalogURL:  api.URL + "/api",
		APILocale:   "en",
		UILocale:    "en",
		UploadMaxMB: 8,
	}
	client := catalog.NewClient(cfg.CatalogURL, catalog.SurfaceFor(cfg.APILocale), 0, nil)
	h := handler.NewHandler(cfg, client, nil)

	r := gin.New()
	r.Use(sessions.Sessions("sinema_session", cookie.NewStore(utils.SessionKeys(cfg.AppSecret))))
	r.Use(session.Inject())
	r.HTMLRender = LoadTemplates("../../web/templates", h.I18n)
	RegisterRoutes(r, h)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	hc := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return be, srv, hc
}

func get(t *testing.T, hc *http.Client, u string) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := hc.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return resp, doc
}

func postForm(t *testing.T, hc *http.Client, u string, form url.Values) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := hc.PostForm(u, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return resp, doc
}

func login(t *testing.T, hc *http.Client, base string) {
	t.Helper()
	resp, _ := postForm(t, hc, base+"/admin/login", url.Values{"password": {adminPassword}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, handler.DashboardPath, resp.Header.Get("Location"))
}

func TestHealth(t *testing.T) {
	_, srv, hc := console(t)
	resp, err := hc.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
}

func TestHomeRendersSections(t *testing.T) {
	_, srv, hc := console(t)

	resp, doc := get(t, hc, srv.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "The Matrix", strings.TrimSpace(doc.Find(".hero h1").Text()))
	assert.Equal(t, 3, doc.Find("#movies .card").Length())
	assert.Equal(t, 4, doc.Find(".genres .chip").Length())
	assert.Contains(t, doc.Find("title").Text(), "Ultra Cinema")
}

func TestHomeSearchHidesHero(t *testing.T) {
	_, srv, hc := console(t)

	_, doc := get(t, hc, srv.URL+"/?q=heat")

	assert.Equal(t, 0, doc.Find(".hero").Length())
	assert.Equal(t, 1, doc.Find("#movies .card").Length())
	assert.Contains(t, doc.Find("#movies h2").Text(), `Search results for "heat"`)
}

func TestHomeGenreFilter(t *testing.T) {
	_, srv, hc := console(t)

	_, doc := get(t, hc, srv.URL+"/?genre=Romance")
	assert.Equal(t, 1, doc.Find("#movies .card").Length())

	_, doc = get(t, hc, srv.URL+"/?genre=all")
	assert.Equal(t, 3, doc.Find("#movies .card").Length())
}

func TestHomePlayer(t *testing.T) {
	_, srv, hc := console(t)

	_, doc := get(t, hc, srv.URL+"/?play=1")
	src, ok := doc.Find(".player iframe").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/embed/m8e-FF8MsqU?autoplay=1", src)

	_, doc = get(t, hc, srv.URL+"/?play=2")
	src, ok = doc.Find(".player video").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "/media/heat.mp4", src)

	_, doc = get(t, hc, srv.URL+"/?play=3")
	assert.Equal(t, 1, doc.Find(".player .unavailable").Length())
}

func TestMediaProxy(t *testing.T) {
	_, srv, hc := console(t)

	resp, err := hc.Get(srv.URL + "/media/heat.mp4")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "video/mp4", resp.Header.Get("Content-Type"))
	assert.Equal(t, "mp4-bytes", string(body))

	resp, err = hc.Get(srv.URL + "/media/missing.mp4")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRequiresSession(t *testing.T) {
	_, srv, hc := console(t)

	resp, err := hc.Get(srv.URL + "/admin/dashboard?tab=settings")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin?redirect=%2Fadmin%2Fdashboard%3Ftab%3Dsettings", resp.Header.Get("Location"))
}

func TestLoginAlwaysLandsOnDashboard(t *testing.T) {
	_, srv, hc := console(t)

	_, doc := get(t, hc, srv.URL+"/admin?redirect=%2Fadmin%2Fdashboard%3Ftab%3Dsettings")
	carried, _ := doc.Find(`input[name="redirect"]`).Attr("value")
	assert.Equal(t, "/admin/dashboard?tab=settings", carried)

	resp, _ := postForm(t, hc, srv.URL+"/admin/login", url.Values{
		"password": {adminPassword},
		"redirect": {carried},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, handler.DashboardPath, resp.Header.Get("Location"))
}

func TestLoginFailureShowsError(t *testing.T) {
	_, srv, hc := console(t)

	resp, doc := postForm(t, hc, srv.URL+"/admin/login", url.Values{"password": {"wrong"}})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Invalid admin password", strings.TrimSpace(doc.Find(".alert").Text()))

	resp, err := hc.Get(srv.URL + "/admin/dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestLoginLogoutCycle(t *testing.T) {
	_, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, doc := get(t, hc, srv.URL+"/admin/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, doc.Find("table.movies tbody tr").Length())

	// 已登录访问登录页直接进后台
	resp, err := hc.Get(srv.URL + "/admin")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, handler.DashboardPath, resp.Header.Get("Location"))

	resp, _ = postForm(t, hc, srv.URL+"/admin/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, err = hc.Get(srv.URL + "/admin/dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/admin?redirect="))
}

func TestDashboardEditAndConfirmDialogs(t *testing.T) {
	_, srv, hc := console(t)
	login(t, hc, srv.URL)

	_, doc := get(t, hc, srv.URL+"/admin/dashboard?edit=2")
	form := doc.Find(".movie-form")
	require.Equal(t, 1, form.Length())
	id, _ := form.Find(`input[name="id"]`).Attr("value")
	assert.Equal(t, "2", id)
	title, _ := form.Find(`input[name="title"]`).Attr("value")
	assert.Equal(t, "Heat", title)
	assert.Equal(t, 3, doc.Find("form.dropzone").Length())

	_, doc = get(t, hc, srv.URL+"/admin/dashboard?new=1")
	id, _ = doc.Find(`.movie-form input[name="id"]`).Attr("value")
	assert.Empty(t, id)
	assert.Equal(t, 1, doc.Find(".uploads .hint").Length())

	_, doc = get(t, hc, srv.URL+"/admin/dashboard?confirm=3")
	action, ok := doc.Find(`[role="alertdialog"] form`).Attr("action")
	require.True(t, ok)
	assert.Equal(t, "/admin/movies/3/delete", action)
}

func movieForm(title string) url.Values {
	return url.Values{
		"title":        {title},
		"description":  {"A thief who steals secrets"},
		"genre":        {"Sci-Fi"},
		"release_year": {"2010"},
		"rating":       {"8.8"},
		"duration":     {"148"},
		"age_rating":   {"PG-13"},
		"featured":     {"true"},
	}
}

func TestCreateMovieRedirectsWithNotice(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, _ := postForm(t, hc, srv.URL+"/admin/movies", movieForm("Inception"))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, handler.DashboardPath, resp.Header.Get("Location"))
	assert.Equal(t, []string{"POST /admin/movies"}, be.writeLog())

	_, doc := get(t, hc, srv.URL+handler.DashboardPath)
	assert.Equal(t, "Movie saved", strings.TrimSpace(doc.Find(".notice").Text()))
	assert.Equal(t, 4, doc.Find("table.movies tbody tr").Length())
	assert.Equal(t, 0, doc.Find(".movie-form").Length())

	// 一次性提示只显示一次
	_, doc = get(t, hc, srv.URL+handler.DashboardPath)
	assert.Equal(t, 0, doc.Find(".notice").Length())
}

func TestCreateMovieFailureKeepsDialog(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)
	be.mu.Lock()
	be.failWrites = true
	be.mu.Unlock()

	resp, doc := postForm(t, hc, srv.URL+"/admin/movies", movieForm("Inception"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, doc.Find(".dialog .alert").Text(), "database unavailable")
	title, _ := doc.Find(`.movie-form input[name="title"]`).Attr("value")
	assert.Equal(t, "Inception", title)
	_, checked := doc.Find(`.movie-form input[name="featured"]`).Attr("checked")
	assert.True(t, checked)
}

func TestCreateMovieValidation(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)

	form := movieForm("")
	form.Set("release_year", "1700")
	resp, doc := postForm(t, hc, srv.URL+"/admin/movies", form)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	alert := doc.Find(".dialog .alert").Text()
	assert.Contains(t, alert, "Title")
	assert.Contains(t, alert, "ReleaseYear")
	assert.Empty(t, be.writeLog())
}

func TestDeleteMovie(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, _ := postForm(t, hc, srv.URL+"/admin/movies/3/delete", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"DELETE /admin/movies/3"}, be.writeLog())

	_, doc := get(t, hc, srv.URL+handler.DashboardPath)
	assert.Equal(t, "Movie deleted", strings.TrimSpace(doc.Find(".notice").Text()))
	assert.Equal(t, 2, doc.Find("table.movies tbody tr").Length())
}

func uploadRequest(t *testing.T, u, movieID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("movie_id", movieID))
	part, err := mw.CreateFormFile("file", "cover.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("jpeg"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, u, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req
}

func TestUploadWithoutSavedRecord(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, err := hc.Do(uploadRequest(t, srv.URL+"/admin/uploads/cover", ""))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "Save the movie before uploading files", body.Message)
	assert.Empty(t, be.writeLog())
}

func TestUploadCover(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, err := hc.Do(uploadRequest(t, srv.URL+"/admin/uploads/cover", "2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)
	assert.Equal(t, "Cover uploaded", body.Message)
	assert.Equal(t, 1, be.uploads)
}

func TestUploadUnknownSlot(t *testing.T) {
	_, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, err := hc.Do(uploadRequest(t, srv.URL+"/admin/uploads/poster", "2"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadBackendFailureIsBadGateway(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)
	be.failWrites = true

	resp, err := hc.Do(uploadRequest(t, srv.URL+"/admin/uploads/cover", "2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, http.StatusBadGateway, body.Code)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "database unavailable")
}

func TestUploadWithExpiredSessionReturnsEnvelope(t *testing.T) {
	_, srv, hc := console(t)

	resp, err := hc.Do(uploadRequest(t, srv.URL+"/admin/uploads/cover", "2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}

func settingsForm(name string) url.Values {
	return url.Values{
		"site_name":             {name},
		"description":           {"Movies"},
		"theme_color":           {"#101010"},
		"accent_color":          {"#00ff00"},
		"featured_movies_count": {"4"},
	}
}

func TestSettingsSave(t *testing.T) {
	_, srv, hc := console(t)
	login(t, hc, srv.URL)

	resp, _ := postForm(t, hc, srv.URL+"/admin/settings", settingsForm("Mega Cinema"))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, handler.DashboardPath+"?tab=settings", resp.Header.Get("Location"))

	_, doc := get(t, hc, srv.URL+"/")
	assert.Equal(t, "Mega Cinema", strings.TrimSpace(doc.Find(".brand").Text()))
	style, _ := doc.Find("html").Attr("style")
	assert.Contains(t, style, "#00ff00")
}

func TestSettingsFailureKeepsCurrent(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)
	be.mu.Lock()
	be.failWrites = true
	be.mu.Unlock()

	resp, doc := postForm(t, hc, srv.URL+"/admin/settings", settingsForm("Mega Cinema"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ultra Cinema", strings.TrimSpace(doc.Find(".brand").Text()))
	name, _ := doc.Find(`.settings input[name="site_name"]`).Attr("value")
	assert.Equal(t, "Mega Cinema", name)
	assert.Contains(t, doc.Find(".settings .alert").Text(), "Error updating settings")
}

func TestSettingsValidation(t *testing.T) {
	be, srv, hc := console(t)
	login(t, hc, srv.URL)

	form := settingsForm("Mega Cinema")
	form.Set("accent_color", "red")
	_, doc := postForm(t, hc, srv.URL+"/admin/settings", form)

	assert.Contains(t, doc.Find(".settings .alert").Text(), "AccentColor")
	assert.Empty(t, be.writeLog())
}

func TestNotFound(t *testing.T) {
	_, srv, hc := console(t)

	resp, doc := get(t, hc, srv.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404", strings.TrimSpace(doc.Find(".not-found h1").Text()))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/nope", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")
	resp, err = hc.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", body.Message)
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, isHexColor("#fff"))
	assert.True(t, isHexColor("#E50914"))
	assert.False(t, isHexColor("red"))
	assert.False(t, isHexColor("#12345"))
	assert.False(t, isHexColor("#zzzzzz"))
}

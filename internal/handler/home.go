package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/model"
	"github.com/user/sinema/internal/service"
	"go.uber.org/zap"
)

// ==================== 公开页面 ====================

// Home 首页：横幅、推荐、热门、最新和主列表。
// ?q= 搜索，?genre= 类型筛选，?play= 打开播放器。
func (h *Handler) Home(c *gin.Context) {
	listing := service.NewListing(h.Catalog, h.Logger, h.Config.LocalFilter)
	listing.Apply(c.Query("q"), c.Query("genre"))
	listing.Load(c.Request.Context())

	data := gin.H{
		"Title":        h.title(listing.Settings, ""),
		"Listing":      listing,
		"Movies":       listing.Visible(),
		"Hero":         listing.Hero(),
		"FeaturedRest": listing.FeaturedRest(),
		"Query":        listing.Query,
		"Genre":        listing.Genre,
		"Filtered":     listing.Filtered(),
	}

	// 播放器：换片就重新解析，关闭就是不带 play 参数
	if id := c.Query("play"); id != "" {
		if m := listing.Find(id); m != nil {
			data["Selected"] = m
			data["Playback"] = service.ResolvePlayback(m, MediaURL)
			data["Trailer"] = service.ResolveLink(m.TrailerURL)
		} else {
			h.Logger.Debug("播放目标不在已加载列表中", zap.String("id", id))
		}
	}

	c.HTML(http.StatusOK, "home.html", h.RenderData(c, listing.Settings, data))
}

// Media 代理后端的上传文件，浏览器只访问本站地址
func (h *Handler) Media(c *gin.Context) {
	ref := strings.TrimPrefix(c.Param("ref"), "/")
	if ref == "" {
		h.NotFound(c)
		return
	}

	stream, err := h.Catalog.OpenFile(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.Logger.Warn("读取媒体文件失败", zap.String("ref", ref), zap.Error(err))
		c.Status(http.StatusBadGateway)
		return
	}
	defer stream.Body.Close()

	contentType := stream.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.DataFromReader(http.StatusOK, stream.ContentLength, contentType, stream.Body, nil)
}

// title 页面标题
func (h *Handler) title(settings *model.Settings, page string) string {
	name := h.Config.SiteName
	if settings != nil && settings.SiteName != "" {
		name = settings.SiteName
	}
	if page == "" {
		return name
	}
	return page + " - " + name
}

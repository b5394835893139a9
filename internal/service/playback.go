package service

import (
	"regexp"
	"strings"

	"github.com/user/sinema/internal/model"
)

// PlaybackKind 播放器选择
type PlaybackKind string

const (
	PlaybackUnresolved PlaybackKind = "unresolved"
	PlaybackYouTube    PlaybackKind = "youtube"
	PlaybackDirect     PlaybackKind = "direct"
)

// Playback 一次选片的解析结果。youtube/direct 是终态，换片才会重新解析。
type Playback struct {
	Kind    PlaybackKind
	VideoID string // youtube
	Src     string // direct
}

// 两种可接受的 YouTube 链接
var (
	reYouTubeWatch = regexp.MustCompile(`^(?:https?://)?(?:[\w-]+\.)?youtube\.com/watch\?(?:[^#]*&)?v=([\w-]+)`)
	reYouTubeShort = regexp.MustCompile(`^(?:https?://)?youtu\.be/([\w-]+)`)
)

// YouTubeID 从 URL 中提取视频 ID
func YouTubeID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, re := range []*regexp.Regexp{reYouTubeWatch, reYouTubeShort} {
		if m := re.FindStringSubmatch(raw); len(m) == 2 {
			return m[1], true
		}
	}
	return "", false
}

// ResolvePlayback 选择播放源：外部链接是 YouTube 时优先用 YouTube 播放器，
// 否则外部链接优先于上传文件。fileURL 把上传文件引用转成可访问的地址。
func ResolvePlayback(m *model.Movie, fileURL func(ref string) string) Playback {
	if m == nil {
		return Playback{Kind: PlaybackUnresolved}
	}
	if id, ok := YouTubeID(m.VideoURL); ok {
		return Playback{Kind: PlaybackYouTube, VideoID: id}
	}
	if m.VideoURL != "" {
		return Playback{Kind: PlaybackDirect, Src: m.VideoURL}
	}
	if m.VideoFile != "" && fileURL != nil {
		return Playback{Kind: PlaybackDirect, Src: fileURL(m.VideoFile)}
	}
	return Playback{Kind: PlaybackUnresolved}
}

// ResolveLink 预告片等单个外部链接的解析
func ResolveLink(raw string) Playback {
	if id, ok := YouTubeID(raw); ok {
		return Playback{Kind: PlaybackYouTube, VideoID: id}
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return Playback{Kind: PlaybackDirect, Src: raw}
	}
	return Playback{Kind: PlaybackUnresolved}
}

// EmbedURL YouTube 嵌入地址
func (p Playback) EmbedURL() string {
	if p.Kind != PlaybackYouTube {
		return ""
	}
	return "https://www.youtube.com/embed/" + p.VideoID + "?autoplay=1"
}

// Playable 是否有可播放的源
func (p Playback) Playable() bool {
	return p.Kind != PlaybackUnresolved
}

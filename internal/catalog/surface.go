package catalog

import (
	"fmt"
	"strings"
)

// Slot 媒体槽位
type Slot string

const (
	SlotVideo      Slot = "video"
	SlotCover      Slot = "cover"
	SlotBackground Slot = "background"
)

// Slots 全部槽位，按页面展示顺序
var Slots = []Slot{SlotVideo, SlotCover, SlotBackground}

// ParseSlot 解析槽位名
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotVideo:
		return SlotVideo, nil
	case SlotCover:
		return SlotCover, nil
	case SlotBackground:
		return SlotBackground, nil
	}
	return "", fmt.Errorf("未知的媒体槽位: %q", s)
}

// Surface 后端接口的一套命名（路由、查询参数、字段名）。
// 英文与土耳其语两套接口结构完全一致，只有名字不同。
type Surface struct {
	Name string

	Movies        string
	PopularMovies string
	RecentMovies  string
	Genres        string
	Settings      string
	AdminSettings string
	AdminMovies   string
	Files         string
	Login         string

	SearchParam   string
	GenreParam    string
	FeaturedParam string

	// 上传子路径和 multipart 字段名
	UploadPaths  map[Slot]string
	UploadFields map[Slot]string

	// 规范（英文）字段名 -> 本套接口字段名，未列出的字段名不变
	Fields map[string]string

	reverse map[string]string
}

// English 第一版接口
var English = newSurface(Surface{
	Name:          "en",
	Movies:        "/movies",
	PopularMovies: "/popular-movies",
	RecentMovies:  "/recent-movies",
	Genres:        "/genres",
	Settings:      "/settings",
	AdminSettings: "/admin/settings",
	AdminMovies:   "/admin/movies",
	Files:         "/files",
	Login:         "/admin/login",
	SearchParam:   "search",
	GenreParam:    "genre",
	FeaturedParam: "featuredOnly",
	UploadPaths: map[Slot]string{
		SlotVideo:      "upload-video",
		SlotCover:      "upload-cover",
		SlotBackground: "upload-background",
	},
	UploadFields: map[Slot]string{
		SlotVideo:      "video",
		SlotCover:      "cover",
		SlotBackground: "background",
	},
})

// Turkish 后续版本的本地化接口
var Turkish = newSurface(Surface{
	Name:          "tr",
	Movies:        "/filmler",
	PopularMovies: "/populer-filmler",
	RecentMovies:  "/son-filmler",
	Genres:        "/turler",
	Settings:      "/ayarlar",
	AdminSettings: "/admin/ayarlar",
	AdminMovies:   "/admin/filmler",
	Files:         "/dosyalar",
	Login:         "/admin/giris",
	SearchParam:   "arama",
	GenreParam:    "tur",
	FeaturedParam: "oneCikan",
	UploadPaths: map[Slot]string{
		SlotVideo:      "video-yukle",
		SlotCover:      "kapak-yukle",
		SlotBackground: "arkaplan-yukle",
	},
	UploadFields: map[Slot]string{
		SlotVideo:      "video",
		SlotCover:      "kapak",
		SlotBackground: "arkaplan",
	},
	Fields: map[string]string{
		"title":                   "baslik",
		"description":             "aciklama",
		"genre":                   "tur",
		"release_year":            "yil",
		"rating":                  "puan",
		"duration":                "sure",
		"director":                "yonetmen",
		"cast":                    "oyuncular",
		"country":                 "ulke",
		"language":                "dil",
		"featured":                "one_cikan",
		"age_rating":              "yas_siniri",
		"video_file":              "video_dosyasi",
		"cover_file":              "kapak_dosyasi",
		"cover_url":               "kapak_url",
		"background_file":         "arkaplan_dosyasi",
		"background_url":          "arkaplan_url",
		"trailer_url":             "fragman_url",
		"created_at":              "olusturulma_tarihi",
		"name":                    "ad",
		"count":                   "sayi",
		"site_name":               "site_adi",
		"theme_color":             "tema_rengi",
		"accent_color":            "vurgu_rengi",
		"featured_movies_count":   "one_cikan_film_sayisi",
		"allow_user_registration": "kayit_acik",
		"updated_at":              "guncellenme_tarihi",
		"access_token":            "erisim_anahtari",
		"token_type":              "anahtar_tipi",
		"password":                "sifre",
	},
})

// SurfaceFor 按名称选择接口命名，未知名称回退到英文
func SurfaceFor(name string) *Surface {
	if strings.EqualFold(name, Turkish.Name) {
		return Turkish
	}
	return English
}

func newSurface(s Surface) *Surface {
	s.reverse = make(map[string]string, len(s.Fields))
	for canonical, local := range s.Fields {
		s.reverse[local] = canonical
	}
	return &s
}

// field 规范名 -> 本地名
func (s *Surface) field(canonical string) string {
	if local, ok := s.Fields[canonical]; ok {
		return local
	}
	return canonical
}

// canonical 本地名 -> 规范名
func (s *Surface) canonical(local string) string {
	if c, ok := s.reverse[local]; ok {
		return c
	}
	return local
}

// UploadPath 某个槽位的上传路由（相对基础地址）
func (s *Surface) UploadPath(movieID string, slot Slot) string {
	return s.AdminMovies + "/" + movieID + "/" + s.UploadPaths[slot]
}

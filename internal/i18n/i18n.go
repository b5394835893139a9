// Package i18n 界面文案。所有页面共用一套模板，语言差异只在这里。
package i18n

import "fmt"

// Translator 某种语言的文案表
type Translator struct {
	Lang     string
	messages map[string]string
	labels   map[string]string
}

// New 按语言创建，未知语言回退到英文
func New(lang string) *Translator {
	if lang == "tr" {
		return &Translator{Lang: "tr", messages: turkish, labels: turkishLabels}
	}
	return &Translator{Lang: "en", messages: english, labels: nil}
}

// T 取文案，缺失时回退英文，再缺失返回键名本身
func (t *Translator) T(key string, args ...interface{}) string {
	msg, ok := t.messages[key]
	if !ok {
		msg, ok = english[key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Label 枚举值的展示名（类型、国家、语言），没有翻译时原样返回
func (t *Translator) Label(value string) string {
	if l, ok := t.labels[value]; ok {
		return l
	}
	return value
}

var english = map[string]string{
	"nav.search":            "Search movies...",
	"nav.search_button":     "Search",
	"nav.admin":             "Admin",
	"home.watch_now":        "Watch Now",
	"home.featured":         "Featured Movies",
	"home.popular":          "Popular",
	"home.recent":           "Recently Added",
	"home.all":              "All Movies",
	"home.results_for":      "Search results for \"%s\"",
	"home.genre_all":        "All",
	"home.empty":            "No movies found.",
	"home.trailer":          "Trailer",
	"home.imdb":             "IMDb",
	"home.premium":          "Premium",
	"home.featured_badge":   "Featured",
	"player.close":          "Close",
	"player.unavailable":    "No playable source for this movie.",
	"footer.rights":         "© %s. All rights reserved.",
	"login.title":           "Admin Login",
	"login.subtitle":        "Enter admin password to continue",
	"login.password":        "Password",
	"login.submit":          "Login",
	"login.failed":          "Invalid admin password",
	"dashboard.title":       "Admin Dashboard",
	"dashboard.logout":      "Logout",
	"dashboard.movies":      "Movies",
	"dashboard.settings":    "Settings",
	"dashboard.manage":      "Manage Movies",
	"dashboard.add":         "Add Movie",
	"dashboard.edit":        "Edit",
	"dashboard.delete":      "Delete",
	"dashboard.confirm_del": "Are you sure you want to delete this movie?",
	"form.new":              "Add New Movie",
	"form.edit":             "Edit Movie",
	"form.title":            "Title",
	"form.description":      "Description",
	"form.genre":            "Genre",
	"form.year":             "Release Year",
	"form.rating":           "Rating (0-10)",
	"form.duration":         "Duration (minutes)",
	"form.director":         "Director",
	"form.cast":             "Cast",
	"form.country":          "Country",
	"form.language":         "Language",
	"form.age_rating":       "Age Rating",
	"form.featured":         "Featured Movie",
	"form.premium":          "Premium",
	"form.video_url":        "Video URL (optional)",
	"form.cover_url":        "Cover Image URL (optional)",
	"form.background_url":   "Background Image URL (optional)",
	"form.trailer_url":      "Trailer URL (optional)",
	"form.imdb_url":         "IMDb URL (optional)",
	"form.cancel":           "Cancel",
	"form.create":           "Create Movie",
	"form.update":           "Update Movie",
	"form.uploads":          "Media Files",
	"form.drop_hint":        "Drop a file here or choose one",
	"form.upload":           "Upload",
	"slot.video":            "Video",
	"slot.cover":            "Cover",
	"slot.background":       "Background",
	"settings.title":        "Site Settings",
	"settings.site_name":    "Site Name",
	"settings.description":  "Description",
	"settings.theme_color":  "Theme Color",
	"settings.accent_color": "Accent Color",
	"settings.featured_n":   "Featured Movies Count",
	"settings.registration": "Allow User Registration",
	"settings.save":         "Save Settings",
	"notice.saved":          "Movie saved",
	"notice.save_failed":    "Error saving movie: %s",
	"notice.deleted":        "Movie deleted",
	"notice.delete_failed":  "Error deleting movie: %s",
	"notice.uploaded":       "%s uploaded",
	"notice.upload_failed":  "Error uploading %s: %s",
	"notice.upload_unsaved": "Save the movie before uploading files",
	"notice.upload_missing": "Choose a file to upload",
	"notice.settings_saved": "Settings updated successfully",
	"notice.settings_error": "Error updating settings: %s",
	"notice.invalid_form":   "Please check the form: %s",
	"dashboard.total":       "%d movies",
	"error.not_found":       "The page you are looking for does not exist.",
	"error.back_home":       "Back to home",
}

var turkish = map[string]string{
	"nav.search":            "Film ara...",
	"nav.search_button":     "Ara",
	"nav.admin":             "Yönetim",
	"home.watch_now":        "Şimdi İzle",
	"home.featured":         "Öne Çıkan Filmler",
	"home.popular":          "Popüler",
	"home.recent":           "Son Eklenenler",
	"home.all":              "Tüm Filmler",
	"home.results_for":      "\"%s\" için arama sonuçları",
	"home.genre_all":        "Tümü",
	"home.empty":            "Film bulunamadı.",
	"home.trailer":          "Fragman",
	"home.imdb":             "IMDb",
	"home.premium":          "Premium",
	"home.featured_badge":   "Öne Çıkan",
	"player.close":          "Kapat",
	"player.unavailable":    "Bu film için oynatılabilir kaynak yok.",
	"footer.rights":         "© %s. Tüm hakları saklıdır.",
	"login.title":           "Yönetici Girişi",
	"login.subtitle":        "Devam etmek için yönetici şifresini girin",
	"login.password":        "Şifre",
	"login.submit":          "Giriş Yap",
	"login.failed":          "Geçersiz yönetici şifresi",
	"dashboard.title":       "Yönetim Paneli",
	"dashboard.logout":      "Çıkış",
	"dashboard.movies":      "Filmler",
	"dashboard.settings":    "Ayarlar",
	"dashboard.manage":      "Filmleri Yönet",
	"dashboard.add":         "Film Ekle",
	"dashboard.edit":        "Düzenle",
	"dashboard.delete":      "Sil",
	"dashboard.confirm_del": "Bu filmi silmek istediğinizden emin misiniz?",
	"form.new":              "Yeni Film Ekle",
	"form.edit":             "Filmi Düzenle",
	"form.title":            "Başlık",
	"form.description":      "Açıklama",
	"form.genre":            "Tür",
	"form.year":             "Yayın Yılı",
	"form.rating":           "Puan (0-10)",
	"form.duration":         "Süre (dakika)",
	"form.director":         "Yönetmen",
	"form.cast":             "Oyuncular",
	"form.country":          "Ülke",
	"form.language":         "Dil",
	"form.age_rating":       "Yaş Sınırı",
	"form.featured":         "Öne Çıkan Film",
	"form.premium":          "Premium",
	"form.video_url":        "Video URL (isteğe bağlı)",
	"form.cover_url":        "Kapak Görseli URL (isteğe bağlı)",
	"form.background_url":   "Arka Plan Görseli URL (isteğe bağlı)",
	"form.trailer_url":      "Fragman URL (isteğe bağlı)",
	"form.imdb_url":         "IMDb URL (isteğe bağlı)",
	"form.cancel":           "İptal",
	"form.create":           "Film Oluştur",
	"form.update":           "Filmi Güncelle",
	"form.uploads":          "Medya Dosyaları",
	"form.drop_hint":        "Dosyayı buraya bırakın veya seçin",
	"form.upload":           "Yükle",
	"slot.video":            "Video",
	"slot.cover":            "Kapak",
	"slot.background":       "Arka Plan",
	"settings.title":        "Site Ayarları",
	"settings.site_name":    "Site Adı",
	"settings.description":  "Açıklama",
	"settings.theme_color":  "Tema Rengi",
	"settings.accent_color": "Vurgu Rengi",
	"settings.featured_n":   "Öne Çıkan Film Sayısı",
	"settings.registration": "Kullanıcı Kaydına İzin Ver",
	"settings.save":         "Ayarları Kaydet",
	"notice.saved":          "Film kaydedildi",
	"notice.save_failed":    "Film kaydedilirken hata: %s",
	"notice.deleted":        "Film silindi",
	"notice.delete_failed":  "Film silinirken hata: %s",
	"notice.uploaded":       "%s yüklendi",
	"notice.upload_failed":  "%s yüklenirken hata: %s",
	"notice.upload_unsaved": "Dosya yüklemeden önce filmi kaydedin",
	"notice.upload_missing": "Yüklenecek bir dosya seçin",
	"notice.settings_saved": "Ayarlar başarıyla güncellendi",
	"notice.settings_error": "Ayarlar güncellenirken hata: %s",
	"notice.invalid_form":   "Lütfen formu kontrol edin: %s",
	"dashboard.total":       "%d film",
	"error.not_found":       "Aradığınız sayfa bulunamadı.",
	"error.back_home":       "Ana sayfaya dön",
}

var turkishLabels = map[string]string{
	"Action":         "Aksiyon",
	"Adventure":      "Macera",
	"Animation":      "Animasyon",
	"Comedy":         "Komedi",
	"Crime":          "Suç",
	"Documentary":    "Belgesel",
	"Drama":          "Dram",
	"Family":         "Aile",
	"Fantasy":        "Fantastik",
	"Horror":         "Korku",
	"Romance":        "Romantik",
	"Sci-Fi":         "Bilim Kurgu",
	"Thriller":       "Gerilim",
	"War":            "Savaş",
	"Turkey":         "Türkiye",
	"United States":  "ABD",
	"United Kingdom": "Birleşik Krallık",
	"France":         "Fransa",
	"Germany":        "Almanya",
	"Italy":          "İtalya",
	"Spain":          "İspanya",
	"Japan":          "Japonya",
	"South Korea":    "Güney Kore",
	"India":          "Hindistan",
	"Other":          "Diğer",
	"Turkish":        "Türkçe",
	"English":        "İngilizce",
	"French":         "Fransızca",
	"German":         "Almanca",
	"Italian":        "İtalyanca",
	"Spanish":        "İspanyolca",
	"Japanese":       "Japonca",
	"Korean":         "Korece",
	"Hindi":          "Hintçe",
}

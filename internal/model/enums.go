package model

// 枚举取值。后端返回未知值时原样保留，客户端不做拒绝。

// Genres 可选类型
var Genres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary", "Drama",
	"Family", "Fantasy", "Horror", "Romance", "Sci-Fi", "Thriller", "War",
}

// Countries 可选国家
var Countries = []string{
	"Turkey", "United States", "United Kingdom", "France", "Germany", "Italy",
	"Spain", "Japan", "South Korea", "India", "Other",
}

// Languages 可选语言
var Languages = []string{
	"Turkish", "English", "French", "German", "Italian", "Spanish",
	"Japanese", "Korean", "Hindi", "Other",
}

// AgeRatings 年龄分级
var AgeRatings = []string{"G", "PG", "PG-13", "R", "NC-17", "7+", "13+", "18+"}

// GenreAll 类型筛选中的“全部”
const GenreAll = "all"

// Contains 判断取值是否在枚举中
func Contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

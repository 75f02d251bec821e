package model

type Restaurant struct {
	ID         string   `redis:"id" json:"id"`
	Name       string   `redis:"name" json:"name"`
	Location   string   `redis:"location" json:"location"`
	ViewCount  int64    `redis:"viewCount" json:"view_count"`
	TotalStars float64  `redis:"totalStars" json:"total_stars"`
	AvgStars   float64  `redis:"avgStars" json:"avg_stars"`
	Cuisines   []string `redis:"-" json:"cuisines,omitempty"`
}

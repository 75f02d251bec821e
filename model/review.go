package model

type Review struct {
	ID           string  `redis:"id" json:"id"`
	RestaurantID string  `redis:"restaurantId" json:"restaurant_id"`
	Rating       float64 `redis:"rating" json:"rating"`
	Comment      string  `redis:"comment" json:"comment"`
	Timestamp    int64   `redis:"timestamp" json:"timestamp"`
}

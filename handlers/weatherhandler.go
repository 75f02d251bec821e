package handlers

import (
	"errors"
	"log"
	"net/http"

	"bites-server/db"
)

func getRestaurantWeather(w http.ResponseWriter, r *http.Request, restaurantID string) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	if !checkRestaurantExists(w, r, restaurantID) {
		return
	}

	weatherDAO := db.NewWeatherDAO(db.GetDB())
	payload, err := weatherDAO.GetWeather(r.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, db.ErrNoLocation) {
			log.Println("Coordinates not found for restaurant: ", restaurantID)
			http.Error(w, "Coordinates not found", http.StatusNotFound)
			return
		}
		log.Println("Error getting weather: ", err)
		http.Error(w, "Couldn't fetch weather info", http.StatusInternalServerError)
		return
	}

	// the payload is already JSON, send it verbatim
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		log.Println("Error writing response: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"bites-server/db"
)

func HandleCuisines(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	cuisineDAO := db.NewCuisineDAO(db.GetDB())
	cuisines, err := cuisineDAO.GetCuisines(r.Context())
	if err != nil {
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send cuisines in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(cuisines)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleCuisineRestaurants(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// extract cuisine name from URI
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 || parts[1] == "" {
		log.Println("Invalid path")
		http.Error(w, "Cuisine not provided", http.StatusBadRequest)
		return
	}
	cuisine := parts[1]

	cuisineDAO := db.NewCuisineDAO(db.GetDB())
	restaurants, err := cuisineDAO.GetRestaurantsByCuisine(r.Context(), cuisine)
	if err != nil {
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send restaurants in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurants)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

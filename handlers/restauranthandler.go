package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"bites-server/db"
)

type restaurantRequest struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Cuisines []string `json:"cuisines"`
}

func HandleRestaurants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getRestaurants(w, r)
	case "POST":
		createRestaurant(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

// HandleRestaurantRoutes dispatches every /restaurants/{id}... route.
func HandleRestaurantRoutes(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 2:
		getRestaurantDetails(w, r, parts[1])
	case len(parts) == 3 && parts[2] == "weather":
		getRestaurantWeather(w, r, parts[1])
	case len(parts) == 3 && parts[2] == "reviews":
		switch r.Method {
		case "GET":
			getRestaurantReviews(w, r, parts[1])
		case "POST":
			createReview(w, r, parts[1])
		default:
			log.Println("Method not supported")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
	case len(parts) == 4 && parts[2] == "reviews":
		deleteReview(w, r, parts[1], parts[3])
	default:
		log.Println("Unknown restaurant route: ", r.URL.Path)
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func createRestaurant(w http.ResponseWriter, r *http.Request) {
	// get the restaurant from the body
	var request restaurantRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check restaurant data
	if request.Name == "" {
		log.Println("Missing restaurant name")
		http.Error(w, "Missing restaurant name", http.StatusBadRequest)
		return
	}
	if request.Location == "" {
		log.Println("Missing restaurant location")
		http.Error(w, "Missing restaurant location", http.StatusBadRequest)
		return
	}

	// insert restaurant in the store
	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurant, err := restaurantDAO.CreateRestaurant(r.Context(), request.Name, request.Location, request.Cuisines)
	if err != nil {
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send restaurant in response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(restaurant)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func getRestaurants(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurants, err := restaurantDAO.GetRestaurants(r.Context(), page, limit)
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

func getRestaurantDetails(w http.ResponseWriter, r *http.Request, restaurantID string) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	if !checkRestaurantExists(w, r, restaurantID) {
		return
	}

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurant, err := restaurantDAO.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		log.Println("Error getting restaurant: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send restaurant in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurant)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

// checkRestaurantExists gates every restaurant-scoped route: it writes the
// error response and returns false if the restaurant is absent, so no
// further store work happens for unknown ids.
func checkRestaurantExists(w http.ResponseWriter, r *http.Request, restaurantID string) bool {
	if restaurantID == "" {
		log.Println("Missing restaurant id")
		http.Error(w, "Missing restaurant id", http.StatusBadRequest)
		return false
	}

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	exists, err := restaurantDAO.RestaurantExists(r.Context(), restaurantID)
	if err != nil {
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return false
	}
	if !exists {
		log.Println("Restaurant not found: ", restaurantID)
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return false
	}

	return true
}

func parsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	return page, limit
}

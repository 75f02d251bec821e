package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bites-server/db"
)

type reviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func createReview(w http.ResponseWriter, r *http.Request, restaurantID string) {
	if !checkRestaurantExists(w, r, restaurantID) {
		return
	}

	// get the review from the body
	var request reviewRequest
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

	// check review data
	if request.Rating < 1 || request.Rating > 5 {
		log.Println("Invalid rating value")
		http.Error(w, "Invalid rating value", http.StatusBadRequest)
		return
	}

	// insert review in the store
	reviewDAO := db.NewReviewDAO(db.GetDB())
	review, err := reviewDAO.CreateReview(r.Context(), restaurantID, request.Rating, request.Comment)
	if err != nil {
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send review in response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(review)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func getRestaurantReviews(w http.ResponseWriter, r *http.Request, restaurantID string) {
	if !checkRestaurantExists(w, r, restaurantID) {
		return
	}

	page, limit := parsePagination(r)

	reviewDAO := db.NewReviewDAO(db.GetDB())
	reviews, err := reviewDAO.GetReviews(r.Context(), restaurantID, page, limit)
	if err != nil {
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send reviews in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(reviews)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func deleteReview(w http.ResponseWriter, r *http.Request, restaurantID string, reviewID string) {
	if r.Method != "DELETE" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	if !checkRestaurantExists(w, r, restaurantID) {
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	err := reviewDAO.DeleteReview(r.Context(), restaurantID, reviewID)
	if err != nil {
		if errors.Is(err, db.ErrReviewNotFound) {
			log.Println("Review not found: ", reviewID)
			http.Error(w, "Review not found", http.StatusNotFound)
			return
		}
		log.Println("Error while interacting with the store: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send deleted review id in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(map[string]string{"deleted": reviewID})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

package handlers

import (
	"log"
	"net/http"

	"bites-server/db"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	err := db.ResetTestDatabase(r.Context())
	if err != nil {
		log.Println("Error resetting test database: ", err)
		http.Error(w, "Error resetting test database", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

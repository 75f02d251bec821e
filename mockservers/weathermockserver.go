package mockservers

import (
	"fmt"
	"log"
	"net/http"
)

func StartWeatherApiServer() {
	http.HandleFunc("/weatherapi", WeatherApiHandler)

	fmt.Println("Weather API server starting on port 8084")

	err := http.ListenAndServe(":8084", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Weather API server")
	}
}

func WeatherApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"current": {"temp": 68.5, "weather": [{"main": "Clear", "description": "clear sky"}]}}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}

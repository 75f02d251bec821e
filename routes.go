package main

import (
	"log"
	"net/http"

	"bites-server/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/restaurants", handlers.HandleRestaurants)
	mux.HandleFunc("/restaurants/", handlers.HandleRestaurantRoutes)

	mux.HandleFunc("/cuisines", handlers.HandleCuisines)
	mux.HandleFunc("/cuisines/", handlers.HandleCuisineRestaurants)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port ", port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bites-server/db"
	"bites-server/externals"
	"bites-server/mockservers"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using process environment")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "3000", "Port on which the server listens")
	flag.Parse()

	// init store client
	client, err := db.InitDB(testMode)
	if err != nil || client == nil {
		log.Fatalf("Error initializing store client: %v", err)
	}
	defer db.CloseDBConnection()

	// init apis
	externals.InitWeatherApi()

	// start mock weather provider in a new go routine
	if testMode == "mock" {
		go mockservers.StartWeatherApiServer()
	}

	// setup routes
	SetupRoutes(*port)
}

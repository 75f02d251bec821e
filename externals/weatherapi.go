package externals

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultWeatherApiUrl = "https://api.openweathermap.org/data/3.0/onecall"

var weatherApiKey string
var weatherApiUrl string

func InitWeatherApi() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	weatherApiKey = os.Getenv("WEATHER_API_KEY")
	weatherApiUrl = os.Getenv("WEATHER_API_URL")
	if weatherApiUrl == "" {
		weatherApiUrl = defaultWeatherApiUrl
	}
}

// GetWeatherByCoordinates calls the weather provider for the given
// coordinates and returns the raw JSON payload of a successful response.
func GetWeatherByCoordinates(lat string, lng string) (json.RawMessage, error) {
	params := url.Values{}
	params.Add("units", "imperial")
	params.Add("lat", lat)
	params.Add("lon", lng)
	params.Add("appid", weatherApiKey)

	fullURL := fmt.Sprintf("%s?%s", weatherApiUrl, params.Encode())

	start := time.Now()

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error creating the request: ", err)
		return nil, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	elapsed := time.Since(start)
	log.Println("CALL Weather API took: ", elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return nil, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("weather api returned invalid JSON")
	}

	return body, nil
}

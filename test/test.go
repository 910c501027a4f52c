package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Manual smoke client: lists the cities, probes an id, and prints timings.
func main() {
	base := "http://localhost:3000"

	start := time.Now()
	resp, err := http.Get(base + "/api/cities")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var cities []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&cities); err != nil {
		panic(err)
	}
	fmt.Printf("GET /api/cities: %d rows in %.3f ms\n", len(cities), float64(time.Since(start))/float64(time.Millisecond))

	if len(cities) == 0 {
		return
	}

	id := cities[0]["CityID"]
	body, _ := json.Marshal(map[string]any{"id": id})

	start = time.Now()
	resp, err = http.Post(base+"/api/cities/check-id", "application/json", bytes.NewReader(body))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var check struct {
		Exists bool `json:"exists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		panic(err)
	}
	fmt.Printf("POST /api/cities/check-id (%v): exists=%t in %.3f ms\n", id, check.Exists, float64(time.Since(start))/float64(time.Millisecond))
}

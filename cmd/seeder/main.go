package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Sample receipts posted against a running instance, useful for smoke
// testing a fresh deployment and for populating a local store.
var samples = []string{
	`{
		"retailer": "Target",
		"purchaseDate": "2022-01-01",
		"purchaseTime": "13:01",
		"items": [
			{"shortDescription": "Mountain Dew 12PK", "price": "6.49"},
			{"shortDescription": "Emils Cheese Pizza", "price": "12.25"},
			{"shortDescription": "Knorr Creamy Chicken", "price": "1.26"},
			{"shortDescription": "Doritos Nacho Cheese", "price": "3.35"},
			{"shortDescription": "   Klarbrunn 12-PK 12 FL OZ  ", "price": "12.00"}
		],
		"total": "35.35"
	}`,
	`{
		"retailer": "M&M Corner Market",
		"purchaseDate": "2022-03-20",
		"purchaseTime": "14:33",
		"items": [
			{"shortDescription": "Gatorade", "price": "2.25"},
			{"shortDescription": "Gatorade", "price": "2.25"},
			{"shortDescription": "Gatorade", "price": "2.25"},
			{"shortDescription": "Gatorade", "price": "2.25"}
		],
		"total": "9.00"
	}`,
	`{
		"retailer": "Walgreens",
		"purchaseDate": "2022-01-02",
		"purchaseTime": "08:13",
		"items": [
			{"shortDescription": "Pepsi - 12-oz", "price": "1.25"},
			{"shortDescription": "Dasani", "price": "1.40"}
		],
		"total": "2.65"
	}`,
}

func main() {
	targetURL := flag.String("url", "http://localhost:8080", "API Base URL")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	log.Println("--- Seeding Receipts ---")

	for i, sample := range samples {
		id, err := submit(client, *targetURL, sample)
		if err != nil {
			log.Fatalf("Submitting receipt %d failed: %v", i, err)
		}

		points, err := fetchPoints(client, *targetURL, id)
		if err != nil {
			log.Fatalf("Fetching points for %s failed: %v", id, err)
		}
		log.Printf("Seeded receipt %d: id=%s points=%d", i, id, points)
	}
}

func submit(client *http.Client, baseURL, payload string) (string, error) {
	resp, err := client.Post(baseURL+"/receipts/process", "application/json", bytes.NewBufferString(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.ID, nil
}

func fetchPoints(client *http.Client, baseURL, id string) (int64, error) {
	resp, err := client.Get(fmt.Sprintf("%s/receipts/%s/points", baseURL, id))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Points int64 `json:"points"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Points, nil
}

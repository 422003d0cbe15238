package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the benchmark settings
var (
	targetURL   string
	concurrency int
	duration    time.Duration
	workload    string
)

// Metrics
var (
	totalRequests uint64
	success200    uint64 // Accepted submissions (including idempotent resubmits)
	fail400       uint64 // Rejected payloads
	fail503       uint64 // Store unavailable
	failOther     uint64
)

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API Base URL")
	flag.IntVar(&concurrency, "workers", 10, "Number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "Test duration")
	flag.StringVar(&workload, "workload", "unique", "Workload type: unique | resubmit")
}

func main() {
	flag.Parse()
	log.Printf("Starting Benchmark: %s | Workers: %d | Duration: %s", workload, concurrency, duration)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go worker(&wg, start)
	}

	wg.Wait()
	printResults(time.Since(start))
}

func worker(wg *sync.WaitGroup, start time.Time) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	// One fixed payload per worker for the resubmit workload, exercising
	// the deterministic-identity path instead of unique inserts.
	fixed := randomReceipt()

	for time.Since(start) < duration {
		payload := fixed
		if workload == "unique" {
			payload = randomReceipt()
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", targetURL+"/receipts/process", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case 200:
			atomic.AddUint64(&success200, 1)
		case 400:
			atomic.AddUint64(&fail400, 1)
		case 503:
			atomic.AddUint64(&fail503, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

var retailers = []string{"Target", "Walgreens", "M&M Corner Market", "Corner Deli 24"}

func randomReceipt() map[string]interface{} {
	itemCount := rand.Intn(4) + 1
	items := make([]map[string]interface{}, 0, itemCount)
	totalCents := 0
	for i := 0; i < itemCount; i++ {
		cents := rand.Intn(2000) + 1
		totalCents += cents
		items = append(items, map[string]interface{}{
			"shortDescription": fmt.Sprintf("Item %02d", i),
			"price":            fmt.Sprintf("%d.%02d", cents/100, cents%100),
		})
	}

	return map[string]interface{}{
		"retailer":     retailers[rand.Intn(len(retailers))],
		"purchaseDate": fmt.Sprintf("2022-03-%02d", rand.Intn(28)+1),
		"purchaseTime": fmt.Sprintf("%02d:%02d", rand.Intn(24), rand.Intn(60)),
		"items":        items,
		"total":        fmt.Sprintf("%d.%02d", totalCents/100, totalCents%100),
	}
}

func printResults(elapsed time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	fmt.Println("--- Benchmark Results ---")
	fmt.Printf("Elapsed:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("Total Requests: %d (%.1f req/s)\n", total, float64(total)/elapsed.Seconds())
	fmt.Printf("  200 OK:       %d\n", atomic.LoadUint64(&success200))
	fmt.Printf("  400 Invalid:  %d\n", atomic.LoadUint64(&fail400))
	fmt.Printf("  503 Storage:  %d\n", atomic.LoadUint64(&fail503))
	fmt.Printf("  Other/Error:  %d\n", atomic.LoadUint64(&failOther))
}

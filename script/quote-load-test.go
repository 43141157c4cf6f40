package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/gateway"
	"github.com/shopspring/decimal"
)

// QuoteScenario is one quote request shape
type QuoteScenario struct {
	Name     string // For stats tracking
	Amount   string
	Currency string
	Speed    string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// paymentWebhook mirrors the gateway callback body
type paymentWebhook struct {
	GatewayTransactionID string          `json:"gatewayTransactionId"`
	IsSuccess            bool            `json:"isSuccess"`
	Amount               decimal.Decimal `json:"amount"`
	ReferenceCode        string          `json:"referenceCode"`
}

// Exercises the public quote endpoint under concurrency. With -reference and -secret it
// instead replays one signed payment webhook, which must be absorbed as a duplicate after
// the first delivery.
func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	reference := flag.String("reference", "", "Reference code to replay a payment webhook for")
	secret := flag.String("secret", "", "Gateway webhook secret used to sign replays")
	amount := flag.String("amount", "10000", "Amount carried by the replayed webhook")
	flag.Parse()

	scenarios := []QuoteScenario{
		{"XOF instant", "10000", "XOF", "INSTANT"},
		{"XOF standard", "65596", "XOF", "STANDARD"},
		{"EUR instant", "15", "EUR", "INSTANT"},
		{"EUR standard", "100", "EUR", "STANDARD"},
		{"Below minimum", "500", "XOF", "INSTANT"},
	}

	var replay []byte
	if *reference != "" {
		body, err := json.Marshal(paymentWebhook{
			GatewayTransactionID: "replay-" + *reference,
			IsSuccess:            true,
			Amount:               decimal.RequireFromString(*amount),
			ReferenceCode:        *reference,
		})
		if err != nil {
			fmt.Printf("Failed to build webhook: %v\n", err)
			return
		}
		replay = body
		fmt.Printf("Replaying payment webhook for %s %d times\n", *reference, *totalRequests)
	} else {
		fmt.Printf("Quote scenarios: %d\n", len(scenarios))
	}
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 10 * time.Second}
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				if replay != nil {
					results <- sendWebhook(client, *baseURL, *secret, replay)
					continue
				}
				results <- sendQuote(client, *baseURL, scenarios[rand.IntN(len(scenarios))])
			}
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
		close(done)
	}()

	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func sendQuote(client *http.Client, baseURL string, s QuoteScenario) TestResult {
	q := url.Values{}
	q.Set("amount", s.Amount)
	q.Set("currency", s.Currency)
	q.Set("speed", s.Speed)

	start := time.Now()
	resp, err := client.Get(baseURL + "/api/v1/quotes?" + q.Encode())
	result := TestResult{Scenario: s.Name, ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	// A validation rejection is the expected answer for the below-minimum scenario
	result.Success = resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusBadRequest
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func sendWebhook(client *http.Client, baseURL, secret string, body []byte) TestResult {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/webhooks/payment", bytes.NewReader(body))
	if err != nil {
		return TestResult{Scenario: "webhook", Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(gateway.SignatureHeader, gateway.SignPayload(secret, body))

	start := time.Now()
	resp, err := client.Do(req)
	result := TestResult{Scenario: "webhook", ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	var ack struct {
		Status string `json:"status"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&ack)
	result.StatusCode = resp.StatusCode
	result.Scenario = "webhook " + ack.Status
	result.Success = resp.StatusCode == http.StatusOK && ack.Status != "error"
	if !result.Success {
		result.Error = fmt.Errorf("HTTP %d status %q", resp.StatusCode, ack.Status)
	}
	return result
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avg, p50, p90, p99, minRT, maxRT time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		var total time.Duration
		for _, rt := range sorted {
			total += rt
		}
		avg = total / time.Duration(n)
		minRT, maxRT = sorted[0], sorted[n-1]
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v  Min: %v  Max: %v\n", avg, minRT, maxRT)
	fmt.Printf("P50: %v  P90: %v  P99: %v\n", p50, p90, p99)

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-20s: %d\n", name, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}

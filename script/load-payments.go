package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"
)

// PaymentRequest is the payment form payload
type PaymentRequest struct {
	Name   string `json:"name"`
	UpiID  string `json:"upiId"`
	QRData string `json:"qrData,omitempty"`
	Amount string `json:"amount"`
}

// Transaction is the part of a listed transaction the checks need
type Transaction struct {
	ID            int64  `json:"id"`
	Timestamp     int64  `json:"timestamp"`
	TransactionID string `json:"transactionId"`
}

// Result is the outcome of one payment
type Result struct {
	Scenario     string
	ResponseTime time.Duration
	Err          error
}

// Stats aggregates results
type Stats struct {
	mu            sync.Mutex
	Succeeded     int
	Failed        int
	ResponseTimes []time.Duration
	Errors        map[string]int
	Scenarios     map[string]int
}

// Scenario is one kind of payment entry
type Scenario struct {
	Name    string
	Scanned bool
	Amount  string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	total := flag.Int("n", 100, "Total number of payments")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between payments per worker in milliseconds")
	settle := flag.Duration("settle", 3*time.Second, "How long to wait for background writes before verifying")
	flag.Parse()

	scenarios := []Scenario{
		{"manual-small", false, "10"},
		{"manual-large", false, "2500.75"},
		{"scanned-small", true, "49.99"},
		{"scanned-large", true, "1200"},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	before, err := listTransactions(client, *baseURL)
	if err != nil {
		fmt.Printf("Cannot reach %s: %v\n", *baseURL, err)
		return
	}

	fmt.Printf("Sending %d payments with %d workers, %d ms apart\n", *total, *concurrency, *delayMs)

	stats := &Stats{
		Errors:    make(map[string]int),
		Scenarios: make(map[string]int),
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for job := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				scenario := scenarios[rand.Intn(len(scenarios))]
				stats.record(pay(client, *baseURL, scenario, worker, job))
			}
		}(w)
	}

	start := time.Now()
	for i := 0; i < *total; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Printf("Waiting %v for background writes...\n", *settle)
	time.Sleep(*settle)

	after, err := listTransactions(client, *baseURL)
	if err != nil {
		fmt.Printf("Verification failed: %v\n", err)
		return
	}

	printResults(stats, elapsed)
	verify(before, after, stats.Succeeded)
}

func pay(client *http.Client, baseURL string, scenario Scenario, worker, job int) Result {
	name := fmt.Sprintf("Load %d-%d", worker, job)
	upiID := fmt.Sprintf("load%d.%d@upi", worker, job)

	req := PaymentRequest{Name: name, UpiID: upiID, Amount: scenario.Amount}
	if scenario.Scanned {
		req.QRData = "upi://pay?pa=" + upiID + "&pn=" + url.QueryEscape(name)
	}

	start := time.Now()
	err := postJSON(client, baseURL+"/payments", req, http.StatusCreated)
	return Result{Scenario: scenario.Name, ResponseTime: time.Since(start), Err: err}
}

func postJSON(client *http.Client, endpoint string, body any, want int) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func listTransactions(client *http.Client, baseURL string) ([]Transaction, error) {
	resp, err := client.Get(baseURL + "/transactions")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var txs []Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *Stats) record(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Scenarios[r.Scenario]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if r.Err != nil {
		s.Failed++
		s.Errors[r.Err.Error()]++
		return
	}
	s.Succeeded++
}

func printResults(stats *Stats, elapsed time.Duration) {
	times := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= PAYMENT LOAD RESULTS =================")
	fmt.Printf("Succeeded:  %d\n", stats.Succeeded)
	fmt.Printf("Failed:     %d\n", stats.Failed)
	fmt.Printf("Elapsed:    %.2f s (%.2f payments/s)\n", elapsed.Seconds(),
		float64(stats.Succeeded)/elapsed.Seconds())
	fmt.Printf("P50/P90/P99: %v / %v / %v\n", percentile(50), percentile(90), percentile(99))

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range stats.Scenarios {
		fmt.Printf("%-15s: %d\n", name, count)
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range stats.Errors {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

// verify checks the listing grew by the number of accepted payments, kept
// every reference unique and stayed newest first
func verify(before, after []Transaction, accepted int) {
	fmt.Println("\n----------------- HISTORY CHECK -----------------")

	if grown := len(after) - len(before); grown != accepted {
		fmt.Printf("❌ History grew by %d, expected %d\n", grown, accepted)
	} else {
		fmt.Printf("✅ History grew by %d\n", grown)
	}

	seen := make(map[string]bool, len(after))
	for i, tx := range after {
		if seen[tx.TransactionID] {
			fmt.Printf("❌ Duplicate transaction reference %s\n", tx.TransactionID)
			return
		}
		seen[tx.TransactionID] = true

		if i > 0 {
			prev := after[i-1]
			if prev.Timestamp < tx.Timestamp || (prev.Timestamp == tx.Timestamp && prev.ID < tx.ID) {
				fmt.Printf("❌ Listing out of order at position %d\n", i)
				return
			}
		}
	}
	fmt.Println("✅ References unique, listing newest first")
}

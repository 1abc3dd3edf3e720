package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IngestMessage is the payload the ledger consumes from the ingest queue
type IngestMessage struct {
	Reference  string         `json:"reference"`
	Status     string         `json:"status"`
	Amount     string         `json:"amount"`
	BaseCost   string         `json:"baseCost"`
	JBProfit   string         `json:"JBProfit"`
	BundleName string         `json:"bundleName"`
	Email      string         `json:"email"`
	CreatedAt  string         `json:"createdAt"`
	Metadata   map[string]any `json:"metadata"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Body         []byte
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	TotalTime         time.Duration
	ResponseTimes     []time.Duration
	TotalResponseTime time.Duration
	StatusCounts      map[string]map[int]int // scenario -> status -> count
	ErrorCounts       map[string]int
	ExportedRows      int
	Lock              sync.Mutex
}

// Scenario is one kind of admin request
type Scenario struct {
	Name   string
	Method string
	Path   string
}

var networks = []string{"mtn", "telecel", "airteltigo"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	principal := flag.String("principal", "load-test", "Admin principal id sent with every request")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	amqpURL := flag.String("amqp", "", "RabbitMQ URL; when set, orders are published before the test")
	queue := flag.String("queue", "ledger.transactions", "Ingest queue name")
	seed := flag.Int("seed", 200, "Number of successful orders to publish when -amqp is set")
	flag.Parse()

	if *amqpURL != "" {
		if err := publishOrders(*amqpURL, *queue, *seed); err != nil {
			fmt.Printf("Failed to publish orders: %v\n", err)
			return
		}
		fmt.Printf("Published %d orders to %s\n", *seed, *queue)
		time.Sleep(2 * time.Second)
	}

	scenarios := []Scenario{
		{"List", http.MethodGet, "/api/v1/transactions?limit=50"},
		{"List mtn", http.MethodGet, "/api/v1/transactions?network=mtn&sortBy=amount&sortOrder=asc"},
		{"Search", http.MethodGet, "/api/v1/transactions?search=load"},
		{"Export", http.MethodGet, "/api/v1/transactions/export-pending"},
	}

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[string]map[int]int),
		ErrorCounts:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *principal, *delayMs, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			record(stats, result)
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func publishOrders(url, queue string, count int) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runID := time.Now().UnixNano()
	for i := 0; i < count; i++ {
		msg := IngestMessage{
			Reference:  fmt.Sprintf("load-%d-%d", runID, i),
			Status:     "success",
			Amount:     "12.00",
			BaseCost:   "10.00",
			JBProfit:   "2.00",
			BundleName: "Load 1.5GB",
			Email:      "load@example.com",
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
			Metadata: map[string]any{
				"network":                  networks[rand.Intn(len(networks))],
				"phoneNumberReceivingData": fmt.Sprintf("024%07d", rand.Intn(10_000_000)),
			},
		}
		body, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		if err := ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.Reference,
			Body:         body,
		}); err != nil {
			return err
		}
	}
	return nil
}

func worker(baseURL, principal string, delayMs int, scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		req, err := http.NewRequest(scenario.Method, baseURL+scenario.Path, nil)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}
		req.Header.Set("X-Principal-Id", principal)
		req.Header.Set("X-Principal-Role", "admin")

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(startTime)}
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		if scenario.Name == "Export" && resp.StatusCode == http.StatusOK {
			result.Body, result.Error = io.ReadAll(resp.Body)
		}
		resp.Body.Close()
		results <- result
	}
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	if result.Error != nil {
		stats.ErrorCounts[result.Error.Error()]++
		return
	}

	if stats.StatusCounts[result.Scenario] == nil {
		stats.StatusCounts[result.Scenario] = make(map[int]int)
	}
	stats.StatusCounts[result.Scenario][result.StatusCode]++
	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime

	// header line excluded
	if len(result.Body) > 0 {
		lines := 0
		for _, b := range result.Body {
			if b == '\n' {
				lines++
			}
		}
		stats.ExportedRows += lines - 1
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var avg time.Duration
	if len(sorted) > 0 {
		avg = stats.TotalResponseTime / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:   %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:  %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:       %.2f req/s\n", float64(len(sorted))/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response: %v\n", avg)
	fmt.Printf("P50 Response:     %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:     %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:     %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS BY SCENARIO -----------------")
	for scenario, counts := range stats.StatusCounts {
		for status, count := range counts {
			fmt.Printf("%-10s %d: %d\n", scenario, status, count)
		}
	}

	// Exports that overlapped must be rejected with 409, never double-claimed
	fmt.Println("\n----------------- EXPORTS -----------------")
	fmt.Printf("Rows claimed across all exports: %d\n", stats.ExportedRows)

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}

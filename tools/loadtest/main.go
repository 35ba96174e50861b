package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

const (
	defaultAPIURL   = "http://localhost:8080"
	defaultCaller   = "0x1111111111111111111111111111111111111111"
	defaultCurrency = "primary"
)

type Config struct {
	APIURL        string
	Caller        string
	Currency      string
	AttachedValue string // decimal string attached per request, primary currency only
	Quantity      uint64 // tokens per mint call
	Requests      int    // total mint calls to issue (0 = run until interrupted)
	Concurrency   int    // number of concurrent workers
	Timeout       time.Duration
	OutputFile    string // output markdown file path (optional)
	Debug         bool
}

type RequestResult struct {
	Status    int
	ErrorCode string
	Latency   time.Duration
	Err       error
}

type RunStats struct {
	StartTime  time.Time
	EndTime    time.Time
	Total      int
	Succeeded  int
	Failed     int
	Latencies  []time.Duration
	ErrorCodes map[string]int
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := checkHealth(ctx, cfg); err != nil {
		fmt.Printf("Error: API is not reachable at %s: %v\n", cfg.APIURL, err)
		os.Exit(1)
	}

	fmt.Printf("Target: %s\n", cfg.APIURL)
	fmt.Printf("Caller: %s, currency: %s, quantity per call: %d\n", cfg.Caller, cfg.Currency, cfg.Quantity)
	fmt.Printf("Requests: %d, concurrency: %d\n\n", cfg.Requests, cfg.Concurrency)

	stats := runLoad(ctx, cfg)

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("LOAD TEST RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, cfg, stats); err != nil {
			fmt.Printf("\nWarning: failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\nReport written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.APIURL, "api-url", defaultAPIURL, "Mint API base URL")
	flag.StringVar(&cfg.Caller, "caller", defaultCaller, "Caller address to mint to")
	flag.StringVar(&cfg.Currency, "currency", defaultCurrency, "Payment currency (primary or alternate)")
	flag.StringVar(&cfg.AttachedValue, "attached-value", "0", "Attached value per request, decimal string (primary only)")
	flag.Uint64Var(&cfg.Quantity, "quantity", 1, "Tokens per mint call (1-10)")
	flag.IntVar(&cfg.Requests, "requests", 100, "Total mint calls to issue")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent workers (default: 5)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "timeout", 30, "Per-request timeout in seconds (default: 30)")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.Quantity == 0 {
		cfg.Quantity = 1
	}
	if cfg.Requests <= 0 {
		cfg.Requests = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Concurrency > 50 {
		cfg.Concurrency = 50
	}

	return cfg
}

func checkHealth(ctx context.Context, cfg *Config) error {
	reqCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, cfg.APIURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}

	return nil
}

func runLoad(ctx context.Context, cfg *Config) *RunStats {
	jobs := make(chan int)
	results := make(chan RequestResult, cfg.Concurrency)

	client := &http.Client{Timeout: cfg.Timeout}

	var wg sync.WaitGroup
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				results <- issueMint(ctx, client, cfg)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Requests; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	stats := &RunStats{
		StartTime:  time.Now(),
		ErrorCodes: make(map[string]int),
	}

	for result := range results {
		stats.Total++
		stats.Latencies = append(stats.Latencies, result.Latency)

		if result.Status == http.StatusCreated {
			stats.Succeeded++
		} else {
			stats.Failed++
			code := result.ErrorCode
			if code == "" && result.Err != nil {
				code = "transport_error"
			}
			stats.ErrorCodes[code]++
		}

		if cfg.Debug {
			fmt.Printf("status=%d code=%s latency=%s\n", result.Status, result.ErrorCode, formatDuration(result.Latency))
		} else if stats.Total%50 == 0 {
			fmt.Printf("\r⏳ %d/%d requests (%d ok, %d failed)", stats.Total, cfg.Requests, stats.Succeeded, stats.Failed)
		}
	}

	stats.EndTime = time.Now()
	return stats
}

func issueMint(ctx context.Context, client *http.Client, cfg *Config) RequestResult {
	body := map[string]any{
		"caller":   cfg.Caller,
		"quantity": cfg.Quantity,
		"currency": cfg.Currency,
	}
	if cfg.Currency == defaultCurrency && cfg.AttachedValue != "" {
		body["attached_value"] = cfg.AttachedValue
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return RequestResult{Err: err}
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.APIURL+"/api/v1/mint", bytes.NewReader(payload))
	if err != nil {
		return RequestResult{Err: err, Latency: time.Since(start)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return RequestResult{Err: err, Latency: time.Since(start)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	result := RequestResult{
		Status:  resp.StatusCode,
		Latency: time.Since(start),
	}

	if resp.StatusCode != http.StatusCreated {
		var errResp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			result.ErrorCode = errResp.Error.Code
		}
	}

	return result
}

func printStats(stats *RunStats) {
	elapsed := stats.EndTime.Sub(stats.StartTime)

	fmt.Printf("\nRequests:   %d total, %d succeeded (%s), %d failed\n",
		stats.Total, stats.Succeeded, percentageString(stats.Succeeded, stats.Total), stats.Failed)
	fmt.Printf("Duration:   %s\n", formatDuration(elapsed))
	fmt.Printf("Throughput: %s\n", formatRate(stats.Total, elapsed))

	if len(stats.Latencies) > 0 {
		fmt.Printf("\nLatency:\n")
		fmt.Printf("  min: %s\n", formatDuration(percentile(stats.Latencies, 0)))
		fmt.Printf("  p50: %s\n", formatDuration(percentile(stats.Latencies, 50)))
		fmt.Printf("  p90: %s\n", formatDuration(percentile(stats.Latencies, 90)))
		fmt.Printf("  p99: %s\n", formatDuration(percentile(stats.Latencies, 99)))
		fmt.Printf("  max: %s\n", formatDuration(percentile(stats.Latencies, 100)))
	}

	if len(stats.ErrorCodes) > 0 {
		fmt.Printf("\nFailures by code:\n")
		codes := make([]string, 0, len(stats.ErrorCodes))
		for code := range stats.ErrorCodes {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("  %-28s %d\n", code, stats.ErrorCodes[code])
		}
	}
}

// percentile returns the p-th percentile latency; p=0 is min, p=100 is max.
func percentile(latencies []time.Duration, p int) time.Duration {
	if len(latencies) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	idx := (len(sorted) - 1) * p / 100
	return sorted[idx]
}

func writeMarkdownReport(filepath string, cfg *Config, stats *RunStats) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	elapsed := stats.EndTime.Sub(stats.StartTime)

	_, _ = fmt.Fprintf(file, "# Mint API Load Test Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Configuration\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **API URL** | `%s` |\n", cfg.APIURL)
	_, _ = fmt.Fprintf(file, "| **Currency** | %s |\n", cfg.Currency)
	_, _ = fmt.Fprintf(file, "| **Quantity per call** | %d |\n", cfg.Quantity)
	_, _ = fmt.Fprintf(file, "| **Requests** | %d |\n", cfg.Requests)
	_, _ = fmt.Fprintf(file, "| **Concurrency** | %d |\n", cfg.Concurrency)
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Summary\n\n")
	_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Total** | %d |\n", stats.Total)
	_, _ = fmt.Fprintf(file, "| **Succeeded** | %d (%s) |\n", stats.Succeeded, percentageString(stats.Succeeded, stats.Total))
	_, _ = fmt.Fprintf(file, "| **Failed** | %d |\n", stats.Failed)
	_, _ = fmt.Fprintf(file, "| **Duration** | %s |\n", formatDuration(elapsed))
	_, _ = fmt.Fprintf(file, "| **Throughput** | %s |\n", formatRate(stats.Total, elapsed))
	_, _ = fmt.Fprintf(file, "\n")

	if len(stats.Latencies) > 0 {
		_, _ = fmt.Fprintf(file, "## Latency\n\n")
		_, _ = fmt.Fprintf(file, "| Percentile | Latency |\n")
		_, _ = fmt.Fprintf(file, "|------------|--------|\n")
		_, _ = fmt.Fprintf(file, "| min | %s |\n", formatDuration(percentile(stats.Latencies, 0)))
		_, _ = fmt.Fprintf(file, "| p50 | %s |\n", formatDuration(percentile(stats.Latencies, 50)))
		_, _ = fmt.Fprintf(file, "| p90 | %s |\n", formatDuration(percentile(stats.Latencies, 90)))
		_, _ = fmt.Fprintf(file, "| p99 | %s |\n", formatDuration(percentile(stats.Latencies, 99)))
		_, _ = fmt.Fprintf(file, "| max | %s |\n", formatDuration(percentile(stats.Latencies, 100)))
		_, _ = fmt.Fprintf(file, "\n")
	}

	if len(stats.ErrorCodes) > 0 {
		_, _ = fmt.Fprintf(file, "## Failures by Code\n\n")
		_, _ = fmt.Fprintf(file, "| Code | Count |\n")
		_, _ = fmt.Fprintf(file, "|------|-------|\n")

		codes := make([]string, 0, len(stats.ErrorCodes))
		for code := range stats.ErrorCodes {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			_, _ = fmt.Fprintf(file, "| `%s` | %d |\n", code, stats.ErrorCodes[code])
		}
	}

	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/lucenlabs/daylog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[daylog]
  destination = "simple.log"
  folder = "./simple_logs"
  mode = "full"
  level = 1 # Debug
  flush_interval_ms = 100
  idle_threshold_s = 2
  archive_enabled = false
  console_target = "stdout"
`

func main() {
	fmt.Println("--- Simple Writer Example ---")

	// --- Setup Config ---
	// Create dummy config file
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue, the loader falls back to defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := daylog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Writer ---
	writer, err := daylog.NewWriter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create writer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Writer initialized, destination: %s\n", writer.Destination())

	// --- Periodic flush of sparse traffic ---
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				writer.ForcePush()
			case <-done:
				return
			}
		}
	}()

	// --- Logging ---
	writer.Enqueue(daylog.Record{
		Module:  "main",
		Level:   daylog.LevelInfo,
		Message: "Application starting...",
	})
	writer.Enqueue(daylog.Record{
		Module:  "main",
		Level:   daylog.LevelWarning,
		Message: fmt.Sprintf("Potential issue detected, threshold %.2f", 0.95),
	})

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; n < 10; n++ {
				writer.Enqueue(daylog.Record{
					ThreadID: fmt.Sprintf("g%d", id),
					Module:   "worker",
					Level:    daylog.LevelDebug,
					Message:  fmt.Sprintf("iteration %d on %d cpus", n, runtime.NumCPU()),
				})
				time.Sleep(10 * time.Millisecond)
			}
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	// --- Shutdown ---
	close(done)
	fmt.Println("Closing writer...")
	writer.Close()
	fmt.Println("--- Example Finished ---")
	fmt.Println("Check the log file in './simple_logs'.")
}

// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lucenlabs/daylog"
	"github.com/lucenlabs/daylog/compat"
)

func main() {
	// Create and configure writer
	cfg := daylog.DefaultConfig()
	cfg.Destination = "fasthttp.log"
	cfg.Folder = "/var/log/fasthttp"
	cfg.Level = daylog.LevelDebug
	cfg.Display = int64(daylog.DisplayLogLevel | daylog.DisplayDateTime | daylog.DisplayModuleName | daylog.DisplayMessage)

	writer, err := daylog.NewWriter(cfg)
	if err != nil {
		panic(err)
	}
	defer writer.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		writer,
		compat.WithDefaultLevel(daylog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Bound queue latency under sparse traffic
	go func() {
		for range time.Tick(time.Second) {
			writer.ForcePush()
		}
	}()

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Custom logic to detect log levels
	// Can inspect specific fasthttp message patterns

	if strings.Contains(msg, "connection cannot be served") {
		return daylog.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return daylog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}

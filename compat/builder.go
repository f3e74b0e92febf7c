// FILE: compat/builder.go
package compat

import (
	"fmt"

	"github.com/lucenlabs/daylog"
)

// Builder provides a flexible way to create configured adapters for gnet and fasthttp.
// It can use an existing *daylog.Writer instance or create a new one from a *daylog.Config
type Builder struct {
	writer *daylog.Writer
	cfg    *daylog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithWriter specifies an existing writer to use for the adapters
// Recommended for applications that already have a central writer instance
// If this is set WithConfig is ignored
func (b *Builder) WithWriter(w *daylog.Writer) *Builder {
	if w == nil {
		b.err = fmt.Errorf("daylog/compat: provided writer cannot be nil")
		return b
	}
	b.writer = w
	return b
}

// WithConfig provides a configuration for a new writer instance
// This is used only if an existing writer is NOT provided via WithWriter
// If neither WithWriter nor WithConfig is used, a default writer will be created
func (b *Builder) WithConfig(cfg *daylog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getWriter resolves the writer to be used, creating one if necessary
func (b *Builder) getWriter() (*daylog.Writer, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.writer != nil {
		return b.writer, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = daylog.DefaultConfig()
	}

	w, err := daylog.NewWriter(cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created writer for subsequent builds with this builder
	b.writer = w
	return w, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(w, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(w, opts...), nil
}

// GetWriter returns the underlying *daylog.Writer instance
// If a writer has not been provided or created yet, it will be initialized
func (b *Builder) GetWriter() (*daylog.Writer, error) {
	return b.getWriter()
}

// --- Example Usage ---
//
// The following demonstrates how to share one writer between gnet and fasthttp
//
//	// 1. Create and configure the application's writer
//	cfg := daylog.DefaultConfig()
//	cfg.Destination = "server.log"
//	cfg.Level = daylog.LevelDebug
//	w, err := daylog.NewWriter(cfg)
//	if err != nil { /* handle error */ }
//	defer w.Close()
//
//	// 2. Create a builder and provide the existing writer
//	builder := compat.NewBuilder().WithWriter(w)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")

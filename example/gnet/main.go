// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lucenlabs/daylog"
	"github.com/lucenlabs/daylog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	cfg := daylog.DefaultConfig()
	cfg.Destination = "gnet.log"
	cfg.Folder = "/var/log/gnet"
	cfg.Level = daylog.LevelDebug

	writer, err := daylog.NewWriter(cfg)
	if err != nil {
		panic(err)
	}
	defer writer.Close()

	gnetAdapter := compat.NewGnetAdapter(writer)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}

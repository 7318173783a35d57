package metrics

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

// StartServer serves the collector on /metrics at cfg.Addr() in a background
// goroutine. The returned server is shut down by the caller.
func StartServer(cfg Config, c *Collector) (*http.Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	log.Info("Starting metrics server", "addr", "http://"+listener.Addr().String()+"/metrics")
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed", "err", err)
		}
	}()
	return srv, nil
}

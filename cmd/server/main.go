package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/amalg/go-minesweeper/internal/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	srv := server.New(log)
	addr := fmt.Sprintf("0.0.0.0:%d", *port)
	log.WithField("addr", addr).Info("minesweeper server listening")
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

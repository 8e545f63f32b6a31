package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/chessboard/pkg"
)

func main() {
	configPath := flag.String("config", "./chessboard.yml", "path to config file")
	flag.Parse()

	cfg, err := pkg.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad config: %v\n", err)
		os.Exit(1)
	}

	pkg.InitLog(cfg.LogPath, "SERVER: ")
	log.Printf("Server started, listening at %s", cfg.SSHPort)

	s := pkg.NewServer(cfg)
	go s.CleanIdleSessions()
	go func() {
		if err := s.ListenAndServe(); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	for _, sess := range s.Sessions() {
		log.Printf("Dropping session %s", sess.Name)
	}
	s.Close()
}

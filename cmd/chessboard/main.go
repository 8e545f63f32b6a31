package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/gui"
)

func main() {
	configPath := flag.String("config", "./chessboard.yml", "path to config file")
	logPath := flag.String("log", "", "path to log file (overrides config)")
	startFEN := flag.String("fen", "", "starting position (overrides config)")
	print := flag.Bool("print", false, "print the starting position and exit")
	flag.Parse()

	cfg, err := pkg.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad config: %v\n", err)
		os.Exit(1)
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}

	rules := pkg.NewEngineRules()
	var board *pkg.Board
	if cfg.StartFEN != "" {
		board, err = pkg.NewBoardFromFEN(rules, cfg.StartFEN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad starting position: %v\n", err)
			os.Exit(1)
		}
	} else {
		board = pkg.NewBoard(rules)
	}

	if *print {
		fmt.Print(pkg.Diagram(board.Position()))
		return
	}

	pkg.InitLog(cfg.LogPath, "CLIENT: ")
	log.Println("New board")

	app, err := gui.NewApp(cfg, board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// Command rps plays a rock-paper-scissors match and prints the report.
//
// Without flags it plays the predefined five round match:
//
//	rps
//	rps -player1 rock,paper -player2 paper,paper
//	rps -json
//	rps -lenient -player1 rock -player2 lizard
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"rps_match/internal/logger"
	"rps_match/internal/match"
	"rps_match/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	player1 := fs.String("player1", "", "comma separated moves of player 1")
	player2 := fs.String("player2", "", "comma separated moves of player 2")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	lenient := fs.Bool("lenient", false, "score unknown moves as 0 with a warning instead of failing")
	logLevel := fs.String("log-level", "warn", "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.New(stderr, *logLevel, false)

	seq := match.DefaultSequence()
	if *lenient {
		if *player1 != "" || *player2 != "" {
			seq = match.Sequence{Player1: match.SplitMoves(*player1), Player2: match.SplitMoves(*player2)}
		}
	} else if *player1 != "" || *player2 != "" {
		var err error
		if seq.Player1, err = match.ParseMoves(*player1); err != nil {
			fmt.Fprintf(stderr, "player1: %v\n", err)
			return 2
		}
		if seq.Player2, err = match.ParseMoves(*player2); err != nil {
			fmt.Fprintf(stderr, "player2: %v\n", err)
			return 2
		}
	}

	driver := match.NewDriver(log, 0)
	if *lenient {
		driver = driver.Lenient()
	}

	if *asJSON {
		rep, err := driver.Play(seq, nil)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	rep, err := driver.Play(seq, func(r match.Round) error {
		return report.WriteRound(stdout, r)
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := report.WriteFinal(stdout, rep); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

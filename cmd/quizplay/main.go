// Command quizplay plays a GloboQuiz quiz in the terminal.
//
//	quizplay -server http://localhost:8000 3
//	quizplay http://localhost:8000/play/3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/globoquiz/internal/player"
)

func main() {
	server := flag.String("server", "http://localhost:8000", "GloboQuiz server base URL")
	debug := flag.Bool("debug", false, "log requests and errors")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-server URL] <quiz id | play URL>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := zap.NewNop()
	if *debug {
		log, _ = zap.NewDevelopment()
	}
	defer func() { _ = log.Sync() }()

	base, id, err := target(*server, flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Debug("playing", zap.String("server", base), zap.String("quiz_id", id))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := player.Play(ctx, player.NewLoader(base), id, os.Stdin, os.Stdout); err != nil {
		var le *player.LoadError
		if errors.As(err, &le) {
			log.Debug("load failed", zap.Int("status", le.Status))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// target accepts a bare quiz id or a full /play/{id} URL. A URL overrides
// the -server flag.
func target(server, arg string) (base, id string, err error) {
	if !strings.Contains(arg, "/") {
		return strings.TrimRight(server, "/"), arg, nil
	}
	u, err := url.Parse(arg)
	if err != nil {
		return "", "", err
	}
	if player.RouteFor(u.Path) != player.RoutePlayer {
		return "", "", fmt.Errorf("%s is not a quiz player URL", arg)
	}
	id = player.QuizIDFromPath(u.Path)
	if id == "" {
		return "", "", fmt.Errorf("no quiz id in %s", arg)
	}
	if u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(server, "/"), id, nil
	}
	return u.Scheme + "://" + u.Host, id, nil
}

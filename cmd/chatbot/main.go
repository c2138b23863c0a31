package main

import (
	"chatbot/catalog"
	"chatbot/conversation"
	"chatbot/domain"
	"chatbot/internal"
	"chatbot/projection"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, config); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run builds two bots that befriend each other, lets the asker question the
// responder and prints both transcripts.
func run(ctx context.Context, w io.Writer, config internal.Config) error {
	log := logs.GetLoggerFromString(config.LogLevel)

	c, err := catalog.Default().WithBounds(catalog.Bounds{Min: config.LevelMin, Max: config.LevelMax})
	if err != nil {
		return fmt.Errorf("catalog error: %w", err)
	}

	seed := uint64(time.Now().UnixNano())
	if config.Seed != nil {
		seed = uint64(*config.Seed)
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	asker := domain.NewChatBot(log, config.AskerName, config.AskerLevel, c, rng)
	responder := domain.NewChatBot(log, config.ResponderName, config.ResponderLevel, c, rng)
	asker.AddFriend(responder)
	responder.AddFriend(asker)
	log.Info("Bots ready",
		"asker", asker.Name(), "asker_level", asker.Level(),
		"responder", responder.Name(), "responder_level", responder.Level(),
		"seed", seed)

	session, err := conversation.NewHost(log).Converse(ctx, asker, responder, config.Rounds)
	if err != nil {
		return fmt.Errorf("conversation failed: %w", err)
	}

	projection.RenderSession(w, session, config.Colours)
	fmt.Fprintln(w)
	projection.NewTranscript(asker).Render(w, config.Colours)
	fmt.Fprintln(w)
	projection.NewTranscript(responder).Render(w, config.Colours)
	return nil
}

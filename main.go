package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/config"
	"github.com/lazharichir/baccarat/events"
	"github.com/lazharichir/baccarat/table"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var interactive bool
	var rule string
	flag.BoolVar(&interactive, "i", false, "ask before each new round")
	flag.BoolVar(&interactive, "interactive", false, "ask before each new round")
	flag.IntVar(&cfg.Decks, "decks", cfg.Decks, "number of decks in the shoe (6 or 8)")
	seed := flag.Int64("seed", cfg.Seed, "shuffle seed, random when unset")
	flag.StringVar(&rule, "rule", string(cfg.Policy), "banker drawing rule: literal or standard")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "dump every round to the log")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.HasSeed = true
		}
	})
	cfg.Seed = *seed

	policy, err := baccarat.ParsePolicy(rule)
	if err != nil {
		log.Fatalf("Invalid -rule: %v", err)
	}
	cfg.Policy = policy

	var shoeOpts []cards.ShoeOption
	if cfg.HasSeed {
		shoeOpts = append(shoeOpts, cards.WithShuffler(cards.NewSeededShuffler(cfg.Seed)))
	}

	shoe, err := cards.NewShoe(cfg.Decks, shoeOpts...)
	if err != nil {
		log.Fatalf("Failed to build shoe: %v", err)
	}
	shoe.Shuffle()

	opts := []table.Option{
		table.WithPolicy(cfg.Policy),
		table.WithMinCards(cfg.MinCards),
		table.WithRoundLimit(cfg.MaxRounds),
		table.WithVerbose(cfg.Verbose),
	}
	if interactive {
		opts = append(opts, table.WithInteractive(table.NewLinePrompter(os.Stdin, os.Stdout)))
	}

	loop := table.NewGameLoop(shoe, events.NewInMemoryEventStore(), opts...)
	if cfg.Verbose {
		log.Printf("Starting session %s: %d decks, banker rule %s", loop.SessionID(), cfg.Decks, cfg.Policy)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := loop.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Session %s interrupted", loop.SessionID())
			return
		}
		stop()
		log.Fatalf("Game failed: %v", err)
	}
}

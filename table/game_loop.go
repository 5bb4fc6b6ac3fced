package table

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/events"
)

// GameState represents the current state of the game loop
type GameState string

const (
	GameStateIdle           GameState = "idle"
	GameStateDealing        GameState = "dealing"
	GameStateAwaitingPlayer GameState = "awaiting_player"
	GameStateComplete       GameState = "complete"
)

// Reasons recorded in SessionEnded
const (
	EndReasonShoeDepleted = "shoe_depleted"
	EndReasonPlayerQuit   = "player_quit"
	EndReasonRoundLimit   = "round_limit"
	EndReasonCancelled    = "cancelled"
	EndReasonError        = "error"
)

// DefaultMinCards is the shoe size below which no new round is started.
const DefaultMinCards = baccarat.MinCardsForRound

// Shoe is the card source a session deals from. *cards.Shoe implements it.
type Shoe interface {
	baccarat.Dealer
	Size() int
	Decks() int
}

// GameLoop plays rounds from a single shoe until it runs low, the player
// quits, or the context is cancelled.
type GameLoop struct {
	sessionID    string
	currentState GameState
	shoe         Shoe
	eventStore   events.EventStore
	prompter     Prompter
	out          io.Writer
	logger       *log.Logger
	policy       baccarat.BankerPolicy
	minCards     int
	roundLimit   int
	verbose      bool
	tally        Tally
}

// Option configures a GameLoop
type Option func(*GameLoop)

// WithInteractive asks the prompter after every round whether to keep playing
func WithInteractive(p Prompter) Option {
	return func(g *GameLoop) { g.prompter = p }
}

// WithOutput sets where rounds and the summary are printed
func WithOutput(w io.Writer) Option {
	return func(g *GameLoop) { g.out = w }
}

// WithLogger sets the logger used for diagnostics and verbose dumps
func WithLogger(l *log.Logger) Option {
	return func(g *GameLoop) { g.logger = l }
}

// WithPolicy selects the banker drawing policy
func WithPolicy(p baccarat.BankerPolicy) Option {
	return func(g *GameLoop) { g.policy = p }
}

// WithMinCards sets the reshuffle threshold; it is never allowed below what one round needs
func WithMinCards(n int) Option {
	return func(g *GameLoop) {
		if n < baccarat.MinCardsForRound {
			n = baccarat.MinCardsForRound
		}
		g.minCards = n
	}
}

// WithRoundLimit stops the session after n rounds; 0 means no limit
func WithRoundLimit(n int) Option {
	return func(g *GameLoop) { g.roundLimit = n }
}

// WithVerbose dumps every finished round to the logger
func WithVerbose(v bool) Option {
	return func(g *GameLoop) { g.verbose = v }
}

// NewGameLoop creates a game loop over an already shuffled shoe
func NewGameLoop(shoe Shoe, eventStore events.EventStore, opts ...Option) *GameLoop {
	g := &GameLoop{
		sessionID:    uuid.NewString(),
		currentState: GameStateIdle,
		shoe:         shoe,
		eventStore:   eventStore,
		out:          os.Stdout,
		logger:       log.Default(),
		policy:       baccarat.LiteralPolicy,
		minCards:     DefaultMinCards,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SessionID identifies this session's events in the event store
func (g *GameLoop) SessionID() string {
	return g.sessionID
}

// State returns the current state of the loop
func (g *GameLoop) State() GameState {
	return g.currentState
}

// Tally returns the results so far
func (g *GameLoop) Tally() Tally {
	return g.tally
}

// Run plays rounds until the session ends and prints the end-of-game summary.
// A failed round ends the session; the summary is still printed and the error returned.
func (g *GameLoop) Run(ctx context.Context) (Tally, error) {
	if err := g.eventStore.Append(events.SessionStarted{
		SessionID: g.sessionID,
		Decks:     g.shoe.Decks(),
		ShoeSize:  g.shoe.Size(),
		Policy:    string(g.policy),
	}); err != nil {
		return g.tally, fmt.Errorf("failed to record session start: %w", err)
	}

	reason, runErr := g.runLoop(ctx)

	g.transitionTo(GameStateComplete)
	PrintSummary(g.out, g.tally)

	if err := g.eventStore.Append(events.SessionEnded{
		SessionID: g.sessionID,
		Rounds:    g.tally.Rounds,
		Reason:    reason,
	}); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to record session end: %w", err)
	}

	return g.tally, runErr
}

// runLoop is the main loop; it returns why the session ended
func (g *GameLoop) runLoop(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return EndReasonCancelled, ctx.Err()
		default:
		}

		if g.shoe.Size() < g.minCards {
			return EndReasonShoeDepleted, nil
		}
		if g.roundLimit > 0 && g.tally.Rounds >= g.roundLimit {
			return EndReasonRoundLimit, nil
		}

		g.transitionTo(GameStateDealing)
		if err := g.handleDealingState(); err != nil {
			return EndReasonError, err
		}

		if g.prompter == nil {
			continue
		}

		g.transitionTo(GameStateAwaitingPlayer)
		again, err := g.handleAwaitingPlayerState()
		if err != nil {
			return EndReasonError, err
		}
		if !again {
			return EndReasonPlayerQuit, nil
		}
	}
}

// transitionTo changes the game state to a new state
func (g *GameLoop) transitionTo(newState GameState) {
	g.currentState = newState
}

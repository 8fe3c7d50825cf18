// Command freecell-solver deals a FreeCell board (randomly or via OCR on a
// saved screenshot), runs the best-first solver against it, and prints the
// resulting move sequence and search statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/freecell-solver/freecell-solver/cards"
	"github.com/freecell-solver/freecell-solver/deal"
	"github.com/freecell-solver/freecell-solver/freecell"
	"github.com/freecell-solver/freecell-solver/internal/config"
	"github.com/freecell-solver/freecell-solver/internal/logging"
	"github.com/freecell-solver/freecell-solver/search"
)

func main() {
	cfg := config.Default()

	dealSource := flag.String("deal", string(cfg.DealSource), "deal source: random or ocr")
	seed := flag.Int64("seed", cfg.Seed, "seed for the random deal source")
	scenePath := flag.String("scene", "", "screenshot path (ocr deal source)")
	templateDir := flag.String("templates", "", "card template directory (ocr deal source)")
	maxNodes := flag.Int("max-nodes", cfg.MaxNodes, "node-exploration budget")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg.DealSource = config.DealSource(*dealSource)
	cfg.Seed = *seed
	cfg.ScenePath = *scenePath
	cfg.TemplateDir = *templateDir
	cfg.MaxNodes = *maxNodes
	cfg = cfg.ApplyEnv()
	if *verbose {
		cfg.LogLevel = logrus.DebugLevel
	}

	log := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	deck, err := acquireDeal(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to acquire deal")
	}

	initial, err := freecell.NewGameState(deck)
	if err != nil {
		log.WithError(err).Fatal("failed to construct initial game state")
	}

	solver := search.NewSolver(initial, search.WithLogger(log))

	start := time.Now()
	result, err := solver.Solve(context.Background(), cfg.MaxNodes)
	elapsed := time.Since(start)
	if err != nil {
		log.WithError(err).Fatal("solve failed")
	}

	printResult(result, elapsed)
}

func acquireDeal(cfg config.Config, log *logrus.Logger) ([52]cards.Card, error) {
	switch cfg.DealSource {
	case config.DealSourceOCR:
		log.WithFields(logrus.Fields{"scene": cfg.ScenePath, "templates": cfg.TemplateDir}).Info("acquiring deal via ocr")
		return deal.OCR{ScenePath: cfg.ScenePath, TemplateDir: cfg.TemplateDir}.Deal()
	default:
		log.WithField("seed", cfg.Seed).Info("acquiring deal via random shuffle")
		return deal.Random{Seed: cfg.Seed}.Deal(), nil
	}
}

func printResult(result search.SolveResult, elapsed time.Duration) {
	fmt.Printf("outcome: %s\n", result.Outcome)
	fmt.Printf("nodes explored: %d\n", result.NodesExplored)
	fmt.Printf("elapsed: %s\n", elapsed)

	if result.Outcome != search.Solved {
		return
	}

	fmt.Printf("solution (%d moves):\n", len(result.Moves))
	for i, m := range result.Moves {
		fmt.Printf("%4d. %s\n", i+1, describeMove(m))
	}
}

func describeMove(m freecell.Move) string {
	switch m.Kind {
	case freecell.ColToFoundation:
		return fmt.Sprintf("cascade %d -> foundation", m.Source)
	case freecell.FreecellToFoundation:
		return fmt.Sprintf("freecell %d -> foundation", m.Source)
	case freecell.ColToFreecell:
		return fmt.Sprintf("cascade %d -> freecell %d", m.Source, m.Dest)
	case freecell.FreecellToCol:
		return fmt.Sprintf("freecell %d -> cascade %d", m.Source, m.Dest)
	case freecell.ColToCol:
		return fmt.Sprintf("cascade %d -> cascade %d (%d cards)", m.Source, m.Dest, m.PileSize)
	default:
		return "unknown move"
	}
}

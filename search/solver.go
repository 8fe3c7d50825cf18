package search

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/freecell-solver/freecell-solver/freecell"
)

// Outcome classifies why Solve stopped.
type Outcome int

const (
	// Solved means the returned Moves, replayed from the initial state,
	// reach a won GameState.
	Solved Outcome = iota
	// Exhausted means the frontier emptied without finding a goal: no
	// solution exists reachable from the states actually explored.
	Exhausted
	// BudgetCut means the node-exploration budget was spent before the
	// frontier emptied or a goal was found.
	BudgetCut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "Solved"
	case Exhausted:
		return "Exhausted"
	case BudgetCut:
		return "BudgetCut"
	default:
		return "Unknown"
	}
}

// SolveResult is the outcome of a Solve call.
type SolveResult struct {
	Outcome       Outcome
	Moves         []freecell.Move
	NodesExplored int
}

// Solver owns the frontier, the visited set, and the main expansion loop
// for a single starting position. Solve holds all of its search state in
// locals, so a Solver may be reused for repeated runs with different
// budgets. The search runs on a single goroutine end to end.
type Solver struct {
	initial freecell.GameState
	log     *logrus.Logger
}

// SolverOption configures a Solver at construction.
type SolverOption func(*Solver)

// WithLogger overrides the solver's logger. The default logs at Warn level
// only, so a library caller that never configures logging stays quiet.
func WithLogger(l *logrus.Logger) SolverOption {
	return func(s *Solver) { s.log = l }
}

// NewSolver binds a starting state and applies any options.
func NewSolver(initial freecell.GameState, opts ...SolverOption) *Solver {
	s := &Solver{
		initial: initial,
		log:     defaultLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Solve runs the best-first loop until the goal is found, the frontier
// empties, the node budget is spent, or ctx is canceled. Per-node budget
// accounting happens before each pop, so a BudgetCut result always reports
// NodesExplored == maxNodes exactly.
func (s *Solver) Solve(ctx context.Context, maxNodes int) (SolveResult, error) {
	frontier := newFrontier()
	visited := make(map[uint64]bool)

	rootHash := s.initial.Hash()
	visited[rootHash] = true
	frontier.push(&node{
		state:  s.initial,
		fScore: Heuristic(s.initial),
		gScore: 0,
	})

	s.log.WithField("max_nodes", maxNodes).Info("solve: starting")

	nodesExplored := 0
	for {
		if frontier.Len() == 0 {
			s.log.WithField("nodes_explored", nodesExplored).Info("solve: frontier exhausted")
			return SolveResult{Outcome: Exhausted, NodesExplored: nodesExplored}, nil
		}
		if nodesExplored >= maxNodes {
			s.log.WithField("nodes_explored", nodesExplored).Info("solve: budget cut")
			return SolveResult{Outcome: BudgetCut, NodesExplored: nodesExplored}, nil
		}
		if err := ctx.Err(); err != nil {
			return SolveResult{NodesExplored: nodesExplored}, err
		}

		current := frontier.popMin()
		nodesExplored++

		if current.state.IsWon() {
			s.log.WithField("nodes_explored", nodesExplored).Info("solve: solved")
			return SolveResult{
				Outcome:       Solved,
				Moves:         reconstructPath(current),
				NodesExplored: nodesExplored,
			}, nil
		}

		for _, m := range current.state.LegalMoves() {
			successor, err := current.state.Apply(m)
			if err != nil {
				// The generator never emits illegal moves; a failure here
				// would indicate a generator/applier mismatch, not a
				// reachable runtime condition.
				continue
			}

			h := successor.Hash()
			if visited[h] {
				continue
			}
			visited[h] = true

			g := current.gScore + 1
			frontier.push(&node{
				state:  successor,
				fScore: g + Heuristic(successor),
				gScore: g,
				parent: current,
				move:   m,
			})
		}

		if nodesExplored%100000 == 0 {
			s.log.WithFields(logrus.Fields{
				"nodes_explored": nodesExplored,
				"frontier_size":  frontier.Len(),
			}).Info("solve: progress")
		}
	}
}

// reconstructPath walks parent pointers from n back to the root and
// reverses the result, producing the move sequence from the initial state
// to n.
func reconstructPath(n *node) []freecell.Move {
	var reversed []freecell.Move
	for cur := n; cur.parent != nil; cur = cur.parent {
		reversed = append(reversed, cur.move)
	}
	moves := make([]freecell.Move, len(reversed))
	for i, m := range reversed {
		moves[len(reversed)-1-i] = m
	}
	return moves
}

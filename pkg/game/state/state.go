// Package state holds the mutable session shared by the interactive viewer:
// the current maze, the config that built it and a short message log.
package state

import (
	"fmt"

	"mazegen/pkg/engine/random"
	"mazegen/pkg/game/setup"
	"mazegen/pkg/game/solver"
)

const maxMessages = 5

// Session represents one interactive viewing session
type Session struct {
	Config setup.Config
	Maze   *setup.Maze

	ShowSolution bool

	Messages []string

	Generation int // number of mazes built in this session
}

// NewSession builds the first maze for cfg
func NewSession(cfg setup.Config) (*Session, error) {
	s := &Session{
		Config:       cfg,
		ShowSolution: cfg.Solve,
		Messages:     make([]string, 0),
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Regenerate builds a new maze. A fixed seed is advanced by one so each
// regeneration differs yet the sequence stays reproducible.
func (s *Session) Regenerate() error {
	if s.Config.Seed != 0 {
		s.Config.Seed = nextSeed(s.Config.Seed)
	}
	if err := s.rebuild(); err != nil {
		return err
	}
	if s.ShowSolution && !s.Maze.Solved() {
		return s.solve()
	}
	return nil
}

// nextSeed advances seed by one, skipping zero since zero means clock-seeded
func nextSeed(seed int64) int64 {
	seed++
	if seed == 0 {
		seed++
	}
	return seed
}

// ToggleSolution flips solution visibility. The path is computed on first use
// when the session was started without solving.
func (s *Session) ToggleSolution() error {
	if !s.ShowSolution && !s.Maze.Solved() {
		if err := s.solve(); err != nil {
			return err
		}
	}
	s.ShowSolution = !s.ShowSolution
	return nil
}

// solve computes and marks the path of the current maze
func (s *Session) solve() error {
	t := s.Maze.Topology
	start, _ := t.Entrance()
	stop, _ := t.Exit()
	path, err := solver.Solve(t, start, stop,
		solver.WithSource(random.New(s.Maze.Seed)),
		solver.WithMode(s.Config.SolveMode),
	)
	if err != nil {
		return err
	}
	s.Maze.Path = path
	return nil
}

func (s *Session) rebuild() error {
	m, err := setup.Build(s.Config)
	if err != nil {
		return err
	}
	s.Maze = m
	s.Generation++
	s.AddMessage(fmt.Sprintf("%s maze #%d (seed %d)", m.Shape, s.Generation, m.Seed))
	return nil
}

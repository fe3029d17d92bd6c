// Package pipeline wires data loading, snapshot journaling, and the
// simulation into the one "recompute everything" operation every command
// and the TUI reload share.
package pipeline

import (
	"time"

	"github.com/sirupsen/logrus"

	"valvelet/internal/engine"
	"valvelet/internal/model"
	"valvelet/internal/source"
	"valvelet/internal/store"
)

// LoadResult holds one full recompute: the parsed inputs and everything the
// engine derived from them.
type LoadResult struct {
	Inputs   model.Inputs
	Result   *engine.RunResult
	LoadTime time.Duration
}

// Run loads the XML data from dataDir, journals the balance reading, and
// recomputes every scenario. Each call is a full, idempotent recompute;
// nothing is carried over from previous runs.
//
// A journal failure is logged and swallowed: history is a convenience and
// must never block the simulation.
func Run(dataDir string, horizonDays int, log *logrus.Logger) (*LoadResult, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	start := time.Now()

	in, err := source.New(dataDir, log).Load()
	if err != nil {
		return nil, err
	}

	journalSnapshot(in.Balance, log)

	res, err := engine.Run(in, horizonDays)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		Inputs:   in,
		Result:   res,
		LoadTime: time.Since(start),
	}, nil
}

func journalSnapshot(b model.BalanceSnapshot, log *logrus.Logger) {
	j, err := store.Open(store.DefaultPath())
	if err != nil {
		log.WithError(err).Debug("snapshot journal unavailable")
		return
	}
	defer func() { _ = j.Close() }()

	if err := j.Record(b); err != nil {
		log.WithError(err).Warn("could not journal balance reading")
	}
}

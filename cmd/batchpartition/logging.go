package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/matrix-profile-foundation/go-batchpartition"
)

// newLogger builds a go-kit structured logger writing logfmt lines to
// stderr, filtered to levelName ("debug", "info", "warn", "error"). Levels
// are promoted from an indirect dependency of the example corpus to a
// direct one here; see DESIGN.md.
func newLogger(levelName string) log.Logger {
	base := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	base = log.With(base, "ts", log.DefaultTimestampUTC)

	var filter level.Option
	switch levelName {
	case "debug":
		filter = level.AllowDebug()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		filter = level.AllowInfo()
	}
	return level.NewFilter(base, filter)
}

// logLevelStat emits one structured line per recursion level, used as the
// CLI's batchpartition.Options.DiagnosticSink.
func logLevelStat(logger log.Logger, s batchpartition.LevelStat) {
	level.Info(logger).Log(
		"msg", "level complete",
		"level", s.Level,
		"batches", s.BatchCount,
		"cut_total", s.CutTotal,
		"min_size", s.MinBatchSize,
		"max_size", s.MaxBatchSize,
		"mean_size", s.MeanBatchSize,
	)
}

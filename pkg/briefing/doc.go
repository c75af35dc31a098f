// Package briefing aggregates the three daily-briefing sources (weather,
// news, word of the day) into one transient Briefing and prepares it for
// email rendering.
//
// Sources are injected as small interfaces so tests can substitute
// deterministic stubs. None of them can fail the aggregation: each source
// client folds its own failures into its result records, so Collect always
// produces a complete Briefing.
package briefing

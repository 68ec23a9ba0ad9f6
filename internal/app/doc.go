// Package app wires configuration, output logs, engines, orchestration and
// presentation into the a079777 command.
//
// The flow of a run is:
//
//	config.ParseConfig -> seqlog.Create -> orchestration.ExecuteRuns
//	    -> orchestration.AnalyzeComparisonResults -> exit code
//
// The same execution path serves the plain CLI and the TUI dashboard; only
// the progress reporter and the result presenter differ.
package app

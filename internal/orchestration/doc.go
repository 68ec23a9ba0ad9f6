// Package orchestration runs one or more sequence engines over the same
// range, fans their progress out to displays and observers, traces each run
// and compares the outcomes. It decouples the scan from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration

// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Print* functions write the pre-run banner.
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/a079777/internal/format"
	"github.com/agbru/a079777/internal/metrics"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/ui"
)

// FormatQuietResult formats a result for quiet mode output: the final two
// values, the zero count and the last zero index, separated by spaces.
// The line is stable for scripting.
func FormatQuietResult(res orchestration.RunResult) string {
	r := res.Result
	return fmt.Sprintf("%d %d %d %d", r.State.B, r.State.A, r.Zeros, r.LastZero)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res orchestration.RunResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult prints the summary of a completed scan.
//
// Parameters:
//   - res: The run to summarize.
//   - opts: Presentation settings (range, output paths, verbosity).
//   - out: The output writer.
func DisplayResult(res orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, res)
		return
	}
	r := res.Result
	rng := opts.Range
	if rng.To == 0 {
		rng = r.Range
	}

	fmt.Fprintf(out, "\n--- Results ---\n")
	fmt.Fprintf(out, "Engine: %s%s%s\n", ui.ColorGreen(), res.Name, ui.ColorReset())
	fmt.Fprintf(out, "Execution time: %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())

	ind := metrics.ComputeIndicators(r.Processed, r.Zeros, res.Duration)
	fmt.Fprintf(out, "Indices computed: %s in %s chunks (%s)\n",
		format.FormatCount(r.Processed), format.FormatCount(r.Chunks),
		format.FormatThroughput(r.Processed, res.Duration))

	if r.Zeros == 0 {
		fmt.Fprintf(out, "Zeros found: %snone%s\n", ui.ColorYellow(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Zeros found: %s%s%s (last at n = %s%s%s)\n",
			ui.ColorGreen(), format.FormatCount(r.Zeros), ui.ColorReset(),
			ui.ColorCyan(), format.FormatCount(r.LastZero), ui.ColorReset())
	}
	if opts.Verbose && r.Processed > 0 {
		fmt.Fprintf(out, "Zero density: %.3f per billion indices\n", ind.ZerosPerBillion)
	}

	fmt.Fprintf(out, "\nThe last two values are:\n")
	fmt.Fprintf(out, "  a(%d) = %s%d%s\n", rng.To-1, ui.ColorBold(), r.State.B, ui.ColorReset())
	fmt.Fprintf(out, "  a(%d) = %s%d%s\n", rng.To, ui.ColorBold(), r.State.A, ui.ColorReset())

	if opts.SequenceFile != "" || opts.ZeroFile != "" {
		fmt.Fprintf(out, "\n%s✓ Sequence log: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), opts.SequenceFile, ui.ColorReset())
		fmt.Fprintf(out, "%s✓ Zero log:     %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), opts.ZeroFile, ui.ColorReset())
	}
}

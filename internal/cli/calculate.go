package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/a079777/internal/config"
	"github.com/agbru/a079777/internal/format"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/ui"
)

// PrintExecutionConfig displays the run configuration: range, seeds,
// chunking, outputs and the host environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	r := cfg.Range()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Scanning %sa(n) = (a(n-1) + a(n-2)) mod n%s for n in [%s%s%s, %s%s%s] (%s indices).\n",
		ui.ColorMagenta(), ui.ColorReset(),
		ui.ColorMagenta(), format.FormatCount(r.From), ui.ColorReset(),
		ui.ColorMagenta(), format.FormatCount(r.To), ui.ColorReset(),
		format.FormatCount(r.Len()))
	fmt.Fprintf(out, "Seeds: a(%d) = %s%d%s, a(%d) = %s%d%s.\n",
		r.From-2, ui.ColorCyan(), cfg.A0, ui.ColorReset(),
		r.From-1, ui.ColorCyan(), cfg.A1, ui.ColorReset())
	fmt.Fprintf(out, "Chunks of %s%s%s indices, checkpoint every %s%d%s chunks.\n",
		ui.ColorCyan(), config.FormatIndex(cfg.ChunkSize), ui.ColorReset(),
		ui.ColorCyan(), cfg.CheckpointEvery, ui.ColorReset())
	fmt.Fprintf(out, "Outputs: %s%s%s, %s%s%s.\n",
		ui.ColorCyan(), cfg.SequenceFile, ui.ColorReset(),
		ui.ColorCyan(), cfg.ZeroFile, ui.ColorReset())
	timeout := "none"
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout.String()
	}
	fmt.Fprintf(out, "Timeout: %s%s%s.\n", ui.ColorYellow(), timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s/%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		runtime.GOOS, runtime.GOARCH)
	if features := cpuFeatures(); len(features) > 0 {
		fmt.Fprintf(out, "CPU features: %s.\n", strings.Join(features, ", "))
	}
}

// cpuFeatures lists the instruction set extensions relevant to the 64-bit
// add/compare loop and to the 128-bit remainder used by the safe steps.
func cpuFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.X86.HasBMI2, "BMI2")
	add(cpu.X86.HasADX, "ADX")
	add(cpu.X86.HasAVX2, "AVX2")
	add(cpu.X86.HasAVX512F, "AVX-512F")
	add(cpu.ARM64.HasASIMD, "ASIMD")
	add(cpu.ARM64.HasATOMICS, "LSE atomics")
	return features
}

// PrintExecutionMode displays the execution mode (single engine vs
// cross-check).
//
// Parameters:
//   - engines: The engines that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(engines []orchestration.EngineChoice, out io.Writer) {
	var modeDesc string
	if len(engines) > 1 {
		names := make([]string, len(engines))
		for i, e := range engines {
			names[i] = e.Engine.Name()
		}
		modeDesc = fmt.Sprintf("Cross-check of %d engines (%s); only %s%s%s writes the output files",
			len(engines), strings.Join(names, ", "), ui.ColorGreen(), engines[0].Engine.Name(), ui.ColorReset())
	} else {
		modeDesc = fmt.Sprintf("Single scan with the %s%s%s engine",
			ui.ColorGreen(), engines[0].Engine.Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

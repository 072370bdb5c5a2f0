package supervisor

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// shouldTerminate reports whether a process command line belongs to a
// maestro-launched streamlit UI: more than three tokens and "streamlit" in
// the second one.
func shouldTerminate(cmdline []string) bool {
	return len(cmdline) > 3 && strings.Contains(cmdline[1], "streamlit")
}

// Reap sweeps the live process table and terminates every recognized UI
// process. The table races against the OS: processes vanish between
// enumeration and inspection, access can be denied, zombies linger.
// Per-process failures are swallowed; only a failed enumeration aborts.
func Reap(ctx context.Context) error {
	logger := logx.NewLogger("supervisor")

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "could not enumerate processes")
	}

	terminated := 0
	for _, p := range procs {
		cmdline, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		if !shouldTerminate(cmdline) {
			continue
		}
		if err := p.TerminateWithContext(ctx); err != nil {
			logger.Debug("could not terminate pid %d: %v", p.Pid, err)
			continue
		}
		logger.Info("terminated streamlit process (pid %d)", p.Pid)
		terminated++
	}
	logger.Debug("reap finished, %d process(es) terminated", terminated)
	return nil
}

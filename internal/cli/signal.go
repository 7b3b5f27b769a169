package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/GloriousEggroll/proton-wine/internal/debug"
)

// forwardSignals relays termination signals to the child so the program
// shuts down when the launcher is told to. The returned stop function
// releases the handler; it must be called once the child has exited.
func forwardSignals(diag io.Writer, reg *debug.Registry, child *exec.Cmd) (stop func()) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case sig := <-ch:
				if reg.Enabled(debug.Trace, "signal") {
					fmt.Fprintf(diag, "trace:signal: forwarding %s\n", describeOSSignal(sig))
				}
				if child.Process != nil {
					_ = child.Process.Signal(sig)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

func describeOSSignal(sig os.Signal) string {
	if s, ok := sig.(syscall.Signal); ok {
		return describeSignal(s)
	}
	return sig.String()
}

// Package profile unifies the profiling api between Gio profiler and pkg/profile.
package profile

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

// Profiler unifies the profiling api between Gio profiler and pkg/profile.
type Profiler struct {
	Type     Opt
	Starter  func(p *profile.Profile)
	Stopper  func()
	Recorder func(gtx layout.Context)
}

// Start profiling.
func (pfn *Profiler) Start() {
	if pfn.Starter == nil {
		return
	}
	if pfn.Type == Gio {
		pfn.Starter(nil)
		return
	}
	pfn.Stopper = profile.Start(pfn.Starter, profile.Quiet).Stop
}

// Stop profiling.
func (pfn *Profiler) Stop() {
	if pfn.Stopper != nil {
		pfn.Stopper()
	}
}

// Record GUI stats per frame.
func (pfn Profiler) Record(gtx layout.Context) {
	if pfn.Recorder != nil {
		pfn.Recorder(gtx)
	}
}

// Opt specifies the various profiling options.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

// ParseOpt validates a profiling option name.
func ParseOpt(s string) (Opt, error) {
	switch o := Opt(s); o {
	case "":
		return None, nil
	case None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio:
		return o, nil
	default:
		return None, fmt.Errorf("unknown profile %q", s)
	}
}

// NewProfiler creates a profiler based on the selected option. Failures
// of the Gio frame recorder are reported to log.
func (p Opt) NewProfiler(log zerolog.Logger) Profiler {
	switch p {
	case "", None:
		return Profiler{Type: None}
	case CPU:
		return Profiler{Type: p, Starter: profile.CPUProfile}
	case Memory:
		return Profiler{Type: p, Starter: profile.MemProfile}
	case Block:
		return Profiler{Type: p, Starter: profile.BlockProfile}
	case Goroutine:
		return Profiler{Type: p, Starter: profile.GoroutineProfile}
	case Mutex:
		return Profiler{Type: p, Starter: profile.MutexProfile}
	case Trace:
		return Profiler{Type: p, Starter: profile.TraceProfile}
	case Gio:
		var (
			recorder *profiling.CSVTimingRecorder
			err      error
		)
		return Profiler{
			Type: p,
			Starter: func(*profile.Profile) {
				recorder, err = profiling.NewRecorder(nil)
				if err != nil {
					log.Error().Err(err).Msg("starting frame profiler")
				}
			},
			Stopper: func() {
				if recorder == nil {
					return
				}
				if err := recorder.Stop(); err != nil {
					log.Error().Err(err).Msg("stopping frame profiler")
				}
			},
			Recorder: func(gtx layout.Context) {
				if recorder == nil {
					return
				}
				recorder.Profile(gtx)
			},
		}
	}
	return Profiler{}
}

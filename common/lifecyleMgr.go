package common

// RunUIHooks defines a set of function callbacks that control how a
// translation run interacts with the user (progress, warnings, diagnostics).
//
// This is implemented as a struct of function fields rather than an
// interface, so that safe no-op defaults can be provided: callers override
// only the 1-2 callbacks they care about without writing boilerplate
// implementations for all of them.
type RunUIHooks struct {
	Info func(string)
	Warn func(string)
	// Error surfaces a fatal condition (I/O failure on an input file, per
	// spec §7) without halting the rest of the run.
	Error func(string)
}

func NewRunUIHooks() *RunUIHooks {
	return &RunUIHooks{
		Info:  func(string) {},
		Warn:  func(string) {},
		Error: func(string) {},
	}
}

var lcm *RunUIHooks

func GetLifecycleMgr() *RunUIHooks {
	if lcm == nil {
		lcm = NewRunUIHooks()
	}
	return lcm
}

func SetUIHooks(hooks *RunUIHooks) {
	lcm = hooks
}

// PanicIfErr captures the common logic of exiting if there's an error the
// pipeline cannot recover from (as opposed to the recoverable parse/type
// errors spec §7 describes, which go to the diagnostic sink instead).
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

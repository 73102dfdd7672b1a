package keymac

import (
	"time"

	"github.com/pterm/pterm"
)

// TraceDriver logs every op to the trace with key 'tasten.keymac' and is
// otherwise inert; in particular, sleeps return immediately. It backs dry
// runs.
type TraceDriver struct{}

// Press is part of the Driver interface.
func (TraceDriver) Press(key string) error {
	tracer().Infof("press   '%s'", key)
	return nil
}

// Release is part of the Driver interface.
func (TraceDriver) Release(key string) error {
	tracer().Infof("release '%s'", key)
	return nil
}

// Sleep is part of the Driver interface.
func (TraceDriver) Sleep(d time.Duration) error {
	tracer().Infof("sleep   %v", d)
	return nil
}

// Print is part of the Driver interface.
func (TraceDriver) Print(text string) error {
	tracer().Infof("print   %q", text)
	return nil
}

// TermDriver plays a macro on the terminal: key events are rendered with
// pterm, sleeps really sleep. A playback takes the time the macro asks for.
type TermDriver struct{}

// Press is part of the Driver interface.
func (TermDriver) Press(key string) error {
	pterm.Println(pterm.FgCyan.Sprint("⇩ " + key))
	return nil
}

// Release is part of the Driver interface.
func (TermDriver) Release(key string) error {
	pterm.Println(pterm.FgCyan.Sprint("⇧ " + key))
	return nil
}

// Sleep is part of the Driver interface.
func (TermDriver) Sleep(d time.Duration) error {
	pterm.Println(pterm.FgGray.Sprint("… " + d.String()))
	time.Sleep(d)
	return nil
}

// Print is part of the Driver interface.
func (TermDriver) Print(text string) error {
	pterm.Println(text)
	return nil
}

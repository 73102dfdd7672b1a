/*
Package tasten/main provides a command line tool for keyboard macros.
It checks macro scripts against the macro language's grammar, replays
them on the terminal, forwards or rewound, and offers an interactive
session with a view into the parser's chart.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tasten.keymac'
func tracer() tracing.Trace {
	return tracing.Select("tasten.keymac")
}

/*
Package keymac implements a small scripting language for keyboard macros.

A macro script is a sequence of statements in the style of the Python
automation snippets this package replaces:

   keyboard.press('w')
   keyboard.release('w')
   keyboard.tap('space')
   time.sleep(1)
   print("w a s d")
   repeat 3 : ( keyboard.tap('w') time.sleep(1) )

A script is checked against the language's grammar with an Earley parser
(package chart) before anything runs. Only a script passing the check with
zero violations compiles into a Program, a flat list of ops. Programs play
through a Driver, which abstracts the key-event sink:

   prog, err := keymac.Compile(src)
   if err != nil {
       ...
   }
   prog.Run(keymac.TraceDriver{})

Program.Rewind returns the mirrored replay of a program, stepping the
original's movements backwards (a↔d, w↔s, left↔right, up↔down).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keymac

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tasten.keymac'.
func tracer() tracing.Trace {
	return tracing.Select("tasten.keymac")
}

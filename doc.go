/*
Package tasten is a toolbox for checking and replaying keyboard macros.

Tasten accepts small macro scripts for simulated keypresses, validates them
against a fixed macro grammar, and hands validated scripts to a replay driver.
The validation core is a general Earley-style chart parser, which handles
ambiguous and left-recursive grammars alike. Package structure is as follows:

■ chart: Package chart implements the parsing core: grammars, Earley items,
the chart of partial derivations, the recognizer loop and a validator.

■ keymac: Package keymac defines the keypress macro language, its tokenizers
and an executor which replays validated macros against a driver.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tasten

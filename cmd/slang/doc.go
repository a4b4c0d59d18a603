/*
Command slang is an interactive command line tool for the example languages
of this module. Every input line is parsed by an SLR(1) parser and then,
depending on the language selected, converted to de Bruijn form, type
checked and evaluated.

	slang [-lang stlc|sysf|arith] [-trace Debug|Info|Error] [-maxsteps n] [term]

Lines starting with a colon are commands:

	:lang stlc|sysf|arith   select a language
	:states                 list the states of the language's parser
	:table                  print the parsing table
	:tree                   print the parse tree of the last input
	:dot <file>             write the parser's automaton in GraphViz format
	:html <file>            write the parsing table as HTML
	:help                   list the commands
	:quit                   leave (as does <ctrl>D)

Configuration is read from a NestedText file for app tag "slang", if one
is found in a standard location (see schuko.LocateConfig). Keys used are
"slang.maxsteps" and trace levels under "trace", e.g. "trace.slang.lr".

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.repl'
func tracer() tracing.Trace {
	return tracing.Select("slang.repl")
}

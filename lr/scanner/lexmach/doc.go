/*
Package lexmach lets a DFA generated by lexmachine
(https://github.com/timtadh/lexmachine) serve as a scanner.Tokenizer.

Rules are declared fluently and compiled once. Every rule maps a regular
expression to a token type; ties between equally long matches go to the rule
declared first.

	lx := lexmach.New().
		Skip(`( |\t|\n)+`).
		Value(`[0-9]+`, scanner.Int, toInt).
		Literal("+", '+').
		Keyword("mod", Mod)
	if err := lx.Compile(); err != nil {
		…
	}

A compiled lexer is immutable and may hand out scanners concurrently, one per
input string:

	sc, err := lx.Scanner("12 + 345")
	tree, err := grammar.Parse(slr.Scan(sc))

Input no rule matches is reported to the scanner's error handler and skipped
byte by byte.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexmach

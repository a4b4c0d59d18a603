/*
Package slang is an SLR(1) parser generator with a table-driven
shift-reduce engine.

Grammars are built programmatically, compiled once into an SLR(1) parsing
table (with per-terminal precedence and associativity resolving
shift/reduce conflicts), and then run against any pull-based token source.
Raw parse trees are folded into semantic values by per-rule reducers.
Package structure is as follows:

■ lr: Package lr implements grammar analysis (FIRST, FOLLOW, item closures),
construction of the characteristic automaton, precedence handling and the
SLR(1) parsing table. Sub-packages hold the parse engine (slr), table storage
(sparse) and scanners (scanner, scanner/lexmach).

■ runtime: Package runtime provides binder scopes and typing contexts for the
interpreters of the example languages.

■ lang: Example front-ends consuming the engine: arithmetic expressions, a
simply typed lambda calculus and System F.

The base package contains data types which are used throughout all the other packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package slang

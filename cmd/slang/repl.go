package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/slang/lang/arith"
	"github.com/npillmayer/slang/lang/stlc"
	"github.com/npillmayer/slang/lang/sysf"
	"github.com/npillmayer/slang/lr/slr"
	"github.com/pingcap/errors"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	lang     string
	stlc     *stlc.Parser
	sysf     *sysf.Parser
	arith    *arith.Calculator
	lastTree interface{} // raw parse tree of the last input
	repl     *readline.Instance
	out      io.Writer
	info     *pterm.PrefixPrinter
	err      *pterm.PrefixPrinter
}

// NewIntp creates an interpreter, compiling the parsers of all languages.
func NewIntp(out io.Writer) (*Intp, error) {
	intp := &Intp{
		lang: "stlc",
		out:  out,
		info: pterm.Info.WithWriter(out),
		err:  pterm.Error.WithWriter(out),
	}
	var err error
	if intp.stlc, err = stlc.NewParser(); err != nil {
		return nil, err
	}
	if intp.sysf, err = sysf.NewParser(); err != nil {
		return nil, err
	}
	if intp.arith, err = arith.New(); err != nil {
		return nil, err
	}
	return intp, nil
}

// Prompt returns the prompt for the current language.
func (intp *Intp) Prompt() string {
	return intp.lang + "> "
}

// SelectLanguage switches to another language.
func (intp *Intp) SelectLanguage(name string) error {
	switch name {
	case "stlc", "sysf", "arith":
		intp.lang = name
	default:
		return errors.Errorf("unknown language %q, use one of stlc, sysf, arith", name)
	}
	intp.lastTree = nil
	if intp.repl != nil {
		intp.repl.SetPrompt(intp.Prompt())
	}
	tracer().Infof("language is %s", name)
	return nil
}

// Grammar returns the grammar of the current language.
func (intp *Intp) Grammar() *slr.Grammar {
	switch intp.lang {
	case "sysf":
		return intp.sysf.Grammar()
	case "arith":
		return intp.arith.Grammar()
	}
	return intp.stlc.Grammar()
}

// REPL reads lines until EOF or :quit.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit, _ := intp.Execute(line); quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Execute interprets a line of input: either a command or a term. Errors are
// printed and returned.
func (intp *Intp) Execute(line string) (bool, error) {
	var err error
	quit := false
	if strings.HasPrefix(line, ":") {
		quit, err = intp.command(strings.Fields(line[1:]))
	} else {
		err = intp.Eval(line)
	}
	if err != nil {
		intp.err.Println(err.Error())
	}
	return quit, err
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, errors.New("missing command, try :help")
	}
	arg := func() (string, error) {
		if len(args) < 2 {
			return "", errors.Errorf("command :%s needs an argument", args[0])
		}
		return args[1], nil
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, helpText)
	case "lang":
		name, err := arg()
		if err != nil {
			return false, err
		}
		return false, intp.SelectLanguage(name)
	case "states":
		intp.Grammar().PrintStates(intp.out)
	case "table":
		return false, intp.Grammar().Table().Render(intp.out)
	case "tree":
		if intp.lastTree == nil {
			return false, errors.New("no parse tree available")
		}
		return false, slr.RenderTree(intp.out, intp.lastTree)
	case "dot", "html":
		name, err := arg()
		if err != nil {
			return false, err
		}
		return false, intp.export(args[0], name)
	default:
		return false, errors.Errorf("unknown command :%s, try :help", args[0])
	}
	return false, nil
}

const helpText = `:lang stlc|sysf|arith   select a language
:states                 list the states of the language's parser
:table                  print the parsing table
:tree                   print the parse tree of the last input
:dot <file>             write the parser's automaton in GraphViz format
:html <file>            write the parsing table as HTML
:help                   list the commands
:quit                   leave`

func (intp *Intp) export(format, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Trace(err)
	}
	defer f.Close()
	if format == "dot" {
		err = intp.Grammar().CFSM().ToGraphViz(f)
	} else {
		intp.Grammar().Table().AsHTML(f)
	}
	if err == nil {
		intp.info.Println("written to " + filename)
	}
	return err
}

// Eval processes a term of the current language.
func (intp *Intp) Eval(line string) error {
	tracer().Infof("----------------------- Parse ------------------------------------")
	var tree interface{}
	var err error
	switch intp.lang {
	case "sysf":
		tree, err = intp.sysf.ParseTree(line)
	case "arith":
		tree, err = intp.arith.Parse(line)
	default:
		tree, err = intp.stlc.ParseTree(line)
	}
	if err != nil {
		return err
	}
	intp.lastTree = tree
	v, err := slr.Transform(tree)
	if err != nil {
		return err
	}
	switch intp.lang {
	case "sysf":
		return intp.evalSysF(v.(sysf.Term))
	case "arith":
		intp.info.Println(fmt.Sprintf("%d", v.(int64)))
		return nil
	}
	return intp.evalSTLC(v.(stlc.Term))
}

func (intp *Intp) evalSTLC(term stlc.Term) error {
	intp.info.Println("term:     " + term.String())
	term, err := stlc.ToDBI(term)
	if err != nil {
		return err
	}
	intp.info.Println("nameless: " + stlc.Format(term, true))
	if ty, err := stlc.TypeOf(term); err != nil {
		intp.err.Println(err.Error()) // untyped terms may still be evaluated
	} else {
		intp.info.Println("type:     " + ty.String())
	}
	tracer().Infof("-------------------------- Output --------------------------------")
	v, err := stlc.Eval(term, 0)
	if err != nil {
		return err
	}
	intp.info.Println("value:    " + v.String())
	w, err := stlc.Run(term, 0)
	if err != nil {
		return err
	}
	if !stlc.Equal(v, w) {
		return errors.Errorf("CEK machine evaluated to %v", w)
	}
	return nil
}

func (intp *Intp) evalSysF(term sysf.Term) error {
	intp.info.Println("term:     " + term.String())
	term, err := sysf.ToDBI(term)
	if err != nil {
		return err
	}
	intp.info.Println("nameless: " + sysf.Format(term, true))
	ty, err := sysf.TypeOf(term)
	if err != nil {
		return err
	}
	intp.info.Println("type:     " + ty.String())
	return nil
}

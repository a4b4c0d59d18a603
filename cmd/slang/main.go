package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracers of the packages of this module
var traceKeys = []string{"slang.lr", "slang.scanner", "slang.lang", "slang.repl"}

// main() starts an interactive CLI, where users may enter terms of one of
// the example languages. Every term is parsed, type checked and evaluated,
// and the results are printed.
func main() {
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	language := flag.String("lang", "stlc", "Language [stlc|sysf|arith]")
	maxsteps := flag.Int("maxsteps", 0, "Step bound for evaluation")
	flag.Parse()
	if err := initConfig(*maxsteps); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to slang") // colored welcome message
	//
	intp, err := NewIntp(os.Stdout)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	if err := intp.SelectLanguage(*language); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.Execute(input)
	}
	//
	repl, err := readline.New(intp.Prompt())
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// initConfig sets up a global configuration with koanf, and routes tracing
// through trace2go with a Go log adapter.
func initConfig(maxsteps int) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "slang", []string{"nt"})
	gconf.Initialize(conf) // loads defaults and config file, if any
	if maxsteps > 0 {
		conf.Set("slang.maxsteps", maxsteps)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

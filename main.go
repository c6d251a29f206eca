package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/pontaoski/woc/ast"
	"github.com/pontaoski/woc/config"
	"github.com/pontaoski/woc/errors"
	"github.com/pontaoski/woc/evaluator"
	"github.com/pontaoski/woc/lexer"
	"github.com/pontaoski/woc/object"
	"github.com/pontaoski/woc/parser"
	"github.com/pontaoski/woc/reader"
	"github.com/pontaoski/woc/repl"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "main")

var (
	settings = config.Default()
	red      = color.New(color.FgRed).SprintFunc()
)

func setupLogging(level string) error {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))

	lvl, err := capnslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return tracerr.Wrap(err)
	}
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}

// input resolves the source for commands that take either a file argument
// or an inline program.
func input(c *cli.Context) (text string, name string, err error) {
	if expr := c.String("eval"); expr != "" {
		return expr, "<eval>", nil
	}

	path := c.Args().First()
	if path == "" {
		return "", "", cli.Exit("no input file or --eval given", 1)
	}

	src, err := reader.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return src.Text(), src.Path, nil
}

func printDiagnostics(diagnostics []string) {
	for _, msg := range diagnostics {
		fmt.Fprintln(color.Error, red("parse error: ")+msg)
	}
}

// printExcerpts reports parse errors with the offending source line quoted
// underneath.
func printExcerpts(src *reader.Source, errs []error) {
	for _, err := range errs {
		fmt.Fprintln(color.Error, red("parse error: ")+err.Error())

		diag, ok := err.(errors.Diagnostic)
		if !ok {
			continue
		}
		if excerpt, ok := src.Excerpt(diag.Span()); ok {
			fmt.Fprintln(color.Error, excerpt)
		}
	}
}

func historyPath(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return file
	}
	return filepath.Join(home, file)
}

func runRepl(c *cli.Context) error {
	return repl.Run(repl.Options{
		Prompt:             settings.Prompt,
		ContinuationPrompt: settings.ContinuationPrompt,
		HistoryFile:        historyPath(settings.HistoryFile),
	})
}

func main() {
	inputFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "eval",
			Aliases: []string{"e"},
			Usage:   "use `SOURCE` instead of reading a file",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the full structure instead of the compact form",
			Value: false,
		},
	}

	app := &cli.App{
		Name:  "woc",
		Usage: "WocLang interpreter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "project configuration `FILE`",
				Value: config.FileName,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG, TRACE)",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			settings = cfg

			level := c.String("log-level")
			if level == "" {
				level = settings.LogLevel
			}
			return setupLogging(level)
		},
		Action: runRepl,
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a woc.yaml for a new project",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no project name provided", 1)
					}

					cfg := config.Default()
					cfg.Package = name
					if err := config.Write(c.String("config"), cfg); err != nil {
						return err
					}

					plog.Infof("initialised %s in %s", name, c.String("config"))
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "evaluate a file, printing every non-null result",
				ArgsUsage: "[FILE]",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						path = settings.Entry
					}

					src, err := reader.ReadFile(path)
					if err != nil {
						return err
					}

					p := parser.New(lexer.New(src.Text(), src.Path).Tokenize())
					nodes := p.Parse()
					if errs := p.Errors(); len(errs) > 0 {
						printExcerpts(src, errs)
						return cli.Exit("", 1)
					}

					failed := false
					scope := object.NewScope(nil)
					for _, node := range nodes {
						switch result := evaluator.Eval(node, scope).(type) {
						case object.Null:
						case *object.Error:
							failed = true
							fmt.Fprintln(color.Error, red(result.String()))
						default:
							fmt.Println(result.String())
						}
					}

					if failed {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name:   "repl",
				Usage:  "start the interactive shell",
				Action: runRepl,
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of a file",
				ArgsUsage: "[FILE]",
				Flags:     inputFlags,
				Action: func(c *cli.Context) error {
					text, name, err := input(c)
					if err != nil {
						return err
					}

					toks := lexer.New(text, name).Tokenize()
					if c.Bool("dump") {
						repr.Println(toks)
						return nil
					}
					for _, tok := range toks {
						fmt.Printf("%-16s %-12s %q\n", tok.Location, tok.Kind, tok.Text)
					}
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a file",
				ArgsUsage: "[FILE]",
				Flags:     inputFlags,
				Action: func(c *cli.Context) error {
					text, name, err := input(c)
					if err != nil {
						return err
					}

					nodes, diagnostics := parser.ParseProgram(lexer.New(text, name).Tokenize())
					if c.Bool("dump") {
						repr.Println(nodes)
					} else if len(nodes) > 0 {
						fmt.Println(ast.Render(nodes))
					}

					if len(diagnostics) > 0 {
						printDiagnostics(diagnostics)
						return cli.Exit("", 1)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}

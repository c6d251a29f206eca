// Package repl is the interactive Woc shell.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/ztrue/tracerr"
)

type Options struct {
	Prompt             string
	ContinuationPrompt string
	// HistoryFile is read on start and rewritten on exit. Empty disables it.
	HistoryFile string
}

func Run(opts Options) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if opts.HistoryFile != "" {
		loadHistory(ln, opts.HistoryFile)
		defer saveHistory(ln, opts.HistoryFile)
	}

	color.New(color.Bold).Fprintln(color.Output, "woc interactive shell")
	fmt.Fprintln(color.Output, faint("type :help for commands, exit to quit"))

	session := NewSession(color.Output, color.Error)
	for {
		prompt := opts.Prompt
		if session.Pending() {
			prompt = opts.ContinuationPrompt
		}

		line, err := ln.Prompt(prompt)
		switch {
		case err == io.EOF:
			fmt.Fprintln(color.Output)
			return nil
		case err == liner.ErrPromptAborted:
			session.Discard()
			continue
		case err != nil:
			return tracerr.Wrap(err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if session.Feed(line) == Exit {
			return nil
		}
	}
}

func loadHistory(ln *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	n, err := ln.ReadHistory(f)
	if err != nil {
		plog.Warningf("reading history from %s: %v", path, err)
		return
	}
	plog.Debugf("read %d history entries from %s", n, path)
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		plog.Warningf("writing history to %s: %v", path, err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		plog.Warningf("writing history to %s: %v", path, err)
	}
}

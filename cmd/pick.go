package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termselect/internal/config"
	"termselect/internal/terminal"
	"termselect/menu"
	"termselect/models"
)

type pickFlags struct {
	title           string
	multi           bool
	selected        int
	checked         []int
	selector        string
	checkedSelector string
	spacing         int
	styleFile       string
	program         bool
	noValidate      bool
}

var pick pickFlags

var pickCmd = &cobra.Command{
	Use:   "pick [option...]",
	Short: "Pick one or more options",
	Long: `Pick shows the given options, or one option per line read from stdin
when none are given, and prints the chosen labels to stdout.

Exits with status 1 when the menu is cancelled with Escape, or when
nothing was checked in multi-select mode.`,
	RunE: runPick,
}

func init() {
	f := pickCmd.Flags()
	f.StringVarP(&pick.title, "title", "t", "Choose an option:", "title shown above the options")
	f.BoolVarP(&pick.multi, "multi", "m", false, "allow checking several options with space")
	f.IntVarP(&pick.selected, "selected", "s", 0, "index of the initially highlighted option")
	f.IntSliceVarP(&pick.checked, "checked", "c", nil, "indices checked at start (with --multi)")
	f.StringVar(&pick.selector, "selector", "", "glyph drawn before the highlighted option")
	f.StringVar(&pick.checkedSelector, "checked-selector", "", "glyph drawn before checked options")
	f.IntVar(&pick.spacing, "spacing", 0, "blank lines between the title and the options")
	f.StringVar(&pick.styleFile, "style", "", "YAML style file")
	f.BoolVar(&pick.program, "program", false, "render through a bubbletea program")
	f.BoolVar(&pick.noValidate, "no-validate", false, "skip layout validation")

	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	labels := args
	if len(labels) == 0 {
		var err error
		labels, err = readOptions(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	style, err := pick.style()
	if err != nil {
		return err
	}

	term, err := terminal.OpenTTY()
	if err != nil {
		logger.Debug("pick: no tty, falling back to stdio", "err", err)
		term = terminal.Stdio()
	}
	defer term.Close()

	opts := pick.menuOptions(style, term)
	var chosen []int
	if pick.multi {
		chosen, err = pickMulti(labels, term, opts)
	} else {
		chosen, err = pickSingle(labels, term, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatResult(labels, chosen))
	return nil
}

func pickSingle(labels []string, term *terminal.Terminal, opts []menu.Option) ([]int, error) {
	m, err := menu.New(pick.title, labels, opts...)
	if err != nil {
		return nil, err
	}
	if pick.program {
		if err := runProgram(m.Program(), term); err != nil {
			return nil, err
		}
		return []int{m.Model().Result()}, nil
	}

	i, ok, err := m.Run()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errCancelled
	}
	return []int{i}, nil
}

func pickMulti(labels []string, term *terminal.Terminal, opts []menu.Option) ([]int, error) {
	m, err := menu.NewMulti(pick.title, labels, opts...)
	if err != nil {
		return nil, err
	}
	if pick.program {
		if err := runProgram(m.Program(), term); err != nil {
			return nil, err
		}
		set, ok := m.Model().Result()
		if !ok {
			return nil, errCancelled
		}
		return set.Sorted(), nil
	}

	set, ok, err := m.Run()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errCancelled
	}
	return set.Sorted(), nil
}

// runProgram drives p with bubbletea on the given terminal. It returns
// errCancelled unless the user confirmed.
func runProgram(p menu.Program, term *terminal.Terminal) error {
	var popts []tea.ProgramOption
	if f, ok := term.File(); ok {
		popts = append(popts, tea.WithInput(f), tea.WithOutput(f))
	}
	final, err := tea.NewProgram(p, popts...).Run()
	if err != nil {
		return err
	}
	done := final.(menu.Program)
	logger.Debug("pick: program finished", "state", done.State(), "confirmed", done.Confirmed())
	if done.State() == menu.Aborted {
		exitAborted(130)
	}
	if !done.Confirmed() {
		return errCancelled
	}
	return nil
}

func (p pickFlags) style() (models.Style, error) {
	st := models.DefaultStyle()
	if p.styleFile != "" {
		var err error
		st, err = config.LoadStyle(p.styleFile, st)
		if err != nil {
			return st, err
		}
	}
	if p.selector != "" {
		st.Selector = p.selector
	}
	if p.checkedSelector != "" {
		st.CheckedSelector = p.checkedSelector
	}
	return st, nil
}

func (p pickFlags) menuOptions(style models.Style, term menu.Terminal) []menu.Option {
	opts := []menu.Option{
		menu.WithTerminal(term),
		menu.WithStyle(style),
		menu.WithHighlighted(p.selected),
		menu.WithTitleSpacing(p.spacing),
		menu.WithLogger(logger),
		menu.WithExit(exitAborted),
	}
	if p.multi {
		opts = append(opts, menu.WithChecked(p.checked...))
	}
	if p.noValidate {
		opts = append(opts, menu.WithBypass())
	}
	return opts
}

// readOptions reads one option per line, skipping blank lines.
func readOptions(r io.Reader) ([]string, error) {
	var labels []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		labels = append(labels, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	if len(labels) == 0 {
		return nil, errors.New("no options given")
	}
	return labels, nil
}

// formatResult prints one chosen label per line.
func formatResult(labels []string, chosen []int) string {
	var b strings.Builder
	for _, i := range chosen {
		if i < 0 || i >= len(labels) {
			continue
		}
		b.WriteString(labels[i])
		b.WriteString("\n")
	}
	return b.String()
}

package menu

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"loadshedding-stats/command/bootstrap"
	"loadshedding-stats/domain/loadshedding"
)

const banner = "\t\t Cape Town Historical Loadshedding Data Records Program\n"

var options = []string{
	"1.) Get Yearly Average Loadshedding Data by Area",
	"2.) Get Yearly Loadshedding Stage Percentages by Area",
	"3.) Get Day vs. Night Yearly Frequencies by Area",
	"4.) Query records",
	"5.) Exit Program",
}

// Reporter displays aggregate results.
type Reporter interface {
	Averages(area int, rows []loadshedding.YearAverage) error
	Stages(area, year int, counts []loadshedding.StageCount) error
	AmPm(area int, rows []loadshedding.YearAmPm) error
}

// InputError is returned for a prompt answer that is not a whole number.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected a whole number", e.Field, e.Value)
}

// ParseArea parses an area number typed at the prompt. Range is not checked.
func ParseArea(s string) (int, error) { return parseInt("area", s) }

// ParseYear parses a year typed at the prompt. Range is not checked.
func ParseYear(s string) (int, error) { return parseInt("year", s) }

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InputError{Field: field, Value: s}
	}
	return n, nil
}

// Session holds what the menu loop works on: the loaded records and where
// results go.
type Session struct {
	Records []loadshedding.Record
	Years   []int
	Report  Reporter

	in  *bufio.Scanner
	out io.Writer
}

// NewSession reads answers from in and writes prompts to out.
func NewSession(store *loadshedding.Store, years []int, report Reporter, in io.Reader, out io.Writer) *Session {
	return &Session{
		Records: store.Records(),
		Years:   years,
		Report:  report,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// errEOF ends the loop when input runs out.
var errEOF = errors.New("end of input")

// Loop shows the menu until the user exits or input ends.
func (s *Session) Loop() error {
	fmt.Fprint(s.out, banner+"\n")
	for {
		s.showMenu()
		choice, err := s.prompt("\nEnter an option: ")
		if err != nil {
			return s.endOfInput(err)
		}
		choice = strings.TrimSpace(choice)
		if choice == "5" {
			slog.Info("menu.exit")
			return nil
		}
		slog.Debug("menu.option", "choice", choice)
		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, errEOF) {
				return nil
			}
			var inErr *InputError
			if !errors.As(err, &inErr) && !errors.Is(err, loadshedding.ErrNoRecords) {
				slog.Warn("menu.option.error", "choice", choice, "error", err)
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Session) dispatch(choice string) error {
	switch choice {
	case "1":
		area, err := s.askArea()
		if err != nil {
			return err
		}
		rows, err := loadshedding.AverageDurationByYear(s.Records, area, s.Years)
		if err != nil {
			return err
		}
		if err := s.Report.Averages(area, rows); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	case "2":
		area, err := s.askArea()
		if err != nil {
			return err
		}
		year, err := s.askYear()
		if err != nil {
			return err
		}
		counts := loadshedding.StageFrequency(s.Records, area, year)
		if err := s.Report.Stages(area, year, counts); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	case "3":
		area, err := s.askArea()
		if err != nil {
			return err
		}
		rows := loadshedding.AmPmFrequency(s.Records, area, s.Years)
		if err := s.Report.AmPm(area, rows); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	case "4":
		fmt.Fprint(s.out, "Still in progress...\n\n")
	default:
		fmt.Fprint(s.out, "Invalid option. Please try again.\n\n")
	}
	return nil
}

func (s *Session) showMenu() {
	fmt.Fprintln(s.out, "Type in a number (1-5) of the option below:")
	for _, o := range options {
		fmt.Fprintln(s.out, o)
	}
}

func (s *Session) askArea() (int, error) {
	v, err := s.prompt("\nEnter the area number (1-18 only): ")
	if err != nil {
		return 0, err
	}
	return ParseArea(v)
}

func (s *Session) askYear() (int, error) {
	v, err := s.prompt("Enter the year (2020-2023 only): ")
	if err != nil {
		return 0, err
	}
	return ParseYear(v)
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return s.in.Text(), nil
}

func (s *Session) endOfInput(err error) error {
	if errors.Is(err, errEOF) {
		fmt.Fprintln(s.out)
		slog.Info("menu.eof")
		return nil
	}
	return err
}

// Run starts the interactive menu on stdin/stdout.
//
// Usage:
//
//	loadshedding [menu] [-data loadsheddingData.csv] [-display window|file|none]
func Run(args []string, newGUI bootstrap.GUIFactory) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataPath := fs.String("data", "", "records CSV (default: data_path from config, else ./loadsheddingData.csv)")
	mode := fs.String("display", "", "chart display: window, file or none (default: display.mode from config, else window)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	env, err := bootstrap.Load(bootstrap.Overrides{DataPath: *dataPath, Display: *mode}, newGUI, os.Stdout)
	if err != nil {
		return err
	}
	s := NewSession(env.Store, env.Config.Years, env.Report, os.Stdin, os.Stdout)
	return env.Run(s.Loop)
}

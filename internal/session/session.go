// Package session runs the interactive adoption menu. It reads choices from
// an input stream, calls into the catalog and the owner, and renders the
// results. Bad input never ends the session: every failure prints a message
// and returns to the menu.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shelter/internal/catalog"
	"github.com/mesh-intelligence/shelter/internal/owner"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// Menu choices.
const (
	choiceShowAvailable = iota + 1
	choiceAdopt
	choiceReturn
	choiceSearchName
	choiceSearchKind
	choiceShowHeld
	choiceSaveExit
)

const menu = `
====== Pet Adoption System ======
1. Show Available Pets
2. Adopt a Pet
3. Return a Pet
4. Search Pet by Name
5. Search Pet by Type
6. Show My Adopted Pets
7. Save & Exit
Enter your choice: `

// Options configure a Session.
type Options struct {
	// Adopter names the owner. When empty the session prompts for it.
	Adopter string
	// Save persists the catalog on the explicit exit choice.
	Save func() error
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Session is one adopter's pass through the menu.
type Session struct {
	cat    *catalog.Catalog
	owner  *owner.Owner
	in     *bufio.Reader
	out    io.Writer
	save   func() error
	logger *slog.Logger
	name   string
}

// New returns a Session reading from in and writing to out.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		cat:    cat,
		in:     bufio.NewReader(in),
		out:    out,
		save:   opts.Save,
		logger: logger,
		name:   strings.TrimSpace(opts.Adopter),
	}
}

// Owner returns the session's adopter, or nil before Run starts.
func (s *Session) Owner() *owner.Owner {
	return s.owner
}

// errEndOfInput signals that the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// Run drives the menu until the user saves and exits or input runs out.
// Running out of input ends the session without saving. Run only returns
// an error when reading input fails.
func (s *Session) Run() error {
	for s.name == "" {
		fmt.Fprint(s.out, "Enter your name: ")
		line, err := s.readLine()
		if err != nil {
			return s.endOfInput(err)
		}
		s.name = strings.TrimSpace(line)
	}
	s.owner = owner.New(s.name)
	s.logger.Debug("session started", "adopter", s.name, "records", s.cat.Len())

	for {
		fmt.Fprint(s.out, menu)
		line, err := s.readToken()
		if err != nil {
			return s.endOfInput(err)
		}

		choice, ok := leadingInt(line)
		if !ok {
			fmt.Fprintln(s.out, "Invalid input! Please enter a number between 1 and 7.")
			continue
		}

		done, err := s.dispatch(choice)
		if err != nil {
			return s.endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

// dispatch runs one menu action and reports whether the session is over.
func (s *Session) dispatch(choice int) (bool, error) {
	switch choice {
	case choiceShowAvailable:
		RenderAvailable(s.out, s.cat.ListAvailable())
	case choiceAdopt:
		return false, s.adopt()
	case choiceReturn:
		return false, s.giveBack()
	case choiceSearchName:
		return false, s.searchName()
	case choiceSearchKind:
		return false, s.searchKind()
	case choiceShowHeld:
		RenderHeld(s.out, s.owner.Name(), s.owner.ListHeld())
	case choiceSaveExit:
		return s.saveAndExit(), nil
	default:
		fmt.Fprintln(s.out, "Invalid option. Please enter a number between 1 and 7.")
	}
	return false, nil
}

func (s *Session) adopt() error {
	RenderAvailable(s.out, s.cat.ListAvailable())
	fmt.Fprint(s.out, "Enter pet number to adopt: ")
	line, err := s.readToken()
	if err != nil {
		return err
	}

	n, ok := leadingInt(line)
	if !ok {
		fmt.Fprintln(s.out, "Invalid number.")
		return nil
	}

	// Resolve against a fresh filter; the listing above may be stale.
	rec, err := s.cat.ByDisplayIndex(n)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid pet number.")
		return nil
	}

	if err := s.owner.Adopt(rec); err != nil {
		if errors.Is(err, types.ErrAlreadyAdopted) {
			fmt.Fprintln(s.out, "This pet is already adopted!")
			return nil
		}
		return err
	}
	s.logger.Info("pet adopted", "adopter", s.owner.Name(), "pet", rec.Name, "kind", rec.Kind)
	fmt.Fprintf(s.out, "%s adopted %s successfully!\n", s.owner.Name(), rec.Name)
	return nil
}

func (s *Session) giveBack() error {
	RenderHeld(s.out, s.owner.Name(), s.owner.ListHeld())
	fmt.Fprint(s.out, "Enter the name of the pet to return: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}

	rec, ok := s.owner.FindHeld(strings.TrimSpace(line))
	if !ok {
		fmt.Fprintln(s.out, "No such pet found in your adopted pets.")
		return nil
	}
	if err := s.owner.GiveBack(rec); err != nil {
		if errors.Is(err, types.ErrNotHeld) {
			fmt.Fprintln(s.out, "You have not adopted this pet.")
			return nil
		}
		return err
	}
	s.logger.Info("pet returned", "adopter", s.owner.Name(), "pet", rec.Name, "kind", rec.Kind)
	fmt.Fprintf(s.out, "%s returned %s.\n", s.owner.Name(), rec.Name)
	return nil
}

func (s *Session) searchName() error {
	fmt.Fprint(s.out, "Enter name: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	name := strings.TrimSpace(line)
	RenderNameResults(s.out, name, s.cat.ByName(name))
	return nil
}

func (s *Session) searchKind() error {
	fmt.Fprint(s.out, "Enter type (Dog/Cat/Bird): ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	query := strings.TrimSpace(line)

	var found []*types.Record
	if kind, err := types.ParseKind(query); err == nil {
		found = s.cat.ByKind(kind)
	}
	RenderKindResults(s.out, query, found)
	return nil
}

// saveAndExit persists the catalog. A failed save keeps the session open so
// the user can retry.
func (s *Session) saveAndExit() bool {
	if s.save != nil {
		if err := s.save(); err != nil {
			s.logger.Error("save failed", "error", err)
			fmt.Fprintf(s.out, "Save failed: %v\n", err)
			return false
		}
	}
	fmt.Fprintln(s.out, "Saved. Goodbye!")
	return true
}

// readLine returns the next input line without its terminator. Lines have
// no length limit. A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readToken returns the next line that is not blank.
func (s *Session) readToken() (string, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// leadingInt parses the first whitespace-separated field of line. Anything
// after it is ignored.
func leadingInt(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

// endOfInput turns an exhausted input stream into a clean exit.
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, errEndOfInput) {
		s.logger.Warn("input closed, exiting without saving")
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelter/internal/catalog"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// run executes a scripted session and returns its output.
func run(t *testing.T, cat *catalog.Catalog, opts Options, lines ...string) (*Session, string) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	s := New(cat, in, &out, opts)
	require.NoError(t, s.Run())
	return s, out.String()
}

func rexCatalog() (*catalog.Catalog, *types.Record) {
	cat := catalog.New(nil)
	rex := types.NewRecord(types.KindDog, "Rex", 3, "Lab")
	cat.Add(rex)
	return cat, rex
}

func TestPromptsForName(t *testing.T) {
	cat, _ := rexCatalog()
	s, out := run(t, cat, Options{}, "Ann", "7")

	assert.Contains(t, out, "Enter your name: ")
	assert.Equal(t, "Ann", s.Owner().Name())
}

func TestAdoptAndReturn(t *testing.T) {
	cat, rex := rexCatalog()
	saves := 0
	opts := Options{Adopter: "Ann", Save: func() error { saves++; return nil }}

	s, out := run(t, cat, opts,
		"1",   // show available
		"2",   // adopt
		"1",   // Rex
		"1",   // show available (empty)
		"6",   // show held
		"3",   // return
		"Rex", // name
		"7",
	)

	assert.Contains(t, out, "1. [Dog] Name: Rex, Age: 3, Breed: Lab")
	assert.Contains(t, out, "Ann adopted Rex successfully!")
	assert.Contains(t, out, "No pets available right now.")
	assert.Contains(t, out, "--- Ann's Adopted Pets ---")
	assert.Contains(t, out, "[Dog] Name: Rex, Age: 3, Breed: Lab (Adopted)")
	assert.Contains(t, out, "Ann returned Rex.")
	assert.Contains(t, out, "Saved. Goodbye!")

	assert.False(t, rex.Adopted)
	assert.Empty(t, s.Owner().ListHeld())
	assert.Equal(t, 1, saves)
}

func TestAdoptInputErrors(t *testing.T) {
	cat, rex := rexCatalog()
	_, out := run(t, cat, Options{Adopter: "Ann"},
		"2", "abc",
		"2", "5",
		"2", "0",
		"7",
	)

	assert.Contains(t, out, "Invalid number.")
	assert.Equal(t, 2, strings.Count(out, "Invalid pet number."))
	assert.False(t, rex.Adopted)
}

func TestMenuInputErrors(t *testing.T) {
	cat, _ := rexCatalog()
	_, out := run(t, cat, Options{Adopter: "Ann"}, "x", "9", "", "7")

	assert.Equal(t, 1, strings.Count(out, "Invalid input! Please enter a number between 1 and 7."))
	assert.Contains(t, out, "Invalid option. Please enter a number between 1 and 7.")
	assert.Contains(t, out, "Saved. Goodbye!")
}

func TestMenuSkipsBlankLinesAndTrailingText(t *testing.T) {
	cat, rex := rexCatalog()
	_, out := run(t, cat, Options{Adopter: "Ann"}, "", "  ", "2 please", "", "1 ", "7 now")

	assert.NotContains(t, out, "Invalid")
	assert.Equal(t, 2, strings.Count(out, "Enter your choice: "))
	assert.True(t, rex.Adopted)
	assert.Contains(t, out, "Saved. Goodbye!")
}

func TestOverlongInputLineIsInvalid(t *testing.T) {
	cat, rex := rexCatalog()
	saved := false
	opts := Options{Adopter: "Ann", Save: func() error {
		saved = true
		return nil
	}}

	s, out := run(t, cat, opts, strings.Repeat("9", 70000)+"x", "2", "1", "7")

	assert.Contains(t, out, "Invalid input! Please enter a number between 1 and 7.")
	assert.True(t, rex.Adopted)
	assert.Len(t, s.Owner().ListHeld(), 1)
	assert.True(t, saved)
}

func TestOverlongNumberIsInvalidOption(t *testing.T) {
	cat, _ := rexCatalog()
	_, out := run(t, cat, Options{Adopter: "Ann"}, strings.Repeat("9", 70000), "7")

	assert.Contains(t, out, "Invalid input! Please enter a number between 1 and 7.")
	assert.Contains(t, out, "Saved. Goodbye!")
}

func TestEmptyNameReprompts(t *testing.T) {
	cat, _ := rexCatalog()
	s, out := run(t, cat, Options{}, "", "   ", "Ann", "6", "7")

	assert.Equal(t, 3, strings.Count(out, "Enter your name: "))
	assert.Equal(t, "Ann", s.Owner().Name())
	assert.NotContains(t, out, "--- 's Adopted Pets ---")
	assert.Contains(t, out, "--- Ann's Adopted Pets ---")
}

func TestReturnUnheld(t *testing.T) {
	cat, _ := rexCatalog()
	_, out := run(t, cat, Options{Adopter: "Ann"}, "3", "Rex", "7")

	assert.Contains(t, out, "No pets adopted yet.")
	assert.Contains(t, out, "No such pet found in your adopted pets.")
}

func TestReturnPicksHeldRecordAmongDuplicates(t *testing.T) {
	cat := catalog.New(nil)
	first := types.NewRecord(types.KindDog, "Buddy", 2, "Beagle")
	second := types.NewRecord(types.KindDog, "Buddy", 5, "Pug")
	cat.Add(first)
	cat.Add(second)

	// Adopt the second Buddy (index 2), then return by name.
	_, out := run(t, cat, Options{Adopter: "Ann"}, "2", "2", "3", "Buddy", "7")

	assert.Contains(t, out, "Ann returned Buddy.")
	assert.False(t, first.Adopted)
	assert.False(t, second.Adopted)
}

func TestSearch(t *testing.T) {
	cat := catalog.New(nil)
	cat.SeedDefaults()

	_, out := run(t, cat, Options{Adopter: "Ann"},
		"4", "Tama",
		"4", "Nobody",
		"5", "Bird",
		"5", "Fish",
		"7",
	)

	assert.Contains(t, out, "[Cat] Name: Tama, Age: 2, Breed: Persian")
	assert.Contains(t, out, "No pet found with name 'Nobody'.")
	assert.Contains(t, out, "[Bird] Name: Tweety, Age: 1, Breed: Canary")
	assert.Contains(t, out, "[Bird] Name: Blue, Age: 4, Breed: Macaw")
	assert.Contains(t, out, "No pets found of type 'Fish'.")
}

func TestEndOfInputDoesNotSave(t *testing.T) {
	cat, rex := rexCatalog()
	saved := false
	opts := Options{Adopter: "Ann", Save: func() error { saved = true; return nil }}

	s, _ := run(t, cat, opts, "2", "1")

	assert.True(t, rex.Adopted)
	assert.Len(t, s.Owner().ListHeld(), 1)
	assert.False(t, saved)
}

func TestEndOfInputMidPrompt(t *testing.T) {
	cat, _ := rexCatalog()
	var out bytes.Buffer
	s := New(cat, strings.NewReader("2"), &out, Options{Adopter: "Ann"})

	// "2" is consumed as the menu choice; the number prompt then hits EOF.
	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Enter pet number to adopt: ")
}

func TestSaveFailureKeepsSessionOpen(t *testing.T) {
	cat, _ := rexCatalog()
	attempts := 0
	opts := Options{Adopter: "Ann", Save: func() error {
		attempts++
		if attempts == 1 {
			return errors.New("disk full")
		}
		return nil
	}}

	_, out := run(t, cat, opts, "7", "7")

	assert.Contains(t, out, "Save failed: disk full")
	assert.Contains(t, out, "Saved. Goodbye!")
	assert.Equal(t, 2, attempts)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestReadErrorIsReturned(t *testing.T) {
	cat, _ := rexCatalog()
	s := New(cat, brokenReader{}, &bytes.Buffer{}, Options{Adopter: "Ann"})

	err := s.Run()
	assert.ErrorContains(t, err, "tty gone")
}

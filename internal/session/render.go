package session

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/shelter/internal/catalog"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// RenderAvailable writes the numbered available listing, or a notice when
// nothing is available.
func RenderAvailable(w io.Writer, listings []catalog.Listing) {
	fmt.Fprintln(w, "\n--- Available Pets ---")
	if len(listings) == 0 {
		fmt.Fprintln(w, "No pets available right now.")
		return
	}
	for _, l := range listings {
		fmt.Fprintf(w, "%d. %s\n", l.Index, l.Record)
	}
}

// RenderHeld writes the records an adopter holds.
func RenderHeld(w io.Writer, adopter string, held []*types.Record) {
	fmt.Fprintf(w, "\n--- %s's Adopted Pets ---\n", adopter)
	if len(held) == 0 {
		fmt.Fprintln(w, "No pets adopted yet.")
		return
	}
	renderRecords(w, held)
}

// RenderNameResults writes the result of a name search.
func RenderNameResults(w io.Writer, name string, found []*types.Record) {
	fmt.Fprintln(w, "\n--- Search Results ---")
	if len(found) == 0 {
		fmt.Fprintf(w, "No pet found with name '%s'.\n", name)
		return
	}
	renderRecords(w, found)
}

// RenderKindResults writes the result of a kind search. query is echoed
// back as typed so an unknown kind reads the same as an empty result.
func RenderKindResults(w io.Writer, query string, found []*types.Record) {
	fmt.Fprintln(w, "\n--- Search Results ---")
	if len(found) == 0 {
		fmt.Fprintf(w, "No pets found of type '%s'.\n", query)
		return
	}
	renderRecords(w, found)
}

func renderRecords(w io.Writer, records []*types.Record) {
	for _, r := range records {
		fmt.Fprintln(w, r)
	}
}

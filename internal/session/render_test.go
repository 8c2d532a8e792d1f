package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/shelter/internal/catalog"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

func TestRenderAvailable(t *testing.T) {
	var buf bytes.Buffer
	RenderAvailable(&buf, nil)
	assert.Equal(t, "\n--- Available Pets ---\nNo pets available right now.\n", buf.String())

	buf.Reset()
	rex := types.NewRecord(types.KindDog, "Rex", 3, "Lab")
	RenderAvailable(&buf, []catalog.Listing{{Index: 1, Record: rex}})
	assert.Equal(t, "\n--- Available Pets ---\n1. [Dog] Name: Rex, Age: 3, Breed: Lab\n", buf.String())
}

func TestRenderHeld(t *testing.T) {
	var buf bytes.Buffer
	RenderHeld(&buf, "Ann", nil)
	assert.Equal(t, "\n--- Ann's Adopted Pets ---\nNo pets adopted yet.\n", buf.String())
}

func TestRenderSearchResults(t *testing.T) {
	var buf bytes.Buffer
	RenderNameResults(&buf, "Rex", nil)
	assert.Contains(t, buf.String(), "No pet found with name 'Rex'.")

	buf.Reset()
	RenderKindResults(&buf, "Cat", []*types.Record{types.NewRecord(types.KindCat, "Tama", 2, "Persian")})
	assert.Equal(t, "\n--- Search Results ---\n[Cat] Name: Tama, Age: 2, Breed: Persian\n", buf.String())
}

package textcodec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelter/pkg/types"
)

func TestEncode(t *testing.T) {
	r := types.NewRecord(types.KindDog, "Rex", 3, "Lab")
	assert.Equal(t, "Dog,Rex,3,Lab,0", Encode(r))

	r.Adopted = true
	assert.Equal(t, "Dog,Rex,3,Lab,1", Encode(r))

	empty := types.NewRecord(types.KindBird, "Sky", 0, "")
	assert.Equal(t, "Bird,Sky,0,,0", Encode(empty))
}

func TestDecodeRoundTrip(t *testing.T) {
	records := []*types.Record{
		{Kind: types.KindDog, Name: "Rex", Age: 3, Breed: "Lab"},
		{Kind: types.KindCat, Name: "Tofu", Age: 1, Breed: "Indian Street", Adopted: true},
		{Kind: types.KindBird, Name: "Sky", Age: 0, Breed: ""},
		{Kind: types.KindDog, Name: "Maxy", Age: 14, Breed: "German Shepherd", Adopted: true},
	}

	for _, want := range records {
		t.Run(want.Name, func(t *testing.T) {
			got, err := Decode(Encode(want))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		cause error
	}{
		{name: "too few fields", line: "Dog,Rex,3,Lab", cause: ErrFieldCount},
		{name: "empty line", line: "", cause: ErrFieldCount},
		{name: "non-numeric age", line: "Dog,Rex,three,Lab,0", cause: ErrBadAge},
		{name: "negative age", line: "Dog,Rex,-1,Lab,0", cause: ErrBadAge},
		{name: "unknown kind", line: "Fish,Nemo,1,Clown,0", cause: types.ErrUnknownKind},
		{name: "lowercase kind", line: "dog,Rex,3,Lab,0", cause: types.ErrUnknownKind},
		{name: "bad adopted flag", line: "Dog,Rex,3,Lab,maybe", cause: ErrBadAdopted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(tt.line)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, ErrDecode)
			assert.ErrorIs(t, err, tt.cause)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.line, de.Line)
		})
	}
}

func TestDecodeTolerance(t *testing.T) {
	t.Run("carriage return stripped", func(t *testing.T) {
		rec, err := Decode("Cat,Tama,2,Persian,1\r")
		require.NoError(t, err)
		assert.True(t, rec.Adopted)
		assert.Equal(t, "Persian", rec.Breed)
	})

	t.Run("comma in breed spills into adopted field", func(t *testing.T) {
		_, err := Decode("Dog,Rex,3,Lab,Mix,0")
		assert.ErrorIs(t, err, ErrBadAdopted)
	})
}

func TestReadAllSkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"Dog,Rex,3,Lab,0",
		"",
		"Dog,Bad,notanumber,Lab,0",
		"Cat,Tama,2,Persian,1",
		"garbage",
	}, "\n") + "\n"

	var skipped []int
	records, err := ReadAll(strings.NewReader(input), func(lineNo int, err error) {
		assert.ErrorIs(t, err, ErrDecode)
		skipped = append(skipped, lineNo)
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Rex", records[0].Name)
	assert.Equal(t, "Tama", records[1].Name)
	assert.Equal(t, []int{3, 5}, skipped)
}

func TestReadAllNilSkip(t *testing.T) {
	records, err := ReadAll(strings.NewReader("Dog,Rex,x,Lab,0\n"), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadAllSkipsOverlongLine(t *testing.T) {
	input := "Dog,Rex,3,Lab,0\n" + strings.Repeat("x", 70000) + "\nCat,Tama,2,Persian,0\n"

	var skipped []int
	records, err := ReadAll(strings.NewReader(input), func(lineNo int, err error) {
		assert.ErrorIs(t, err, ErrDecode)
		skipped = append(skipped, lineNo)
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Rex", records[0].Name)
	assert.Equal(t, "Tama", records[1].Name)
	assert.Equal(t, []int{2}, skipped)
}

func TestReadAllLongBreed(t *testing.T) {
	breed := strings.Repeat("b", 100000)
	records, err := ReadAll(strings.NewReader("Cat,Tama,2,"+breed+",1"), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, breed, records[0].Breed)
	assert.True(t, records[0].Adopted)
}

func TestWriteAll(t *testing.T) {
	records := []*types.Record{
		{Kind: types.KindDog, Name: "Rex", Age: 3, Breed: "Lab"},
		{Kind: types.KindCat, Name: "Tama", Age: 2, Breed: "Persian", Adopted: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, records))
	assert.Equal(t, "Dog,Rex,3,Lab,0\nCat,Tama,2,Persian,1\n", buf.String())

	back, err := ReadAll(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, records, back)
}

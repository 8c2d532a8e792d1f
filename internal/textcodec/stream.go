package textcodec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/shelter/pkg/types"
)

// SkipFunc is called for every line ReadAll drops.
type SkipFunc func(lineNo int, err error)

// ReadAll decodes one record per line from r. Blank lines are ignored and
// malformed lines are skipped; skip, if non-nil, is told about each one.
// Lines have no length limit. Only read errors are returned.
func ReadAll(r io.Reader, skip SkipFunc) ([]*types.Record, error) {
	var records []*types.Record
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading records: %w", err)
		}
		if line != "" {
			lineNo++
			line = strings.TrimRight(line, "\r\n")
			if line != "" {
				rec, decErr := Decode(line)
				if decErr != nil {
					if skip != nil {
						skip(lineNo, decErr)
					}
				} else {
					records = append(records, rec)
				}
			}
		}
		if err != nil {
			return records, nil
		}
	}
}

// WriteAll writes every record as one newline-terminated line.
func WriteAll(w io.Writer, records []*types.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(Encode(rec)); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	return nil
}

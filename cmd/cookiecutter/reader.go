package main

import (
	"errors"
	"io"

	"github.com/komissarov/cookiecutter/internal/fastqio"
)

var errMateCountMismatch = errors.New("mate files have a different number of reads")

// fastqRecordReader is the minimal surface both fastqio.Reader and
// fastqio.SingleLineReader satisfy, letting the rest of the CLI stay
// agnostic of which record format is in play.
type fastqRecordReader interface {
	Next() (fastqio.Record, error)
}

func newFastqReader(r io.Reader, path string, singleLine bool) fastqRecordReader {
	if singleLine {
		return fastqio.NewSingleLineReader(r, path)
	}
	return fastqio.NewReader(r, path)
}

// isCleanEOF reports whether err represents nothing more than the normal
// end of a FASTQ stream.
func isCleanEOF(err error) bool {
	return err == nil || err == io.EOF
}

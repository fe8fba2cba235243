// Package store persists digit rings as a single base 10 line.
//
// Only the value is stored. The base is not, so a loaded ring always takes
// the base the caller asks for.
package store

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/calebcase/numring/decimal"
	"github.com/calebcase/numring/ring"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("store")

// Read returns a ring in the given base holding the number on the first line
// of rd. A missing, blank or malformed line gives zero with defaulted set.
func Read(rd io.Reader, base int) (r *ring.Ring, defaulted bool, err error) {
	defer Error.WrapP(&err)

	line, err := bufio.NewReader(rd).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, false, err
	}

	return decimal.FromDecimal(line, base)
}

// Write writes the value of r as one base 10 line.
func Write(w io.Writer, r *ring.Ring) (err error) {
	defer Error.WrapP(&err)

	_, err = io.WriteString(w, decimal.ToDecimal(r)+"\n")

	return err
}

// Load reads a ring from the file at path.
func Load(path string, base int) (r *ring.Ring, defaulted bool, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer func() { err = errs.Combine(err, f.Close()) }()

	return Read(f, base)
}

// Save replaces the file at path with the value of r.
func Save(path string, r *ring.Ring) (err error) {
	defer Error.WrapP(&err)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, f.Close()) }()

	w := bufio.NewWriter(f)

	err = Write(w, r)
	if err != nil {
		return err
	}

	return w.Flush()
}

// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/ulikunitz/xz"
)

func parseInErr(err error, flagString string) error {
	switch x := err.(type) {
	case *fs.PathError:
		return errors.New(x.Op + " " + flagString + " " + x.Path + ": " + x.Err.Error())
	default:
		return err
	}
}

type xzReadCloser struct {
	io.Reader
	f *os.File
}

func (r xzReadCloser) Close() error { return r.f.Close() }

// openIn opens the file named by flag for reading, with "stdin" naming
// standard input. Files with an .xz suffix are transparently
// decompressed.
func openIn(flag pflag.Flag) (io.ReadCloser, error) {
	inFile := flag.Value.String()
	var flagString string

	switch len(flag.Shorthand) {
	case 0:
		flagString = "--" + flag.Name
	default:
		flagString = "-" + flag.Shorthand + " / --" + flag.Name
	}

	if inFile == "stdin" {
		return os.Stdin, nil
	}
	f, err := os.Open(inFile)
	if err != nil {
		return nil, parseInErr(err, flagString)
	}
	if strings.HasSuffix(inFile, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, parseInErr(err, flagString)
		}
		return xzReadCloser{Reader: xr, f: f}, nil
	}
	return f, nil
}

// openOut opens the file named by flag for writing, with "stdout"
// naming standard output.
func openOut(flag pflag.Flag) (*os.File, error) {
	outFile := flag.Value.String()
	if outFile == "stdout" {
		return os.Stdout, nil
	}
	return os.Create(outFile)
}

// closeIn closes f unless it is standard input.
func closeIn(f io.ReadCloser) {
	if f != os.Stdin {
		f.Close()
	}
}

// closeOut closes f unless it is standard output.
func closeOut(f *os.File) {
	if f != os.Stdout {
		f.Close()
	}
}

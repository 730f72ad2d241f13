package event

import (
	"io"
	"sync"
)

// File is a terminal input handle. Wrapping one keeps the Fd that raw mode
// and cancelable reads need.
type File interface {
	io.ReadWriteCloser
	Fd() uintptr
	Name() string
}

// NewInputReader wraps r so the end of the input stream is reported to
// report exactly once, as an Input whose Err is io.EOF or the read error.
//
// The wrapped reader itself always ends with io.EOF: the terminal library
// stops reading quietly, and the update loop decides what the failure means.
// Bytes returned together with an error are delivered first; the end is
// reported on the following Read.
//
// If r is a File, the result is also a File.
func NewInputReader(r io.Reader, report func(Input)) io.Reader {
	in := &inputReader{r: r, report: report}
	if f, ok := r.(File); ok {
		return &inputFile{File: f, in: in}
	}
	return in
}

type inputReader struct {
	r      io.Reader
	report func(Input)

	once    sync.Once
	pending error
}

func (ir *inputReader) Read(p []byte) (int, error) {
	if ir.pending != nil {
		ir.end(ir.pending)
		return 0, io.EOF
	}

	n, err := ir.r.Read(p)
	if err == nil {
		return n, nil
	}
	if n > 0 {
		ir.pending = err
		return n, nil
	}
	ir.end(err)
	return 0, io.EOF
}

func (ir *inputReader) end(err error) {
	ir.once.Do(func() { ir.report(Input{Err: err}) })
}

type inputFile struct {
	File
	in *inputReader
}

func (f *inputFile) Read(p []byte) (int, error) {
	return f.in.Read(p)
}

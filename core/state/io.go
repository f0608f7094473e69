package state

import (
	"io"
	"os"
)

// IOAdapter bundles the three standard streams handed to builtins and
// spawned pipeline stages. Nil streams are tolerated: writes are discarded
// and reads fail as if the stream were closed.
type IOAdapter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
	stderr io.WriteCloser
}

func NewIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *IOAdapter {
	return &IOAdapter{
		stdin:  readCloser(stdin),
		stdout: writeCloser(stdout),
		stderr: writeCloser(stderr),
	}
}

func (a *IOAdapter) Stdin() io.ReadCloser   { return a.stdin }
func (a *IOAdapter) Stdout() io.WriteCloser { return a.stdout }
func (a *IOAdapter) Stderr() io.WriteCloser { return a.stderr }

func writeCloser(w io.Writer) io.WriteCloser {
	switch t := w.(type) {
	case nil:
		return &devNull{}
	case io.WriteCloser:
		return t
	default:
		return nopWriteCloser{w}
	}
}

func readCloser(r io.Reader) io.ReadCloser {
	switch t := r.(type) {
	case nil:
		return &devNull{}
	case io.ReadCloser:
		return t
	default:
		return io.NopCloser(r)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// devNull implements io.ReadCloser and io.WriteCloser, always closed for
// reads and discarding writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (*devNull) Close() error {
	return nil
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

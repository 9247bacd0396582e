package configfile

import (
	"bufio"
	"errors"
	"io"
)

// initialLineSize is the starting capacity of a line buffer. It doubles as needed.
const initialLineSize = 8

// LineReader reads newline-terminated lines of any length from a stream.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its trailing newline.
// ok is false when the stream is exhausted and nothing was pending.
// A final line without a newline is returned as is.
func (lr *LineReader) ReadLine() (line string, ok bool, err error) {
	buf := make([]byte, 0, initialLineSize)
	for {
		frag, err := lr.r.ReadSlice('\n')
		buf = growLine(buf, len(frag))
		buf = append(buf, frag...)

		switch {
		case err == nil:
			return string(buf[:len(buf)-1]), true, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(buf) == 0 {
				return "", false, nil
			}
			return string(buf), true, nil
		default:
			return "", false, err
		}
	}
}

// growLine makes room for n more bytes by doubling the capacity of buf.
func growLine(buf []byte, n int) []byte {
	need := len(buf) + n
	if need <= cap(buf) {
		return buf
	}
	size := cap(buf)
	if size == 0 {
		size = initialLineSize
	}
	for size < need {
		size *= 2
	}
	grown := make([]byte, len(buf), size)
	copy(grown, buf)
	return grown
}

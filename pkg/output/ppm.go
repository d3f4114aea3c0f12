// Package output encodes rendered frames and ships them to disk or object storage.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gcottrell13/cs430-project3/pkg/renderer"
)

var ErrInvalidPPM = errors.New("invalid PPM data")

// WritePPM writes the frame as a binary P6 image
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", frame.Width, frame.Height, renderer.MaxValue); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := bw.Write(frame.Pix); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return bw.Flush()
}

// ReadPPM reads a binary P6 image with an 8-bit max value
func ReadPPM(r io.Reader) (*renderer.Frame, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidPPM, magic)
	}

	var header [3]int
	for i := range header {
		token, err := readToken(br)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(token, "%d", &header[i]); err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("%w: bad header value %q", ErrInvalidPPM, token)
		}
	}
	if header[2] != renderer.MaxValue {
		return nil, fmt.Errorf("%w: max value %d not supported", ErrInvalidPPM, header[2])
	}

	frame := renderer.NewFrame(header[0], header[1])
	if _, err := io.ReadFull(br, frame.Pix); err != nil {
		return nil, fmt.Errorf("%w: truncated pixel data: %v", ErrInvalidPPM, err)
	}
	return frame, nil
}

// readToken skips whitespace and # comments, then reads one header token
// and the single whitespace byte that ends it
func readToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", fmt.Errorf("%w: unexpected end of header", ErrInvalidPPM)
		}

		switch {
		case c == '#' && len(token) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: unterminated comment", ErrInvalidPPM)
			}
		case isSpace(c):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, c)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

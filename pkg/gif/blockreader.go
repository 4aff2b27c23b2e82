package gif

import "io"

// reader is what the decoder reads from, a plain io.Reader gets buffered.
type reader interface {
	io.Reader
	io.ByteReader
}

// blockReader walks a chain of (n, n bytes) sub-blocks. A zero length block
// terminates the chain.
type blockReader struct {
	r   reader
	buf *[255]byte

	// lastLen is the length byte of the most recent block, or -1 before the
	// first block of a chain has been read.
	lastLen int
}

func (b *blockReader) begin() {
	b.lastLen = -1
}

// readBlock returns the payload of the next sub-block. The slice aliases the
// workspace and is only valid until the next call. When the stream ends
// inside the payload the bytes that did arrive are returned with the error.
func (b *blockReader) readBlock() ([]byte, error) {
	n, err := b.r.ReadByte()
	if err != nil {
		b.lastLen = 0
		return nil, readErr(err, "sub-block length")
	}
	b.lastLen = int(n)
	if n == 0 {
		return nil, nil
	}

	got, err := io.ReadFull(b.r, b.buf[:n])
	if err != nil {
		return b.buf[:got], readErr(err, "sub-block data")
	}
	return b.buf[:n], nil
}

func (b *blockReader) skipBlocks() error {
	for {
		if _, err := b.readBlock(); err != nil {
			return err
		}
		if b.lastLen == 0 {
			return nil
		}
	}
}

// terminated reports whether the current chain's terminator has been consumed.
func (b *blockReader) terminated() bool {
	return b.lastLen == 0
}

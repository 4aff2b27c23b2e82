package gif

import "errors"

const (
	maxCodes     = 4096
	maxCodeWidth = 12
	noCode       = -1
)

// workspace is the scratch memory of a single Decode call. The fixed arrays
// cover the largest dictionary the format allows, the slices only grow.
type workspace struct {
	prefix [maxCodes]uint16
	suffix [maxCodes]byte
	stack  [maxCodes + 1]byte
	pixels []byte
	rows   []int

	block [255]byte
	raw   [3 * 256]byte
	local colorTable
}

// decompress decodes one frame's image data, fw*fh palette indices,
// and hands each finished row to emit in transmission order. The row slice is
// reused, emit must not keep it. It returns how many indices came from the
// stream; rows past that point are emitted zeroed. Early ends (end of
// information, a code the dictionary can not know yet, a terminator before
// the last pixel) are not errors. A stream that runs out in the middle of the
// data is reported as ErrTruncatedStream after the bytes that did arrive have
// been decoded.
func (w *workspace) decompress(br *blockReader, litWidth, fw, fh int, emit func(row int, line []byte)) (int, error) {
	if cap(w.pixels) < fw {
		w.pixels = make([]byte, fw)
	}
	line := w.pixels[:fw]
	npix := fw * fh

	clear := 1 << litWidth
	eoi := clear + 1
	avail := clear + 2
	width := litWidth + 1
	mask := 1<<width - 1
	oldCode, first := noCode, 0

	for code := 0; code < clear; code++ {
		w.prefix[code] = 0
		w.suffix[code] = byte(code)
	}

	var (
		datum   uint32
		bits    int
		block   []byte
		rerr    error
		top, pi int
		x, y    int
	)

decode:
	for pi < npix {
		if top == 0 {
			if bits < width {
				if len(block) == 0 {
					if rerr != nil {
						break
					}
					block, rerr = br.readBlock()
					if rerr != nil && !errors.Is(rerr, ErrTruncatedStream) {
						return 0, rerr
					}
					if len(block) == 0 {
						break
					}
				}
				datum |= uint32(block[0]) << bits
				bits += 8
				block = block[1:]
				continue
			}

			code := int(datum) & mask
			datum >>= uint(width)
			bits -= width

			switch {
			case code > avail, code == eoi:
				break decode
			case code == clear:
				width = litWidth + 1
				mask = 1<<width - 1
				avail = clear + 2
				oldCode = noCode
				continue
			case oldCode == noCode:
				// the first code after a reset has to be a literal
				if code > clear {
					break decode
				}
				w.stack[top] = w.suffix[code]
				top++
				oldCode, first = code, code
				continue
			}

			inCode := code
			if code == avail {
				w.stack[top] = byte(first)
				top++
				code = oldCode
			}
			for code > clear {
				w.stack[top] = w.suffix[code]
				top++
				code = int(w.prefix[code])
			}
			first = int(w.suffix[code])
			w.stack[top] = byte(first)
			top++

			if avail < maxCodes {
				w.prefix[avail] = uint16(oldCode)
				w.suffix[avail] = byte(first)
				avail++
				if avail&mask == 0 && width < maxCodeWidth {
					width++
					mask += avail
				}
			}
			oldCode = inCode
		}

		top--
		line[x] = w.stack[top]
		pi++
		if x++; x == fw {
			emit(y, line)
			x = 0
			y++
		}
	}

	if y < fh {
		clearIndices(line[x:])
		emit(y, line)
		clearIndices(line[:x])
		for y++; y < fh; y++ {
			emit(y, line)
		}
	}
	return pi, rerr
}

func clearIndices(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

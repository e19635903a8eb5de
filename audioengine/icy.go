package audioengine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// icyReader strips interleaved ICY metadata blocks out of a Shoutcast-style
// stream, passing the raw audio bytes through and reporting StreamTitle
// changes via onTitle. The server inserts one length-prefixed metadata block
// after every metaint audio bytes once the client sent "Icy-MetaData: 1".
type icyReader struct {
	r         *bufio.Reader
	metaint   int
	remaining int
	onTitle   func(string)
	lastTitle string
}

// newICYReader wraps r. metaint must be positive; callers should bypass the
// wrapper entirely when the server advertised no metadata interval.
func newICYReader(r io.Reader, metaint int, onTitle func(string)) *icyReader {
	return &icyReader{
		r:         bufio.NewReaderSize(r, 4096),
		metaint:   metaint,
		remaining: metaint,
		onTitle:   onTitle,
	}
}

func (ir *icyReader) Read(p []byte) (int, error) {
	if ir.remaining == 0 {
		if err := ir.readMetadata(); err != nil {
			return 0, err
		}
	}
	if len(p) > ir.remaining {
		p = p[:ir.remaining]
	}
	n, err := ir.r.Read(p)
	ir.remaining -= n
	return n, err
}

func (ir *icyReader) readMetadata() error {
	lenByte, err := ir.r.ReadByte()
	if err != nil {
		return err
	}
	// The ICY framing caps a block at 16*255 bytes by construction.
	metaLen := int(lenByte) * 16
	if metaLen > 0 {
		meta := make([]byte, metaLen)
		if _, err := io.ReadFull(ir.r, meta); err != nil {
			return fmt.Errorf("icy metadata read: %w", err)
		}
		if title, ok := parseStreamTitle(string(meta)); ok && title != ir.lastTitle {
			ir.lastTitle = title
			if ir.onTitle != nil {
				ir.onTitle(title)
			}
		}
	}
	ir.remaining = ir.metaint
	return nil
}

// parseStreamTitle extracts the value of a StreamTitle='...'; field from an
// ICY metadata block. Blocks are NUL padded and may carry other fields
// (StreamUrl, adw_ad) that we ignore.
func parseStreamTitle(meta string) (string, bool) {
	const marker = "StreamTitle='"
	start := strings.Index(meta, marker)
	if start < 0 {
		return "", false
	}
	rest := meta[start+len(marker):]
	end := strings.Index(rest, "';")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

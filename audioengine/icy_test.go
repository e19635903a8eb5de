package audioengine

import (
	"bytes"
	"io"
	"testing"
)

func TestParseStreamTitle(t *testing.T) {
	tests := []struct {
		name  string
		meta  string
		want  string
		found bool
	}{
		{
			name:  "title only",
			meta:  "StreamTitle='Miles Davis - So What';\x00\x00\x00",
			want:  "Miles Davis - So What",
			found: true,
		},
		{
			name:  "title with trailing fields",
			meta:  "StreamTitle='News';StreamUrl='http://example.com';",
			want:  "News",
			found: true,
		},
		{
			name:  "empty title",
			meta:  "StreamTitle='';",
			want:  "",
			found: true,
		},
		{
			name:  "no title field",
			meta:  "StreamUrl='http://example.com';",
			found: false,
		},
		{
			name:  "unterminated",
			meta:  "StreamTitle='broken",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := parseStreamTitle(tt.meta)
			if found != tt.found {
				t.Fatalf("parseStreamTitle(%q) found = %v, want %v", tt.meta, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("parseStreamTitle(%q) = %q, want %q", tt.meta, got, tt.want)
			}
		})
	}
}

// icyBlock frames one metadata string the way a Shoutcast server does: a
// length byte counting 16-byte units, then the NUL-padded payload.
func icyBlock(meta string) []byte {
	units := (len(meta) + 15) / 16
	block := make([]byte, 1+units*16)
	block[0] = byte(units)
	copy(block[1:], meta)
	return block
}

func TestICYReaderStripsMetadata(t *testing.T) {
	const metaint = 8
	audioA := []byte("aaaaaaaa")
	audioB := []byte("bbbbbbbb")
	audioC := []byte("cccccccc")

	var stream bytes.Buffer
	stream.Write(audioA)
	stream.Write(icyBlock("StreamTitle='First Title';"))
	stream.Write(audioB)
	stream.Write([]byte{0}) // empty metadata block
	stream.Write(audioC)

	var titles []string
	r := newICYReader(&stream, metaint, func(title string) {
		titles = append(titles, title)
	})

	got, err := io.ReadAll(r)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadAll: %v", err)
	}
	want := append(append(append([]byte{}, audioA...), audioB...), audioC...)
	if !bytes.Equal(got, want) {
		t.Errorf("audio bytes = %q, want %q", got, want)
	}
	if len(titles) != 1 || titles[0] != "First Title" {
		t.Errorf("titles = %v, want [First Title]", titles)
	}
}

func TestICYReaderSuppressesRepeatedTitles(t *testing.T) {
	const metaint = 4
	var stream bytes.Buffer
	for i := 0; i < 3; i++ {
		stream.Write([]byte("xxxx"))
		stream.Write(icyBlock("StreamTitle='Same';"))
	}

	var titles []string
	r := newICYReader(&stream, metaint, func(title string) {
		titles = append(titles, title)
	})
	if _, err := io.ReadAll(r); err != nil && err != io.EOF {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(titles) != 1 {
		t.Errorf("callback fired %d times, want 1 (deduplicated)", len(titles))
	}
}

func TestICYReaderShortReads(t *testing.T) {
	const metaint = 16
	audio := []byte("0123456789abcdef")
	var stream bytes.Buffer
	stream.Write(audio)
	stream.Write(icyBlock("StreamTitle='T';"))
	stream.Write(audio)

	r := newICYReader(&stream, metaint, nil)
	var got []byte
	buf := make([]byte, 3) // force reads straddling the metadata boundary
	for {
		n, err := r.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if len(got) != 2*len(audio) {
		t.Errorf("read %d audio bytes, want %d", len(got), 2*len(audio))
	}
}

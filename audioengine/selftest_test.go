package audioengine

import (
	"encoding/binary"
	"os"
	"testing"
)

func TestSelfTestFile(t *testing.T) {
	dir := t.TempDir()

	path, err := SelfTestFile(dir)
	if err != nil {
		t.Fatalf("SelfTestFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}

	wantData := selfTestRate * selfTestSeconds * 4
	if len(data) != 44+wantData {
		t.Fatalf("file size = %d, want %d", len(data), 44+wantData)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 2 {
		t.Errorf("channels = %d, want 2 (stereo)", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != selfTestRate {
		t.Errorf("sample rate = %d, want %d", got, selfTestRate)
	}

	// The first frame starts at phase zero on both channels.
	if l := int16(binary.LittleEndian.Uint16(data[44:46])); l != 0 {
		t.Errorf("first left sample = %d, want 0", l)
	}

	// A second call returns the cached file without rewriting it.
	info1, _ := os.Stat(path)
	path2, err := SelfTestFile(dir)
	if err != nil {
		t.Fatalf("second SelfTestFile: %v", err)
	}
	if path2 != path {
		t.Errorf("second path = %q, want %q", path2, path)
	}
	info2, _ := os.Stat(path)
	if !info1.ModTime().Equal(info2.ModTime()) {
		t.Error("cached self-test file was rewritten")
	}
}

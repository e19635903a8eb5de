package webradio

import (
	"fmt"
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	d := NewDispatcher(&fakeEngine{}, DispatcherConfig{CacheDir: t.TempDir()})
	return d.Registry()
}

func TestRegistryKeysUnique(t *testing.T) {
	r := testRegistry(t)
	seen := make(map[rune]string)
	for _, e := range r.Entries() {
		if prev, dup := seen[e.Key]; dup {
			t.Errorf("key %q bound twice: %q and %q", e.Key, prev, e.Label)
		}
		seen[e.Key] = e.Label
	}
}

func TestRegistryResolve(t *testing.T) {
	r := testRegistry(t)

	for _, e := range r.Entries() {
		got, ok := r.Resolve(e.Key)
		if !ok {
			t.Errorf("Resolve(%q) = false, want true", e.Key)
			continue
		}
		if got.Label != e.Label {
			t.Errorf("Resolve(%q) = %q, want %q", e.Key, got.Label, e.Label)
		}
	}

	if _, ok := r.Resolve('?'); ok {
		t.Error("Resolve('?') = true, want false")
	}
}

func TestRegistryCoversAllStations(t *testing.T) {
	r := testRegistry(t)
	want := len(stations) + len(speechDemos) + 6 // self test, +, -, T, C, S
	if r.Len() != want {
		t.Errorf("registry has %d entries, want %d", r.Len(), want)
	}
	for _, s := range stations {
		e, ok := r.Resolve(s.Key)
		if !ok || e.Label != s.Name || e.Arg != s.URL {
			t.Errorf("station %q not bound correctly: %+v", s.Key, e)
		}
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	r := NewRegistry([]MenuEntry{
		{Key: 'x', Label: "first"},
		{Key: 'x', Label: "second"},
	})
	e, ok := r.Resolve('x')
	if !ok || e.Label != "first" {
		t.Errorf("Resolve('x') = %+v, want the first entry", e)
	}
}

func TestRenderMenuListsEveryEntryOnceInOrder(t *testing.T) {
	entries := testRegistry(t).Entries()
	menu := renderMenu(entries)

	pos := -1
	for _, e := range entries {
		line := fmt.Sprintf("[%c] %s\n", e.Key, e.Label)
		if strings.Count(menu, line) != 1 {
			t.Errorf("menu lists %q %d times, want once", strings.TrimSpace(line), strings.Count(menu, line))
			continue
		}
		at := strings.Index(menu, line)
		if at < pos {
			t.Errorf("entry %q out of order", strings.TrimSpace(line))
		}
		pos = at
	}
	if !strings.Contains(menu, "Web  Radio") {
		t.Error("menu misses the title block")
	}
	if !strings.HasSuffix(menu, "Press a key: ") {
		t.Error("menu misses the key prompt")
	}
}

package webradio

import (
	"fmt"
	"strings"
)

// MenuEntry binds one console key to an action. Arg is passed verbatim to
// Action: a stream URL for stations, the text to speak for speech entries,
// a file path for local playback, empty for parameterless actions.
type MenuEntry struct {
	Key    rune
	Label  string
	Arg    string
	Action func(arg string)
}

// Registry is the fixed, ordered menu table. Lookup is a linear scan over
// the entries in declaration order; the first matching key wins.
type Registry struct {
	entries []MenuEntry
}

func NewRegistry(entries []MenuEntry) *Registry {
	return &Registry{entries: entries}
}

// Resolve returns the first entry bound to key. Unmapped keys report
// ok == false and are otherwise ignored.
func (r *Registry) Resolve(key rune) (MenuEntry, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e, true
		}
	}
	return MenuEntry{}, false
}

// Entries returns the menu rows in display order.
func (r *Registry) Entries() []MenuEntry {
	return r.entries
}

func (r *Registry) Len() int {
	return len(r.entries)
}

const menuTitle = `-----------------
   Web  Radio
-----------------`

// renderMenu formats the full menu block, one "[key] label" line per entry,
// every entry exactly once, in registry order.
func renderMenu(entries []MenuEntry) string {
	var b strings.Builder
	b.WriteString(menuTitle)
	b.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(&b, "[%c] %s\n", e.Key, e.Label)
	}
	b.WriteString("\nPress a key: ")
	return b.String()
}

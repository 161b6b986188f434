package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/terminal"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadBindings parses key → action name pairs into a sparse override KeyTable
// A key is a single character, a rune alias or a special key name ("left", "ctrl_c")
func LoadBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[terminal.Key]event.GameEvent),
		Runes:       make(map[rune]event.GameEvent),
	}

	for keyStr, actionName := range bindings {
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = entry
			continue
		}
		if k, ok := terminal.KeyByName(strings.ToLower(keyStr)); ok {
			kt.SpecialKeys[k] = entry
			continue
		}
		return nil, fmt.Errorf("unknown key name: %q", keyStr)
	}

	return kt, nil
}

// resolveRune accepts single characters (lowercased) and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return []rune(strings.ToLower(s))[0], true
	}
	return 0, false
}

func resolveAction(name string) (event.GameEvent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return event.GameEvent{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns base with override applied; "none" entries delete the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v.Kind == event.KindNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Kind == event.KindNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	return result
}

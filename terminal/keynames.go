package terminal

// keyToName maps Key constants to config names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyCtrlC: "ctrl_c",
	KeyCtrlD: "ctrl_d",
	KeyCtrlL: "ctrl_l",
	KeyCtrlZ: "ctrl_z",
}

var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+2)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
}

// KeyName returns the config name of k, empty for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a config name to a Key
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

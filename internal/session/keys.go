package session

import "strings"

// keyAliases maps common spellings to the key names the server's input
// endpoint understands. Unknown keys pass through untouched; the server
// owns the key vocabulary.
var keyAliases = map[string]string{
	"return":    "enter",
	"cr":        "enter",
	"esc":       "escape",
	"del":       "delete",
	"backspace": "backspace",
	"bs":        "backspace",
	"up":        "arrow_up",
	"down":      "arrow_down",
	"left":      "arrow_left",
	"right":     "arrow_right",
	"pgup":      "page_up",
	"pgdn":      "page_down",
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if normalized, ok := keyAliases[key]; ok {
		return normalized
	}
	return key
}

package hal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var keyNames = map[KeyCode]string{
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyBackspace: "Backspace",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKeys parses a comma separated key script such as "F2,4,2,Enter,Esc".
//
// Names are matched case-insensitively ("exe" and "exit" are accepted as
// aliases for Enter and Esc). Any other single character is sent as text.
func ParseKeys(script string) ([]KeyEvent, error) {
	var out []KeyEvent
	for _, field := range strings.Split(script, ",") {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}
		if code, ok := lookupKey(name); ok {
			out = append(out, KeyEvent{Code: code, Press: true})
			continue
		}
		if utf8.RuneCountInString(name) == 1 {
			r, _ := utf8.DecodeRuneInString(name)
			out = append(out, KeyEvent{Press: true, Rune: r})
			continue
		}
		return nil, fmt.Errorf("unknown key %q", name)
	}
	return out, nil
}

func lookupKey(name string) (KeyCode, bool) {
	switch strings.ToLower(name) {
	case "exe":
		return KeyEnter, true
	case "exit", "escape":
		return KeyEscape, true
	}
	for code, s := range keyNames {
		if strings.EqualFold(s, name) {
			return code, true
		}
	}
	return KeyUnknown, false
}

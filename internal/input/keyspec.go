package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// identifierKeys maps the special identifiers usable in keyspecs (inside
// '<...>') to their keys.
var identifierKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},

	"c-a": {Key: tcell.KeyCtrlA},
	"c-b": {Key: tcell.KeyCtrlB},
	"c-c": {Key: tcell.KeyCtrlC},
	"c-d": {Key: tcell.KeyCtrlD},
	"c-e": {Key: tcell.KeyCtrlE},
	"c-f": {Key: tcell.KeyCtrlF},
	"c-g": {Key: tcell.KeyCtrlG},
	"c-h": {Key: tcell.KeyCtrlH},
	"c-i": {Key: tcell.KeyCtrlI},
	"c-j": {Key: tcell.KeyCtrlJ},
	"c-k": {Key: tcell.KeyCtrlK},
	"c-l": {Key: tcell.KeyCtrlL},
	"c-m": {Key: tcell.KeyCtrlM},
	"c-n": {Key: tcell.KeyCtrlN},
	"c-o": {Key: tcell.KeyCtrlO},
	"c-p": {Key: tcell.KeyCtrlP},
	"c-q": {Key: tcell.KeyCtrlQ},
	"c-r": {Key: tcell.KeyCtrlR},
	"c-s": {Key: tcell.KeyCtrlS},
	"c-t": {Key: tcell.KeyCtrlT},
	"c-u": {Key: tcell.KeyCtrlU},
	"c-v": {Key: tcell.KeyCtrlV},
	"c-w": {Key: tcell.KeyCtrlW},
	"c-x": {Key: tcell.KeyCtrlX},
	"c-y": {Key: tcell.KeyCtrlY},
	"c-z": {Key: tcell.KeyCtrlZ},
}

// keyIdentifiers is the inverse of identifierKeys.
var keyIdentifiers = func() map[Key]string {
	result := make(map[Key]string, len(identifierKeys))
	for identifier, key := range identifierKeys {
		// prefer 'cr' over the aliasing control identifier ('c-m' etc.)
		if existing, ok := result[key]; ok && len(existing) < len(identifier) {
			continue
		}
		result[key] = identifier
	}
	return result
}()

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos := range specR {
		switch specR[pos] {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{specR[pos]})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], specR[pos])

		default:
			if specialContext {
				if !unicode.IsLetter(specR[pos]) && specR[pos] != '-' {
					return nil,
						fmt.Errorf("illegal character '%c' in special context (pos %d)", specR[pos], pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], specR[pos])
			} else {
				keys = append(keys, []rune{specR[pos]})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("unclosed special context ('<' without '>') in keyspec '%s'", spec)
	}

	result := make([]Key, 0)
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %s", string(keyIdentifier), err.Error())
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := keyIdentifiers[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
}

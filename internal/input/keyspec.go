package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeys maps the identifiers usable within '<' and '>' in a keyspec to
// their keys.
var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"tab":   {Key: tcell.KeyTab},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

func init() {
	for ch := 'a'; ch <= 'z'; ch++ {
		specialKeys["c-"+string(ch)] = Key{Key: tcell.KeyCtrlA + tcell.Key(ch-'a')}
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range specR {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("unclosed special context at end of '%s'", spec)
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
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identfier.
func ToConfigIdentifierString(k Key) string {
	for identifier, key := range specialKeys {
		if key == k {
			return "<" + identifier + ">"
		}
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
}

package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that can't be bare single-char YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// keyByName is tcell.KeyNames reversed and lowercased ("up", "f1", "ctrl-c")
var keyByName map[string]tcell.Key

func init() {
	keyByName = make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		keyByName[strings.ToLower(name)] = k
	}
}

// KeyBindings is the `keys` section of the config file: key name -> action name
type KeyBindings struct {
	Runes map[string]string `yaml:"runes"`
	Keys  map[string]string `yaml:"keys"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var kb KeyBindings
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return kb.Table()
}

// Table resolves the bindings into a sparse override KeyTable
// Only keys present in the bindings are populated
func (kb KeyBindings) Table() (*KeyTable, error) {
	kt := &KeyTable{}

	if len(kb.Runes) > 0 {
		kt.Runes = make(map[rune]Intent, len(kb.Runes))
		for keyStr, action := range kb.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = intent
		}
	}

	if len(kb.Keys) > 0 {
		kt.Keys = make(map[tcell.Key]Intent, len(kb.Keys))
		for keyStr, action := range kb.Keys {
			k, ok := keyByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Keys[k] = intent
		}
	}

	return kt, nil
}

// resolveRune converts a YAML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

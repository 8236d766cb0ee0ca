package input

// actionRegistry maps canonical action names to intents
// Used by the keymap config loader to resolve YAML action strings to bindings
var actionRegistry map[string]Intent

func init() {
	actionRegistry = make(map[string]Intent, len(intentNames))
	for i, name := range intentNames {
		actionRegistry[name] = Intent(i)
	}
}

// ActionIntent returns the intent for a canonical action name
// "none" resolves to IntentNone and unbinds the key when merged
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}

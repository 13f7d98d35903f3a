// Package keymap binds bubbletea key strings (as produced by
// tea.KeyMsg.String(), e.g. "ctrl+c", "g", "down") to the closed set of
// actions runa recognizes, built from the user's configuration.
package keymap

// Action is the closed set of actions the keymap can dispatch: navigate,
// file operations, or system actions.
type Action int

const (
	ActionNone Action = iota

	// Navigate
	ActionGoUp
	ActionGoDown
	ActionGoParent
	ActionGoIntoDir
	ActionToggleMarker

	// File ops
	ActionOpen
	ActionDelete
	ActionCopy
	ActionPaste
	ActionRename
	ActionCreate
	ActionCreateDirectory
	ActionFilter
	ActionShowInfo
	ActionFuzzyFind
	ActionYankPath

	// System
	ActionQuit
)

// Bindings is the user-facing configuration shape: one or more key strings
// per action. Keys absent from the map simply have no binding.
type Bindings struct {
	GoUp            []string
	GoDown          []string
	GoParent        []string
	GoIntoDir       []string
	ToggleMarker    []string
	Open            []string
	Delete          []string
	Copy            []string
	Paste           []string
	Rename          []string
	Create          []string
	CreateDirectory []string
	Filter          []string
	ShowInfo        []string
	FuzzyFind       []string
	YankPath        []string
	Quit            []string
}

// Keymap is the resolved key string -> Action table used at runtime.
type Keymap struct {
	table map[string]Action
}

// FromBindings builds a Keymap from a user's Bindings configuration. When
// several actions list the same key string, the action bound later in the
// sequence below wins.
func FromBindings(b Bindings) *Keymap {
	k := &Keymap{table: make(map[string]Action)}
	bind := func(keys []string, action Action) {
		for _, s := range keys {
			k.table[s] = action
		}
	}

	bind(b.GoUp, ActionGoUp)
	bind(b.GoDown, ActionGoDown)
	bind(b.GoParent, ActionGoParent)
	bind(b.GoIntoDir, ActionGoIntoDir)
	bind(b.ToggleMarker, ActionToggleMarker)
	bind(b.Open, ActionOpen)
	bind(b.Delete, ActionDelete)
	bind(b.Copy, ActionCopy)
	bind(b.Paste, ActionPaste)
	bind(b.Rename, ActionRename)
	bind(b.Create, ActionCreate)
	bind(b.CreateDirectory, ActionCreateDirectory)
	bind(b.Filter, ActionFilter)
	bind(b.ShowInfo, ActionShowInfo)
	bind(b.FuzzyFind, ActionFuzzyFind)
	bind(b.YankPath, ActionYankPath)
	bind(b.Quit, ActionQuit)

	return k
}

// Lookup returns the action bound to keyString (as produced by
// tea.KeyMsg.String()), or ActionNone if unbound.
func (k *Keymap) Lookup(keyString string) Action {
	if a, ok := k.table[keyString]; ok {
		return a
	}
	return ActionNone
}

// Default returns runa's built-in key bindings, in the teacher's
// default-keymap-table style.
func Default() Bindings {
	return Bindings{
		GoUp:            []string{"up", "k"},
		GoDown:          []string{"down", "j"},
		GoParent:        []string{"left", "h"},
		GoIntoDir:       []string{"right", "l", "enter"},
		ToggleMarker:    []string{" "},
		Open:            []string{"o"},
		Delete:          []string{"d"},
		Copy:            []string{"y"},
		Paste:           []string{"p"},
		Rename:          []string{"r"},
		Create:          []string{"n"},
		CreateDirectory: []string{"N"},
		Filter:          []string{"/"},
		ShowInfo:        []string{"i"},
		FuzzyFind:       []string{"f"},
		YankPath:        []string{"Y"},
		Quit:            []string{"q", "ctrl+c"},
	}
}

package tui

// Keymap maps actions to key names. Two layouts exist: vim-style and a
// basic arrow-key layout, selected via config.
type Keymap struct {
	Up     []string
	Down   []string
	Top    []string
	Bottom []string

	Add     []string
	Edit    []string
	Delete  []string
	Toggle  []string
	Sort    []string
	Copy    []string
	Voice   []string
	Confirm []string
	Cancel  []string
	Help    []string
	Quit    []string
}

// DefaultKeymap returns the keymap for the configured input style.
func DefaultKeymap(vimMode bool) Keymap {
	km := Keymap{
		Up:      []string{"up"},
		Down:    []string{"down"},
		Top:     []string{"home"},
		Bottom:  []string{"end"},
		Add:     []string{"a"},
		Edit:    []string{"e"},
		Delete:  []string{"d", "delete"},
		Toggle:  []string{"x", " "},
		Sort:    []string{"s"},
		Copy:    []string{"y"},
		Voice:   []string{"ctrl+v"},
		Confirm: []string{"enter"},
		Cancel:  []string{"esc"},
		Help:    []string{"?"},
		Quit:    []string{"q", "ctrl+c"},
	}
	if vimMode {
		km.Up = append([]string{"k"}, km.Up...)
		km.Down = append([]string{"j"}, km.Down...)
		km.Top = append([]string{"g"}, km.Top...)
		km.Bottom = append([]string{"G"}, km.Bottom...)
	}
	return km
}

// Matches reports whether key is bound to the given action keys.
func Matches(key string, bindings []string) bool {
	for _, b := range bindings {
		if key == b {
			return true
		}
	}
	return false
}

// HelpItems returns key/description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{k.Down[0] + "/" + k.Up[0], "move down/up"},
		{k.Add[0], "add task"},
		{k.Edit[0], "edit task"},
		{k.Toggle[0], "complete/uncomplete"},
		{k.Delete[0], "delete task"},
		{k.Sort[0], "switch sort (due date/project)"},
		{k.Copy[0], "copy share link"},
		{k.Voice[0], "voice capture (in add form)"},
		{k.Help[0], "help"},
		{k.Quit[0], "quit"},
	}
}

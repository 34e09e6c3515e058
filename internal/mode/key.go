// Package mode implements the modal input state machine (§4.J): a
// dispatch table from (mode, key) to actions over a view, owning the
// prompt/search/goto-definition/menu flows and visual-selection state.
package mode

// KeyName identifies a non-printable logical key (§6 Input events).
type KeyName int

const (
	KeyNone KeyName = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
)

// Key is one logical input event: either a printable rune or a named
// key, with an optional Control modifier bit.
type Key struct {
	Rune    rune
	Name    KeyName
	Control bool
}

// Printable reports whether this key carries a literal rune to insert.
func (k Key) Printable() bool { return k.Name == KeyNone && k.Rune != 0 }

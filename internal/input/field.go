package input

// maxFieldLen bounds the text field; longer numbers clamp anyway.
const maxFieldLen = 12

// Field is the editable text behind the count prompt. It only takes digits.
type Field struct {
	buf []rune
}

// NewField returns a field holding initial.
func NewField(initial string) *Field {
	f := &Field{}
	for _, r := range initial {
		f.Insert(r)
	}
	return f
}

// Insert appends r if it is a digit and the field has room.
func (f *Field) Insert(r rune) bool {
	if r < '0' || r > '9' || len(f.buf) >= maxFieldLen {
		return false
	}
	f.buf = append(f.buf, r)
	return true
}

// Backspace drops the last rune.
func (f *Field) Backspace() {
	if len(f.buf) > 0 {
		f.buf = f.buf[:len(f.buf)-1]
	}
}

// Clear empties the field.
func (f *Field) Clear() {
	f.buf = f.buf[:0]
}

// Value is the current text.
func (f *Field) Value() string {
	return string(f.buf)
}

// Empty reports whether the field has no text.
func (f *Field) Empty() bool {
	return len(f.buf) == 0
}

package orderform

import (
	"strings"
)

type Kind int

const (
	KindText Kind = iota
	KindChoice
)

// Field is a closed variant over the two widget kinds the order flow uses: a
// free-text input or a single choice out of a fixed set. Kind decides which
// of the remaining attributes mean anything.
type Field struct {
	Name     string
	Kind     Kind
	Value    string // text input
	Hint     string
	Choices  []string // choice input
	Selected string
}

func TextField(name string, value string, hint string) Field {
	return Field{
		Name:  name,
		Kind:  KindText,
		Value: value,
		Hint:  hint,
	}
}

func ChoiceField(name string, choices []string, selected string) Field {
	return Field{
		Name:     name,
		Kind:     KindChoice,
		Choices:  choices,
		Selected: selected,
	}
}

func (f Field) IsValid() bool {
	switch f.Kind {
	case KindText:
		return strings.TrimSpace(f.Value) != ""
	case KindChoice:
		return f.Selected != ""
	default:
		return false
	}
}

func (f Field) CollectValue() string {
	switch f.Kind {
	case KindText:
		return f.Value
	case KindChoice:
		return f.Selected
	default:
		return ""
	}
}

// Form is an ordered set of fields; it is valid when every field is.
type Form struct {
	Fields []Field
}

func (f Form) IsValid() bool {
	for _, field := range f.Fields {
		if !field.IsValid() {
			return false
		}
	}

	return true
}

// Values returns name to value for every field, whether valid or not: it is
// up to the caller to check IsValid before trusting the result.
func (f Form) Values() map[string]string {
	values := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		values[field.Name] = field.CollectValue()
	}

	return values
}

package model

// Kind identifies the control a field renders as. The input kinds map onto the
// HTML input type attribute; KindSelect and KindTextarea are only meaningful
// when dispatching a whole Field.
type Kind string

const (
	KindText     Kind = "text"
	KindPassword Kind = "password"
	KindEmail    Kind = "email"
	KindHidden   Kind = "hidden"
	KindCheckbox Kind = "checkbox"
	KindSubmit   Kind = "submit"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
)

// IsInput reports whether the kind renders as an <input> element.
func (k Kind) IsInput() bool {
	switch k {
	case KindSelect, KindTextarea:
		return false
	default:
		return true
	}
}

// Field describes a single control to render. It is constructed per call and
// never retained by the builders.
type Field struct {
	Kind       Kind
	Name       string
	Label      string
	Attributes *Attributes
	Options    Options
}

package model

// Field is a concrete field instance supplied by the consumer at resolution
// time. The resolver only needs a stable identifier; richer behaviour is
// exposed through optional capability interfaces.
type Field interface {
	FieldID() string
}

// DefaultValuer is an optional capability a Field may implement to expose
// the value a consumer should fall back to when the field's hint is not
// fully declarative. Modelling the fallback as an explicit capability keeps
// reflection out of the resolution path.
type DefaultValuer interface {
	DefaultValue() (any, bool)
}

// FieldValue is the stock Field implementation: an identifier plus an
// optional runtime value.
type FieldValue struct {
	ID    string
	Value any
}

// FieldID implements Field.
func (f FieldValue) FieldID() string { return f.ID }

// DefaultValue implements DefaultValuer. A nil value means no fallback.
func (f FieldValue) DefaultValue() (any, bool) {
	if f.Value == nil {
		return nil, false
	}
	return f.Value, true
}

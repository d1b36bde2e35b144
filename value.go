package yamlite

import (
	"fmt"
	"slices"
)

// Kind identifies the variant a Value currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a dynamically-typed node of a document tree. A Value holds
// exactly one variant at a time; the zero Value is null.
//
// Mapping keys are always strings and iterate in sorted key order.
// Sequence elements keep their insertion order.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	seq  []*Value
	mp   map[string]*Value
}

// NewNull returns a null Value.
func NewNull() *Value { return &Value{} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewNumber returns a number Value.
func NewNumber(f float64) *Value { return &Value{kind: KindNumber, num: f} }

// NewInt returns a number Value. The format has no integer type; integral
// numbers are floats with an integral display rule.
func NewInt(n int) *Value { return &Value{kind: KindNumber, num: float64(n)} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewSequence returns a sequence Value owning the given elements.
func NewSequence(elems ...*Value) *Value {
	return &Value{kind: KindSequence, seq: elems}
}

// NewMapping returns an empty mapping Value.
func NewMapping() *Value {
	return &Value{kind: KindMapping, mp: map[string]*Value{}}
}

// From builds a Value from a plain Go value: nil, bool, string, any
// integer or float type, []any, map[string]any, or another *Value (which
// is deep-copied).
func From(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(x), nil
	case string:
		return NewString(x), nil
	case float64:
		return NewNumber(x), nil
	case float32:
		return NewNumber(float64(x)), nil
	case int:
		return NewNumber(float64(x)), nil
	case int8:
		return NewNumber(float64(x)), nil
	case int16:
		return NewNumber(float64(x)), nil
	case int32:
		return NewNumber(float64(x)), nil
	case int64:
		return NewNumber(float64(x)), nil
	case uint:
		return NewNumber(float64(x)), nil
	case uint8:
		return NewNumber(float64(x)), nil
	case uint16:
		return NewNumber(float64(x)), nil
	case uint32:
		return NewNumber(float64(x)), nil
	case uint64:
		return NewNumber(float64(x)), nil
	case []any:
		seq := make([]*Value, 0, len(x))
		for _, el := range x {
			ev, err := From(el)
			if err != nil {
				return nil, err
			}
			seq = append(seq, ev)
		}
		return NewSequence(seq...), nil
	case map[string]any:
		m := NewMapping()
		for k, el := range x {
			ev, err := From(el)
			if err != nil {
				return nil, err
			}
			m.mp[k] = ev
		}
		return m, nil
	case *Value:
		return x.Clone(), nil
	}
	return nil, fmt.Errorf("yamlite: cannot represent %T", v)
}

// Kind returns the variant v currently holds. A nil *Value reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool     { return v.Kind() == KindNull }
func (v *Value) IsBool() bool     { return v.Kind() == KindBool }
func (v *Value) IsNumber() bool   { return v.Kind() == KindNumber }
func (v *Value) IsString() bool   { return v.Kind() == KindString }
func (v *Value) IsSequence() bool { return v.Kind() == KindSequence }
func (v *Value) IsMapping() bool  { return v.Kind() == KindMapping }

// AsBool returns the boolean payload, or a TypeError if v is not a boolean.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, &TypeError{Want: KindBool, Got: v.Kind()}
	}
	return v.b, nil
}

// AsNumber returns the number payload, or a TypeError if v is not a number.
func (v *Value) AsNumber() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, &TypeError{Want: KindNumber, Got: v.Kind()}
	}
	return v.num, nil
}

// AsInt returns the number payload truncated to an int.
func (v *Value) AsInt() (int, error) {
	f, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// AsString returns the string payload, or a TypeError if v is not a string.
func (v *Value) AsString() (string, error) {
	if v.Kind() != KindString {
		return "", &TypeError{Want: KindString, Got: v.Kind()}
	}
	return v.str, nil
}

// AsSequence returns the live element slice of a sequence.
func (v *Value) AsSequence() ([]*Value, error) {
	if v.Kind() != KindSequence {
		return nil, &TypeError{Want: KindSequence, Got: v.Kind()}
	}
	return v.seq, nil
}

// AsMapping returns the live key-to-value map of a mapping. Iterate in
// deterministic order via Keys.
func (v *Value) AsMapping() (map[string]*Value, error) {
	if v.Kind() != KindMapping {
		return nil, &TypeError{Want: KindMapping, Got: v.Kind()}
	}
	return v.mp, nil
}

// Len returns the number of elements of a sequence, the number of entries
// of a mapping, the byte length of a string, and 0 for everything else.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.mp)
	case KindString:
		return len(v.str)
	}
	return 0
}

// Has reports whether v is a mapping containing key.
func (v *Value) Has(key string) bool {
	if v.Kind() != KindMapping {
		return false
	}
	_, ok := v.mp[key]
	return ok
}

// Keys returns the mapping's keys in sorted order, or nil for non-mappings.
func (v *Value) Keys() []string {
	if v.Kind() != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(v.mp))
	for k := range v.mp {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the value stored under key. It fails with a TypeError when v
// is not a mapping and with a KeyError when the key is absent.
func (v *Value) Get(key string) (*Value, error) {
	if v.Kind() != KindMapping {
		return nil, &TypeError{Want: KindMapping, Got: v.Kind()}
	}
	e, ok := v.mp[key]
	if !ok {
		return nil, &KeyError{Key: key}
	}
	return e, nil
}

// At returns the i-th element of a sequence. It fails with a TypeError
// when v is not a sequence and with an IndexError when i is out of range.
func (v *Value) At(i int) (*Value, error) {
	if v.Kind() != KindSequence {
		return nil, &TypeError{Want: KindSequence, Got: v.Kind()}
	}
	if i < 0 || i >= len(v.seq) {
		return nil, &IndexError{Index: i, Len: len(v.seq)}
	}
	return v.seq[i], nil
}

// Entry returns the mutable value stored under key, inserting a null entry
// if the key is absent. A null v is first promoted to an empty mapping.
func (v *Value) Entry(key string) (*Value, error) {
	if v.kind == KindNull {
		*v = Value{kind: KindMapping, mp: map[string]*Value{}}
	}
	if v.kind != KindMapping {
		return nil, &TypeError{Want: KindMapping, Got: v.kind}
	}
	e, ok := v.mp[key]
	if !ok {
		e = &Value{}
		v.mp[key] = e
	}
	return e, nil
}

// Element returns the mutable i-th element of a sequence. A null v is
// first promoted to an empty sequence, and the sequence grows with null
// elements until index i exists.
func (v *Value) Element(i int) (*Value, error) {
	if i < 0 {
		return nil, &IndexError{Index: i, Len: v.Len()}
	}
	if v.kind == KindNull {
		*v = Value{kind: KindSequence}
	}
	if v.kind != KindSequence {
		return nil, &TypeError{Want: KindSequence, Got: v.kind}
	}
	for len(v.seq) <= i {
		v.seq = append(v.seq, &Value{})
	}
	return v.seq[i], nil
}

// Append appends el to a sequence, promoting a null v to an empty sequence
// first.
func (v *Value) Append(el *Value) error {
	if v.kind == KindNull {
		*v = Value{kind: KindSequence}
	}
	if v.kind != KindSequence {
		return &TypeError{Want: KindSequence, Got: v.kind}
	}
	v.seq = append(v.seq, el)
	return nil
}

// SetNull resets v to null.
func (v *Value) SetNull() { *v = Value{} }

// SetBool makes v a boolean.
func (v *Value) SetBool(b bool) { *v = Value{kind: KindBool, b: b} }

// SetNumber makes v a number.
func (v *Value) SetNumber(f float64) { *v = Value{kind: KindNumber, num: f} }

// SetInt makes v an integral number.
func (v *Value) SetInt(n int) { *v = Value{kind: KindNumber, num: float64(n)} }

// SetString makes v a string.
func (v *Value) SetString(s string) { *v = Value{kind: KindString, str: s} }

// Clear resets v to null, releasing any owned children.
func (v *Value) Clear() { *v = Value{} }

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return NewNull()
	}
	out := &Value{kind: v.kind, b: v.b, num: v.num, str: v.str}
	switch v.kind {
	case KindSequence:
		out.seq = make([]*Value, len(v.seq))
		for i, el := range v.seq {
			out.seq[i] = el.Clone()
		}
	case KindMapping:
		out.mp = make(map[string]*Value, len(v.mp))
		for k, el := range v.mp {
			out.mp[k] = el.Clone()
		}
	}
	return out
}

// Take detaches v's payload into a new Value and leaves v null.
func (v *Value) Take() *Value {
	out := *v
	*v = Value{}
	return &out
}

// Equal reports whether v and o are structurally equal. Values of
// different kinds are unequal; a nil *Value compares as null.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i, el := range v.seq {
			if !el.Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.mp) != len(o.mp) {
			return false
		}
		for k, el := range v.mp {
			oe, ok := o.mp[k]
			if !ok || !el.Equal(oe) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v to plain Go values: nil, bool, float64, string,
// []any and map[string]any.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, el := range v.seq {
			out[i] = el.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.mp))
		for k, el := range v.mp {
			out[k] = el.Interface()
		}
		return out
	}
	return nil
}

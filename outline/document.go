package outline

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object that remembers the order in which keys were first
// set. Setting an existing key replaces its value in place.
type Object struct {
	pairs *orderedmap.OrderedMap[string, any]
}

func NewObject() *Object {
	return &Object{pairs: orderedmap.New[string, any]()}
}

func (o *Object) Set(key string, value any) {
	o.pairs.Set(key, value)
}

func (o *Object) Has(key string) bool {
	_, ok := o.pairs.Get(key)
	return ok
}

func (o *Object) Get(key string) (any, bool) {
	return o.pairs.Get(key)
}

func (o *Object) value(key string) any {
	v, _ := o.pairs.Get(key)
	return v
}

// Object returns the object stored under key, or nil if there is none.
func (o *Object) Object(key string) *Object {
	obj, _ := o.value(key).(*Object)
	return obj
}

// List returns the list stored under key, or nil if there is none.
func (o *Object) List(key string) *List {
	list, _ := o.value(key).(*List)
	return list
}

// Text returns the string stored under key, or "" if there is none.
func (o *Object) Text(key string) string {
	s, _ := o.value(key).(string)
	return s
}

func (o *Object) Position(key string) (Position, bool) {
	p, ok := o.value(key).(Position)
	return p, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.pairs.Len())
	for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (o *Object) Len() int {
	return o.pairs.Len()
}

// ensureObject returns the object under key, creating it if needed.
func (o *Object) ensureObject(key string) *Object {
	if obj := o.Object(key); obj != nil {
		return obj
	}
	obj := NewObject()
	o.Set(key, obj)
	return obj
}

// ensureList returns the list under key, creating it if needed.
func (o *Object) ensureList(key string) *List {
	if list := o.List(key); list != nil {
		return list
	}
	list := &List{}
	o.Set(key, list)
	return list
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeValue(&buf, pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeValue(&buf, pair.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeValue encodes v without HTML escaping so that generic type text such as
// List<String> stays readable.
func writeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// List is an ordered JSON array.
type List struct {
	items []any
}

func NewList(items ...any) *List {
	return &List{items: items}
}

func (l *List) Append(v any) {
	l.items = append(l.items, v)
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

func (l *List) At(i int) any {
	return l.items[i]
}

func (l *List) Items() []any {
	return append([]any(nil), l.items...)
}

func (l *List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range l.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, item); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Position is a literal source coordinate in the output document.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

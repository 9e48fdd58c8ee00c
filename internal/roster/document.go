package roster

// Field is one key of a roster object, kept in document order.
type Field struct {
	Key   string
	Value any
}

// Object is an order-preserving mapping decoded from a roster document.
// Values are Object, []any, string, float64, int, bool or nil.
type Object []Field

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys lists the keys in document order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, f := range o {
		keys = append(keys, f.Key)
	}
	return keys
}

// set replaces an existing key in place, otherwise appends. Repeated keys keep
// their first position and last value.
func (o Object) set(key string, value any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Field{Key: key, Value: value})
}

func (o Object) stringField(key string) string {
	v, ok := o.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

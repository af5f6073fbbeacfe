package request

// FlatField is one leaf of a flattened body: a bracket-notation key path, the
// leaf value and whether the value is a file handle. A leaf at
// body["foo"]["bar"] flattens to key path "foo[bar]"; each element of a
// sequence at body["foo"] flattens under "foo[]".
type FlatField struct {
	Key    string
	Value  any
	IsFile bool
}

// FlatBody flattens the nested body into an ordered sequence of leaf fields.
// Mapping keys keep insertion order, sequence elements keep element order,
// and empty mappings or sequences contribute nothing. Downstream multipart
// encoders must emit form fields in exactly this order.
func (r Request) FlatBody() []FlatField {
	var flat []FlatField
	for _, pair := range r.body {
		flat = append(flat, flatten(pair.Value, pair.Key)...)
	}
	return flat
}

// IsMultipart reports whether the body contains at least one file handle and
// therefore needs multipart encoding.
func (r Request) IsMultipart() bool {
	for _, field := range r.FlatBody() {
		if field.IsFile {
			return true
		}
	}
	return false
}

func flatten(node any, prefix string) []FlatField {
	switch n := node.(type) {
	case Map:
		var flat []FlatField
		for _, pair := range n {
			flat = append(flat, flatten(pair.Value, prefix+"["+pair.Key+"]")...)
		}
		return flat
	case []any:
		var flat []FlatField
		for _, value := range n {
			flat = append(flat, flatten(value, prefix+"[]")...)
		}
		return flat
	case File:
		return []FlatField{{Key: prefix, Value: n, IsFile: true}}
	default:
		return []FlatField{{Key: prefix, Value: node}}
	}
}

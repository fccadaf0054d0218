package encode

type EncodeOption func(*EncState)

type EncState struct {
	indent string
	wire   bool
	keys   bool
	colors *Colors
}

// EncodeWire emits the compact single-line form.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeKeys includes the identity key listing in diff output.
func EncodeKeys(v bool) EncodeOption {
	return func(es *EncState) { es.keys = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	f, ok := es.colors.Map[attr]
	if !ok {
		return es.colors.Default(s)
	}
	return f(s)
}

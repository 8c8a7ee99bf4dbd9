// Package frameview converts decoded v2/v3 frames into a concrete,
// marshalable DTO so they can round-trip through serialization formats that
// cannot represent a bare Go interface (JSON, msgpack, CBOR). Frame is the
// wire-facing zero-copy type; View is its export-facing copy.
package frameview

import (
	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

// View is a tagged-union export of one decoded frame, built for the
// convenience of external serializers rather than for zero-copy decoding:
// unlike Frame, a View owns copies of every byte slice it holds.
type View struct {
	Kind   string     `json:"kind" msgpack:"kind" cbor:"kind"`
	Bytes  []byte     `json:"bytes,omitempty" msgpack:"bytes,omitempty" cbor:"bytes,omitempty"`
	Int    *int64     `json:"int,omitempty" msgpack:"int,omitempty" cbor:"int,omitempty"`
	Bool   *bool      `json:"bool,omitempty" msgpack:"bool,omitempty" cbor:"bool,omitempty"`
	Float  *float64   `json:"float,omitempty" msgpack:"float,omitempty" cbor:"float,omitempty"`
	Format string     `json:"format,omitempty" msgpack:"format,omitempty" cbor:"format,omitempty"`
	Items  []View     `json:"items,omitempty" msgpack:"items,omitempty" cbor:"items,omitempty"`
	Pairs  []PairView `json:"pairs,omitempty" msgpack:"pairs,omitempty" cbor:"pairs,omitempty"`
	Attrs  []PairView `json:"attrs,omitempty" msgpack:"attrs,omitempty" cbor:"attrs,omitempty"`
}

// PairView is one key/value entry of an exported Map or attribute block.
type PairView struct {
	Key   View `json:"key" msgpack:"key" cbor:"key"`
	Value View `json:"value" msgpack:"value" cbor:"value"`
}

func bytesCopy(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// FromV2 builds a View of f, copying every byte slice out of the original
// decode buffer.
func FromV2(f v2.Frame) View {
	switch v := f.(type) {
	case v2.SimpleString:
		return View{Kind: "simple_string", Bytes: bytesCopy(v.Value)}
	case v2.SimpleError:
		return View{Kind: "simple_error", Bytes: bytesCopy(v.Value)}
	case v2.Integer:
		n := v.Value
		return View{Kind: "integer", Int: &n}
	case v2.BulkString:
		return View{Kind: "bulk_string", Bytes: bytesCopy(v.Value)}
	case v2.Null:
		return View{Kind: "null"}
	case v2.Array:
		items := make([]View, len(v.Items))
		for i, it := range v.Items {
			items[i] = FromV2(it)
		}
		return View{Kind: "array", Items: items}
	default:
		return View{Kind: "unknown"}
	}
}

// FromV3 builds a View of f, copying every byte slice out of the original
// decode buffer. Attrs is populated when f carries an attribute map.
func FromV3(f v3.Frame) View {
	var v View
	switch fr := f.(type) {
	case v3.SimpleString:
		v = View{Kind: "simple_string", Bytes: bytesCopy(fr.Value)}
	case v3.SimpleError:
		v = View{Kind: "simple_error", Bytes: bytesCopy(fr.Value)}
	case v3.Integer:
		n := fr.Value
		v = View{Kind: "integer", Int: &n}
	case v3.BulkString:
		v = View{Kind: "bulk_string", Bytes: bytesCopy(fr.Value)}
	case v3.Null:
		return View{Kind: "null"}
	case v3.Array:
		items := make([]View, len(fr.Items))
		for i, it := range fr.Items {
			items[i] = FromV3(it)
		}
		v = View{Kind: "array", Items: items}
	case v3.Boolean:
		b := fr.Value
		v = View{Kind: "boolean", Bool: &b}
	case v3.Double:
		d := fr.Value
		v = View{Kind: "double", Float: &d}
	case v3.BigNumber:
		v = View{Kind: "big_number", Bytes: bytesCopy(fr.Value)}
	case v3.BulkError:
		v = View{Kind: "bulk_error", Bytes: bytesCopy(fr.Value)}
	case v3.VerbatimString:
		v = View{Kind: "verbatim_string", Format: string(fr.Format[:]), Bytes: bytesCopy(fr.Value)}
	case v3.Map:
		v = View{Kind: "map", Pairs: pairsFromV3(fr.Pairs)}
	case v3.Set:
		items := make([]View, len(fr.Items))
		for i, it := range fr.Items {
			items[i] = FromV3(it)
		}
		v = View{Kind: "set", Items: items}
	case v3.Push:
		items := make([]View, len(fr.Items))
		for i, it := range fr.Items {
			items[i] = FromV3(it)
		}
		v = View{Kind: "push", Items: items}
	default:
		return View{Kind: "unknown"}
	}

	if af, ok := f.(v3.Attributed); ok {
		if attrs := af.GetAttrs(); attrs != nil {
			v.Attrs = pairsFromV3(attrs.Pairs)
		}
	}
	return v
}

func pairsFromV3(pairs []v3.Pair) []PairView {
	out := make([]PairView, len(pairs))
	for i, p := range pairs {
		out[i] = PairView{Key: FromV3(p.Key), Value: FromV3(p.Value)}
	}
	return out
}

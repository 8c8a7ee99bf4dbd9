// Package convert translates frames between the V2 and V3 revisions.
// V2->V3 is total: every V2 variant has a V3 counterpart. V3->V2 is
// partial: only the subset of V3 that overlaps V2 converts; everything
// else fails with respcodec.ErrUnknown.
package convert

import (
	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

// ToV3 converts f into its V3 equivalent. Conversion is total: every V2
// variant maps onto exactly one V3 variant, always with attributes absent.
func ToV3(f v2.Frame) v3.Frame {
	switch v := f.(type) {
	case v2.SimpleString:
		return v3.SimpleString{Value: v.Value}
	case v2.SimpleError:
		return v3.SimpleError{Value: v.Value}
	case v2.Integer:
		return v3.Integer{Value: v.Value}
	case v2.BulkString:
		return v3.BulkString{Value: v.Value}
	case v2.Null:
		return v3.Null{}
	case v2.Array:
		return toV3ArrayStack(v)
	default:
		panic("respcodec/convert: unreachable v2 frame kind")
	}
}

type v3ArrayFrame struct {
	src   []v2.Frame
	pos   int
	items []v3.Frame
}

func toV3ArrayStack(root v2.Array) v3.Frame {
	stack := []*v3ArrayFrame{{src: root.Items, items: make([]v3.Frame, 0, len(root.Items))}}

	for {
		top := stack[len(stack)-1]
		if top.pos == len(top.src) {
			done := v3.Array{Items: top.items}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return done
			}
			parent := stack[len(stack)-1]
			parent.items = append(parent.items, done)
			parent.pos++
			continue
		}
		child := top.src[top.pos]
		if arr, ok := child.(v2.Array); ok {
			stack = append(stack, &v3ArrayFrame{src: arr.Items, items: make([]v3.Frame, 0, len(arr.Items))})
			continue
		}
		top.items = append(top.items, ToV3(child))
		top.pos++
	}
}

type v2ArrayFrame struct {
	src   []v3.Frame
	pos   int
	items []v2.Frame
}

// ToV2 converts f into its V2 equivalent. Map, Set, Push, Boolean, Double,
// BigNumber, BulkError, VerbatimString, and any frame carrying attributes
// have no V2 counterpart and fail with respcodec.ErrUnknown.
func ToV2(f v3.Frame) (v2.Frame, error) {
	if af, ok := f.(v3.Attributed); ok && af.GetAttrs() != nil {
		return nil, respcodec.ErrUnknown
	}
	switch v := f.(type) {
	case v3.SimpleString:
		return v2.SimpleString{Value: v.Value}, nil
	case v3.SimpleError:
		return v2.SimpleError{Value: v.Value}, nil
	case v3.Integer:
		return v2.Integer{Value: v.Value}, nil
	case v3.BulkString:
		return v2.BulkString{Value: v.Value}, nil
	case v3.Null:
		return v2.Null{}, nil
	case v3.Array:
		return toV2ArrayStack(v)
	default:
		return nil, respcodec.ErrUnknown
	}
}

func toV2ArrayStack(root v3.Array) (v2.Frame, error) {
	stack := []*v2ArrayFrame{{src: root.Items, items: make([]v2.Frame, 0, len(root.Items))}}

	for {
		top := stack[len(stack)-1]
		if top.pos == len(top.src) {
			done := v2.Array{Items: top.items}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return done, nil
			}
			parent := stack[len(stack)-1]
			parent.items = append(parent.items, done)
			parent.pos++
			continue
		}
		child := top.src[top.pos]
		if af, ok := child.(v3.Attributed); ok && af.GetAttrs() != nil {
			return nil, respcodec.ErrUnknown
		}
		if arr, ok := child.(v3.Array); ok {
			stack = append(stack, &v2ArrayFrame{src: arr.Items, items: make([]v2.Frame, 0, len(arr.Items))})
			continue
		}
		converted, err := ToV2(child)
		if err != nil {
			return nil, err
		}
		top.items = append(top.items, converted)
		top.pos++
	}
}

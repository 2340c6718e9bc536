package linop

import "fmt"

// Template describes the typed array a function expects: its shape and the
// auxiliary metadata every instance carries.
type Template[M any] struct {
	Shape Shape
	Meta  M

	// CloneMeta, when set, produces the per-call copy of Meta handed to the
	// wrapped function. Without it Meta is copied by value.
	CloneMeta func(M) M
}

// NewTemplate builds a Template from a representative instance.
func NewTemplate[T Scalar, M any](x Tagged[T, M], clone func(M) M) Template[M] {
	return Template[M]{Shape: x.Shape.Clone(), Meta: x.Meta, CloneMeta: clone}
}

func (t Template[M]) meta() M {
	if t.CloneMeta != nil {
		return t.CloneMeta(t.Meta)
	}
	return t.Meta
}

// Tagged is an array carrying metadata alongside its values.
type Tagged[T Scalar, M any] struct {
	Array[T]
	Meta M
}

// TaggedFunc is an action on metadata-carrying arrays.
type TaggedFunc[T Scalar, M any] func(x Tagged[T, M]) (Array[T], error)

// ViewSubclass wraps actions on tagged arrays. The flat input is reshaped as
// a view of the template shape and the template metadata is attached before
// the action runs. The view aliases the caller's vector, so actions must not
// modify their argument.
func ViewSubclass[T Scalar, M any](in, out Template[M], f, g TaggedFunc[T, M], opts ...Option) (*Linear[T], error) {
	return subclass(in, out, f, g, viewTagged[T, M], opts)
}

// AllocSubclass wraps actions on tagged arrays. Each call allocates a fresh
// array of the template shape, attaches the metadata and copies the input
// values into it, so the action may modify its argument freely.
func AllocSubclass[T Scalar, M any](in, out Template[M], f, g TaggedFunc[T, M], opts ...Option) (*Linear[T], error) {
	return subclass(in, out, f, g, allocTagged[T, M], opts)
}

type tagger[T Scalar, M any] func(x []T, t Template[M]) (Tagged[T, M], error)

func viewTagged[T Scalar, M any](x []T, t Template[M]) (Tagged[T, M], error) {
	a, err := Reshape(x, t.Shape)
	if err != nil {
		return Tagged[T, M]{}, err
	}
	return Tagged[T, M]{Array: a, Meta: t.meta()}, nil
}

func allocTagged[T Scalar, M any](x []T, t Template[M]) (Tagged[T, M], error) {
	if len(x) != t.Shape.Size() {
		return Tagged[T, M]{}, fmt.Errorf("%w: cannot fill %v with %d elements", ErrShapeMismatch, t.Shape, len(x))
	}
	tg := Tagged[T, M]{Array: NewArray[T](t.Shape), Meta: t.meta()}
	copy(tg.Data, x)
	return tg, nil
}

func subclass[T Scalar, M any](in, out Template[M], f, g TaggedFunc[T, M], wrap tagger[T, M], opts []Option) (*Linear[T], error) {
	if f == nil {
		return nil, ErrMissingForward
	}
	if err := in.Shape.Validate(); err != nil {
		return nil, err
	}
	if err := out.Shape.Validate(); err != nil {
		return nil, err
	}
	in.Shape = in.Shape.Clone()
	out.Shape = out.Shape.Clone()

	call := func(h TaggedFunc[T, M], from, to Template[M]) MatVec[T] {
		return func(x []T) ([]T, error) {
			tg, err := wrap(x, from)
			if err != nil {
				return nil, err
			}
			r, err := h(tg)
			if err != nil {
				return nil, err
			}
			if len(r.Data) != to.Shape.Size() {
				return nil, fmt.Errorf("%w: result has %d elements, want %v", ErrShapeMismatch, len(r.Data), to.Shape)
			}
			return r.Data, nil
		}
	}

	var rmatvec MatVec[T]
	if g != nil {
		rmatvec = call(g, out, in)
	}
	return New(out.Shape.Size(), in.Shape.Size(), call(f, in, out), rmatvec, opts...)
}

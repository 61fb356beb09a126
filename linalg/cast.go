// SPDX-License-Identifier: MIT

package linalg

const (
	ctxVec2 = "Vec2"
	ctxVec3 = "Vec3"
)

// Vec2 casts any vector with exactly two components to Vector2.
//
// Errors:
//   - ErrInvalidCast when v is nil or Dim != 2.
func Vec2[T Number](v VectorLike[T]) (Vector2[T], error) {
	if v == nil || v.Dim() != 2 {
		return Vector2[T]{}, linalgErrorf(ctxVec2, ErrInvalidCast)
	}
	c := v.base().comps

	return NewVector2(c[0], c[1]), nil
}

// Vec2FromSlice casts a two-element slice to Vector2.
//
// Errors:
//   - ErrInvalidCast when len(s) != 2.
func Vec2FromSlice[T Number](s []T) (Vector2[T], error) {
	if len(s) != 2 {
		return Vector2[T]{}, linalgErrorf(ctxVec2, ErrInvalidCast)
	}

	return NewVector2(s[0], s[1]), nil
}

// Vec3 casts any vector with exactly three components to Vector3.
//
// Errors:
//   - ErrInvalidCast when v is nil or Dim != 3.
func Vec3[T Number](v VectorLike[T]) (Vector3[T], error) {
	if v == nil || v.Dim() != 3 {
		return Vector3[T]{}, linalgErrorf(ctxVec3, ErrInvalidCast)
	}
	c := v.base().comps

	return NewVector3(c[0], c[1], c[2]), nil
}

// Vec3FromSlice casts a three-element slice to Vector3.
//
// Errors:
//   - ErrInvalidCast when len(s) != 3.
func Vec3FromSlice[T Number](s []T) (Vector3[T], error) {
	if len(s) != 3 {
		return Vector3[T]{}, linalgErrorf(ctxVec3, ErrInvalidCast)
	}

	return NewVector3(s[0], s[1], s[2]), nil
}

package vector

import (
	"golang.org/x/image/math/f32"
)

func Vec2(x, y float32) Vector2       { return Vector2{x, y} }
func Vec3(x, y, z float32) Vector3    { return Vector3{x, y, z} }
func Vec4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

// Vec3From2 extends v with a z component.
func Vec3From2(v Vector2, z float32) Vector3 { return Vector3{v.X, v.Y, z} }

// Vec4From2 extends v with z and w components.
func Vec4From2(v Vector2, z, w float32) Vector4 { return Vector4{v.X, v.Y, z, w} }

// Vec4From3 extends v with a w component, use 1 for points and 0 for directions.
func Vec4From3(v Vector3, w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// F32 converts the vector to its golang.org/x/image/math/f32 counterpart.
func (v Vector2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vector3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vector4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

func FromF32Vec2(v f32.Vec2) Vector2 { return Vector2{v[0], v[1]} }
func FromF32Vec3(v f32.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }
func FromF32Vec4(v f32.Vec4) Vector4 { return Vector4{v[0], v[1], v[2], v[3]} }

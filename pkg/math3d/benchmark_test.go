package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V4(1, 2, 3, 1)

	for i := 0; i < b.N; i++ {
		_ = m.MulVec4(v)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V3(1, 2, 3)

	for i := 0; i < b.N; i++ {
		_ = m.MulVec3(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 2, 2)))

	for i := 0; i < b.N; i++ {
		_ = m.Inverse()
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for i := 0; i < b.N; i++ {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Dot(v2)
	}
}

func BenchmarkQuatRotate(b *testing.B) {
	q := QFromAxisAngle(V3(1, 2, 3), 0.5)
	v := V3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = q.Rotate(v)
	}
}

func BenchmarkQuatSlerp(b *testing.B) {
	q1 := QFromAxisAngle(UnitY3(), 0.2)
	q2 := QFromAxisAngle(UnitZ3(), 1.4)

	for i := 0; i < b.N; i++ {
		_ = q1.Slerp(q2, 0.5)
	}
}

func BenchmarkLerpVec3(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = Lerp(v1, v2, 0.5)
	}
}

func BenchmarkCatmullRomVec4(b *testing.B) {
	p0 := V4(0, 0, 0, 0)
	p1 := V4(1, 2, 3, 4)
	p2 := V4(2, 3, 4, 5)
	p3 := V4(4, 4, 4, 4)

	for i := 0; i < b.N; i++ {
		_ = CatmullRom(p0, p1, p2, p3, 0.5)
	}
}

func BenchmarkTRS(b *testing.B) {
	tr := V3(1, 2, 3)
	rot := QFromAxisAngle(UnitY3(), 0.5)
	sc := V3(2, 2, 2)

	for i := 0; i < b.N; i++ {
		_ = TRS(tr, rot, sc)
	}
}

package core

import "math"

// Vec4 is a homogeneous 4-component vector
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a row-major 4x4 homogeneous transform
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the 4x4 identity matrix
func Identity() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns the matrix product a*b
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.M[row][k] * b.M[k][col]
			}
			r.M[row][col] = sum
		}
	}
	return r
}

// MulVec4 applies the matrix to a column vector
func (a Mat4) MulVec4(v Vec4) Vec4 {
	in := [4]float64{v.X, v.Y, v.Z, v.W}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for k := 0; k < 4; k++ {
			out[row] += a.M[row][k] * in[k]
		}
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// TransformPosition applies the transform to a point (w=1)
func (a Mat4) TransformPosition(p Vec3) Vec3 {
	r := a.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{r.X, r.Y, r.Z}
}

// TransformDirection applies the transform to a direction (w=0), ignoring translation
func (a Mat4) TransformDirection(d Vec3) Vec3 {
	r := a.MulVec4(Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{r.X, r.Y, r.Z}
}

// Column returns the first three components of column c
func (a Mat4) Column(c int) Vec3 {
	return Vec3{a.M[0][c], a.M[1][c], a.M[2][c]}
}

// LookAt builds a rotation whose forward axis is -direction. The columns are
// right = normalize(worldUp x forward), up = forward x right and forward, so a
// camera-space vector (0, 0, -1) maps onto the normalized direction.
func LookAt(direction, worldUp Vec3) Mat4 {
	forward := direction.Negate().Normalize()
	right := worldUp.Cross(forward).Normalize()
	up := forward.Cross(right)

	return Mat4{M: [4][4]float64{
		{right.X, up.X, forward.X, 0},
		{right.Y, up.Y, forward.Y, 0},
		{right.Z, up.Z, forward.Z, 0},
		{0, 0, 0, 1},
	}}
}

// IsOrthonormal reports whether the upper 3x3 block has unit, mutually
// perpendicular columns within tolerance
func (a Mat4) IsOrthonormal(tolerance float64) bool {
	cols := [3]Vec3{a.Column(0), a.Column(1), a.Column(2)}
	for i := 0; i < 3; i++ {
		if math.Abs(cols[i].Length()-1) > tolerance {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(cols[i].Dot(cols[j])) > tolerance {
				return false
			}
		}
	}
	return true
}

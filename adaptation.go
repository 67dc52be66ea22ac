package colorspace

import "github.com/gogpu/colorspace/internal/matrix3"

// Bradford cone response matrix. The inverse is derived rather than
// tabulated so that adapting forth and back reproduces the input.
var (
	bradford        = matrix3.Matrix{{0.8951, 0.2664, -0.1614}, {-0.7502, 1.7135, 0.0367}, {0.0389, -0.0685, 1.0296}}
	bradfordInverse = bradford.Inverse()
)

// adaptationMatrix returns the Bradford transform that maps tristimulus
// values seen under from to the corresponding values under to.
func adaptationMatrix(from, to Chromaticity) matrix3.Matrix {
	src := bradford.MulVec(from.XYZ().vec())
	dst := bradford.MulVec(to.XYZ().vec())
	var scale matrix3.Vec
	for i := range scale {
		scale[i] = 1
		if src[i] != 0 {
			scale[i] = dst[i] / src[i]
		}
	}
	return bradfordInverse.Mul(matrix3.Diag(scale[0], scale[1], scale[2]).Mul(bradford))
}

// AdaptXYZ performs Bradford chromatic adaptation of xyz from the white point
// from to the white point to. Equal white points return xyz unchanged.
func AdaptXYZ(xyz XYZ, from, to Chromaticity) XYZ {
	if from == to {
		return xyz
	}
	return xyzFromVec(adaptationMatrix(from, to).MulVec(xyz.vec()))
}

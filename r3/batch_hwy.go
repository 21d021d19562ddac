package r3

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// BaseApplyBatch applies a 3x3 matrix, given by its columns u, v and w, to a
// set of vectors in SoA layout: dst = x*u + y*v + z*w.
func BaseApplyBatch[T hwy.Floats](
	ux, uy, uz T,
	vx, vy, vz T,
	wx, wy, wz T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vUx, vUy, vUz := hwy.Set(ux), hwy.Set(uy), hwy.Set(uz)
	vVx, vVy, vVz := hwy.Set(vx), hwy.Set(vy), hwy.Set(vz)
	vWx, vWy, vWz := hwy.Set(wx), hwy.Set(wy), hwy.Set(wz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			resX := hwy.FMA(z, vWx, hwy.FMA(y, vVx, hwy.Mul(x, vUx)))
			resY := hwy.FMA(z, vWy, hwy.FMA(y, vVy, hwy.Mul(x, vUy)))
			resZ := hwy.FMA(z, vWz, hwy.FMA(y, vVz, hwy.Mul(x, vUz)))

			hwy.Store(resX, dstX[offset:])
			hwy.Store(resY, dstY[offset:])
			hwy.Store(resZ, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			resX := hwy.FMA(z, vWx, hwy.FMA(y, vVx, hwy.Mul(x, vUx)))
			resY := hwy.FMA(z, vWy, hwy.FMA(y, vVy, hwy.Mul(x, vUy)))
			resZ := hwy.FMA(z, vWz, hwy.FMA(y, vVz, hwy.Mul(x, vUz)))

			hwy.MaskStore(mask, resX, dstX[offset:])
			hwy.MaskStore(mask, resY, dstY[offset:])
			hwy.MaskStore(mask, resZ, dstZ[offset:])
		},
	)
}

// BaseCrossBatch computes c = a x b for two sets of vectors in SoA layout.
func BaseCrossBatch[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	cx, cy, cz []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz), len(cx), len(cy), len(cz))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			hwy.Store(hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy)), cx[offset:])
			hwy.Store(hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz)), cy[offset:])
			hwy.Store(hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx)), cz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy)), cx[offset:])
			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz)), cy[offset:])
			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx)), cz[offset:])
		},
	)
}

// BaseDotConstBatch computes dst[i] = a · b[i] for a constant vector a and
// a set of vectors b in SoA layout.
func BaseDotConstBatch[T hwy.Floats](
	ax, ay, az T,
	bx, by, bz []T,
	dst []T,
) {
	size := min(len(bx), len(by), len(bz), len(dst))

	vAx := hwy.Set(ax)
	vAy := hwy.Set(ay)
	vAz := hwy.Set(az)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			sum := hwy.Mul(vAx, vBx)
			sum = hwy.FMA(vAy, vBy, sum)
			sum = hwy.FMA(vAz, vBz, sum)
			hwy.Store(sum, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			sum := hwy.Mul(vAx, vBx)
			sum = hwy.FMA(vAy, vBy, sum)
			sum = hwy.FMA(vAz, vBz, sum)
			hwy.MaskStore(mask, sum, dst[offset:])
		},
	)
}

// BaseSumBatch returns the componentwise sum of a set of vectors in SoA
// layout.
func BaseSumBatch[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vSumX = hwy.Add(vSumX, hwy.Load(xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.Load(ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSumX = hwy.Add(vSumX, hwy.MaskLoad(mask, xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.MaskLoad(mask, ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}

// BaseMinDistance2Batch returns the minimum squared Euclidean distance from
// the target to a set of vectors in SoA layout, or +Inf if the set is empty.
func BaseMinDistance2Batch[T hwy.Floats](
	targetX, targetY, targetZ T,
	xs, ys, zs []T,
) T {
	size := min(len(xs), len(ys), len(zs))

	vTx := hwy.Set(targetX)
	vTy := hwy.Set(targetY)
	vTz := hwy.Set(targetZ)
	vInf := hwy.Set(T(math.Inf(1)))
	vMin := vInf

	dist2 := func(x, y, z hwy.Vec[T]) hwy.Vec[T] {
		dx := hwy.Sub(x, vTx)
		dy := hwy.Sub(y, vTy)
		dz := hwy.Sub(z, vTz)
		return hwy.FMA(dz, dz, hwy.FMA(dy, dy, hwy.Mul(dx, dx)))
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			d := dist2(hwy.Load(xs[offset:]), hwy.Load(ys[offset:]), hwy.Load(zs[offset:]))
			vMin = hwy.Min(vMin, d)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			d := dist2(
				hwy.MaskLoad(mask, xs[offset:]),
				hwy.MaskLoad(mask, ys[offset:]),
				hwy.MaskLoad(mask, zs[offset:]),
			)
			// Masked-out lanes load as zero and must not win.
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, d, vInf))
		},
	)

	return hwy.ReduceMin(vMin)
}

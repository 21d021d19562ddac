package quat

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// BaseNormalizeBatch scales quaternions stored in SoA layout to unit norm in
// place. Zero quaternions become the identity.
func BaseNormalizeBatch[T hwy.Floats](xs, ys, zs, ws []T) {
	size := min(len(xs), len(ys), len(zs), len(ws))

	vZero := hwy.Zero[T]()
	vOne := hwy.Set(T(1))

	normalize := func(x, y, z, w hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T], hwy.Vec[T], hwy.Vec[T]) {
		n2 := hwy.Mul(x, x)
		n2 = hwy.FMA(y, y, n2)
		n2 = hwy.FMA(z, z, n2)
		n2 = hwy.FMA(w, w, n2)

		zero := hwy.Equal(n2, vZero)
		// Substitute the identity before dividing so zero lanes stay finite.
		w = hwy.IfThenElse(zero, vOne, w)
		n := hwy.Sqrt(hwy.IfThenElse(zero, vOne, n2))
		return hwy.Div(x, n), hwy.Div(y, n), hwy.Div(z, n), hwy.Div(w, n)
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x, y, z, w := normalize(
				hwy.Load(xs[offset:]),
				hwy.Load(ys[offset:]),
				hwy.Load(zs[offset:]),
				hwy.Load(ws[offset:]),
			)
			hwy.Store(x, xs[offset:])
			hwy.Store(y, ys[offset:])
			hwy.Store(z, zs[offset:])
			hwy.Store(w, ws[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x, y, z, w := normalize(
				hwy.MaskLoad(mask, xs[offset:]),
				hwy.MaskLoad(mask, ys[offset:]),
				hwy.MaskLoad(mask, zs[offset:]),
				hwy.MaskLoad(mask, ws[offset:]),
			)
			hwy.MaskStore(mask, x, xs[offset:])
			hwy.MaskStore(mask, y, ys[offset:])
			hwy.MaskStore(mask, z, zs[offset:])
			hwy.MaskStore(mask, w, ws[offset:])
		},
	)
}

// BaseFromAxisAnglesBatch builds the quaternions of rotations by angles[i]
// about the axes (ax[i], ay[i], az[i]), in SoA layout. The axes need not be
// normalized; a zero axis gives the identity.
func BaseFromAxisAnglesBatch(ax, ay, az, angles, xs, ys, zs, ws []float64) {
	size := min(len(ax), len(ay), len(az), len(angles), len(xs), len(ys), len(zs), len(ws))

	halves := make([]float64, size)
	sins := make([]float64, size)

	vHalf := hwy.Set(0.5)
	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			hwy.Store(hwy.Mul(hwy.Load(angles[offset:]), vHalf), halves[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				halves[i] = angles[i] * 0.5
			}
		},
	)

	algo.SinTransform64(halves, sins)
	// w = cos(angle / 2)
	algo.CosTransform64(halves, ws[:size])

	vZero := hwy.Zero[float64]()
	vOne := hwy.Set(1.0)
	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			x := hwy.Load(ax[offset:])
			y := hwy.Load(ay[offset:])
			z := hwy.Load(az[offset:])
			n2 := hwy.FMA(z, z, hwy.FMA(y, y, hwy.Mul(x, x)))
			zero := hwy.Equal(n2, vZero)
			scale := hwy.Div(hwy.Load(sins[offset:]), hwy.Sqrt(hwy.IfThenElse(zero, vOne, n2)))

			hwy.Store(hwy.Mul(x, scale), xs[offset:])
			hwy.Store(hwy.Mul(y, scale), ys[offset:])
			hwy.Store(hwy.Mul(z, scale), zs[offset:])
			hwy.Store(hwy.IfThenElse(zero, vOne, hwy.Load(ws[offset:])), ws[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				n2 := ax[i]*ax[i] + ay[i]*ay[i] + az[i]*az[i]
				if n2 == 0 {
					xs[i], ys[i], zs[i], ws[i] = 0, 0, 0, 1
					continue
				}
				scale := sins[i] / math.Sqrt(n2)
				xs[i] = ax[i] * scale
				ys[i] = ay[i] * scale
				zs[i] = az[i] * scale
			}
		},
	)
}

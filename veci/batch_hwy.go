package veci

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseAddBatch computes dst[i] = a[i] + b[i], wrapping on overflow.
func BaseAddBatch[T hwy.Integers](a, b, dst []T) {
	size := min(len(a), len(b), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])
			hwy.Store(hwy.Add(va, vb), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])
			hwy.MaskStore(mask, hwy.Add(va, vb), dst[offset:])
		},
	)
}

// BaseSubBatch computes dst[i] = a[i] - b[i], wrapping on overflow.
func BaseSubBatch[T hwy.Integers](a, b, dst []T) {
	size := min(len(a), len(b), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])
			hwy.Store(hwy.Sub(va, vb), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])
			hwy.MaskStore(mask, hwy.Sub(va, vb), dst[offset:])
		},
	)
}

// BaseMulBatch computes dst[i] = a[i] * b[i], keeping the low 64 bits.
func BaseMulBatch[T hwy.Integers](a, b, dst []T) {
	size := min(len(a), len(b), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])
			hwy.Store(hwy.Mul(va, vb), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])
			hwy.MaskStore(mask, hwy.Mul(va, vb), dst[offset:])
		},
	)
}

// BaseXorBatch computes dst[i] = a[i] ^ b[i].
func BaseXorBatch[T hwy.Integers](a, b, dst []T) {
	size := min(len(a), len(b), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])
			hwy.Store(hwy.Xor(va, vb), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])
			hwy.MaskStore(mask, hwy.Xor(va, vb), dst[offset:])
		},
	)
}

// BaseMinMaxBatch returns the minimum and maximum of data, the extent of one
// lane of a bounding box. It returns zeros for empty input.
func BaseMinMaxBatch[T hwy.Integers](data []T) (lo, hi T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed with a real element so masked-out tail lanes never win.
	vMin := hwy.Set(data[0])
	vMax := hwy.Set(data[0])

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, v, vMin))
			vMax = hwy.Max(vMax, hwy.IfThenElse(mask, v, vMax))
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}

// BaseSumBatch returns the wrapping sum of data.
func BaseSumBatch[T hwy.Integers](data []T) T {
	vSum := hwy.Zero[T]()

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			vSum = hwy.Add(vSum, hwy.Load(data[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSum = hwy.Add(vSum, hwy.MaskLoad(mask, data[offset:]))
		},
	)

	return hwy.ReduceSum(vSum)
}

// HashWideBatch computes dst[i] = (src[i] ^ src[i]>>32) * mul + add, the
// HashWide mix of one lane.
func HashWideBatch(src []uint64, mul, add uint64, dst []uint64) {
	size := min(len(src), len(dst))

	vMul := hwy.Set(mul)
	vAdd := hwy.Set(add)

	hwy.ProcessWithTail[uint64](size,
		func(offset int) {
			v := hwy.Load(src[offset:])
			v = hwy.Xor(v, hwy.ShiftRight(v, 32))
			hwy.Store(hwy.Add(hwy.Mul(v, vMul), vAdd), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = mix(src[i], mul) + add
			}
		},
	)
}

// ZigZagEncodeBatch maps signed values to unsigned ones so that small
// magnitudes stay small: (n << 1) ^ (n >> 63).
func ZigZagEncodeBatch(src []int64, dst []uint64) {
	size := min(len(src), len(dst))
	tmp := make([]int64, hwy.MaxLanes[int64]())

	hwy.ProcessWithTail[int64](size,
		func(offset int) {
			v := hwy.Load(src[offset:])
			// The arithmetic right shift smears the sign over every bit.
			hwy.Store(hwy.Xor(hwy.ShiftLeft(v, 1), hwy.ShiftRight(v, 63)), tmp)
			for i, x := range tmp {
				dst[offset+i] = uint64(x)
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				n := src[i]
				dst[i] = uint64(n<<1) ^ uint64(n>>63)
			}
		},
	)
}

// ZigZagDecodeBatch inverts ZigZagEncodeBatch: (n >> 1) ^ -(n & 1).
func ZigZagDecodeBatch(src []uint64, dst []int64) {
	size := min(len(src), len(dst))
	tmp := make([]uint64, hwy.MaxLanes[uint64]())
	vOne := hwy.Set(uint64(1))
	vZero := hwy.Zero[uint64]()

	hwy.ProcessWithTail[uint64](size,
		func(offset int) {
			v := hwy.Load(src[offset:])
			neg := hwy.Sub(vZero, hwy.And(v, vOne))
			hwy.Store(hwy.Xor(hwy.ShiftRight(v, 1), neg), tmp)
			for i, x := range tmp {
				dst[offset+i] = int64(x)
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				n := src[i]
				dst[i] = int64(n>>1) ^ -int64(n&1)
			}
		},
	)
}

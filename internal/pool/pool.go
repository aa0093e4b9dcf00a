package pool

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ObjectPool pools the group and field elements that the polynomial,
// commitment, and interpolation code allocates repeatedly.
type ObjectPool struct {
	g1JacPool      sync.Pool
	g2JacPool      sync.Pool
	scalarSlice    sync.Pool
	g1AffineSlice  sync.Pool
	g2AffineSlice  sync.Pool
}

// NewObjectPool creates a new object pool.
func NewObjectPool() *ObjectPool {
	return &ObjectPool{
		g1JacPool: sync.Pool{
			New: func() interface{} { return new(bls12381.G1Jac) },
		},
		g2JacPool: sync.Pool{
			New: func() interface{} { return new(bls12381.G2Jac) },
		},
		scalarSlice: sync.Pool{
			New: func() interface{} { return make([]fr.Element, 0, 16) },
		},
		g1AffineSlice: sync.Pool{
			New: func() interface{} { return make([]bls12381.G1Affine, 0, 16) },
		},
		g2AffineSlice: sync.Pool{
			New: func() interface{} { return make([]bls12381.G2Affine, 0, 16) },
		},
	}
}

var defaultPool = NewObjectPool()

// GetG1Jac gets a zeroed G1 Jacobian point from the default pool.
func GetG1Jac() *bls12381.G1Jac {
	p := defaultPool.g1JacPool.Get().(*bls12381.G1Jac)
	*p = bls12381.G1Jac{}
	return p
}

// PutG1Jac returns a G1 Jacobian point to the default pool.
func PutG1Jac(g *bls12381.G1Jac) {
	if g != nil {
		defaultPool.g1JacPool.Put(g)
	}
}

// GetG2Jac gets a zeroed G2 Jacobian point from the default pool.
func GetG2Jac() *bls12381.G2Jac {
	p := defaultPool.g2JacPool.Get().(*bls12381.G2Jac)
	*p = bls12381.G2Jac{}
	return p
}

// PutG2Jac returns a G2 Jacobian point to the default pool.
func PutG2Jac(g *bls12381.G2Jac) {
	if g != nil {
		defaultPool.g2JacPool.Put(g)
	}
}

// GetScalarSlice gets an fr.Element slice with at least the given capacity.
func GetScalarSlice(capacity int) []fr.Element {
	s := defaultPool.scalarSlice.Get().([]fr.Element)
	if cap(s) < capacity {
		return make([]fr.Element, 0, capacity)
	}
	return s[:0]
}

// PutScalarSlice returns an fr.Element slice to the default pool.
func PutScalarSlice(s []fr.Element) {
	if s != nil {
		defaultPool.scalarSlice.Put(s) //nolint:staticcheck // reused by GetScalarSlice, not retained by caller
	}
}

// GetG1AffineSlice gets a G1Affine slice with at least the given capacity.
func GetG1AffineSlice(capacity int) []bls12381.G1Affine {
	s := defaultPool.g1AffineSlice.Get().([]bls12381.G1Affine)
	if cap(s) < capacity {
		return make([]bls12381.G1Affine, 0, capacity)
	}
	return s[:0]
}

// PutG1AffineSlice returns a G1Affine slice to the default pool.
func PutG1AffineSlice(s []bls12381.G1Affine) {
	if s != nil {
		defaultPool.g1AffineSlice.Put(s)
	}
}

// GetG2AffineSlice gets a G2Affine slice with at least the given capacity.
func GetG2AffineSlice(capacity int) []bls12381.G2Affine {
	s := defaultPool.g2AffineSlice.Get().([]bls12381.G2Affine)
	if cap(s) < capacity {
		return make([]bls12381.G2Affine, 0, capacity)
	}
	return s[:0]
}

// PutG2AffineSlice returns a G2Affine slice to the default pool.
func PutG2AffineSlice(s []bls12381.G2Affine) {
	if s != nil {
		defaultPool.g2AffineSlice.Put(s)
	}
}

package skew

import (
	"fmt"

	"github.com/Shubhamditya36/sagetrac-mirror/partition"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
)

// Type returns the type of p at the monic irreducible central polynomial N:
// the partition recording, step by step, how much of the N-primary part of p
// is captured by iterated right gcds with the central lift of N. The first
// part of the partition is the number of simple modules with norm N in the
// socle of R/Rp, and the parts sum to the multiplicity of N in the reduced
// norm of p.
//
// Type returns ErrNotIrreducible when N is not irreducible, and an empty
// partition when N does not divide the reduced norm.
func (p *Poly) Type(N poly.Poly) (partition.Partition, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	if N.F != p.ring.center {
		return nil, fmt.Errorf("%w: central factor is not over the center field", ErrInvalidArgument)
	}
	key := fingerprintCenter(N)
	if t, ok := p.types[key]; ok {
		return t, nil
	}
	if !N.IsIrreducible() {
		return nil, ErrNotIrreducible
	}

	// Multiplicity of N in the reduced norm bounds the weight of the type,
	// allowing an early exit from the gcd cascade.
	factors, err := p.ReducedNormFactor()
	if err != nil {
		return nil, err
	}
	mult := 0
	for _, cf := range factors {
		if cf.N.Equal(N) {
			mult = cf.M
			break
		}
	}

	lift, err := p.ring.Lift(N)
	if err != nil {
		return nil, err
	}
	d := N.Degree()
	var parts []int
	f := p
	for total := 0; total < mult; {
		g := f.RightGCD(lift)
		if g.Degree() <= 0 {
			break
		}
		parts = append(parts, g.Degree()/d)
		total += g.Degree() / d
		if f, err = f.RightQuo(g); err != nil {
			return nil, err
		}
	}

	t, err := partition.New(parts)
	if err != nil {
		return nil, err
	}
	if p.types == nil {
		p.types = make(map[[32]byte]partition.Partition)
	}
	p.types[key] = t
	return t, nil
}

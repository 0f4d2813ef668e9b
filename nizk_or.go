package pvss

import (
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

// OrInstance is the public statement "C commits to zero OR D = C - G
// commits to zero", i.e. the hidden message is 0 or 1.
type OrInstance struct {
	G *ristretto.Point
	H *ristretto.Point
	C *ristretto.Point
	D *ristretto.Point
}

// NewOrInstance builds the instance for commitment C, deriving D = C - G.
func NewOrInstance(params *CommitmentParams, c *ristretto.Point) *OrInstance {
	var d ristretto.Point
	d.Sub(c, params.G)
	return &OrInstance{G: params.G, H: params.H, C: c, D: &d}
}

// OrWitness is the opening randomness of whichever branch is true.
type OrWitness struct {
	R *ristretto.Scalar
}

// OrProof carries the split challenges and both responses. Exactly one
// branch was proven honestly; the other was simulated backward. The proof
// does not reveal which.
type OrProof struct {
	C1 *ristretto.Scalar
	C2 *ristretto.Scalar
	Z1 *ristretto.Scalar
	Z2 *ristretto.Scalar
}

func (inst *OrInstance) check() error {
	if isIdentity(inst.H) || isIdentity(inst.C) || isIdentity(inst.D) {
		return ErrInvalidInstance
	}
	return nil
}

func orProofChallenge(inst *OrInstance, a1, a2 *ristretto.Point) *ristretto.Scalar {
	t := merlin.NewTranscript(OR_PROOF_DOMAIN_TAG)
	AppendPoint("G", inst.G, t)
	AppendPoint("H", inst.H, t)
	AppendPoint("C", inst.C, t)
	AppendPoint("D", inst.D, t)
	AppendPoint("A1", a1, t)
	AppendPoint("A2", a2, t)
	return ChallengeScalar("c", t)
}

// simulateBranch picks the response and challenge uniformly and solves for
// the announcement A = z*H - c*X, requiring no opening knowledge of X.
func simulateBranch(h, x *ristretto.Point, rand io.Reader) (z, c *ristretto.Scalar, a *ristretto.Point, err error) {
	z, err = randomScalar(rand)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err = randomScalar(rand)
	if err != nil {
		return nil, nil, nil, err
	}
	var zh, cx, ann ristretto.Point
	zh.ScalarMult(h, z)
	cx.ScalarMult(x, c)
	ann.Sub(&zh, &cx)
	return z, c, &ann, nil
}

// ProveOrZero proves the instance for a commitment whose message is 0:
// branch 1 (C = r*H) is real, branch 2 is simulated.
func ProveOrZero(inst *OrInstance, wit *OrWitness, rand io.Reader) (*OrProof, error) {
	if err := inst.check(); err != nil {
		return nil, err
	}

	z2, c2, a2, err := simulateBranch(inst.H, inst.D, rand)
	if err != nil {
		return nil, err
	}

	alpha, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	var a1 ristretto.Point
	a1.ScalarMult(inst.H, alpha)

	// The honest branch's challenge is forced to c - c2, so only one
	// branch per proof is freely chosen.
	challenge := orProofChallenge(inst, &a1, a2)
	var c1 ristretto.Scalar
	c1.Sub(challenge, c2)

	var z1 ristretto.Scalar
	z1.Mul(&c1, wit.R)
	z1.Add(alpha, &z1)

	return &OrProof{C1: &c1, C2: c2, Z1: &z1, Z2: z2}, nil
}

// ProveOrOne proves the instance for a commitment whose message is 1:
// branch 2 (D = r*H) is real, branch 1 is simulated.
func ProveOrOne(inst *OrInstance, wit *OrWitness, rand io.Reader) (*OrProof, error) {
	if err := inst.check(); err != nil {
		return nil, err
	}

	z1, c1, a1, err := simulateBranch(inst.H, inst.C, rand)
	if err != nil {
		return nil, err
	}

	alpha, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	var a2 ristretto.Point
	a2.ScalarMult(inst.H, alpha)

	challenge := orProofChallenge(inst, a1, &a2)
	var c2 ristretto.Scalar
	c2.Sub(challenge, c1)

	var z2 ristretto.Scalar
	z2.Mul(&c2, wit.R)
	z2.Add(alpha, &z2)

	return &OrProof{C1: c1, C2: &c2, Z1: z1, Z2: &z2}, nil
}

// VerifyOr recomputes both announcements and accepts iff c1 + c2 equals
// the transcript challenge over them. A proof built by the wrong-branch
// prover fails here.
func VerifyOr(inst *OrInstance, proof *OrProof) error {
	if err := inst.check(); err != nil {
		return err
	}

	var z1h, c1c, a1 ristretto.Point
	z1h.ScalarMult(inst.H, proof.Z1)
	c1c.ScalarMult(inst.C, proof.C1)
	a1.Sub(&z1h, &c1c)

	var z2h, c2d, a2 ristretto.Point
	z2h.ScalarMult(inst.H, proof.Z2)
	c2d.ScalarMult(inst.D, proof.C2)
	a2.Sub(&z2h, &c2d)

	var sum ristretto.Scalar
	sum.Add(proof.C1, proof.C2)

	if !sum.Equals(orProofChallenge(inst, &a1, &a2)) {
		return ErrInvalidProof
	}
	return nil
}

package pvss

import (
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

// ZeroInstance is the public statement "C commits to zero under (G, H)",
// i.e. C = r*H for a randomness r known to the prover.
type ZeroInstance struct {
	G *ristretto.Point
	H *ristretto.Point
	C *ristretto.Point
}

// ZeroWitness is the private opening randomness.
type ZeroWitness struct {
	R *ristretto.Scalar
}

// ZeroProof is the non-interactive transcript (response, challenge).
type ZeroProof struct {
	Z *ristretto.Scalar
	C *ristretto.Scalar
}

func (inst *ZeroInstance) check() error {
	if isIdentity(inst.H) || isIdentity(inst.C) {
		return ErrInvalidInstance
	}
	return nil
}

// The challenge binds every public value of the statement; leaving one out
// makes the proof forgeable.
func zeroProofChallenge(inst *ZeroInstance, a *ristretto.Point) *ristretto.Scalar {
	t := merlin.NewTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", inst.G, t)
	AppendPoint("H", inst.H, t)
	AppendPoint("C", inst.C, t)
	AppendPoint("A", a, t)
	return ChallengeScalar("c", t)
}

// ProveZero proves knowledge of r with C = r*H without revealing r.
func ProveZero(inst *ZeroInstance, wit *ZeroWitness, rand io.Reader) (*ZeroProof, error) {
	if err := inst.check(); err != nil {
		return nil, err
	}

	alpha, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	var a ristretto.Point
	a.ScalarMult(inst.H, alpha)

	challenge := zeroProofChallenge(inst, &a)

	var z ristretto.Scalar
	z.Mul(challenge, wit.R)
	z.Add(alpha, &z)

	return &ZeroProof{Z: &z, C: challenge}, nil
}

// VerifyZero recomputes A' = z*H - c*C and accepts iff the transcript
// challenge over A' equals the carried one.
func VerifyZero(inst *ZeroInstance, proof *ZeroProof) error {
	if err := inst.check(); err != nil {
		return err
	}

	var zh, cc, aPrime ristretto.Point
	zh.ScalarMult(inst.H, proof.Z)
	cc.ScalarMult(inst.C, proof.C)
	aPrime.Sub(&zh, &cc)

	if !proof.C.Equals(zeroProofChallenge(inst, &aPrime)) {
		return ErrInvalidProof
	}
	return nil
}

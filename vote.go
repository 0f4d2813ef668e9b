package pvss

import (
	"io"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/sync/errgroup"
)

// ChoiceCommitment is the committed encoding of a single poll-answer bit:
// the self commitment commit(x, r), per-party committed shares of x and r
// at 1..n, a zero-or-one proof for the self commitment, and one ciphertext
// pair (enc(x_i), enc(r_i)) per party.
type ChoiceCommitment struct {
	Self        *ristretto.Point
	Shares      []*ristretto.Point
	Proof       *OrProof
	Ciphertexts [][2]Ciphertext
}

// Ballot is the full vote artifact: one ChoiceCommitment per answer, a
// random zero-padding commitment with its proof of zero, and the published
// aggregate randomness. A valid ballot's self commitments plus padding sum
// to a commitment that opens to exactly one under that randomness, which
// enforces "exactly one choice selected" without revealing which.
type Ballot struct {
	Choices       []*ChoiceCommitment
	Pad           *ristretto.Point
	PadProof      *ZeroProof
	RandomnessSum *ristretto.Scalar
	Threshold     int
}

func buildChoice(params *CommitmentParams, recipients []IdentityEncrypter, selected bool, t, n int, rand io.Reader) (*ChoiceCommitment, *ristretto.Scalar, error) {
	var x ristretto.Scalar
	if selected {
		x.SetOne()
	} else {
		x.SetZero()
	}

	r, err := randomScalar(rand)
	if err != nil {
		return nil, nil, err
	}
	xPoly, err := SamplePolynomial(&x, t-1, rand)
	if err != nil {
		return nil, nil, err
	}
	rPoly, err := SamplePolynomial(r, t-1, rand)
	if err != nil {
		return nil, nil, err
	}

	choice := &ChoiceCommitment{
		Self:        params.Commit(&x, r),
		Shares:      make([]*ristretto.Point, n),
		Ciphertexts: make([][2]Ciphertext, n),
	}

	var group errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			at := uint64ToScalar(uint64(i + 1))
			xi := xPoly.Evaluate(at)
			ri := rPoly.Evaluate(at)
			choice.Shares[i] = params.Commit(xi, ri)

			id := partyIdentity(i)
			xBlock, err := packScalars(VoteBlockSize, xi)
			if err != nil {
				return err
			}
			xCt, err := recipients[i].EncryptBlock(xBlock, id)
			if err != nil {
				return err
			}
			rBlock, err := packScalars(VoteBlockSize, ri)
			if err != nil {
				return err
			}
			rCt, err := recipients[i].EncryptBlock(rBlock, id)
			if err != nil {
				return err
			}
			choice.Ciphertexts[i] = [2]Ciphertext{xCt, rCt}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	inst := NewOrInstance(params, choice.Self)
	wit := &OrWitness{R: r}
	if selected {
		choice.Proof, err = ProveOrOne(inst, wit, rand)
	} else {
		choice.Proof, err = ProveOrZero(inst, wit, rand)
	}
	if err != nil {
		return nil, nil, err
	}
	return choice, r, nil
}

// BuildBallot encodes an answer vector under a (t, n) scheme. The builder
// does not police one-hotness; a dishonest answer vector produces a ballot
// that VerifyBallot rejects on the aggregate check.
func BuildBallot(params *CommitmentParams, recipients []IdentityEncrypter, answers []bool, t, n int, rand io.Reader) (*Ballot, error) {
	if len(answers) == 0 || len(recipients) != n {
		return nil, ErrDimensionMismatch
	}
	if t < 1 || t > n {
		return nil, ErrThresholdViolation
	}

	ballot := &Ballot{
		Choices:   make([]*ChoiceCommitment, len(answers)),
		Threshold: t,
	}

	var rSum ristretto.Scalar
	rSum.SetZero()
	for k, selected := range answers {
		choice, r, err := buildChoice(params, recipients, selected, t, n, rand)
		if err != nil {
			return nil, err
		}
		ballot.Choices[k] = choice
		rSum.Add(&rSum, r)
	}

	rPad, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	var zero ristretto.Scalar
	zero.SetZero()
	ballot.Pad = params.Commit(&zero, rPad)
	ballot.PadProof, err = ProveZero(&ZeroInstance{G: params.G, H: params.H, C: ballot.Pad}, &ZeroWitness{R: rPad}, rand)
	if err != nil {
		return nil, err
	}

	rSum.Add(&rSum, rPad)
	ballot.RandomnessSum = &rSum
	return ballot, nil
}

// VerifyBallot checks every per-choice zero-or-one proof, the padding's
// proof of zero, and that the homomorphic sum of all self commitments plus
// the padding opens to exactly one under the published randomness.
func VerifyBallot(params *CommitmentParams, ballot *Ballot) error {
	if len(ballot.Choices) == 0 {
		return ErrDimensionMismatch
	}

	selfs := make([]*ristretto.Point, 0, len(ballot.Choices)+1)
	for _, choice := range ballot.Choices {
		if err := VerifyOr(NewOrInstance(params, choice.Self), choice.Proof); err != nil {
			return err
		}
		selfs = append(selfs, choice.Self)
	}

	if err := VerifyZero(&ZeroInstance{G: params.G, H: params.H, C: ballot.Pad}, ballot.PadProof); err != nil {
		return err
	}

	selfs = append(selfs, ballot.Pad)
	var one ristretto.Scalar
	one.SetOne()
	if !AddCommitments(selfs...).Equals(params.Commit(&one, ballot.RandomnessSum)) {
		return ErrInvalidOpening
	}
	return nil
}

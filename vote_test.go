package pvss

import (
	"crypto/rand"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBallotOneHotAccepts(t *testing.T) {
	require := require.New(t)

	const threshold, n = 4, 8
	params := NewCommitmentParams()
	encrypters, decrypters := testRecipients(n)

	for choice := 0; choice < 3; choice++ {
		answers := make([]bool, 3)
		answers[choice] = true

		ballot, err := BuildBallot(params, encrypters, answers, threshold, n, rand.Reader)
		require.NoError(err)
		require.Len(ballot.Choices, 3)
		require.NoError(VerifyBallot(params, ballot), "choice %d", choice)

		// Per-party committed shares open to the decrypted values.
		for k, cc := range ballot.Choices {
			for i := 0; i < n; i++ {
				xBlock, err := decrypters[i].DecryptBlock(cc.Ciphertexts[i][0])
				require.NoError(err)
				rBlock, err := decrypters[i].DecryptBlock(cc.Ciphertexts[i][1])
				require.NoError(err)
				xs, err := unpackScalars(xBlock, 1)
				require.NoError(err)
				rs, err := unpackScalars(rBlock, 1)
				require.NoError(err)
				require.True(cc.Shares[i].Equals(params.Commit(xs[0], rs[0])), "choice %d party %d", k, i)
			}
		}
	}
}

func TestBallotShareCommitmentsAreConsistent(t *testing.T) {
	require := require.New(t)

	const threshold, n = 3, 9
	params := NewCommitmentParams()
	encrypters, _ := testRecipients(n)

	ballot, err := BuildBallot(params, encrypters, []bool{true, false}, threshold, n, rand.Reader)
	require.NoError(err)

	// Committed shares are commitments to evaluations of two degree-(t-1)
	// polynomials, so the homomorphic vector passes the low-degree test.
	for _, cc := range ballot.Choices {
		require.NoError(LowDegreeTest(cc.Shares, threshold, rand.Reader))
	}
}

func TestBallotRejectsNotOneHot(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	const threshold, n = 4, 8
	params := NewCommitmentParams()
	encrypters, _ := testRecipients(n)

	for _, answers := range [][]bool{
		{false, false, false},
		{true, true, false},
		{true, true, true},
	} {
		ballot, err := BuildBallot(params, encrypters, answers, threshold, n, rand.Reader)
		require.NoError(err)
		assert.ErrorIs(VerifyBallot(params, ballot), ErrInvalidOpening, "answers %v", answers)
	}
}

func TestBallotRejectsTamperedProofs(t *testing.T) {
	require := require.New(t)

	const threshold, n = 4, 8
	params := NewCommitmentParams()
	encrypters, _ := testRecipients(n)

	ballot, err := BuildBallot(params, encrypters, []bool{false, true}, threshold, n, rand.Reader)
	require.NoError(err)

	bad, err := randomScalar(rand.Reader)
	require.NoError(err)

	tampered := *ballot.Choices[0].Proof
	tampered.Z1 = bad
	original := ballot.Choices[0].Proof
	ballot.Choices[0].Proof = &tampered
	require.ErrorIs(VerifyBallot(params, ballot), ErrInvalidProof)
	ballot.Choices[0].Proof = original
	require.NoError(VerifyBallot(params, ballot))

	padProof := *ballot.PadProof
	padProof.Z = bad
	ballot.PadProof = &padProof
	require.ErrorIs(VerifyBallot(params, ballot), ErrInvalidProof)
}

func TestBallotRejectsSubstitutedCommitment(t *testing.T) {
	require := require.New(t)

	const threshold, n = 4, 8
	params := NewCommitmentParams()
	encrypters, _ := testRecipients(n)

	ballot, err := BuildBallot(params, encrypters, []bool{false, true}, threshold, n, rand.Reader)
	require.NoError(err)

	// A swapped-in commitment to 2 has no valid zero-or-one proof.
	r, err := randomScalar(rand.Reader)
	require.NoError(err)
	ballot.Choices[0].Self = params.Commit(uint64ToScalar(2), r)
	require.ErrorIs(VerifyBallot(params, ballot), ErrInvalidProof)
}

func TestBallotAggregateOpensToOne(t *testing.T) {
	require := require.New(t)

	const threshold, n = 2, 4
	params := NewCommitmentParams()
	encrypters, _ := testRecipients(n)

	ballot, err := BuildBallot(params, encrypters, []bool{false, true, false, false}, threshold, n, rand.Reader)
	require.NoError(err)

	selfs := make([]*ristretto.Point, 0, len(ballot.Choices)+1)
	for _, cc := range ballot.Choices {
		selfs = append(selfs, cc.Self)
	}
	selfs = append(selfs, ballot.Pad)

	var one ristretto.Scalar
	one.SetOne()
	require.True(AddCommitments(selfs...).Equals(params.Commit(&one, ballot.RandomnessSum)))
}

func TestBuildBallotRejectsBadParameters(t *testing.T) {
	assert := assert.New(t)

	params := NewCommitmentParams()
	encrypters, _ := testRecipients(4)

	_, err := BuildBallot(params, encrypters, nil, 2, 4, rand.Reader)
	assert.ErrorIs(err, ErrDimensionMismatch)
	_, err = BuildBallot(params, encrypters, []bool{true}, 2, 5, rand.Reader)
	assert.ErrorIs(err, ErrDimensionMismatch)
	_, err = BuildBallot(params, encrypters, []bool{true}, 5, 4, rand.Reader)
	assert.ErrorIs(err, ErrThresholdViolation)
}

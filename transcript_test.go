package pvss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptChallengeDeterminism(t *testing.T) {
	assert := assert.New(t)

	params := NewCommitmentParams()

	tt := InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.G, tt)
	AppendPoint("H", params.H, tt)
	c1 := ChallengeScalar("c", tt)

	tt = InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.G, tt)
	AppendPoint("H", params.H, tt)
	c2 := ChallengeScalar("c", tt)

	assert.True(c1.Equals(c2))
}

func TestTranscriptChallengeBindsInputs(t *testing.T) {
	assert := assert.New(t)

	params := NewCommitmentParams()

	tt := InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.G, tt)
	base := ChallengeScalar("c", tt)

	// A different appended point changes the challenge.
	tt = InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.H, tt)
	assert.False(base.Equals(ChallengeScalar("c", tt)))

	// A different transcript domain changes the challenge.
	tt = InitialTranscript(OR_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.G, tt)
	assert.False(base.Equals(ChallengeScalar("c", tt)))

	// A different scalar appended under the same label changes it too.
	tt = InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.G, tt)
	AppendScalar("x", uint64ToScalar(1), tt)
	one := ChallengeScalar("c", tt)
	tt = InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("G", params.G, tt)
	AppendScalar("x", uint64ToScalar(2), tt)
	assert.False(one.Equals(ChallengeScalar("c", tt)))
}

package pvss

import (
	"io"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/sync/errgroup"
)

// PedersenSharing is the Pedersen-commitment PVSS transcript: one
// commitment commit(s_i, r_i) and one IBE ciphertext per recipient. The
// committed vector must pass the low-degree test for the threshold, which
// is what makes the sharing publicly verifiable.
type PedersenSharing struct {
	Commitments []*ristretto.Point
	Ciphertexts []Ciphertext
	Threshold   int
}

// SharePedersen splits the secret across the recipients under a (t, n)
// access structure: a secret polynomial and a randomness polynomial of
// degree t-1, evaluated at 1..n, committed pairwise, and transported via
// the identity encrypters. Per-party work fans out across goroutines.
func SharePedersen(params *CommitmentParams, recipients []IdentityEncrypter, secret *ristretto.Scalar, t, n int, rand io.Reader) (*PedersenSharing, error) {
	if len(recipients) != n {
		return nil, ErrDimensionMismatch
	}
	if t < 1 || t > n {
		return nil, ErrThresholdViolation
	}

	sPoly, err := SamplePolynomial(secret, t-1, rand)
	if err != nil {
		return nil, err
	}
	rPoly, err := SamplePolynomial(nil, t-1, rand)
	if err != nil {
		return nil, err
	}

	sharing := &PedersenSharing{
		Commitments: make([]*ristretto.Point, n),
		Ciphertexts: make([]Ciphertext, n),
		Threshold:   t,
	}

	var group errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			x := uint64ToScalar(uint64(i + 1))
			si := sPoly.Evaluate(x)
			ri := rPoly.Evaluate(x)
			sharing.Commitments[i] = params.Commit(si, ri)

			block, err := packScalars(PVSSBlockSize, si, ri)
			if err != nil {
				return err
			}
			ct, err := recipients[i].EncryptBlock(block, partyIdentity(i))
			if err != nil {
				return err
			}
			sharing.Ciphertexts[i] = ct
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return sharing, nil
}

// VerifyPedersenShare checks the sharing from recipient index's point of
// view: the full commitment vector passes the low-degree test for the
// threshold with fresh verifier randomness, and the decrypted (s_i, r_i)
// opens this recipient's commitment.
func VerifyPedersenShare(params *CommitmentParams, sharing *PedersenSharing, index int, key IdentityDecrypter, rand io.Reader) error {
	dc, err := NewDualCodeword(len(sharing.Commitments), sharing.Threshold, rand)
	if err != nil {
		return err
	}
	return verifyPedersenShare(params, sharing, index, key, dc)
}

// VerifyPedersenShareWithCodeword is the amortized variant for callers
// holding a precomputed codeword for this sharing's (n, t); see
// DualCodeword for the reuse caveat.
func VerifyPedersenShareWithCodeword(params *CommitmentParams, sharing *PedersenSharing, index int, key IdentityDecrypter, dc *DualCodeword) error {
	return verifyPedersenShare(params, sharing, index, key, dc)
}

func verifyPedersenShare(params *CommitmentParams, sharing *PedersenSharing, index int, key IdentityDecrypter, dc *DualCodeword) error {
	n := len(sharing.Commitments)
	if len(sharing.Ciphertexts) != n {
		return ErrDimensionMismatch
	}
	if index < 0 || index >= n {
		return ErrDimensionMismatch
	}

	if err := dc.CheckPoints(sharing.Commitments); err != nil {
		return err
	}

	block, err := key.DecryptBlock(sharing.Ciphertexts[index])
	if err != nil {
		return err
	}
	if len(block) != PVSSBlockSize {
		return ErrDeserialization
	}
	opening, err := unpackScalars(block, 2)
	if err != nil {
		return err
	}

	if !sharing.Commitments[index].Equals(params.Commit(opening[0], opening[1])) {
		return ErrInvalidOpening
	}
	return nil
}

// OpenPedersenShare decrypts a recipient's share value for reconstruction,
// returning it as an interpolation sample at x = index + 1.
func OpenPedersenShare(sharing *PedersenSharing, index int, key IdentityDecrypter) (*ScalarShare, error) {
	if index < 0 || index >= len(sharing.Ciphertexts) {
		return nil, ErrDimensionMismatch
	}
	block, err := key.DecryptBlock(sharing.Ciphertexts[index])
	if err != nil {
		return nil, err
	}
	if len(block) != PVSSBlockSize {
		return nil, ErrDeserialization
	}
	opening, err := unpackScalars(block, 1)
	if err != nil {
		return nil, err
	}
	return &ScalarShare{X: uint64ToScalar(uint64(index + 1)), Y: opening[0]}, nil
}

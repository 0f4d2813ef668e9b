package pvss

import (
	"bytes"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"golang.org/x/sync/errgroup"
)

// HashSharing is the hash-commitment PVSS transcript: per-party digests of
// the share and check openings, the masked public polynomial
// w = b - chi*s, and one IBE ciphertext per recipient carrying
// (s_i, r_i, q_i).
type HashSharing struct {
	Masked       []*ristretto.Scalar
	ShareDigests [][]byte
	CheckDigests [][]byte
	Ciphertexts  []Ciphertext
	Threshold    int
}

func digest(tag string, parts ...[]byte) []byte {
	h := blake2b.New256()
	h.Write([]byte(tag))
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// ShareHash splits the secret across the recipients under a (t, n) access
// structure. Four degree-(t-1) polynomials are sampled: the secret one and
// the blindings r, b, q. Per-party work is independent and fans out across
// goroutines.
//
// chi is the protocol's fixed public constant, not a transcript challenge.
func ShareHash(recipients []IdentityEncrypter, secret *ristretto.Scalar, t, n int, rand io.Reader) (*HashSharing, error) {
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
	bPoly, err := SamplePolynomial(nil, t-1, rand)
	if err != nil {
		return nil, err
	}
	qPoly, err := SamplePolynomial(nil, t-1, rand)
	if err != nil {
		return nil, err
	}

	sharing := &HashSharing{
		ShareDigests: make([][]byte, n),
		CheckDigests: make([][]byte, n),
		Ciphertexts:  make([]Ciphertext, n),
		Threshold:    t,
	}

	var group errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			x := uint64ToScalar(uint64(i + 1))
			si := sPoly.Evaluate(x)
			ri := rPoly.Evaluate(x)
			bi := bPoly.Evaluate(x)
			qi := qPoly.Evaluate(x)

			sharing.ShareDigests[i] = digest(SHARE_DIGEST_DOMAIN_TAG, si.Bytes(), ri.Bytes())
			sharing.CheckDigests[i] = digest(CHECK_DIGEST_DOMAIN_TAG, bi.Bytes(), qi.Bytes())

			block, err := packScalars(PVSSBlockSize, si, ri, qi)
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

	chi := uint64ToScalar(hashVariantChallenge)
	sharing.Masked = bPoly.Sub(sPoly.MulScalar(chi)).Coefficients
	return sharing, nil
}

// VerifyHashShare checks the sharing from recipient index's point of view:
// decrypt (s_i, r_i, q_i), recompute w(i) + chi*s_i, and require both
// digests to open. The masked polynomial's degree is bounded by t-1.
func VerifyHashShare(sharing *HashSharing, index int, key IdentityDecrypter) error {
	n := len(sharing.Ciphertexts)
	if len(sharing.ShareDigests) != n || len(sharing.CheckDigests) != n {
		return ErrDimensionMismatch
	}
	if index < 0 || index >= n {
		return ErrDimensionMismatch
	}
	if len(sharing.Masked) > sharing.Threshold {
		return ErrThresholdViolation
	}

	block, err := key.DecryptBlock(sharing.Ciphertexts[index])
	if err != nil {
		return err
	}
	if len(block) != PVSSBlockSize {
		return ErrDeserialization
	}
	opening, err := unpackScalars(block, 3)
	if err != nil {
		return err
	}
	si, ri, qi := opening[0], opening[1], opening[2]

	if !bytes.Equal(sharing.ShareDigests[index], digest(SHARE_DIGEST_DOMAIN_TAG, si.Bytes(), ri.Bytes())) {
		return ErrInvalidOpening
	}

	w := NewPolynomial(sharing.Masked)
	chi := uint64ToScalar(hashVariantChallenge)
	var lhs ristretto.Scalar
	lhs.Mul(chi, si)
	lhs.Add(w.Evaluate(uint64ToScalar(uint64(index+1))), &lhs)

	if !bytes.Equal(sharing.CheckDigests[index], digest(CHECK_DIGEST_DOMAIN_TAG, lhs.Bytes(), qi.Bytes())) {
		return ErrInvalidOpening
	}
	return nil
}

// OpenHashShare decrypts a recipient's share value for reconstruction,
// returning it as an interpolation sample at x = index + 1.
func OpenHashShare(sharing *HashSharing, index int, key IdentityDecrypter) (*ScalarShare, error) {
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

package pvss

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"golang.org/x/crypto/hkdf"
)

// Ciphertext is an opaque encrypted block produced by an identity-based
// transport.
type Ciphertext []byte

// IdentityEncrypter is the encryption capability of the identity-based
// transport carrying shares to recipients. Implementations seal a
// fixed-size block to an identity; the protocols never look inside.
type IdentityEncrypter interface {
	EncryptBlock(block, identity []byte) (Ciphertext, error)
}

// IdentityDecrypter is the per-identity decryption capability extracted
// from a recipient's master key.
type IdentityDecrypter interface {
	DecryptBlock(ct Ciphertext) ([]byte, error)
}

func partyIdentity(index int) []byte {
	id := make([]byte, 8)
	binary.LittleEndian.PutUint64(id, uint64(index))
	return id
}

// packScalars lays the given field elements into a zero-padded block of
// the requested size using the canonical 32-byte encoding.
func packScalars(size int, scalars ...*ristretto.Scalar) ([]byte, error) {
	if len(scalars)*ScalarSize > size {
		return nil, ErrDimensionMismatch
	}
	block := make([]byte, size)
	for i, s := range scalars {
		copy(block[i*ScalarSize:], s.Bytes())
	}
	return block, nil
}

// unpackScalars reads count canonical field elements back out of a block,
// failing closed on any non-canonical encoding.
func unpackScalars(block []byte, count int) ([]*ristretto.Scalar, error) {
	if count*ScalarSize > len(block) {
		return nil, ErrDimensionMismatch
	}
	out := make([]*ristretto.Scalar, count)
	for i := 0; i < count; i++ {
		s, err := scalarFromCanonicalBytes(block[i*ScalarSize : (i+1)*ScalarSize])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// BoxMaster is a key-encapsulation stand-in for the lattice IBE: a single
// master keypair whose extracted keys decrypt only ciphertexts sealed to
// their identity. It follows the AEAD box construction of the recipient
// transport (ECDH, HKDF over blake2b, AES-256-GCM). It is NOT an
// identity-based scheme in the security sense, since the extracted key
// embeds the master scalar; it models the external transport's interface
// and failure behavior for tests and non-lattice deployments.
type BoxMaster struct {
	secret ristretto.Scalar
	public ristretto.Point
}

func NewBoxMaster() *BoxMaster {
	m := &BoxMaster{}
	m.secret.Rand()
	m.public.ScalarMultBase(&m.secret)
	return m
}

// Public returns the encryption capability.
func (m *BoxMaster) Public() *BoxPublic {
	p := &BoxPublic{}
	p.point.Set(&m.public)
	return p
}

// Extract derives the decryption capability for one identity.
func (m *BoxMaster) Extract(identity []byte) *BoxKey {
	k := &BoxKey{identity: append([]byte(nil), identity...)}
	k.secret.Set(&m.secret)
	return k
}

type BoxPublic struct {
	point ristretto.Point
}

type BoxKey struct {
	secret   ristretto.Scalar
	identity []byte
}

// kdfStep derives the AEAD key and nonce from the shared point and the
// recipient identity.
func kdfStep(shared *ristretto.Point, identity []byte) ([]byte, []byte, error) {
	info := append([]byte(IBE_BOX_KEY_INFO), identity...)
	var okm [44]byte
	key := hkdf.New(blake2b.New512, shared.Bytes(), []byte(IBE_BOX_SALT), info)
	if _, err := io.ReadFull(key, okm[:]); err != nil {
		return nil, nil, err
	}
	return okm[:32], okm[32:], nil
}

func sealBlock(key, nonce, block []byte) ([]byte, error) {
	aesCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(aesCipher)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, block, nil), nil
}

func openBlock(key, nonce, sealed []byte) ([]byte, error) {
	aesCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(aesCipher)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, sealed, nil)
}

// EncryptBlock seals a block to the identity under an ephemeral ECDH share.
// Ciphertext layout: 32-byte ephemeral public point, then the AEAD output.
func (p *BoxPublic) EncryptBlock(block, identity []byte) (Ciphertext, error) {
	var eph ristretto.Scalar
	eph.Rand()
	var ephPub, shared ristretto.Point
	ephPub.ScalarMultBase(&eph)
	shared.ScalarMult(&p.point, &eph)

	key, nonce, err := kdfStep(&shared, identity)
	if err != nil {
		return nil, err
	}
	sealed, err := sealBlock(key, nonce, block)
	if err != nil {
		return nil, err
	}

	ct := make([]byte, 0, 32+len(sealed))
	ct = append(ct, ephPub.Bytes()...)
	ct = append(ct, sealed...)
	return ct, nil
}

// DecryptBlock recovers the block. Any tampering with the ciphertext, and
// any mismatch between the sealed identity and the extracted key's, fails
// the AEAD open.
func (k *BoxKey) DecryptBlock(ct Ciphertext) ([]byte, error) {
	if len(ct) < 32 {
		return nil, ErrDeserialization
	}
	ephPub, err := pointFromCanonicalBytes(ct[:32])
	if err != nil {
		return nil, err
	}
	var shared ristretto.Point
	shared.ScalarMult(ephPub, &k.secret)

	key, nonce, err := kdfStep(&shared, k.identity)
	if err != nil {
		return nil, err
	}
	block, err := openBlock(key, nonce, ct[32:])
	if err != nil {
		return nil, fmt.Errorf("pvss: opening sealed block: %w", err)
	}
	return block, nil
}

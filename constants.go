package pvss

const (
	PEDERSEN_H_DOMAIN_TAG        = "qv_pedersen_blinding_generator"
	ZERO_PROOF_DOMAIN_TAG        = "qv_zero_proof_transcript"
	OR_PROOF_DOMAIN_TAG          = "qv_or_proof_transcript"
	SHARE_DIGEST_DOMAIN_TAG      = "qv_share_digest"
	CHECK_DIGEST_DOMAIN_TAG      = "qv_check_digest"
	IBE_BOX_SALT                 = "qv_ibe_salty_box"
	IBE_BOX_KEY_INFO             = "aead-key-iv"

	// ScalarSize is the canonical serialized size of a field element.
	ScalarSize = 32
	// PVSSBlockSize is the IBE plaintext block carrying up to three field
	// elements for the sharing protocols.
	PVSSBlockSize = 96
	// VoteBlockSize is the IBE plaintext block carrying a single field
	// element for polling shares.
	VoteBlockSize = 32
)

// hashVariantChallenge is the fixed public challenge of the hash-commitment
// sharing variant. It is a deliberate constant, not a transcript-derived
// value; see the protocol notes before changing it.
const hashVariantChallenge = 42

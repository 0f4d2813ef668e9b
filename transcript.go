package pvss

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

func AppendScalar(label string, s *ristretto.Scalar, t *merlin.Transcript) {
	appendBytes([]byte(label), s.Bytes(), t)
}

func AppendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}

func ChallengeScalar(label string, t *merlin.Transcript) *ristretto.Scalar {
	data := t.ExtractBytes([]byte(label), 64)
	var dataBytes [64]byte
	copy(dataBytes[:], data[:])

	var s ristretto.Scalar
	return s.SetReduced(&dataBytes)
}

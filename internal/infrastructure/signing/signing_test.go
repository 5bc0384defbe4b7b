package signing_test

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"media-uploader/internal/infrastructure/signing"

	"github.com/stretchr/testify/assert"
)

func baseParams() map[string]string {
	return map[string]string{
		"public_id":     "a/b",
		"timestamp":     "1700000000",
		"upload_preset": "p",
	}
}

func TestCanonical_SortsAndJoinsWithoutEncoding(t *testing.T) {
	got := signing.Canonical(map[string]string{
		"timestamp":      "1700000000",
		"public_id":      "pet/a b&c",
		"eager_async":    "true",
		"transformation": "q_auto",
	})
	assert.Equal(t, "eager_async=true&public_id=pet/a b&c&timestamp=1700000000&transformation=q_auto", got)
}

func TestSign_MatchesSha1OfCanonicalPlusSecret(t *testing.T) {
	sum := sha1.Sum([]byte("public_id=a/b&timestamp=1700000000&upload_preset=pS"))
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, signing.NewSigner("S").Sign(baseParams()))
}

func TestSign_Deterministic(t *testing.T) {
	s := signing.NewSigner("S")
	assert.Equal(t, s.Sign(baseParams()), s.Sign(baseParams()))
}

func TestSign_AnySingleChangeAltersDigest(t *testing.T) {
	s := signing.NewSigner("S")
	original := s.Sign(baseParams())

	for key := range baseParams() {
		changed := baseParams()
		changed[key] = changed[key] + "x"
		assert.NotEqual(t, original, s.Sign(changed), key)
	}
	assert.NotEqual(t, original, signing.NewSigner("T").Sign(baseParams()))
}

func TestSign_EmptyParams(t *testing.T) {
	sum := sha1.Sum([]byte("S"))
	assert.Equal(t, hex.EncodeToString(sum[:]), signing.NewSigner("S").Sign(nil))
}

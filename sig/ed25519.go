package sig

import (
	stded25519 "crypto/ed25519"
	"crypto/rand"

	voied25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

// Ed25519 byte-length constants. Versions 0 and 1 both wrap Ed25519
// byte-for-byte; the wrapper below is shared by both, with the outer
// Version tag (version.go) carrying the part of the contract that
// actually differs: whether two operands are allowed to interoperate.
const (
	versionVarintSizeBytes = 1 // true for Version0 and Version1; see versiontag.Len
	secretKeyBytes         = 32
	publicKeyBytes         = 32
	signatureBytes         = 64
)

// ed25519Generate produces a fresh secret/public key pair from the OS
// CSPRNG. The public key is always derived from the secret key, never
// read back from the generator independently, so KeyPair's invariant
// (pk == derive(sk)) holds by construction.
func ed25519Generate() (sk [secretKeyBytes]byte, pk [publicKeyBytes]byte, err error) {
	_, priv, err := stded25519.GenerateKey(rand.Reader)
	if err != nil {
		return sk, pk, err
	}
	copy(sk[:], priv.Seed())
	pub := priv.Public().(stded25519.PublicKey)
	copy(pk[:], pub)
	return sk, pk, nil
}

// ed25519DerivePublic recomputes the public key from a secret key. Used
// by every KeyPair constructor except Generate so that a KeyPair built
// from untrusted bytes can never carry a mismatched (sk, pk) pair.
func ed25519DerivePublic(sk [secretKeyBytes]byte) [publicKeyBytes]byte {
	priv := stded25519.NewKeyFromSeed(sk[:])
	pub := priv.Public().(stded25519.PublicKey)
	var pk [publicKeyBytes]byte
	copy(pk[:], pub)
	return pk
}

// ed25519Sign signs the 32 bytes of hash exactly: no domain separation,
// no internal re-hashing beyond what Ed25519 itself performs.
func ed25519Sign(sk [secretKeyBytes]byte, hash [32]byte) [signatureBytes]byte {
	priv := stded25519.NewKeyFromSeed(sk[:])
	raw := stded25519.Sign(priv, hash[:])
	var out [signatureBytes]byte
	copy(out[:], raw)
	return out
}

// ed25519Verify reports whether sig is a valid Ed25519 signature of hash
// under pk. Uses curve25519-voi rather than crypto/ed25519 directly so
// that scalar verification and ed25519VerifyBatch below share one
// verification predicate — batch and scalar results can never disagree
// when a single implementation backs both.
func ed25519Verify(pk [publicKeyBytes]byte, hash [32]byte, sig [signatureBytes]byte) bool {
	return voied25519.Verify(voied25519.PublicKey(pk[:]), hash[:], sig[:])
}

// ed25519VerifyBatch verifies a same-version batch in one shot. Returns
// false if any element fails; it does not report which one.
func ed25519VerifyBatch(hashes [][]byte, sigs [][]byte, pks []voied25519.PublicKey) bool {
	ok, _ := voied25519.VerifyBatch(rand.Reader, pks, hashes, sigs, nil)
	return ok
}

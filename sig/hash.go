package sig

// Hash is a 32-byte message digest. Producing one — picking and running
// a hash function over a message — is entirely outside this package;
// Sign and Verify only consume the 32 bytes, with no internal re-hashing
// or domain separation of their own.
type Hash [32]byte

// Bytes returns the 32 digest bytes.
func (h Hash) Bytes() [32]byte { return h }

// HashFromBytes wraps an existing 32-byte digest.
func HashFromBytes(b [32]byte) Hash { return Hash(b) }

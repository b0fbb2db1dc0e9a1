/*
Package sig implements versioned Ed25519 key pairs, public keys and
detached signatures for node identity and block/message signing.

Every value carries an explicit Version tag (the closed set {Version0,
Version1}) so that on-wire and on-disk artifacts can evolve without
ambiguity: versions wrap the same Ed25519 algorithm today but are never
interchangeable — a Version0 PublicKey cannot verify a Version1
Signature, and PublicKey.Verify returns an InvalidVersion error for any
such mismatch.

Three encodings are supported for each type:

  - binary: varint(version) || payload, via Bytes()/FromBytes();
  - text: base58check, preceded by a type-specific ASCII prefix for
    KeyPair ('S') and PublicKey ('P') and by no prefix for Signature, via
    String()/FromString();
  - structured: a self-describing form meant for JSON-like targets, via
    MarshalJSON/UnmarshalJSON (KeyPair) or the text form (PublicKey,
    Signature).

Decoders tolerate trailing bytes beyond a value's declared payload
length; SerializedLen reports exactly how many bytes were consumed so
that higher-level framed formats can advance their own cursors.
*/
package sig

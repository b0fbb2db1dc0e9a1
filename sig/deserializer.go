package sig

// PublicKeyDeserializer and SignatureDeserializer adapt this package's
// FromBytes constructors to the narrow "consume a prefix, return the
// rest" contract used by framed/streaming decoders elsewhere in a larger
// message format: given a buffer that starts with an encoded value and
// may continue with unrelated data, return the decoded value and
// whatever bytes follow it. Neither type implements a parser-combinator
// framework of its own; they exist only to fix this one calling
// convention so a PublicKey or Signature can be one field in a larger
// framed structure without that structure knowing SerializedLen.
//
// Both adapters collapse whatever InvalidVersion or Parsing error the
// underlying FromBytes call produced into a single generic decode
// error: a framed field either decoded or it didn't, and the detailed
// cause isn't meaningful once the value is just one piece of a larger
// buffer.

// PublicKeyDeserializer decodes one PublicKey off the front of data and
// returns the value together with the remaining, unconsumed bytes.
func PublicKeyDeserializer(data []byte) (value PublicKey, rest []byte, err error) {
	value, err = PublicKeyFromBytes(data)
	if err != nil {
		return PublicKey{}, nil, errDecodeFailed("PublicKeyDeserializer")
	}
	return value, data[value.SerializedLen():], nil
}

// SignatureDeserializer decodes one Signature off the front of data and
// returns the value together with the remaining, unconsumed bytes.
func SignatureDeserializer(data []byte) (value Signature, rest []byte, err error) {
	value, err = SignatureFromBytes(data)
	if err != nil {
		return Signature{}, nil, errDecodeFailed("SignatureDeserializer")
	}
	return value, data[value.SerializedLen():], nil
}

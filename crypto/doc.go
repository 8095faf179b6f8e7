// crypto is the key algorithm abstraction layer of chaincrypto.
//
// Every supported signature algorithm lives in its own package (ed25519,
// ed25519extended, ed25519bip32, secp256k1, secp256k1eth, sr25519, ed448,
// dilithium) and supplies the same small set of operations over fixed-size key
// buffers:
//
//	GenPrivKeyFromReader(rand io.Reader) *PrivKey  // generate
//	(*PrivKey).PubKey()                           // compute public
//	PrivKeyFromBytes([]byte) (*PrivKey, error)    // secret from binary
//	PubKeyFromBytes([]byte) (PubKey, error)       // public from binary
//
// Decoding only checks the byte length of its input. Whether the bytes form
// a valid curve point or scalar is left to the signing and verification
// primitives, which reject invalid material when it is used.
//
// Each algorithm package also exposes a zero-sized Algorithm marker that
// satisfies AsymmetricKey and AsymmetricPublicKey, so callers can be written
// once against the generic contract:
//
//	func fingerprint[S crypto.PrivKey, P crypto.PubKey](alg crypto.AsymmetricKey[S, P]) crypto.Address {
//		sk := alg.Generate(crypto.CReader())
//		defer sk.Zeroize()
//		return alg.ComputePublic(sk).Address()
//	}
//
// The keytypes package offers the same operations behind a runtime enum.
package crypto

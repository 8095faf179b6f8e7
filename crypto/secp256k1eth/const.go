package secp256k1eth

const (
	// PrivKeySize defines the length of the PrivKey byte array.
	PrivKeySize = 32
	// PubKeySize, in Ethereum format, is comprised of 65 bytes for two field elements (x and y)
	// and a prefix byte.
	// Only uncompressed public keys are supported, so the the prefix byte is always set
	// to 0x04 to indicate "uncompressed".
	PubKeySize = 65
	// SignatureSize is the size of an R || S || V signature.
	SignatureSize = 65
	// KeyType is the string constant for Ethereum-compatible Secp256k1.
	KeyType = "secp256k1eth"

	SecretBech32HRP = "secp256k1eth_sk"
	PublicBech32HRP = "secp256k1eth_pk"
)

package version

const (
	// SemVer is used as the fallback version of chaincrypto
	// when not using git describe. It uses semantic versioning format.
	SemVer = "0.3.0-dev"

	// KeyFormatVersion versions the binary and bech32 key formats. It changes
	// only when a size or prefix of an existing algorithm changes.
	KeyFormatVersion uint64 = 1
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the chaincrypto binary. It is
// set at build time with -ldflags "-X ...version.GitCommitHash=...".
var GitCommitHash = ""

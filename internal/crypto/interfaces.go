package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plain-text passwords into storable hashes and checks
// candidates against them. It knows nothing about users, storage or HTTP.
//
// Hashes are self-describing: the algorithm, its cost and the salt are
// encoded in the returned string, so Compare needs nothing but the hash.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same input
	// yield different hashes.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash, and a non-nil error
	// when it does not or when hash is malformed.
	Compare(hash, password string) error
}

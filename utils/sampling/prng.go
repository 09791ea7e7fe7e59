package sampling

import (
	"crypto/rand"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for sources of random bytes. All randomized
// algorithms in this module draw through a PRNG so that callers can inject a
// deterministic source for reproducible runs.
type PRNG interface {
	Read(sum []byte) (n int, err error)
}

// ThreadSafePRNG is a PRNG backed by crypto/rand.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads random bytes into sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a deterministic PRNG expanding a key into an unbounded
// sequence of bytes with the blake2b XOF. Two KeyedPRNG instances created
// with the same key produce the same stream.
// WARNING: KeyedPRNG should NOT be shared across threads; concurrent reads
// make the produced sequence non-deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = append([]byte(nil), key...)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG into sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

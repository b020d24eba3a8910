package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// systemSource draws from the operating system's CSPRNG. It holds no state,
// so Telnet sessions may share one. Each Intn is a single independent read;
// concurrent rollers never observe a partial draw.
type systemSource struct{}

// NewCryptoSource returns the Source used outside tests.
func NewCryptoSource() Source {
	return systemSource{}
}

// Intn returns a value in [0, n) with no modulo bias.
//
// Precondition: n > 0. A failing system random reader also panics, since a
// roll with no outcome cannot be reported as a Result.
func (systemSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("dice: Intn precondition violated: n must be positive, got %d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("dice: reading system randomness: %v", err))
	}
	return int(v.Int64())
}

package assembly

import (
	"crypto/rand"
	"fmt"
	"math/big"

	hashids "github.com/speps/go-hashids"
)

// codeSpace bounds the random number behind a share code. Nine digits keeps
// codes at 5-7 characters.
const codeSpace = 1000000000

// Codec issues short shareable codes for saved assessments
type Codec struct {
	h *hashids.HashID
}

// NewCodec creates a codec. The salt keeps codes distinct per deployment so
// codes cannot be replayed across installations.
func NewCodec(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 5
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("share code codec: %w", err)
	}
	return &Codec{h: h}, nil
}

// NewCode generates a fresh share code from a random number
func (c *Codec) NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("share code: %w", err)
	}
	return c.h.EncodeInt64([]int64{n.Int64()})
}

package domain

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/randbo"
)

// usableBits is the number of bits taken from every 8-byte block read from
// the source. A math/rand source produces 63 bits per draw, so the top byte
// of a block is not uniformly distributed.
const usableBits = 56

// Generator produces pseudo-random bit sequences. It is not safe for
// concurrent use and gives no cryptographic guarantees.
type Generator struct {
	source io.Reader
	block  [8]byte
	bits   uint64
	left   int
}

// NewGenerator returns a Generator seeded from the current time
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator returns a Generator that always yields the same
// sequences for the same seed
func NewSeededGenerator(seed int64) *Generator {
	return NewGeneratorFrom(rand.NewSource(seed))
}

func NewGeneratorFrom(src rand.Source) *Generator {
	return &Generator{source: randbo.NewFrom(src)}
}

// Generate draws length uniformly random booleans and renders them as '1'
// for true and '0' for false, in draw order. It panics if length is negative.
func (g *Generator) Generate(length int) BitSequence {
	if length < 0 {
		panic("domain: negative sequence length")
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if g.nextBool() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return BitSequence(b.String())
}

func (g *Generator) nextBool() bool {
	if g.left == 0 {
		g.refill()
	}
	bit := g.bits&1 == 1
	g.bits >>= 1
	g.left--
	return bit
}

func (g *Generator) refill() {
	if _, err := io.ReadFull(g.source, g.block[:]); err != nil {
		panic(fmt.Sprintf("domain: random source failed: %v", err))
	}
	g.bits = binary.LittleEndian.Uint64(g.block[:]) & (1<<usableBits - 1)
	g.left = usableBits
}

package montgomery

import (
	"encoding/hex"
	"math/big"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the capacity of the package-level context cache.
const DefaultCacheSize = 64

// Cache keeps recently used Modulus contexts, keyed by modulus fingerprint,
// so repeated exponentiations modulo the same n skip the R and R^2
// precomputation. It is safe for concurrent use.
type Cache struct {
	contexts *lru.Cache
	opts     []Option
}

// NewCache returns a cache holding at most size contexts. The options are
// applied to every context the cache builds.
func NewCache(size int, opts ...Option) (*Cache, error) {
	contexts, err := lru.NewWithEvict(size, func(key, value interface{}) {
		fp := key.([32]byte)
		log.Debug("Evicted modulus context", "fingerprint", hex.EncodeToString(fp[:8]))
	})
	if err != nil {
		return nil, err
	}
	return &Cache{contexts: contexts, opts: opts}, nil
}

// Get returns the context for n, building and caching it on a miss.
func (c *Cache) Get(n *big.Int) (*Modulus, error) {
	if n.Sign() <= 0 {
		return nil, ErrZeroModulus
	}
	limbs := limbsFromBig(make([]Limb, len(n.Bits())), n)
	fp := Fingerprint(limbs)
	if v, ok := c.contexts.Get(fp); ok {
		return v.(*Modulus), nil
	}
	m, err := NewModulus(limbs, c.opts...)
	if err != nil {
		return nil, err
	}
	// Two goroutines may race to build the same context; both results are
	// equivalent and the first one stored wins.
	if prev, ok, _ := c.contexts.PeekOrAdd(fp, m); ok {
		return prev.(*Modulus), nil
	}
	log.Debug("Built modulus context", "bits", m.BitLen(), "limbs", m.Limbs(), "window", m.Window(),
		"fingerprint", hex.EncodeToString(fp[:8]))
	return m, nil
}

// Len returns the number of cached contexts.
func (c *Cache) Len() int { return c.contexts.Len() }

// Purge drops every cached context.
func (c *Cache) Purge() { c.contexts.Purge() }

var defaultCache = mustCache(DefaultCacheSize)

func mustCache(size int) *Cache {
	c, err := NewCache(size)
	if err != nil {
		panic(err)
	}
	return c
}

// ExpBig returns x^e mod n, reusing a cached context for n. n must be
// positive and odd and e must not be negative.
func ExpBig(x, e, n *big.Int) (*big.Int, error) {
	m, err := defaultCache.Get(n)
	if err != nil {
		return nil, err
	}
	return m.ExpBig(x, e)
}

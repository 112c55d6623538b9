package importer

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MrJamesThe3rd/cardledger/internal/importer/yodobashi"
)

var ErrUnsupportedCardType = errors.New("unsupported card type")

// Registry maps card type codes to parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Builtin returns a registry with every parser shipped in this module.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(yodobashi.Code, yodobashi.New())

	return r
}

// Register adds or replaces the parser for code.
func (r *Registry) Register(code string, p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers[code] = p
}

func (r *Registry) Get(code string) (Parser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parsers[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCardType, code)
	}

	return p, nil
}

// Codes returns the registered codes in sorted order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.parsers))
	for code := range r.parsers {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}

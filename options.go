package shiftcat

// DefaultGas is the gas budget Evaluate uses when no WithGas option is
// given.
const DefaultGas = 1_000_000

// Option configures a call to Evaluate: a closed interface, a handful of
// concrete option types, and a flattening constructor so options compose
// like a slice without callers needing to know that.
type Option interface{ apply(*evalConfig) }

type evalConfig struct {
	dict      *Dictionary
	gas       int
	logfn     func(mess string, args ...interface{})
	dictLimit *uint
}

// Options flattens a slice of Option into one, so a caller building up
// options conditionally can pass around a single Option value.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*evalConfig) {}

type options []Option

func (opts options) apply(cfg *evalConfig) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(cfg)
		}
	}
}

type dictOption struct{ dict *Dictionary }

// WithDictionary runs Evaluate against dict, so Define/Delete mutate it in
// place and Variable lookups resolve through it. Without this option,
// Evaluate runs with no dictionary at all: every Variable and every
// Define/Delete thunks.
func WithDictionary(dict *Dictionary) Option { return dictOption{dict} }

func (o dictOption) apply(cfg *evalConfig) { cfg.dict = o.dict }

type dictLimitOption uint

// WithDictionaryLimit caps the number of live entries the dictionary
// installed by WithDictionary may hold, the same bound Dictionary.Limit
// enforces when set directly. A Define that would exceed limit fails
// rather than growing the dictionary. Has no effect without a WithDictionary
// in the same call.
func WithDictionaryLimit(limit uint) Option { return dictLimitOption(limit) }

func (o dictLimitOption) apply(cfg *evalConfig) {
	limit := uint(o)
	cfg.dictLimit = &limit
}

type gasOption int

// WithGas overrides DefaultGas.
func WithGas(gas int) Option { return gasOption(gas) }

func (o gasOption) apply(cfg *evalConfig) { cfg.gas = int(o) }

type logfnOption func(mess string, args ...interface{})

// WithLogf installs a step-trace sink, called with a short rendering of
// each combinator dispatched, each Variable resolved, and each suspension
// on an unresolved Variable or a Prompt. Catenate splices and Quote/Text
// moves onto data are not logged.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

func (o logfnOption) apply(cfg *evalConfig) { cfg.logfn = o }

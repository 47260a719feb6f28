package internal

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// SpellFunc transforms a subject value given zero or more arguments.
// Returning Null (or an error) means "no answer": dispatch moves on to the
// next spell registered under the same name. ExplicitNull is an answer.
type SpellFunc func(subject Value, args []Value) (Value, error)

// Spell is a named transformation invocable from a clog pipeline
type Spell struct {
	Name string
	Fn   SpellFunc
}

// SpellRegistry is an append-only, ordered list of spells. Several spells may
// share a name; they are consulted in registration order.
type SpellRegistry struct {
	spells []*Spell
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewSpellRegistry creates an empty spell registry
func NewSpellRegistry(logger *zap.Logger) *SpellRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &SpellRegistry{logger: logger}
}

// Register appends a spell. Registering a name twice is allowed and builds a
// fallback chain.
func (r *SpellRegistry) Register(s *Spell) error {
	if s == nil || s.Fn == nil {
		name := ""
		if s != nil {
			name = s.Name
		}
		return NewSpellRegistryError(ErrMsgSpellNilFunc, name)
	}
	if s.Name == "" {
		return NewSpellRegistryError(ErrMsgSpellEmptyName, "")
	}

	r.mu.Lock()
	r.spells = append(r.spells, s)
	count := len(r.spells)
	r.mu.Unlock()

	r.logger.Debug(LogMsgSpellRegistered, zap.String(LogFieldSpell, s.Name), zap.Int(LogFieldSpellCount, count))
	return nil
}

// MustRegister appends a spell and panics on error
func (r *SpellRegistry) MustRegister(s *Spell) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Alias registers alias as a spell that dispatches to the spells currently
// registered under target. Spells added to target later are not seen, so
// aliases can never call themselves.
func (r *SpellRegistry) Alias(alias, target string) error {
	if alias == target {
		return NewSpellRegistryError(ErrMsgSpellAliasSelf, alias)
	}
	candidates := r.named(target)
	if len(candidates) == 0 {
		return NewSpellRegistryError(ErrMsgSpellAliasUnknown, target)
	}
	return r.Register(&Spell{
		Name: alias,
		Fn: func(subject Value, args []Value) (Value, error) {
			return r.dispatch(candidates, subject, args), nil
		},
	})
}

// Invoke calls the spells named name in registration order and returns the
// first answer that is not Null. Spell errors and panics count as "no
// answer". Returns Null when nothing answers, including when no spell has
// that name.
func (r *SpellRegistry) Invoke(name string, subject Value, args []Value) Value {
	candidates := r.named(name)
	if len(candidates) == 0 {
		if ce := r.logger.Check(zap.DebugLevel, LogMsgSpellNotFound); ce != nil {
			ce.Write(
				zap.String(LogFieldSpell, name),
				zap.Strings(LogFieldSuggestions, FindSimilarStrings(name, r.Names(), DefaultMaxSuggestions)),
			)
		}
		return Null()
	}
	return r.dispatch(candidates, subject, args)
}

func (r *SpellRegistry) dispatch(candidates []*Spell, subject Value, args []Value) Value {
	for _, s := range candidates {
		result := r.call(s, subject, args)
		if result.Kind() != KindNull {
			return result
		}
	}
	return Null()
}

// call runs one spell, converting errors and panics into Null
func (r *SpellRegistry) call(s *Spell, subject Value, args []Value) (result Value) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Debug(LogMsgSpellPanicked, zap.String(LogFieldSpell, s.Name), zap.Any(LogFieldPanic, p))
			result = Null()
		}
	}()

	result, err := s.Fn(subject, args)
	if err != nil {
		r.logger.Debug(LogMsgSpellFailed, zap.String(LogFieldSpell, s.Name), zap.Error(err))
		return Null()
	}
	return result
}

// named returns a snapshot of the spells registered under name, so spells
// may call back into the registry without holding the lock.
func (r *SpellRegistry) named(name string) []*Spell {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Spell
	for _, s := range r.spells {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// Has checks if at least one spell is registered under name
func (r *SpellRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.spells {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Names returns the distinct spell names in first-registration order
func (r *SpellRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.spells))
	names := make([]string, 0, len(r.spells))
	for _, s := range r.spells {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		names = append(names, s.Name)
	}
	return names
}

// Count returns the number of registered spells, counting shared names
func (r *SpellRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.spells)
}

// SpellRegistryError represents a spell registration error
type SpellRegistryError struct {
	Message   string
	SpellName string
}

// NewSpellRegistryError creates a new spell registration error
func NewSpellRegistryError(message, spellName string) *SpellRegistryError {
	return &SpellRegistryError{
		Message:   message,
		SpellName: spellName,
	}
}

// Error implements the error interface
func (e *SpellRegistryError) Error() string {
	if e.SpellName != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.SpellName)
	}
	return e.Message
}

// SpellArgError reports an argument a spell could not use
type SpellArgError struct {
	Message   string
	SpellName string
	ArgIndex  int
}

// NewSpellArgError creates a new spell argument error
func NewSpellArgError(message, spellName string, argIndex int) *SpellArgError {
	return &SpellArgError{
		Message:   message,
		SpellName: spellName,
		ArgIndex:  argIndex,
	}
}

// Error implements the error interface
func (e *SpellArgError) Error() string {
	return fmt.Sprintf("%s: %s (argument %d)", e.Message, e.SpellName, e.ArgIndex)
}

// Spell error messages
const (
	ErrMsgSpellNilFunc        = "spell function cannot be nil"
	ErrMsgSpellEmptyName      = "spell name cannot be empty"
	ErrMsgSpellTooFewArgs     = "too few arguments"
	ErrMsgSpellExpectedInt    = "expected integer argument"
	ErrMsgSpellExpectedNumber = "expected numeric argument"
	ErrMsgSpellExpectedString = "expected string argument"
	ErrMsgSpellExpectedTime   = "expected time value"
	ErrMsgSpellOutputTooLarge = "spell output would exceed the size limit"
	ErrMsgSpellAliasSelf      = "spell alias cannot target itself"
	ErrMsgSpellAliasUnknown   = "spell alias targets an unknown spell"
)

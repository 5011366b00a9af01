package validator

import "sync"

var (
	codeNamesMu sync.RWMutex
	codeNames   = map[string]string{}
)

// RegisterCodeName associates a readable name with a violation code.
// Constraint packages call it from init so callers can match codes by name.
func RegisterCodeName(code, name string) {
	codeNamesMu.Lock()
	defer codeNamesMu.Unlock()
	codeNames[code] = name
}

// CodeName returns the readable name of code, or ErrUnknownCode.
func CodeName(code string) (string, error) {
	codeNamesMu.RLock()
	defer codeNamesMu.RUnlock()
	name, ok := codeNames[code]
	if !ok {
		return "", ErrUnknownCode
	}
	return name, nil
}

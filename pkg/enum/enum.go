package enum

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	enumManager = map[reflect.Type]any{}
	managerLock sync.RWMutex
)

type enum[T comparable] struct {
	toEnum map[string]T
	values []T
}

// New registers value as a member of its enum type and returns it unchanged.
// It is meant to be called in package-level var blocks.
func New[T comparable](value T) T {
	managerLock.Lock()
	defer managerLock.Unlock()

	t := reflect.TypeOf(value)
	e, ok := enumManager[t].(*enum[T])
	if !ok {
		e = &enum[T]{toEnum: make(map[string]T)}
		enumManager[t] = e
	}

	key := fmt.Sprint(value)
	if _, existed := e.toEnum[key]; !existed {
		e.values = append(e.values, value)
	}
	e.toEnum[key] = value

	return value
}

func ToEnum[T comparable](s string) (T, error) {
	managerLock.RLock()
	defer managerLock.RUnlock()

	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)].(*enum[T])
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// Values returns the registered members of T in registration order.
func Values[T comparable]() []T {
	managerLock.RLock()
	defer managerLock.RUnlock()

	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)].(*enum[T])
	if !ok {
		return nil
	}

	return append([]T(nil), e.values...)
}

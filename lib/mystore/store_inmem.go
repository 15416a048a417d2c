package mystore

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"
)

type InMemoryStore[T any] struct {
	sync.Mutex
	entries map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		entries: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()
	defer s.Unlock()

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	// Within this block everything is transactional
	return f(ctx)
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	if notInTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	s.entries[uid] = value

	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	if notInTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.entries[uid]

	return result, exists, nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	if notInTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	result := make([]T, 0, len(s.entries))
	for _, v := range s.entries {
		result = append(result, v)
	}

	return result, nil
}

func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(all))
	for _, entry := range all {
		if matchesFilters(entry, filters) {
			result = append(result, entry)
		}
	}

	if orderByField != "" {
		sort.SliceStable(result, func(i, j int) bool {
			return lessByField(result[i], result[j], orderByField)
		})
	}

	return result, nil
}

func notInTransaction(c context.Context) bool {
	return c.Value(ctxTransactionKey{}) == nil
}

// matchesFilters supports the equality compares the services actually use.
func matchesFilters[T any](entry T, filters []Filter) bool {
	for _, f := range filters {
		field := reflect.ValueOf(entry).FieldByName(f.Field)
		if !field.IsValid() {
			return false
		}
		if f.Compare == "=" && field.Interface() != f.Value {
			return false
		}
	}

	return true
}

func lessByField[T any](a, b T, fieldName string) bool {
	fieldA := reflect.ValueOf(a).FieldByName(fieldName)
	fieldB := reflect.ValueOf(b).FieldByName(fieldName)
	if !fieldA.IsValid() || !fieldB.IsValid() {
		return false
	}

	if timeA, ok := fieldA.Interface().(time.Time); ok {
		timeB, _ := fieldB.Interface().(time.Time)
		return timeA.Before(timeB)
	}

	switch fieldA.Kind() {
	case reflect.String:
		return fieldA.String() < fieldB.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fieldA.Int() < fieldB.Int()
	default:
		return false
	}
}

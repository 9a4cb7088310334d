package debugui

import (
	"reflect"
	"sync"
)

type fieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

type reflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]fieldInfo
}

func newReflectionCache() *reflectionCache {
	return &reflectionCache{
		fieldCache: make(map[reflect.Type][]fieldInfo),
	}
}

// GetFields returns the exported, non-embedded fields of a struct type.
// Embedded fields are skipped so component bookkeeping like the owner
// back-reference stays out of the inspector.
func (rc *reflectionCache) GetFields(t reflect.Type) []fieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, fieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = newReflectionCache()

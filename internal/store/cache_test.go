package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyIsDeterministic(t *testing.T) {
	first := cacheKey(TableReports, map[string]any{"id_empleado": 3, "estado": 0})
	second := cacheKey(TableReports, map[string]any{"estado": 0, "id_empleado": 3})

	assert.Equal(t, first, second)
	assert.Equal(t, "Reports|estado=0&id_empleado=3", first)
	assert.Equal(t, "Reports|*", cacheKey(TableReports, nil))
}

func TestCacheInvalidateDropsOnlyOneTable(t *testing.T) {
	cache := newReadCache(time.Minute)
	cache.put(cacheKey(TableReports, nil), []Row{{"id_reporte": 1}})
	cache.put(cacheKey(TableReports, map[string]any{"estado": 0}), []Row{})
	cache.put(cacheKey(TableEmployees, nil), []Row{{"id_empleado": 1}})

	cache.invalidate(TableReports)

	_, found := cache.get(cacheKey(TableReports, nil))
	assert.False(t, found)
	_, found = cache.get(cacheKey(TableReports, map[string]any{"estado": 0}))
	assert.False(t, found)
	_, found = cache.get(cacheKey(TableEmployees, nil))
	assert.True(t, found)
}

func TestCacheExpires(t *testing.T) {
	cache := newReadCache(10 * time.Millisecond)
	cache.put("Employees|*", []Row{{"id_empleado": 1}})

	time.Sleep(30 * time.Millisecond)

	_, found := cache.get("Employees|*")
	assert.False(t, found)
}

package database

import (
	"fmt"
	"sync"
	"time"
)

// DatabasePool keeps one live store connection per process so warm
// serverless invocations reuse it instead of reconnecting.
type DatabasePool struct {
	instance DatabaseInterface
	config   DatabaseConfig
	mu       sync.RWMutex
	lastUsed time.Time
}

var (
	globalPool *DatabasePool
	poolMutex  sync.Mutex
)

// GetDatabase returns the shared store connection, creating or
// recreating it when the config changed or the connection went bad.
func GetDatabase(config DatabaseConfig) DatabaseInterface {
	poolMutex.Lock()
	defer poolMutex.Unlock()

	if globalPool == nil || shouldRecreateConnection(globalPool, config) {
		fmt.Printf("🔄 Creating new database connection pool\n")

		if globalPool != nil && globalPool.instance != nil {
			globalPool.instance.Close()
		}

		instance := NewDatabase(config)
		globalPool = &DatabasePool{
			instance: instance,
			config:   config,
			lastUsed: time.Now(),
		}
	} else {
		globalPool.mu.Lock()
		globalPool.lastUsed = time.Now()
		globalPool.mu.Unlock()
	}

	return globalPool.instance
}

// shouldRecreateConnection reports whether the cached connection no
// longer matches the requested config or stopped responding.
func shouldRecreateConnection(pool *DatabasePool, newConfig DatabaseConfig) bool {
	if pool == nil || pool.instance == nil {
		return true
	}

	if pool.config.PostgresDSN != newConfig.PostgresDSN ||
		pool.config.SupabaseURL != newConfig.SupabaseURL ||
		pool.config.SupabaseKey != newConfig.SupabaseKey {
		return true
	}

	// Connections idle past this window get a health probe before reuse;
	// stale lambda sockets fail silently otherwise.
	pool.mu.RLock()
	idle := time.Since(pool.lastUsed)
	pool.mu.RUnlock()
	if idle > 5*time.Minute {
		if err := pool.instance.HealthCheck(); err != nil {
			fmt.Printf("⚠️  Cached connection failed health check: %v\n", err)
			return true
		}
	}

	return false
}

// GetConnectionStats reports pool state for the debug endpoint.
func GetConnectionStats() map[string]interface{} {
	poolMutex.Lock()
	defer poolMutex.Unlock()

	if globalPool == nil {
		return map[string]interface{}{"active": false}
	}

	globalPool.mu.RLock()
	defer globalPool.mu.RUnlock()
	return map[string]interface{}{
		"active":    true,
		"last_used": globalPool.lastUsed.Format(time.RFC3339),
		"idle_for":  time.Since(globalPool.lastUsed).String(),
	}
}

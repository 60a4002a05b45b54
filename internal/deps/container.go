package deps

import (
	"time"

	"github.com/joefazee/qrmenu/internal/blob"
	"github.com/joefazee/qrmenu/internal/cache"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/sanitizer"
	"github.com/joefazee/qrmenu/internal/security"
	"github.com/joefazee/qrmenu/internal/tree"
)

// Container holds all shared dependencies
type Container struct {
	Tree       tree.Tree
	Blobs      blob.Store
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger

	// LoginAttempts counts failed admin logins per email.
	LoginAttempts cache.Counter
	// RevokedTokens holds logged out token IDs until they expire.
	RevokedTokens cache.Cache[string]

	TokenTTL time.Duration
	Now      func() time.Time

	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(
	tr tree.Tree,
	blobs blob.Store,
	tokenMaker security.Maker,
	stripper sanitizer.HTMLStripperer,
	log logger.Logger,
	attempts cache.Counter,
	revoked cache.Cache[string],
) *Container {
	return &Container{
		Tree:          tr,
		Blobs:         blobs,
		TokenMaker:    tokenMaker,
		Sanitizer:     stripper,
		Logger:        log,
		LoginAttempts: attempts,
		RevokedTokens: revoked,
		TokenTTL:      24 * time.Hour,
		Now:           time.Now,
		repositories:  make(map[string]interface{}),
		services:      make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}

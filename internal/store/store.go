// SPDX-License-Identifier: Apache-2.0

// Package store implements the in-memory entity store backing all lifehub
// operations.
//
// All domain records live in id-indexed maps guarded by a single RWMutex;
// secondary indexes (openID, slug) keep hot lookups off the scan path.
// Every entity type has its own monotonic id counter that never reuses a
// value, even after deletion. State does not survive a restart: a fresh
// store holds exactly the seeded demo user and the two seeded categories.
//
// Records returned to callers are copies; nothing outside this package ever
// aliases store memory.
package store

import (
	"sync"
	"time"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/models"
)

// Store owns every domain collection and all id counters. All exported
// methods are safe for concurrent use; a single mutex serializes mutations
// so each operation observes the most recently completed write.
type Store struct {
	mu sync.RWMutex

	// now supplies timestamps for created/updated fields; overridable in
	// tests for deterministic clocks.
	now func() time.Time

	logger *logger.Logger

	users         map[int64]models.User
	usersByOpenID map[string]int64

	categories       map[int64]models.Category
	categoriesBySlug map[string]int64

	documents map[int64]models.Document
	files     map[int64]models.File

	posts       map[int64]models.BlogPost
	postsBySlug map[string]int64

	comments      map[int64]models.Comment
	likes         map[int64]models.Like
	notifications map[int64]models.Notification
	healthRecords map[int64]models.HealthRecord
	transactions  map[int64]models.Transaction
	balances      map[int64]models.Balance

	userSeq         int64
	categorySeq     int64
	documentSeq     int64
	fileSeq         int64
	postSeq         int64
	commentSeq      int64
	likeSeq         int64
	notificationSeq int64
	healthSeq       int64
	transactionSeq  int64
	balanceSeq      int64
}

// SeedConfig describes the demo identity created on startup. Every request
// that carries no explicit identity resolves to this user.
type SeedConfig struct {
	DemoOpenID string
	DemoName   string
	DemoEmail  string
}

// NewStore constructs an empty store and seeds it with the demo user and
// the two default categories. The category counter starts past the seeded
// ids so created categories never collide with them.
func NewStore(seed SeedConfig, logger *logger.Logger) *Store {
	logger.Debug().Msg("creating entity store")

	s := &Store{
		now:    time.Now,
		logger: logger,

		users:         make(map[int64]models.User),
		usersByOpenID: make(map[string]int64),

		categories:       make(map[int64]models.Category),
		categoriesBySlug: make(map[string]int64),

		documents: make(map[int64]models.Document),
		files:     make(map[int64]models.File),

		posts:       make(map[int64]models.BlogPost),
		postsBySlug: make(map[string]int64),

		comments:      make(map[int64]models.Comment),
		likes:         make(map[int64]models.Like),
		notifications: make(map[int64]models.Notification),
		healthRecords: make(map[int64]models.HealthRecord),
		transactions:  make(map[int64]models.Transaction),
		balances:      make(map[int64]models.Balance),
	}

	s.seed(seed)

	return s
}

func (s *Store) seed(seed SeedConfig) {
	now := s.now()

	if seed.DemoOpenID == "" {
		seed.DemoOpenID = "demo_user"
	}
	if seed.DemoName == "" {
		seed.DemoName = "Demo User"
	}
	if seed.DemoEmail == "" {
		seed.DemoEmail = "demo@example.com"
	}

	s.userSeq++
	demo := models.User{
		ID:           s.userSeq,
		OpenID:       seed.DemoOpenID,
		Name:         seed.DemoName,
		Email:        seed.DemoEmail,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	}
	s.users[demo.ID] = demo
	s.usersByOpenID[demo.OpenID] = demo.ID

	seededCategories := []models.Category{
		{ID: 1, Name: "技术", Slug: "tech", Description: "技术相关文章", Color: "#3b82f6", CreatedAt: now},
		{ID: 2, Name: "生活", Slug: "life", Description: "生活随笔", Color: "#10b981", CreatedAt: now},
	}
	for _, c := range seededCategories {
		s.categories[c.ID] = c
		s.categoriesBySlug[c.Slug] = c.ID
	}
	s.categorySeq = 2
}

// WithClock replaces the store's time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

package screens

import (
	"github.com/google/uuid"

	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
)

// Store-scoped cache keys shared by the bootstrap flow and the settings
// screen. Kept here so every caller spells them the same way.

func FirstStoreKey() querycache.Key { return querycache.K("userFirstStore") }

func StoresKey() querycache.Key { return querycache.K("stores") }

func StoreKey(id uuid.UUID) querycache.Key { return querycache.K("store", id) }

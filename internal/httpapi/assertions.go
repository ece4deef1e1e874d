package httpapi

import (
	"github.com/tinoosan/bookkeeper/internal/storage/memory"
	"github.com/tinoosan/bookkeeper/internal/storage/postgres"
)

var (
	_ Store        = (*memory.Store)(nil)
	_ Store        = (*postgres.Store)(nil)
	_ ReadyChecker = (*postgres.Store)(nil)
)

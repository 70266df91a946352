package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/shipshoot/internal/highscore"
	"github.com/vovakirdan/shipshoot/internal/storage"
)

const (
	storeText   = "text"
	storeSQLite = "sqlite"
)

// openStore opens the backend picked by --store.
// The closer is a no-op for the text file.
func openStore() (highscore.Store, io.Closer, error) {
	switch flagStore {
	case storeText:
		store, err := highscore.NewFileStore(flagScoresPath)
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	case storeSQLite:
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (use %s or %s)", flagStore, storeText, storeSQLite)
	}
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cinetech/cinetech/internal/config"
	"github.com/cinetech/cinetech/internal/sources/omdb"
	"github.com/cinetech/cinetech/pkg/catalog"
	"github.com/cinetech/cinetech/pkg/errors"
	"github.com/cinetech/cinetech/pkg/logging"
	"github.com/cinetech/cinetech/pkg/storage"
	filesink "github.com/cinetech/cinetech/pkg/storage/file"
	sqlitesink "github.com/cinetech/cinetech/pkg/storage/sqlite"
)

// openCatalog builds the configured storage sink and loads the catalog
// from it. The returned closer releases sink resources and must be
// called after the command finishes.
func openCatalog() (*catalog.Catalog, func(), error) {
	sink, closer, err := openSink()
	if err != nil {
		return nil, nil, err
	}

	cat := catalog.New(
		catalog.WithSink(sink),
		catalog.WithLogger(logging.Default()),
	)
	return cat, closer, nil
}

// openSink constructs the persistence sink selected by storage.driver.
func openSink() (storage.Sink, func(), error) {
	path := viper.GetString(config.KeyStoragePath)

	switch driver := viper.GetString(config.KeyStorageDriver); driver {
	case config.DriverFile:
		sink, err := filesink.New(path)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() {}, nil
	case config.DriverSQLite:
		sink, err := sqlitesink.Open(filepath.Join(path, "catalog.db"))
		if err != nil {
			return nil, nil, err
		}
		return sink, func() { _ = sink.Close() }, nil
	default:
		return nil, nil, errors.NewValidationError("storage.driver", driver, "must be file or sqlite")
	}
}

// newOMDBClient builds the external metadata client from configuration.
func newOMDBClient() (*omdb.Client, error) {
	apiKey := config.GetString("OMDB_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString(config.KeyOMDBAPIKey)
	}
	return omdb.New(apiKey, viper.GetString(config.KeyOMDBBaseURL))
}

// confirm asks the user to confirm a destructive action. The yes flag
// skips the prompt; a non-interactive refusal is reported as false.
func confirm(message string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Printf("%s [y/N]: ", message)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

package migrations

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r io.ReadCloser) string {
	t.Helper()
	defer r.Close()

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}

func TestEmbeddedMigrations_AreSequentialAndReversible(t *testing.T) {
	src, err := NewSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)

	var versions []uint
	var upScripts []string
	for {
		versions = append(versions, version)

		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "version %d has no up migration", version)
		upScripts = append(upScripts, readAll(t, up))

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "version %d has no down migration", version)
		assert.NotEmpty(t, strings.TrimSpace(readAll(t, down)))

		next, err := src.Next(version)
		if err != nil {
			require.ErrorIs(t, err, os.ErrNotExist)

			break
		}
		version = next
	}

	assert.Equal(t, []uint{1, 2, 3}, versions)

	schema := strings.Join(upScripts, "\n")
	for _, constraint := range []string{
		"users_email_key",
		"stores_email_key",
		"stores_owner_id_key",
		"stores_owner_id_fkey",
		"ratings_user_id_store_id_key",
		"ratings_value_check",
		"ratings_user_id_fkey",
		"ratings_store_id_fkey",
	} {
		assert.Contains(t, schema, constraint)
	}
}

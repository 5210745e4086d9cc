package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestInspector_Renders_Prefixed_Entries(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("session:0000000000000000001:sock-a"), []byte(`{"kind":"identified"}`)); err != nil {
			return err
		}
		return txn.Set([]byte("other:key"), []byte("ignored"))
	}))

	rec := httptest.NewRecorder()
	NewInspector(db, "session:").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/journal", nil))

	req.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	req.Contains(body, "sock-a")
	req.Contains(body, "identified")
	req.NotContains(body, "ignored")
}

func TestInspectRow(t *testing.T) {
	req := require.New(t)

	row := inspectRow("session:0000000000000000000:abc", []byte("{}"))
	req.Equal("abc", row.SocketID)
	req.Equal("00:00:00", row.Timestamp)

	raw := inspectRow("weird", nil)
	req.Equal("-", raw.SocketID)
}

package internal

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var inspectTemplate = template.Must(template.New("inspect").Parse(`<!doctype html>
<html>
<head><title>{{.Prefix}} inspector</title></head>
<body>
<h1>{{.Prefix}} ({{len .Items}})</h1>
<table border="1" cellpadding="4">
<tr><th>Time</th><th>Socket</th><th>Key</th><th>Value</th></tr>
{{range .Items}}<tr><td>{{.Timestamp}}</td><td>{{.SocketID}}</td><td><code>{{.Key}}</code></td><td><code>{{.Value}}</code></td></tr>
{{end}}</table>
</body>
</html>`))

const maxInspectedRows = 1000

type InspectRow struct {
	Key       string
	Timestamp string
	SocketID  string
	Value     string
}

type inspectPage struct {
	Prefix string
	Items  []InspectRow
}

// Inspector renders the raw journal entries stored in Badger. Debug only.
type Inspector struct {
	db            *badger.DB
	defaultPrefix string
}

func NewInspector(db *badger.DB, defaultPrefix string) *Inspector {
	return &Inspector{db: db, defaultPrefix: defaultPrefix}
}

func (i *Inspector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = i.defaultPrefix
	}
	page := inspectPage{Prefix: prefix}

	err := i.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)) && len(page.Items) < maxInspectedRows; it.Next() {
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				page.Items = append(page.Items, inspectRow(string(item.Key()), val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = inspectTemplate.Execute(w, page)
}

// inspectRow understands keys shaped "{prefix}{timestamp_padded}:{socket_id}".
func inspectRow(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, Timestamp: "--:--:--", SocketID: "-", Value: string(val)}
	parts := strings.SplitN(key, ":", 3)
	if len(parts) == 3 {
		if nanos, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, nanos).UTC().Format(time.TimeOnly)
		}
		row.SocketID = parts[2]
	}
	return row
}

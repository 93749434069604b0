// Package couch persists nets and check reports in CouchDB.
package couch

import (
	"context"
	_ "github.com/go-kivik/couchdb/v3"
	"github.com/go-kivik/kivik/v3"
	"github.com/joho/godotenv"
	"github.com/jt05610/pnet"
	"os"
)

var _ pnet.Store[*pnet.Net] = (*Service[*pnet.Net])(nil)

type Service[T pnet.Object] struct {
	cancel func()
	db     *kivik.DB
	revMap map[string]string
}

type Config struct {
	User    string
	Pass    string
	Address string
	Port    string
}

func (c *Config) URI() string {
	return "http://" + c.User + ":" + c.Pass + "@" + c.Address + ":" + c.Port
}

func lookupKey(key string, into *string) {
	value, ok := os.LookupEnv(key)
	if !ok {
		panic("missing env var: " + key)
	}
	*into = value
}

func LoadConfig(envFile ...string) *Config {
	var config Config
	err := godotenv.Load(envFile...)
	if err != nil {
		panic(err)
	}
	keys := []struct {
		key  string
		into *string
	}{
		{"COUCHDB_USER", &config.User},
		{"COUCHDB_PASSWORD", &config.Pass},
		{"COUCHDB_HOST", &config.Address},
		{"COUCHDB_PORT", &config.Port},
	}

	for _, k := range keys {
		lookupKey(k.key, k.into)
	}
	return &config
}

func Open[T pnet.Object](uri string, name string) (*Service[T], error) {
	client, err := kivik.New("couch", uri)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	dbs, err := client.AllDBs(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	found := false
	for _, db := range dbs {
		if db == name {
			found = true
			break
		}
	}
	if !found {
		err = client.CreateDB(ctx, name)
		if err != nil {
			cancel()
			return nil, err
		}
	}
	db := client.DB(ctx, name)
	return &Service[T]{
		cancel: cancel,
		db:     db,
		revMap: make(map[string]string),
	}, nil
}

func (s *Service[T]) Close() error {
	s.cancel()
	return nil
}

// Get reads one stored object. Nets read back this way need Index
// before identifier lookups work.
func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	var ret T
	var zero T
	row := s.db.Get(ctx, id)
	err := row.ScanDoc(&ret)
	if err != nil {
		return zero, err
	}
	s.revMap[id] = row.Rev
	return ret, nil
}

func (s *Service[T]) List(ctx context.Context, selector pnet.Document) ([]T, error) {
	ret := make([]T, 0)
	rows, err := s.db.Find(ctx, map[string]interface{}{
		"selector": selector,
	}, kivik.Options{})
	if err != nil {
		return ret, err
	}
	for rows.Next() {
		var row T
		err := rows.ScanDoc(&row)
		if err != nil {
			return ret, err
		}
		ret = append(ret, row)
	}
	return ret, nil
}

func (s *Service[T]) Add(ctx context.Context, o T) (T, error) {
	var zero T
	doc := o.Document()
	doc["_id"] = o.Identifier()
	rev, err := s.db.Put(ctx, o.Identifier(), doc)
	if err != nil {
		return zero, err
	}
	s.revMap[o.Identifier()] = rev
	return o, nil
}

func (s *Service[T]) Remove(ctx context.Context, id string) (T, error) {
	var zero T
	o, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	rev, err := s.db.Delete(ctx, id, s.revMap[id])
	if err != nil {
		return zero, err
	}
	s.revMap[id] = rev
	return o, nil
}

func NetService(uri string) (*Service[*pnet.Net], error) {
	return Open[*pnet.Net](uri, "nets")
}

func ReportService(uri string) (*Service[*pnet.Report], error) {
	return Open[*pnet.Report](uri, "reports")
}

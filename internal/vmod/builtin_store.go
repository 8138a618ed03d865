package vmod

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// Store is the adopted carrier for an open key/value table backed by
// SQLite.
type Store struct {
	db *sql.DB
}

// StoreMembers populates the store module's globals: open, get, set,
// delete, close.
func StoreMembers(set func(name string, v object.Value) error) error {
	fns := map[string]object.Value{
		"open":   nativeFunc(storeOpen),
		"get":    nativeFunc(storeGet),
		"set":    nativeFunc(storeSet),
		"delete": nativeFunc(storeDelete),
		"close":  nativeFunc(storeClose),
	}
	for name, fn := range fns {
		if err := set(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// open(path) opens (creating if needed) a single-table SQLite
// database at path. ":memory:" opens an in-process database, which is
// what this package's tests use.
func storeOpen(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 1 {
		return nil, exc.New(exc.TypeErrorKind, "open() takes exactly one positional argument")
	}
	path, ok := args[0].(object.Str)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "open() path must be a string")
	}
	db, err := sql.Open("sqlite", string(path))
	if err != nil {
		return nil, exc.New(exc.RuntimeError, "store.open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT)`); err != nil {
		return nil, exc.New(exc.RuntimeError, "store.open: %v", err)
	}
	return &Store{db: db}, nil
}

// get(store, key) raises KeyError for a missing row rather than
// returning None, so None is free to mean "this row's value is SQL
// NULL" (the carrier-adoption rule SPEC_FULL.md calls out).
func storeGet(args []object.Value, names []string) (object.Value, *exc.Exception) {
	store, key, exception := storeAndKey("get", args, names)
	if exception != nil {
		return nil, exception
	}
	var value sql.NullString
	err := store.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, string(key)).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return nil, exc.NewKeyError(key)
	case err != nil:
		return nil, exc.New(exc.RuntimeError, "store.get: %v", err)
	case !value.Valid:
		return object.None, nil
	default:
		return object.Str(value.String), nil
	}
}

func storeSet(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 3 {
		return nil, exc.New(exc.TypeErrorKind, "set() takes exactly 3 positional arguments")
	}
	store, ok := args[0].(*Store)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "set() first argument must be a store returned by open()")
	}
	key, ok := args[1].(object.Str)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "set() key must be a string")
	}
	var value sql.NullString
	if !object.IsNone(args[2]) {
		s, ok := args[2].(object.Str)
		if !ok {
			return nil, exc.New(exc.TypeErrorKind, "set() value must be a string or None")
		}
		value = sql.NullString{String: string(s), Valid: true}
	}
	_, err := store.db.Exec(`INSERT INTO kv(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, string(key), value)
	if err != nil {
		return nil, exc.New(exc.RuntimeError, "store.set: %v", err)
	}
	return object.None, nil
}

func storeDelete(args []object.Value, names []string) (object.Value, *exc.Exception) {
	store, key, exception := storeAndKey("delete", args, names)
	if exception != nil {
		return nil, exception
	}
	res, err := store.db.Exec(`DELETE FROM kv WHERE key = ?`, string(key))
	if err != nil {
		return nil, exc.New(exc.RuntimeError, "store.delete: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, exc.New(exc.RuntimeError, "store.delete: %v", err)
	}
	if n == 0 {
		return nil, exc.NewKeyError(key)
	}
	return object.None, nil
}

func storeClose(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 1 {
		return nil, exc.New(exc.TypeErrorKind, "close() takes exactly one positional argument")
	}
	store, ok := args[0].(*Store)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "close() argument must be a store returned by open()")
	}
	if err := store.db.Close(); err != nil {
		return nil, exc.New(exc.RuntimeError, "store.close: %v", err)
	}
	return object.None, nil
}

func storeAndKey(op string, args []object.Value, names []string) (*Store, object.Str, *exc.Exception) {
	if len(names) != 0 || len(args) != 2 {
		return nil, "", exc.New(exc.TypeErrorKind, "%s() takes exactly 2 positional arguments", op)
	}
	store, ok := args[0].(*Store)
	if !ok {
		return nil, "", exc.New(exc.TypeErrorKind, "%s() first argument must be a store returned by open()", op)
	}
	key, ok := args[1].(object.Str)
	if !ok {
		return nil, "", exc.New(exc.TypeErrorKind, "%s() key must be a string", op)
	}
	return store, key, nil
}

package packcache

import (
	"os"
	"path/filepath"
	"testing"

	"glslpack/internal/pack"
)

func samplePack() *pack.Pack {
	return &pack.Pack{
		Version: 310,
		Strings: map[pack.StringID]string{1: "brightness"},
		Types:   map[pack.TypeID]pack.Type{1: {Name: 1, ArraySizes: []uint64{4}}},
		GlobalSymbols: map[pack.GlobalSymbolID]pack.Symbol{
			1: {Name: 1, Type: 1},
		},
		RValues: map[pack.RValueID]pack.RValue{
			1: pack.LiteralRValue(pack.Literal{Kind: pack.LiteralDouble, Float: 1.5}),
		},
		FunctionNames: map[pack.FunctionID]string{1: "main("},
		StatementBlocks: map[pack.StatementBlockID][]pack.Statement{
			1: {pack.ExprStatement(1)},
		},
		FunctionDefinitions: map[pack.FunctionID]pack.FunctionDefinition{
			1: {Function: 1, ReturnType: 1, Body: 1},
		},
		FunctionPrototypes: map[pack.FunctionID]struct{}{},
		GlobalDefinitionsInOrder: []pack.GlobalDefinition{
			{Symbol: 1, Value: pack.RValueValue(1)},
		},
		FunctionDefinitionsInOrder: []pack.FunctionID{1},
	}
}

func TestDigestFor(t *testing.T) {
	dump := []byte(`{"version": 310}`)
	a := DigestFor(dump, 0)
	b := DigestFor(dump, 0)
	if a != b {
		t.Error("digest is not deterministic")
	}
	if a.IsZero() {
		t.Error("digest of real input is zero")
	}
	if DigestFor(dump, 100) == a {
		t.Error("language version override is not part of the key")
	}
	if DigestFor([]byte(`{"version": 311}`), 0) == a {
		t.Error("dump content is not part of the key")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	cache, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := DigestFor([]byte("dump"), 310)
	want := samplePack()
	if err := cache.Put(key, want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v; want a hit", ok, err)
	}
	if got.Version != want.Version {
		t.Errorf("Version = %d, want %d", got.Version, want.Version)
	}
	if got.Strings[1] != "brightness" {
		t.Errorf("Strings = %v", got.Strings)
	}
	if got.Types[1].ArraySizes[0] != 4 {
		t.Errorf("Types = %v", got.Types)
	}
	rv := got.RValues[1]
	if rv.Kind != pack.RValueLiteral || rv.Literal.Float != 1.5 {
		t.Errorf("RValues = %+v", rv)
	}
	if len(got.StatementBlocks[1]) != 1 || got.StatementBlocks[1][0].Expr != 1 {
		t.Errorf("StatementBlocks = %v", got.StatementBlocks)
	}
	if len(got.GlobalDefinitionsInOrder) != 1 {
		t.Errorf("GlobalDefinitionsInOrder = %v", got.GlobalDefinitionsInOrder)
	}
}

func TestGetMiss(t *testing.T) {
	cache, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := cache.Get(DigestFor([]byte("never stored"), 0)); ok || err != nil {
		t.Errorf("Get on absent key = %v, %v; want a clean miss", ok, err)
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *Cache
	key := DigestFor([]byte("x"), 0)
	if err := cache.Put(key, samplePack()); err != nil {
		t.Errorf("nil Put failed: %v", err)
	}
	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Errorf("nil Get = %v, %v; want a clean miss", ok, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll failed: %v", err)
	}
}

func TestSchemaMismatchIsMiss(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	key := DigestFor([]byte("dump"), 0)
	if err := cache.Put(key, samplePack()); err != nil {
		t.Fatal(err)
	}

	// Corrupt the entry; a decode failure must surface as an error, not
	// a silent hit.
	path := cache.pathFor(key)
	if err := os.WriteFile(path, []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := cache.Get(key); ok || err == nil {
		t.Errorf("corrupt entry: Get = %v, %v", ok, err)
	}
}

func TestDropAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	cache, err := OpenAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	key := DigestFor([]byte("dump"), 0)
	if err := cache.Put(key, samplePack()); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("cache directory survived DropAll: %v", err)
	}
	// Dropping twice is fine.
	if err := cache.DropAll(); err != nil {
		t.Errorf("second DropAll failed: %v", err)
	}
}

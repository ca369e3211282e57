// Package symbol interns identifier strings into small integer IDs.
//
// Adapted from github.com/grailbio/gql/symbol: the intern table and its
// atomic-pointer read path are kept (writes are serialized by one package
// mutex rather than lock stripes), but the GOB/cross-process
// wire format (pre-interned IDs, Marshal/Unmarshal) is dropped — Nico never
// ships a symbol.ID across a process boundary, so that machinery has no
// SPEC_FULL.md component to serve.
package symbol

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/grailbio/base/log"

	"github.com/Brian-Magnuson/nico-sub000/internal/hash"
)

// ID represents an interned identifier.
type ID int32

// Invalid is the zero value, used as a sentinel for "no name".
const Invalid = ID(0)

type idInfo struct {
	name string
	hash hash.Hash
}

type table struct {
	sync.Mutex
	idsPtr unsafe.Pointer // *[]idInfo
}

var symbols table

func maybeInit() {
	if atomic.LoadPointer(&symbols.idsPtr) == nil {
		ids := make([]idInfo, 1, 1024)
		ids[0] = idInfo{"(invalid)", hash.String("(invalid)")}
		atomic.CompareAndSwapPointer(&symbols.idsPtr, nil, unsafe.Pointer(&ids))
	}
}

func init() {
	maybeInit()
}

func (t *table) ids() []idInfo {
	return *(*[]idInfo)(atomic.LoadPointer(&t.idsPtr))
}

var internMu sync.Mutex
var internIndex = map[string]ID{"(invalid)": Invalid}

// Hash returns the content hash of the interned name.
func (id ID) Hash() hash.Hash {
	return symbols.ids()[id].hash
}

// Str returns the original string for an interned ID.
func (id ID) Str() string {
	ids := symbols.ids()
	if int(id) >= len(ids) {
		log.Panicf("symbol: id %d not found", id)
	}
	return ids[id].name
}

// Intern finds or creates an ID for the given string.
func Intern(v string) ID {
	maybeInit()
	if v == "" {
		log.Panicf("symbol: empty identifier")
	}
	internMu.Lock()
	defer internMu.Unlock()
	if id, ok := internIndex[v]; ok {
		return id
	}
	ids := symbols.ids()
	id := ID(len(ids))
	ids = append(ids, idInfo{v, hash.String(v)})
	atomic.StorePointer(&symbols.idsPtr, unsafe.Pointer(&ids))
	internIndex[v] = id
	return id
}

// Lookup returns the ID for v if it has already been interned.
func Lookup(v string) (ID, bool) {
	internMu.Lock()
	defer internMu.Unlock()
	id, ok := internIndex[v]
	return id, ok
}

// Package catalog stores per-graph verdicts in a badger db so repeated
// runs over the same graph6 stream skip the engines. Keys are the
// canonical graph6 bytes of the input line (header and newline
// stripped); values hold one verdict byte.
package catalog

import (
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/2x3systems/frank2/frank2"
)

var gStateKey = []byte{0x00, 0x00, 0x01}

const (
	stateMajorVers = 2024
	stateMinorVers = 1
)

// State is the catalog control record, stored under gStateKey.
type State struct {
	MajorVers   int32    `protobuf:"varint,1,opt,name=major_vers"`
	MinorVers   int32    `protobuf:"varint,2,opt,name=minor_vers"`
	NumVerdicts []uint64 `protobuf:"varint,3,rep,name=num_verdicts"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

// Catalog wraps the verdict db plus an in-process memo tree so a graph
// decided (or fetched) once in a run never touches the db again.
type Catalog struct {
	db         *badger.DB
	readOnly   bool
	state      State
	stateDirty bool
	memo       *redblacktree.Tree
}

func Open(opts frank2.CatalogOpts) (*Catalog, error) {
	cat := &Catalog{
		memo: redblacktree.NewWithStringComparator(),
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so skip the bookkeeping
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(frank2.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = stateMajorVers
		cat.state.MinorVers = stateMinorVers
		cat.state.NumVerdicts = make([]uint64, frank2.MaxVtx128+1)
	}
	if err == nil && (cat.state.MajorVers != stateMajorVers || cat.state.MinorVers != stateMinorVers) {
		err = frank2.ErrCatalogVersion
	}
	if err != nil {
		cat.db.Close()
		return nil, err
	}

	cat.readOnly = opts.ReadOnly
	return cat, nil
}

// Key canonicalizes an input line into its catalog key.
func Key(line string) []byte {
	line = strings.TrimPrefix(line, frank2.Graph6Header)
	line = strings.TrimRight(line, "\r\n")
	return []byte(line)
}

// Lookup returns the stored verdict for key, or VerdictUnknown.
func (cat *Catalog) Lookup(key []byte) frank2.Verdict {
	if v, ok := cat.memo.Get(string(key)); ok {
		return v.(frank2.Verdict)
	}

	verdict := frank2.VerdictUnknown
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 1 {
				verdict = frank2.Verdict(val[0])
			}
			return nil
		})
	})
	if err != nil && err != badger.ErrKeyNotFound {
		panic(err)
	}

	if verdict != frank2.VerdictUnknown {
		cat.memo.Put(string(key), verdict)
	}
	return verdict
}

// Store records a verdict for key. numVertices feeds the per-order
// tallies in the state record; pass -1 to skip them.
func (cat *Catalog) Store(key []byte, v frank2.Verdict, numVertices int) error {
	if cat.readOnly {
		return frank2.ErrCatalogReadOnly
	}

	cat.memo.Put(string(key), v)

	keyCopy := append([]byte(nil), key...)
	err := cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyCopy, []byte{byte(v)})
	})
	if err != nil {
		return err
	}

	if numVertices >= 0 && numVertices < len(cat.state.NumVerdicts) {
		cat.state.NumVerdicts[numVertices]++
		cat.stateDirty = true
	}
	return nil
}

// NumVerdicts returns how many graphs of the given order have been
// decided into this catalog.
func (cat *Catalog) NumVerdicts(forVtxCount int) uint64 {
	if forVtxCount < 0 || forVtxCount >= len(cat.state.NumVerdicts) {
		return 0
	}
	return cat.state.NumVerdicts[forVtxCount]
}

func (cat *Catalog) IsReadOnly() bool { return cat.readOnly }

func (cat *Catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &cat.state)
		})
	})
}

func (cat *Catalog) flushState() {
	if !cat.stateDirty || cat.readOnly {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := proto.Marshal(&cat.state)
		if err != nil {
			return err
		}
		return txn.Set(gStateKey, stateBuf)
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *Catalog) Close() error {
	if cat.db == nil {
		return nil
	}
	cat.flushState()
	err := cat.db.Close()
	cat.db = nil
	return err
}

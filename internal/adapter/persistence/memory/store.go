// Package memory is an in-process document store implementing every
// repository port. It backs DOCUMENT_STORE=memory and the workflow tests.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	"sort"
	"sync"
)

type document struct {
	seq  int64
	data []byte
}

// Store keeps JSON copies of documents so callers never share memory with it.
type Store struct {
	mu   sync.RWMutex
	seq  int64
	docs map[string]map[string]map[string]document // collection -> partition -> id
}

func NewStore() *Store {
	return &Store{docs: map[string]map[string]map[string]document{}}
}

type opKind int

const (
	opCreate opKind = iota
	opUpdate
	opDelete
)

type op struct {
	kind       opKind
	collection string
	partition  string
	id         string
	value      any
	guard      func(stored []byte) error // checked against the stored document of an update
}

// statusIs guards an update on the status the document was read with.
func statusIs(want string) func([]byte) error {
	return func(stored []byte) error {
		var doc struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(stored, &doc); err != nil {
			return err
		}
		if doc.Status != want {
			return interfaces.ErrStaleDocument
		}
		return nil
	}
}

// apply validates every op and then writes all of them. Callers hold s.mu.
func (s *Store) apply(ops []op) error {
	encoded := make([][]byte, len(ops))
	staged := map[string]bool{}
	for i, o := range ops {
		k := o.collection + "/" + o.partition + "/" + o.id
		exists, pending := staged[k]
		if !pending {
			_, exists = s.docs[o.collection][o.partition][o.id]
		}
		switch o.kind {
		case opCreate:
			if exists {
				return fmt.Errorf("%s/%s: %w", o.collection, o.id, interfaces.ErrAlreadyExists)
			}
			staged[k] = true
		case opUpdate:
			if !exists {
				return fmt.Errorf("%s/%s: %w", o.collection, o.id, interfaces.ErrDocumentNotFound)
			}
			if o.guard != nil && !pending {
				if err := o.guard(s.docs[o.collection][o.partition][o.id].data); err != nil {
					return fmt.Errorf("%s/%s: %w", o.collection, o.id, err)
				}
			}
		case opDelete:
			if !exists {
				return fmt.Errorf("%s/%s: %w", o.collection, o.id, interfaces.ErrDocumentNotFound)
			}
			staged[k] = false
		}
		if o.kind != opDelete {
			b, err := json.Marshal(o.value)
			if err != nil {
				return err
			}
			encoded[i] = b
		}
	}

	for i, o := range ops {
		if o.kind == opDelete {
			delete(s.docs[o.collection][o.partition], o.id)
			continue
		}
		part := s.partition(o.collection, o.partition)
		doc, ok := part[o.id]
		if !ok {
			s.seq++
			doc.seq = s.seq
		}
		doc.data = encoded[i]
		part[o.id] = doc
	}
	return nil
}

func (s *Store) partition(collection, partition string) map[string]document {
	coll, ok := s.docs[collection]
	if !ok {
		coll = map[string]map[string]document{}
		s.docs[collection] = coll
	}
	part, ok := coll[partition]
	if !ok {
		part = map[string]document{}
		coll[partition] = part
	}
	return part
}

func (s *Store) write(ops ...op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ops)
}

func get[T any](s *Store, collection, partition, id string) (T, error) {
	var out T
	s.mu.RLock()
	doc, ok := s.docs[collection][partition][id]
	s.mu.RUnlock()
	if !ok {
		return out, nil
	}
	err := json.Unmarshal(doc.data, &out)
	return out, err
}

// list returns the partition in insertion order, filtered by keep when set.
func list[T any](s *Store, collection, partition string, keep func(T) bool) ([]T, error) {
	s.mu.RLock()
	docs := make([]document, 0, len(s.docs[collection][partition]))
	for _, d := range s.docs[collection][partition] {
		docs = append(docs, d)
	}
	s.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool { return docs[i].seq < docs[j].seq })

	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.data, &v); err != nil {
			return nil, err
		}
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// put creates or updates; missing updates are ignored so repos can return a
// zero value like the DynamoDB ones do.
func put(s *Store, kind opKind, collection, partition, id string, v any) (bool, error) {
	err := s.write(op{kind: kind, collection: collection, partition: partition, id: id, value: v})
	if err != nil && kind == opUpdate && isNotFound(err) {
		return false, nil
	}
	return err == nil, err
}

func isNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrDocumentNotFound)
}

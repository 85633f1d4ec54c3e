package store

// Store persists key/value pairs.
type Store interface {
	Save(key string, value []byte) error
}

// MemStore keeps everything in memory.
//
//scanx:repository
//scanx:scope name=session
type MemStore struct {
	data map[string][]byte
}

func (m *MemStore) Save(key string, value []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = value
	return nil
}

// row is unexported and never a candidate.
type row struct {
	key string
}

package dex

// Collection is the ordered set of loaded records, indexed by ID. The zero
// value is an empty collection.
type Collection struct {
	records []Record
	index   map[int]int
}

// NewCollection builds a collection preserving input order. When IDs repeat
// the first record wins.
func NewCollection(records []Record) Collection {
	c := Collection{
		records: make([]Record, 0, len(records)),
		index:   make(map[int]int, len(records)),
	}
	for _, rec := range records {
		if _, dup := c.index[rec.ID]; dup {
			continue
		}
		c.index[rec.ID] = len(c.records)
		c.records = append(c.records, rec.clone())
	}
	return c
}

// Len reports the number of records.
func (c Collection) Len() int {
	return len(c.records)
}

// All returns the records in load order. The slice is a copy.
func (c Collection) All() []Record {
	if len(c.records) == 0 {
		return nil
	}
	out := make([]Record, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.clone()
	}
	return out
}

// Get looks a record up by ID.
func (c Collection) Get(id int) (Record, bool) {
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i].clone(), true
}

// Contains reports whether id is present.
func (c Collection) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

package storage

import (
	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
)

// SeedFile describes tables to create and the rows to insert into them.
type SeedFile struct {
	Tables []TableSeed `json:"tables" toml:"tables"`
}

type TableSeed struct {
	Name   string         `json:"name" toml:"name"`
	Fields []schema.Field `json:"fields" toml:"fields"`
	Rows   []data.Row     `json:"rows,omitempty" toml:"rows"`
}

// TableNames returns the seeded table names in file order.
func (s *SeedFile) TableNames() []string {
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.Name
	}
	return names
}

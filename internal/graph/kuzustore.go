//go:build cgo

package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"

	"github.com/dusk-indust/pedigree/internal/model"
)

// KuzuStore implements the Store interface using KuzuDB as the graph
// backend, giving consumers a Cypher-queryable copy of the family graph.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return openKuzu(":memory:")
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at
// the given directory path. KuzuDB creates the directory itself for new
// databases; for existing ones it must contain valid KuzuDB files.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	return openKuzu(dbPath)
}

func openKuzu(path string) (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Person(
		id STRING,
		given_name STRING,
		surname STRING,
		sex STRING,
		birth_year INT64,
		death_year INT64,
		restricted BOOLEAN,
		PRIMARY KEY(id)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Family(
		id STRING,
		husband_id STRING,
		wife_id STRING,
		marriage_year INT64,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS CHILD_OF(FROM Person TO Person)`,
	`CREATE REL TABLE IF NOT EXISTS SPOUSE_OF(FROM Person TO Person, family_id STRING)`,
	`CREATE REL TABLE IF NOT EXISTS CHILD_IN(FROM Person TO Family)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddProfile inserts a Person node.
func (s *KuzuStore) AddProfile(_ context.Context, p model.Profile) error {
	return s.exec(
		`CREATE (p:Person {
			id: $id,
			given_name: $given,
			surname: $surname,
			sex: $sex,
			birth_year: $by,
			death_year: $dy,
			restricted: $restricted
		})`,
		map[string]any{
			"id":         p.ID,
			"given":      p.GivenName,
			"surname":    p.Surname,
			"sex":        string(p.Sex),
			"by":         int64(eventYear(p.Birth)),
			"dy":         int64(eventYear(p.Death)),
			"restricted": p.Restricted,
		},
	)
}

// AddFamily inserts a Family node.
func (s *KuzuStore) AddFamily(_ context.Context, f model.Family) error {
	return s.exec(
		`CREATE (f:Family {
			id: $id,
			husband_id: $husb,
			wife_id: $wife,
			marriage_year: $my
		})`,
		map[string]any{
			"id":   f.ID,
			"husb": f.HusbandID,
			"wife": f.WifeID,
			"my":   int64(eventYear(f.Marriage)),
		},
	)
}

// AddRelation inserts a relationship edge between two records.
// The Cypher statement is chosen based on the relation kind.
func (s *KuzuStore) AddRelation(_ context.Context, rel Relation) error {
	switch rel.Kind {
	case EdgeChildOf:
		return s.exec(
			`MATCH (a:Person {id: $src}), (b:Person {id: $dst})
			 CREATE (a)-[:CHILD_OF]->(b)`,
			map[string]any{"src": rel.SourceID, "dst": rel.TargetID},
		)
	case EdgeSpouseOf:
		return s.exec(
			`MATCH (a:Person {id: $src}), (b:Person {id: $dst})
			 CREATE (a)-[:SPOUSE_OF {family_id: $fam}]->(b)`,
			map[string]any{"src": rel.SourceID, "dst": rel.TargetID, "fam": rel.FamilyID},
		)
	case EdgeChildIn:
		return s.exec(
			`MATCH (a:Person {id: $src}), (b:Family {id: $dst})
			 CREATE (a)-[:CHILD_IN]->(b)`,
			map[string]any{"src": rel.SourceID, "dst": rel.TargetID},
		)
	default:
		return fmt.Errorf("kuzu: unsupported relation kind: %s", rel.Kind)
	}
}

// ---------- Stats ----------

// Stats returns counts of all node and relationship tables.
func (s *KuzuStore) Stats(_ context.Context) (*StoreStats, error) {
	people, err := s.countTable("Person")
	if err != nil {
		return nil, err
	}
	families, err := s.countTable("Family")
	if err != nil {
		return nil, err
	}
	relations, err := s.countEdges()
	if err != nil {
		return nil, err
	}
	return &StoreStats{
		ProfileCount:  people,
		FamilyCount:   families,
		RelationCount: relations,
	}, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a Cypher statement and collects all result rows.
func (s *KuzuStore) query(cypher string) ([][]any, error) {
	res, err := s.conn.Query(cypher)
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// countTable returns the number of rows in a node table.
func (s *KuzuStore) countTable(table string) (int, error) {
	// Table name is a fixed internal constant, not user input.
	cypher := fmt.Sprintf("MATCH (n:%s) RETURN count(n)", table)
	rows, err := s.query(cypher)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// countEdges returns the total edge count across all relationship tables.
func (s *KuzuStore) countEdges() (int, error) {
	tables := []string{"CHILD_OF", "SPOUSE_OF", "CHILD_IN"}
	total := 0
	for _, t := range tables {
		cypher := fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r)", t)
		rows, err := s.query(cypher)
		if err != nil {
			// Table may not exist yet; treat as zero.
			continue
		}
		if len(rows) > 0 && len(rows[0]) > 0 {
			total += toInt(rows[0][0])
		}
	}
	return total, nil
}

// eventYear extracts the structured year from an event, 0 when unknown.
func eventYear(ev *model.LifeEvent) int {
	if ev == nil || ev.Date == nil {
		return 0
	}
	return ev.Date.Year
}

// toInt coerces KuzuDB's typed values (int64, int32, ...) to int.
func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

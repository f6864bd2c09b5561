// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists a distilled citation graph as SQLite so
// downstream tools can query nodes and edges without reparsing the
// corpus.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/pkg/types"
)

// Store manages the citation graph SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the graph database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS nodes (
			canonical_id INTEGER PRIMARY KEY,
			label INTEGER NOT NULL,
			title TEXT,
			uid TEXT,
			doi TEXT,
			abstract TEXT,
			publish_time TEXT,
			authors TEXT,
			journal TEXT,
			url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS edges (
			source INTEGER NOT NULL REFERENCES nodes(canonical_id),
			target INTEGER NOT NULL REFERENCES nodes(canonical_id),
			PRIMARY KEY (source, target)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes the distilled graph in one transaction, replacing any
// previous contents. Edges are stored once, with source <= target.
func (s *Store) Save(ctx context.Context, g *graph.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM edges`); err != nil {
		return fmt.Errorf("clearing edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes`); err != nil {
		return fmt.Errorf("clearing nodes: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO nodes (canonical_id, label, title, uid, doi, abstract, publish_time, authors, journal, url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		_, err := nodeStmt.ExecContext(ctx,
			int(n.ID), int(n.Label), n.Title, n.UID, n.DOI,
			n.Abstract, n.PublishTime, n.Authors, n.Journal, n.URL,
		)
		if err != nil {
			return fmt.Errorf("inserting node %d: %w", id, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO edges (source, target) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, id := range g.NodeIDs() {
		for _, other := range g.Neighbors(id) {
			if other < id {
				continue
			}
			if _, err := edgeStmt.ExecContext(ctx, int(id), int(other)); err != nil {
				return fmt.Errorf("inserting edge %d-%d: %w", id, other, err)
			}
		}
	}

	return tx.Commit()
}

// StoredEdge is one undirected edge row, source <= target.
type StoredEdge struct {
	Source types.CanonicalID `json:"source" yaml:"source"`
	Target types.CanonicalID `json:"target" yaml:"target"`
}

// Load reads the stored graph back as node and edge listings, both in
// ascending id order.
func (s *Store) Load(ctx context.Context) ([]graph.Node, []StoredEdge, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT canonical_id, label, title, uid, doi, abstract, publish_time, authors, journal, url
		 FROM nodes ORDER BY canonical_id`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var nodes []graph.Node
	for rows.Next() {
		var n graph.Node
		var id, label int
		if err := rows.Scan(&id, &label, &n.Title, &n.UID, &n.DOI,
			&n.Abstract, &n.PublishTime, &n.Authors, &n.Journal, &n.URL); err != nil {
			return nil, nil, fmt.Errorf("scanning node: %w", err)
		}
		n.ID = types.CanonicalID(id)
		n.Label = types.NodeLabel(label)
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating nodes: %w", err)
	}

	edgeRows, err := s.db.QueryContext(ctx,
		`SELECT source, target FROM edges ORDER BY source, target`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying edges: %w", err)
	}
	defer edgeRows.Close()

	var edges []StoredEdge
	for edgeRows.Next() {
		var src, tgt int
		if err := edgeRows.Scan(&src, &tgt); err != nil {
			return nil, nil, fmt.Errorf("scanning edge: %w", err)
		}
		edges = append(edges, StoredEdge{
			Source: types.CanonicalID(src),
			Target: types.CanonicalID(tgt),
		})
	}
	if err := edgeRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating edges: %w", err)
	}

	return nodes, edges, nil
}

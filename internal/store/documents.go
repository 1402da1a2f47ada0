package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docforge/docforge/internal/types"
)

// SaveDocument inserts a document row and returns it.
func (db *DB) SaveDocument(ctx context.Context, userID, title, content string) (*types.Document, error) {
	var doc types.Document
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, content, created_at`,
		userID, title, content,
	).Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.Content, &doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return &doc, nil
}

// ListDocuments retrieves a user's documents, newest first.
func (db *DB) ListDocuments(ctx context.Context, userID string) ([]types.Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, content, created_at
		 FROM documents WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		var doc types.Document
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.Content, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// DeleteDocument removes a document. The user ID is part of the predicate so
// a caller can only delete their own rows.
func (db *DB) DeleteDocument(ctx context.Context, userID string, docID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND user_id = $2`, docID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", docID)
	}
	return nil
}

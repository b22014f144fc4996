package rag

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// PgRepository is the pgvector-backed vector index. One database can hold
// several indexes; each repository only sees rows tagged with its index name.
type PgRepository struct {
	db        *pgxpool.Pool
	indexName string
}

func NewPgRepository(db *pgxpool.Pool, indexName string) *PgRepository {
	return &PgRepository{db: db, indexName: indexName}
}

// Query faz a busca vetorial por similaridade de cosseno.
func (r *PgRepository) Query(ctx context.Context, embedding []float32, k int) ([]DocChunk, error) {
	if k <= 0 {
		k = RetrievalDepth
	}

	vec := pgvector.NewVector(embedding)

	rows, err := r.db.Query(ctx, `
		SELECT
			c.id, c.content, c.source,
			1 - (e.embedding <=> $2) AS score
		FROM doc_chunk c
		JOIN doc_chunk_embedding e ON c.id = e.chunk_id
		WHERE c.index_name = $1
		ORDER BY e.embedding <=> $2
		LIMIT $3
	`, r.indexName, vec, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []DocChunk
	for rows.Next() {
		var c DocChunk
		if err := rows.Scan(
			&c.ID,
			&c.Content,
			&c.Source,
			&c.Score,
		); err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	return chunks, rows.Err()
}

var _ VectorIndex = (*PgRepository)(nil)
